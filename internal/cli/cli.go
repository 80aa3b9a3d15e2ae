// Package cli implements the shelfstreak subcommands.
package cli

import (
	"fmt"

	"github.com/mrlokans/shelfstreak/internal/database"
	"github.com/mrlokans/shelfstreak/internal/entities"
	"github.com/mrlokans/shelfstreak/internal/library"
)

func openStore(dbPath string) (*database.Database, *library.Store, error) {
	db, err := database.NewDatabase(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	return db, library.NewStore(db), nil
}

// bookLine renders the shelf-card metadata string: author, page count, ISBN
// and read progress, separated with middle dots.
func bookLine(b entities.Book) string {
	line := b.Title
	parts := []string{}
	if b.Author != "" {
		parts = append(parts, b.Author)
	}
	if b.Pages > 0 {
		parts = append(parts, fmt.Sprintf("%d pages", b.Pages))
	}
	if b.ISBN != "" {
		parts = append(parts, fmt.Sprintf("ISBN: %s", b.ISBN))
	}
	if b.ReadPages > 0 {
		parts = append(parts, fmt.Sprintf("Read: %d pages", b.ReadPages))
	}
	for i, p := range parts {
		if i == 0 {
			line += " — " + p
		} else {
			line += " · " + p
		}
	}
	return line
}
