package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/mrlokans/shelfstreak/internal/config"
	"github.com/mrlokans/shelfstreak/internal/entities"
	"github.com/mrlokans/shelfstreak/internal/ingest"
	"github.com/mrlokans/shelfstreak/internal/isbn"
	"github.com/mrlokans/shelfstreak/internal/metadata"
)

// AddCommand registers a book from manual entry or by ISBN lookup.
type AddCommand struct {
	DatabasePath string
	Title        string
	Author       string
	Pages        int
	ISBN         string
	Lookup       bool
}

// NewAddCommand creates a new AddCommand
func NewAddCommand() *AddCommand {
	return &AddCommand{}
}

// ParseFlags parses command line flags
func (cmd *AddCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)

	cfg := config.NewConfig()
	fs.StringVar(&cmd.DatabasePath, "db", cfg.Database.Path, "Path to the tracker database file")
	fs.StringVar(&cmd.Title, "title", "", "Book title (required unless -lookup)")
	fs.StringVar(&cmd.Author, "author", "", "Book author")
	fs.IntVar(&cmd.Pages, "pages", 0, "Total page count")
	fs.StringVar(&cmd.ISBN, "isbn", "", "ISBN-13 (hyphens allowed)")
	fs.BoolVar(&cmd.Lookup, "lookup", false, "Resolve the given -isbn through the metadata providers")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s add [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Add a book to the shelf.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s add -title \"Vagabonding\" -author \"Rolf Potts\"\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s add -lookup -isbn 978-0-321-76572-3\n", os.Args[0])
	}

	return fs.Parse(args)
}

// Run adds the book.
func (cmd *AddCommand) Run() error {
	db, store, err := openStore(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	if cmd.Lookup {
		if cmd.ISBN == "" {
			return fmt.Errorf("-lookup requires -isbn")
		}
		resolver := metadata.NewResolver(
			metadata.NewGoogleBooksClient(),
			metadata.NewOpenLibraryClient(),
		)
		pipeline := ingest.NewPipeline(store, resolver)
		book, err := pipeline.Ingest(context.Background(), cmd.ISBN)
		if err != nil {
			return err
		}
		fmt.Printf("Added: %s\n", bookLine(book))
		return nil
	}

	pipeline := ingest.NewPipeline(store, metadata.NewResolver())
	book, err := pipeline.AddManual(entities.Book{
		Title:  cmd.Title,
		Author: cmd.Author,
		Pages:  cmd.Pages,
		ISBN:   isbn.Normalize(cmd.ISBN),
	})
	if err != nil {
		return err
	}
	if werr := store.LastWriteError(); werr != nil {
		fmt.Printf("Warning: shelf could not be saved: %v\n", werr)
	}
	fmt.Printf("Added: %s\n", bookLine(book))
	return nil
}
