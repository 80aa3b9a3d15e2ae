package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/mrlokans/shelfstreak/internal/config"
)

// ShelfCommand lists the book collection in insertion order.
type ShelfCommand struct {
	DatabasePath string
}

// NewShelfCommand creates a new ShelfCommand
func NewShelfCommand() *ShelfCommand {
	return &ShelfCommand{}
}

// ParseFlags parses command line flags
func (cmd *ShelfCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("shelf", flag.ExitOnError)

	cfg := config.NewConfig()
	fs.StringVar(&cmd.DatabasePath, "db", cfg.Database.Path, "Path to the tracker database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s shelf [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "List the books on the shelf.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

// Run prints the shelf.
func (cmd *ShelfCommand) Run() error {
	db, store, err := openStore(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	books := store.Load()
	if len(books) == 0 {
		fmt.Println("No books yet. Scan a barcode to get started!")
		return nil
	}

	for i, b := range books {
		fmt.Printf("%3d  %s\n", i, bookLine(b))
	}
	return nil
}
