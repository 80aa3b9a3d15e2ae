package cli

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/mrlokans/shelfstreak/internal/config"
	"github.com/mrlokans/shelfstreak/internal/streak"
)

// LogCommand logs pages read against a book on the shelf and records the
// reading event for the streak.
type LogCommand struct {
	DatabasePath string
	Index        int
	Pages        int
}

// NewLogCommand creates a new LogCommand
func NewLogCommand() *LogCommand {
	return &LogCommand{}
}

// ParseFlags parses command line flags
func (cmd *LogCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("log", flag.ExitOnError)

	cfg := config.NewConfig()
	fs.StringVar(&cmd.DatabasePath, "db", cfg.Database.Path, "Path to the tracker database file")
	fs.IntVar(&cmd.Index, "index", -1, "Shelf index of the book (see 'shelf')")
	fs.IntVar(&cmd.Pages, "pages", 0, "Pages read in this session (> 0)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s log -index N -pages M\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Log a reading session. Pages count toward points and badges;\n")
		fmt.Fprintf(os.Stderr, "the streak updates on the next evaluation.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

// Run logs the session.
func (cmd *LogCommand) Run() error {
	db, store, err := openStore(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	book, err := store.LogPages(cmd.Index, cmd.Pages)
	if err != nil {
		return err
	}
	if werr := store.LastWriteError(); werr != nil {
		fmt.Printf("Warning: shelf could not be saved: %v\n", werr)
	}

	streak.NewTracker(db).RecordEvent(time.Now())

	fmt.Printf("Logged %d pages: %s\n", cmd.Pages, bookLine(book))
	fmt.Printf("Total points: %d\n", store.TotalPoints())
	return nil
}
