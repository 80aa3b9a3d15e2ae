package cli

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mrlokans/shelfstreak/internal/config"
	"github.com/mrlokans/shelfstreak/internal/ingest"
	"github.com/mrlokans/shelfstreak/internal/metadata"
	"github.com/mrlokans/shelfstreak/internal/scheduler"
	"github.com/mrlokans/shelfstreak/internal/streak"
)

// ScanCommand consumes decoded barcode strings from stdin and registers the
// books they identify. The barcode decoder itself is an external capability;
// this command only sees its string payloads.
type ScanCommand struct {
	DatabasePath string
	Debounce     time.Duration
	Schedule     string
}

// NewScanCommand creates a new ScanCommand
func NewScanCommand() *ScanCommand {
	return &ScanCommand{}
}

// ParseFlags parses command line flags
func (cmd *ScanCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("scan", flag.ExitOnError)

	cfg := config.NewConfig()
	fs.StringVar(&cmd.DatabasePath, "db", cfg.Database.Path, "Path to the tracker database file")
	fs.DurationVar(&cmd.Debounce, "debounce", cfg.Scan.Debounce, "Minimum gap between accepted codes")
	fs.StringVar(&cmd.Schedule, "streak-schedule", cfg.Streak.RefreshSchedule, "Cron schedule for streak re-evaluation")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s scan [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Register books from a stream of decoded barcodes.\n\n")
		fmt.Fprintf(os.Stderr, "Reads one decoded code per line from stdin, validates it as a\n")
		fmt.Fprintf(os.Stderr, "978/979 EAN-13, resolves metadata (Google Books, then OpenLibrary)\n")
		fmt.Fprintf(os.Stderr, "and appends the book to the shelf. Stop with Ctrl-C or EOF.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

// Run executes the scan loop.
func (cmd *ScanCommand) Run() error {
	db, store, err := openStore(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	tracker := streak.NewTracker(db)
	days := tracker.EvaluateForToday(time.Now())
	fmt.Printf("Current streak is %d days\n", days)

	refresher := scheduler.NewStreakRefresher(tracker, cmd.Schedule)
	if err := refresher.Start(); err != nil {
		return err
	}
	defer refresher.Stop()

	resolver := metadata.NewResolver(
		metadata.NewGoogleBooksClient(),
		metadata.NewOpenLibraryClient(),
	)
	pipeline := ingest.NewPipeline(store, resolver)
	pipeline.SetDebounce(cmd.Debounce)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if ctx.Err() != nil {
			break
		}
		code := strings.TrimSpace(scanner.Text())
		if code == "" {
			continue
		}

		book, err := pipeline.Ingest(ctx, code)
		switch {
		case errors.Is(err, ingest.ErrScanBusy):
			// Duplicate frame from a continuous decoder; drop it quietly.
		case errors.Is(err, ingest.ErrNotBookCode):
			fmt.Println("Not a book barcode. Look for 13 digits starting 978/979.")
		case errors.Is(err, context.Canceled):
			return nil
		case err != nil:
			return err
		default:
			if werr := store.LastWriteError(); werr != nil {
				fmt.Printf("Warning: shelf could not be saved: %v\n", werr)
			}
			fmt.Printf("Added: %s\n", bookLine(book))
		}
	}
	return scanner.Err()
}
