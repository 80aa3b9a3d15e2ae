package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/mrlokans/shelfstreak/internal/config"
	"github.com/mrlokans/shelfstreak/internal/stats"
)

// StatsCommand prints the point total and badge progress.
type StatsCommand struct {
	DatabasePath string
}

// NewStatsCommand creates a new StatsCommand
func NewStatsCommand() *StatsCommand {
	return &StatsCommand{}
}

// ParseFlags parses command line flags
func (cmd *StatsCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)

	cfg := config.NewConfig()
	fs.StringVar(&cmd.DatabasePath, "db", cfg.Database.Path, "Path to the tracker database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s stats [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Show total points (pages read) and badge progress.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

// Run prints the derived stats.
func (cmd *StatsCommand) Run() error {
	db, store, err := openStore(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	summary := stats.Compute(store.Load(), stats.DefaultCatalog())
	fmt.Printf("Total points: %d\n\n", summary.TotalPoints)

	for _, bs := range summary.Badges {
		state := fmt.Sprintf("Read %d pages", bs.Badge.ThresholdPages)
		if bs.Earned {
			state = "Unlocked"
		}
		fmt.Printf("%s %-10s %-12s Progress: %d / %d\n",
			bs.Badge.Icon, bs.Badge.Name, state, bs.Progress, bs.Badge.ThresholdPages)
	}
	return nil
}
