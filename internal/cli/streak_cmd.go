package cli

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/mrlokans/shelfstreak/internal/config"
	"github.com/mrlokans/shelfstreak/internal/streak"
)

// StreakCommand evaluates and prints the current reading streak.
type StreakCommand struct {
	DatabasePath string
}

// NewStreakCommand creates a new StreakCommand
func NewStreakCommand() *StreakCommand {
	return &StreakCommand{}
}

// ParseFlags parses command line flags
func (cmd *StreakCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("streak", flag.ExitOnError)

	cfg := config.NewConfig()
	fs.StringVar(&cmd.DatabasePath, "db", cfg.Database.Path, "Path to the tracker database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s streak [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Evaluate the streak for today and print it.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

// Run evaluates today's streak.
func (cmd *StreakCommand) Run() error {
	db, _, err := openStore(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	days := streak.NewTracker(db).EvaluateForToday(time.Now())
	fmt.Printf("Current streak is %d days\n", days)
	return nil
}
