package main

import (
	"fmt"
	"os"

	"github.com/mrlokans/shelfstreak/internal/cli"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

type command interface {
	ParseFlags(args []string) error
	Run() error
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var cmd command
	switch os.Args[1] {
	case "scan":
		cmd = cli.NewScanCommand()
	case "add":
		cmd = cli.NewAddCommand()
	case "log":
		cmd = cli.NewLogCommand()
	case "shelf":
		cmd = cli.NewShelfCommand()
	case "stats":
		cmd = cli.NewStatsCommand()
	case "streak":
		cmd = cli.NewStreakCommand()
	case "suggest":
		cmd = cli.NewSuggestCommand()

	case "version":
		fmt.Printf("shelfstreak %s (%s)\n", Version, Commit)
		return

	case "-h", "--help", "help":
		printUsage()
		return

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err := cmd.ParseFlags(os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  scan     Register books from a stream of decoded barcodes (stdin)\n")
	fmt.Fprintf(os.Stderr, "  add      Add a book manually or by ISBN lookup\n")
	fmt.Fprintf(os.Stderr, "  log      Log pages read against a shelf entry\n")
	fmt.Fprintf(os.Stderr, "  shelf    List the book collection\n")
	fmt.Fprintf(os.Stderr, "  stats    Show total points and badge progress\n")
	fmt.Fprintf(os.Stderr, "  streak   Evaluate and print the current reading streak\n")
	fmt.Fprintf(os.Stderr, "  suggest  Print reading suggestions\n")
	fmt.Fprintf(os.Stderr, "\nUse '%s <command> -h' for help on a specific command.\n", os.Args[0])
}
