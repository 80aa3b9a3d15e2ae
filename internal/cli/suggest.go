package cli

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/mrlokans/shelfstreak/internal/config"
	"github.com/mrlokans/shelfstreak/internal/suggest"
)

// SuggestCommand prints a few reading suggestions per category.
type SuggestCommand struct {
	PerCategory int
}

// NewSuggestCommand creates a new SuggestCommand
func NewSuggestCommand() *SuggestCommand {
	return &SuggestCommand{}
}

// ParseFlags parses command line flags
func (cmd *SuggestCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("suggest", flag.ExitOnError)

	cfg := config.NewConfig()
	fs.IntVar(&cmd.PerCategory, "n", cfg.Suggestions.PerCategory, "Suggestions per category")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s suggest [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Print reading suggestions by hobby, by genre and from the popular list.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

// Run prints the picks.
func (cmd *SuggestCommand) Run() error {
	picker := suggest.NewPicker(rand.New(rand.NewSource(time.Now().UnixNano())))

	fmt.Println("By hobby:")
	for _, s := range picker.Hobbies(cmd.PerCategory) {
		fmt.Printf("  %s by %s (Hobby: %s)\n", s.Title, s.Author, s.Hobby)
	}

	fmt.Println("\nBy genre:")
	for _, s := range picker.Genres(cmd.PerCategory) {
		fmt.Printf("  %s by %s (Genre: %s)\n", s.Title, s.Author, s.Genre)
	}

	fmt.Println("\nPopular now:")
	for _, s := range picker.Popular(cmd.PerCategory) {
		fmt.Printf("  %s by %s\n", s.Title, s.Author)
	}
	return nil
}
