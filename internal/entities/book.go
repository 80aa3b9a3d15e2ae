package entities

import (
	"fmt"
	"time"
)

// Book is a single entry on the user's shelf. Books are persisted as a
// JSON-encoded ordered array; insertion order is display order and duplicate
// ISBNs are allowed (scanning the same book twice appends twice).
type Book struct {
	Title       string `json:"title"`
	Author      string `json:"author,omitempty"`
	Pages       int    `json:"pages,omitempty"`
	ISBN        string `json:"isbn,omitempty"`
	Thumbnail   string `json:"thumbnail,omitempty"`
	Description string `json:"description,omitempty"`
	ReadPages   int    `json:"readPages"`
}

// PlaceholderTitle builds the fallback title used when a book is registered
// without any resolvable metadata.
func PlaceholderTitle(isbn string) string {
	return fmt.Sprintf("Book (%s)", isbn)
}

// Badge is a static achievement definition. Unlock state is never stored;
// it is derived from the running page total on every evaluation.
type Badge struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	ThresholdPages int    `json:"threshold_pages"`
	Icon           string `json:"icon"`
}

// StreakState is the persisted pair backing the daily reading streak.
// LastReadingDate carries date-only significance; day arithmetic is done on
// UTC calendar days.
type StreakState struct {
	StreakDays      int        `json:"streak_days"`
	LastReadingDate *time.Time `json:"last_reading_date,omitempty"`
}
