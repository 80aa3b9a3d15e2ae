// Package stats derives the point total and badge-unlock state from the
// current shelf. Nothing here is persisted; every call recomputes from
// scratch.
package stats

import "github.com/mrlokans/shelfstreak/internal/entities"

// BadgeStatus pairs a badge with its derived unlock state.
type BadgeStatus struct {
	Badge    entities.Badge `json:"badge"`
	Earned   bool           `json:"earned"`
	Progress int            `json:"progress"`
}

// Summary is the derived stats snapshot for display.
type Summary struct {
	TotalPoints int           `json:"total_points"`
	Badges      []BadgeStatus `json:"badges"`
}

// DefaultCatalog returns the badge definitions in declaration order, which
// is also display order.
func DefaultCatalog() []entities.Badge {
	return []entities.Badge{
		{ID: "p50", Name: "50 Pages", ThresholdPages: 50, Icon: "🥉"},
		{ID: "p100", Name: "100 Pages", ThresholdPages: 100, Icon: "🥈"},
		{ID: "p250", Name: "250 Pages", ThresholdPages: 250, Icon: "🥇"},
	}
}

// Compute derives total points (one point per page read) and per-badge
// unlock state. Badge order follows the catalog, progress is capped at the
// threshold.
func Compute(books []entities.Book, catalog []entities.Badge) Summary {
	total := 0
	for _, b := range books {
		total += b.ReadPages
	}

	badges := make([]BadgeStatus, 0, len(catalog))
	for _, badge := range catalog {
		badges = append(badges, BadgeStatus{
			Badge:    badge,
			Earned:   total >= badge.ThresholdPages,
			Progress: min(total, badge.ThresholdPages),
		})
	}

	return Summary{TotalPoints: total, Badges: badges}
}
