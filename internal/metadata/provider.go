// Package metadata resolves ISBNs to descriptive book fields using external
// providers. Providers are tried in order and every failure mode (network,
// non-success status, malformed body, no match) degrades to the next one.
package metadata

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/mrlokans/shelfstreak/internal/isbn"
)

// ErrNoMatch signals that the provider answered but had no entry for the
// lookup key.
var ErrNoMatch = errors.New("no matching metadata found")

// Result contains normalized book information from an external source.
type Result struct {
	Title       string `json:"title,omitempty"`
	Author      string `json:"author,omitempty"`
	Pages       int    `json:"pages,omitempty"`
	ISBN        string `json:"isbn,omitempty"`
	Thumbnail   string `json:"thumbnail,omitempty"`
	Description string `json:"description,omitempty"`
}

// Provider defines the interface for metadata lookup services.
type Provider interface {
	// Name returns the provider identifier (e.g., "googlebooks", "openlibrary").
	Name() string

	// LookupByISBN resolves an ISBN (10 or 13) to book metadata.
	// Returns ErrNoMatch when the key did not match an entry.
	LookupByISBN(ctx context.Context, isbnCode string) (*Result, error)
}

type rateLimiter struct {
	mu       sync.Mutex
	lastCall time.Time
	interval time.Duration
}

func newRateLimiter(interval time.Duration) *rateLimiter {
	return &rateLimiter{interval: interval}
}

func (r *rateLimiter) wait() {
	r.mu.Lock()
	defer r.mu.Unlock()

	since := time.Since(r.lastCall)
	if since < r.interval {
		time.Sleep(r.interval - since)
	}
	r.lastCall = time.Now()
}

// Resolver queries an ordered list of providers and returns the first hit.
// Adding a provider is a list insertion, not new branching logic.
type Resolver struct {
	providers []Provider
}

func NewResolver(providers ...Provider) *Resolver {
	return &Resolver{providers: providers}
}

// Resolve runs the fallback chain for a 13-digit code. Each provider is
// asked with the ISBN-13 and, when one exists, the derived ISBN-10. The
// chain short-circuits on the first result and returns nil when every call
// came up empty; it never surfaces a provider error.
func (r *Resolver) Resolve(ctx context.Context, isbn13 string) *Result {
	candidates := []string{isbn13}
	if isbn10 := isbn.ToISBN10(isbn13); isbn10 != "" {
		candidates = append(candidates, isbn10)
	}

	for _, provider := range r.providers {
		for _, code := range candidates {
			if ctx.Err() != nil {
				return nil
			}
			result, err := provider.LookupByISBN(ctx, code)
			if err != nil {
				if !errors.Is(err, ErrNoMatch) {
					log.Printf("WARNING: %s lookup for %s failed, falling through: %v", provider.Name(), code, err)
				}
				continue
			}
			if result != nil {
				return result
			}
		}
	}
	return nil
}
