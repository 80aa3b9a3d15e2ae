// Package ingest turns raw decoded barcode strings into shelf entries:
// validation, metadata resolution, then append. It is the composition root
// between the scanner, the resolver and the book store.
package ingest

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/mrlokans/shelfstreak/internal/entities"
	"github.com/mrlokans/shelfstreak/internal/isbn"
	"github.com/mrlokans/shelfstreak/internal/library"
	"github.com/mrlokans/shelfstreak/internal/metadata"
)

var (
	// ErrNotBookCode signals a decoded string that is not a 978/979 EAN-13.
	ErrNotBookCode = errors.New("not a recognized book code")

	// ErrScanBusy signals a detection arriving inside the debounce window or
	// while a previous ingest is still resolving.
	ErrScanBusy = errors.New("scan ignored: pipeline busy")

	// ErrEmptyTitle signals a manual entry without a title.
	ErrEmptyTitle = errors.New("title is required")
)

// DefaultDebounce matches the continuous-decoder cadence: one accepted code
// per 800ms window.
const DefaultDebounce = 800 * time.Millisecond

// MetadataResolver resolves an ISBN-13 to normalized metadata, or nil when
// every provider came up empty.
type MetadataResolver interface {
	Resolve(ctx context.Context, isbn13 string) *metadata.Result
}

// Pipeline processes at most one code at a time. A second detection arriving
// mid-resolution is ignored until the pipeline is idle again, so one physical
// scan never appends twice.
type Pipeline struct {
	store    *library.Store
	resolver MetadataResolver
	debounce time.Duration
	now      func() time.Time

	mu       sync.Mutex
	busy     bool
	lastCode time.Time
}

func NewPipeline(store *library.Store, resolver MetadataResolver) *Pipeline {
	return &Pipeline{
		store:    store,
		resolver: resolver,
		debounce: DefaultDebounce,
		now:      time.Now,
	}
}

// SetDebounce overrides the accepted-code window (optional).
func (p *Pipeline) SetDebounce(d time.Duration) {
	if d > 0 {
		p.debounce = d
	}
}

// Ingest validates and enriches a raw decoded code, appends the resulting
// book and returns it. An unresolvable but valid ISBN still produces a
// minimal record; ingestion only refuses invalid codes and overlapping
// scans.
func (p *Pipeline) Ingest(ctx context.Context, rawCode string) (entities.Book, error) {
	code := isbn.Normalize(rawCode)

	p.mu.Lock()
	now := p.now()
	if p.busy || now.Sub(p.lastCode) < p.debounce {
		p.mu.Unlock()
		return entities.Book{}, ErrScanBusy
	}
	p.lastCode = now

	if !isbn.IsISBN13(code) {
		p.mu.Unlock()
		return entities.Book{}, ErrNotBookCode
	}

	p.busy = true
	p.mu.Unlock()
	defer func() {
		p.mu.Lock()
		p.busy = false
		p.mu.Unlock()
	}()

	result := p.resolver.Resolve(ctx, code)
	if ctx.Err() != nil {
		// Pipeline torn down mid-resolution; abandon without touching the store.
		return entities.Book{}, ctx.Err()
	}

	book := buildBook(code, result)
	p.store.Append(book)
	return book, nil
}

// AddManual registers a book from the manual-entry surface, bypassing
// validation and resolution.
func (p *Pipeline) AddManual(book entities.Book) (entities.Book, error) {
	if book.Title == "" {
		return entities.Book{}, ErrEmptyTitle
	}
	book.ReadPages = 0
	p.store.Append(book)
	return book, nil
}

func buildBook(code string, result *metadata.Result) entities.Book {
	if result == nil {
		return entities.Book{
			Title: entities.PlaceholderTitle(code),
			ISBN:  code,
		}
	}

	book := entities.Book{
		Title:       result.Title,
		Author:      result.Author,
		Pages:       result.Pages,
		ISBN:        result.ISBN,
		Thumbnail:   result.Thumbnail,
		Description: result.Description,
	}
	if book.Title == "" {
		book.Title = entities.PlaceholderTitle(code)
	}
	if book.ISBN == "" {
		book.ISBN = code
	}
	return book
}
