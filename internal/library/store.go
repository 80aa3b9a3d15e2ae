// Package library owns the persisted book collection. All mutations pass
// through the Store; it is the single writer for the shelf.
package library

import (
	"encoding/json"
	"errors"
	"log"
	"sync"

	"github.com/mrlokans/shelfstreak/internal/database"
	"github.com/mrlokans/shelfstreak/internal/entities"
)

var (
	ErrInvalidPages    = errors.New("pages must be a positive integer")
	ErrIndexOutOfRange = errors.New("book index out of range")
)

// Store persists the ordered book array as a single JSON-encoded settings
// entry. Corrupted or missing data always degrades to an empty shelf; a
// failed write is logged and remembered, never raised.
type Store struct {
	db *database.Database

	mu           sync.Mutex
	lastWriteErr error
}

func NewStore(db *database.Database) *Store {
	return &Store{db: db}
}

// Load reads the persisted collection. Absence and malformed JSON both
// return an empty shelf.
func (s *Store) Load() []entities.Book {
	setting, err := s.db.GetSetting(entities.SettingKeyLibraryBooks)
	if err != nil || setting.Value == "" {
		return []entities.Book{}
	}

	var books []entities.Book
	if err := json.Unmarshal([]byte(setting.Value), &books); err != nil {
		log.Printf("WARNING: stored book collection is malformed, starting from an empty shelf: %v", err)
		return []entities.Book{}
	}
	return books
}

// Append adds a book to the end of the shelf and persists the whole
// collection. An empty title is replaced with the ISBN-derived placeholder
// so a book never ends up unnamed.
func (s *Store) Append(book entities.Book) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if book.Title == "" {
		book.Title = entities.PlaceholderTitle(book.ISBN)
	}
	if book.ReadPages < 0 {
		book.ReadPages = 0
	}

	books := s.Load()
	books = append(books, book)
	s.save(books)
}

// LogPages adds pages to the read count of the book at index. Non-positive
// page counts and out-of-range indexes leave the shelf untouched and return
// a sentinel error.
func (s *Store) LogPages(index, pages int) (entities.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if pages <= 0 {
		return entities.Book{}, ErrInvalidPages
	}

	books := s.Load()
	if index < 0 || index >= len(books) {
		return entities.Book{}, ErrIndexOutOfRange
	}

	books[index].ReadPages += pages
	s.save(books)
	return books[index], nil
}

// TotalPoints sums ReadPages across the shelf. Recomputed on demand; the
// collection is small enough that consistency beats caching.
func (s *Store) TotalPoints() int {
	total := 0
	for _, b := range s.Load() {
		total += b.ReadPages
	}
	return total
}

// LastWriteError reports the most recent persistence failure, if any.
// Writes degrade to no-ops when storage is unavailable; callers that want to
// surface a warning check here.
func (s *Store) LastWriteError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastWriteErr
}

func (s *Store) save(books []entities.Book) {
	data, err := json.Marshal(books)
	if err != nil {
		s.lastWriteErr = err
		log.Printf("WARNING: could not encode book collection: %v", err)
		return
	}
	if err := s.db.SetSetting(entities.SettingKeyLibraryBooks, string(data)); err != nil {
		s.lastWriteErr = err
		log.Printf("WARNING: could not persist book collection: %v", err)
		return
	}
	s.lastWriteErr = nil
}
