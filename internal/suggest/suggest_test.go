package suggest

import (
	"math/rand"
	"testing"
)

func newTestPicker() *Picker {
	return NewPicker(rand.New(rand.NewSource(1)))
}

func TestPick_Count(t *testing.T) {
	picker := newTestPicker()

	if got := len(picker.Hobbies(4)); got != 4 {
		t.Errorf("expected 4 hobby picks, got %d", got)
	}
	if got := len(picker.Genres(4)); got != 4 {
		t.Errorf("expected 4 genre picks, got %d", got)
	}
	if got := len(picker.Popular(4)); got != 4 {
		t.Errorf("expected 4 popular picks, got %d", got)
	}
}

func TestPick_NoRepeats(t *testing.T) {
	picker := newTestPicker()

	seen := map[string]bool{}
	for _, s := range picker.Genres(len(genreCatalog)) {
		if seen[s.Title] {
			t.Errorf("duplicate pick %q", s.Title)
		}
		seen[s.Title] = true
	}
}

func TestPick_ClampsToCatalogSize(t *testing.T) {
	picker := newTestPicker()

	if got := len(picker.Popular(100)); got != len(popularCatalog) {
		t.Errorf("expected all %d popular entries, got %d", len(popularCatalog), got)
	}
	if got := len(picker.Popular(-1)); got != 0 {
		t.Errorf("expected no picks for negative n, got %d", got)
	}
}

func TestAsBook(t *testing.T) {
	s := Suggestion{Title: "Vagabonding", Author: "Rolf Potts"}

	book := s.AsBook()

	if book.Title != "Vagabonding" || book.Author != "Rolf Potts" {
		t.Errorf("unexpected book %+v", book)
	}
	if book.ReadPages != 0 {
		t.Errorf("suggested books start unread, got %d", book.ReadPages)
	}
}
