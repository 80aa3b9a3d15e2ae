// Package suggest serves the reading-suggestion catalogs: a few picks per
// hobby, per genre and from the popular list.
package suggest

import (
	"math/rand"

	"github.com/mrlokans/shelfstreak/internal/entities"
)

// Suggestion is a recommended title, optionally tagged with the hobby or
// genre it was picked for.
type Suggestion struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Hobby  string `json:"hobby,omitempty"`
	Genre  string `json:"genre,omitempty"`
}

var hobbyCatalog = []Suggestion{
	{Hobby: "Gardening", Title: "The Well-Tended Perennial Garden", Author: "Tracy DiSabato-Aust"},
	{Hobby: "Cooking", Title: "Salt, Fat, Acid, Heat", Author: "Samin Nosrat"},
	{Hobby: "Hiking", Title: "A Walk in the Woods", Author: "Bill Bryson"},
	{Hobby: "Photography", Title: "Understanding Exposure", Author: "Bryan Peterson"},
	{Hobby: "Chess", Title: "Bobby Fischer Teaches Chess", Author: "B. Fischer"},
	{Hobby: "Drawing", Title: "Drawing on the Right Side of the Brain", Author: "Betty Edwards"},
	{Hobby: "Travel", Title: "Vagabonding", Author: "Rolf Potts"},
	{Hobby: "Music", Title: "This Is Your Brain on Music", Author: "Daniel Levitin"},
}

var genreCatalog = []Suggestion{
	{Genre: "Sci-Fi", Title: "The Three-Body Problem", Author: "Cixin Liu"},
	{Genre: "Fantasy", Title: "The Name of the Wind", Author: "Patrick Rothfuss"},
	{Genre: "Mystery", Title: "The Girl with the Dragon Tattoo", Author: "Stieg Larsson"},
	{Genre: "Nonfiction", Title: "Atomic Habits", Author: "James Clear"},
	{Genre: "Historical", Title: "All the Light We Cannot See", Author: "Anthony Doerr"},
	{Genre: "Romance", Title: "The Kiss Quotient", Author: "Helen Hoang"},
	{Genre: "Horror", Title: "Mexican Gothic", Author: "Silvia Moreno-Garcia"},
}

var popularCatalog = []Suggestion{
	{Title: "Fourth Wing", Author: "Rebecca Yarros"},
	{Title: "Lessons in Chemistry", Author: "Bonnie Garmus"},
	{Title: "Tomorrow, and Tomorrow, and Tomorrow", Author: "Gabrielle Zevin"},
	{Title: "Project Hail Mary", Author: "Andy Weir"},
	{Title: "The Seven Husbands of Evelyn Hugo", Author: "Taylor Jenkins Reid"},
	{Title: "The Silent Patient", Author: "Alex Michaelides"},
}

// Picker draws random, non-repeating suggestions from the static catalogs.
type Picker struct {
	rng *rand.Rand
}

// NewPicker creates a Picker using the given source. Tests inject a seeded
// source for determinism.
func NewPicker(rng *rand.Rand) *Picker {
	return &Picker{rng: rng}
}

func (p *Picker) Hobbies(n int) []Suggestion {
	return p.pick(hobbyCatalog, n)
}

func (p *Picker) Genres(n int) []Suggestion {
	return p.pick(genreCatalog, n)
}

func (p *Picker) Popular(n int) []Suggestion {
	return p.pick(popularCatalog, n)
}

func (p *Picker) pick(catalog []Suggestion, n int) []Suggestion {
	if n > len(catalog) {
		n = len(catalog)
	}
	if n < 0 {
		n = 0
	}

	picks := make([]Suggestion, len(catalog))
	copy(picks, catalog)
	p.rng.Shuffle(len(picks), func(i, j int) {
		picks[i], picks[j] = picks[j], picks[i]
	})
	return picks[:n]
}

// AsBook converts a suggestion into a shelf entry for direct manual adds.
func (s Suggestion) AsBook() entities.Book {
	return entities.Book{Title: s.Title, Author: s.Author}
}
