package books

import "strings"

// Book represents a single book in the catalog.
type Book struct {
	Title  string `json:"title" toml:"title"`
	Author string `json:"author" toml:"author"`
	Issued bool   `json:"issued" toml:"issued"`
}

// Status reports whether the book is out on loan.
func (b Book) Status() string {
	if b.Issued {
		return "Issued"
	}
	return "Available"
}

func (b Book) String() string {
	s := b.Title + " by " + b.Author
	if b.Issued {
		s += " (Issued)"
	}
	return s
}

// Field selects which part of a Book a search looks at.
type Field string

const (
	FieldTitle  Field = "title"
	FieldAuthor Field = "author"
)

// ParseField maps user input onto a Field, ignoring case and surrounding space.
func ParseField(raw string) (Field, bool) {
	switch Field(strings.ToLower(strings.TrimSpace(raw))) {
	case FieldTitle:
		return FieldTitle, true
	case FieldAuthor:
		return FieldAuthor, true
	default:
		return "", false
	}
}

func (f Field) value(b Book) (string, bool) {
	switch f {
	case FieldTitle:
		return b.Title, true
	case FieldAuthor:
		return b.Author, true
	default:
		return "", false
	}
}

// Catalog describes the behaviour required for tracking books.
//
// Every operation is total: a title or query that matches nothing yields an
// empty result, a false flag or a zero count, never an error.
type Catalog interface {
	Add(title, author string) Book
	Delete(title string) int
	Issue(title string) (Book, bool)
	Return(title string) (Book, bool)
	Search(query string, field Field) []Book
	FindExact(title string) (Book, bool)
	SortByTitle()
	SortByAuthor()
	List() []Book
	Len() int
}
