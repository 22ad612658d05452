package books

import (
	"slices"
	"sync"
)

// MemoryCatalog provides an in-memory implementation of Catalog.
type MemoryCatalog struct {
	mu    sync.RWMutex
	books []Book
}

// NewMemoryCatalog constructs a MemoryCatalog seeded with the provided books,
// kept in the order given.
func NewMemoryCatalog(seed []Book) *MemoryCatalog {
	return &MemoryCatalog{
		books: slices.Clone(seed),
	}
}

// Add appends a new available book to the end of the catalog.
func (c *MemoryCatalog) Add(title, author string) Book {
	c.mu.Lock()
	defer c.mu.Unlock()

	book := Book{Title: title, Author: author}
	c.books = append(c.books, book)
	return book
}

// Delete removes every book whose title matches, returning how many went.
func (c *MemoryCatalog) Delete(title string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	before := len(c.books)
	c.books = slices.DeleteFunc(c.books, func(b Book) bool {
		return equalFold(b.Title, title)
	})

	return before - len(c.books)
}

// Issue marks the first available book with the given title as issued.
func (c *MemoryCatalog) Issue(title string) (Book, bool) {
	return c.toggle(title, true)
}

// Return marks the first issued book with the given title as available.
func (c *MemoryCatalog) Return(title string) (Book, bool) {
	return c.toggle(title, false)
}

// toggle flips the first book in catalog order whose title matches and whose
// flag is the opposite of issued.
func (c *MemoryCatalog) toggle(title string, issued bool) (Book, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.books {
		if c.books[i].Issued != issued && equalFold(c.books[i].Title, title) {
			c.books[i].Issued = issued
			return c.books[i], true
		}
	}

	return Book{}, false
}

// Search returns the books whose field contains query, in catalog order.
func (c *MemoryCatalog) Search(query string, field Field) []Book {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]Book, 0)
	for _, book := range c.books {
		value, ok := field.value(book)
		if ok && containsFold(value, query) {
			result = append(result, book)
		}
	}

	return result
}

// FindExact looks a title up by binary search over a title-sorted copy of the
// catalog. Among duplicate titles the one earliest in catalog order wins.
func (c *MemoryCatalog) FindExact(title string) (Book, bool) {
	c.mu.RLock()
	sorted := slices.Clone(c.books)
	c.mu.RUnlock()

	slices.SortStableFunc(sorted, byTitle)

	i, found := slices.BinarySearchFunc(sorted, title, func(b Book, target string) int {
		return compareFold(b.Title, target)
	})
	if !found {
		return Book{}, false
	}

	return sorted[i], true
}

// SortByTitle reorders the catalog by title. Equal titles keep their order.
func (c *MemoryCatalog) SortByTitle() {
	c.sort(byTitle)
}

// SortByAuthor reorders the catalog by author. Equal authors keep their order.
func (c *MemoryCatalog) SortByAuthor() {
	c.sort(byAuthor)
}

func (c *MemoryCatalog) sort(cmp func(a, b Book) int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	slices.SortStableFunc(c.books, cmp)
}

// List returns a copy of all books in current catalog order.
func (c *MemoryCatalog) List() []Book {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]Book, len(c.books))
	copy(result, c.books)
	return result
}

// Len reports how many books the catalog holds.
func (c *MemoryCatalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.books)
}

func byTitle(a, b Book) int {
	return compareFold(a.Title, b.Title)
}

func byAuthor(a, b Book) int {
	return compareFold(a.Author, b.Author)
}
