// Package command turns user actions into typed requests and runs them against
// a books.Catalog.
//
// Blank titles, authors and queries are rejected here so the catalog itself
// can stay free of errors.
package command

import (
	"strings"

	"github.com/ugur10/book-tracker/internal/books"
)

const (
	TypeAddBook     = "AddBook"
	TypeDeleteBook  = "DeleteBook"
	TypeIssueBook   = "IssueBook"
	TypeReturnBook  = "ReturnBook"
	TypeSearchBooks = "SearchBooks"
	TypeFindBook    = "FindBook"
	TypeSortBooks   = "SortBooks"
	TypeListBooks   = "ListBooks"
)

// Command is any request the Handler can run.
type Command interface {
	CommandType() string
}

// AddBook represents the intent to put a new book into the catalog.
type AddBook struct {
	Title  string
	Author string
}

func (AddBook) CommandType() string { return TypeAddBook }

func BuildAddBook(title, author string) AddBook {
	return AddBook{Title: strings.TrimSpace(title), Author: strings.TrimSpace(author)}
}

// DeleteBook removes every book carrying Title.
type DeleteBook struct {
	Title string
}

func (DeleteBook) CommandType() string { return TypeDeleteBook }

func BuildDeleteBook(title string) DeleteBook {
	return DeleteBook{Title: strings.TrimSpace(title)}
}

// IssueBook checks out the first available copy of Title.
type IssueBook struct {
	Title string
}

func (IssueBook) CommandType() string { return TypeIssueBook }

func BuildIssueBook(title string) IssueBook {
	return IssueBook{Title: strings.TrimSpace(title)}
}

// ReturnBook brings back the first issued copy of Title.
type ReturnBook struct {
	Title string
}

func (ReturnBook) CommandType() string { return TypeReturnBook }

func BuildReturnBook(title string) ReturnBook {
	return ReturnBook{Title: strings.TrimSpace(title)}
}

// SearchBooks is a linear substring search over one field.
type SearchBooks struct {
	Query string
	Field books.Field
}

func (SearchBooks) CommandType() string { return TypeSearchBooks }

func BuildSearchBooks(query string, field books.Field) SearchBooks {
	return SearchBooks{Query: strings.TrimSpace(query), Field: field}
}

// FindBook is an exact-title lookup by binary search.
type FindBook struct {
	Title string
}

func (FindBook) CommandType() string { return TypeFindBook }

func BuildFindBook(title string) FindBook {
	return FindBook{Title: strings.TrimSpace(title)}
}

// SortBooks reorders the catalog by one field.
type SortBooks struct {
	By books.Field
}

func (SortBooks) CommandType() string { return TypeSortBooks }

func BuildSortBooks(by books.Field) SortBooks {
	return SortBooks{By: by}
}

// ListBooks asks for the whole catalog.
type ListBooks struct{}

func (ListBooks) CommandType() string { return TypeListBooks }
