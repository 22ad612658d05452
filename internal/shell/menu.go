package shell

import (
	"fmt"
	"strings"

	"github.com/ugur10/book-tracker/internal/books"
	"github.com/ugur10/book-tracker/internal/command"
)

type menuItem struct {
	label string
	run   func(role command.Role) error
}

func (a *App) menuFor(role command.Role) []menuItem {
	all := []struct {
		commandType string
		item        menuItem
	}{
		{command.TypeAddBook, menuItem{"Add Book", a.addBook}},
		{command.TypeDeleteBook, menuItem{"Delete Book", a.deleteBook}},
		{command.TypeIssueBook, menuItem{"Issue Book", a.issueBook}},
		{command.TypeReturnBook, menuItem{"Return Book", a.returnBook}},
		{command.TypeSortBooks, menuItem{"Sort by Title", a.sortBy(books.FieldTitle)}},
		{command.TypeSortBooks, menuItem{"Sort by Author", a.sortBy(books.FieldAuthor)}},
		{command.TypeListBooks, menuItem{"View All Books", a.viewAll}},
		{command.TypeSearchBooks, menuItem{"Linear Search (Title/Author)", a.linearSearch}},
		{command.TypeFindBook, menuItem{"Binary Search (Title)", a.binarySearch}},
	}

	items := make([]menuItem, 0, len(all))
	for _, entry := range all {
		if role.Allows(entry.commandType) {
			items = append(items, entry.item)
		}
	}
	return items
}

// promptText reads one trimmed answer. An empty answer means the user
// dismissed the prompt.
func (a *App) promptText(label string) (string, bool, error) {
	line, err := a.promptLine(label)
	if err != nil {
		return "", false, err
	}
	line = strings.TrimSpace(line)
	return line, line != "", nil
}

func (a *App) addBook(role command.Role) error {
	title, ok, err := a.promptText("Enter book title")
	if err != nil || !ok {
		return err
	}
	author, ok, err := a.promptText("Enter author name")
	if err != nil || !ok {
		return err
	}
	return a.show(role, command.BuildAddBook(title, author))
}

func (a *App) deleteBook(role command.Role) error {
	title, ok, err := a.promptText("Enter title to delete")
	if err != nil || !ok {
		return err
	}
	result, err := a.handler.Handle(role, command.BuildDeleteBook(title))
	if err != nil {
		return err
	}
	if result.Changed == 0 {
		fmt.Fprintf(a.out, "No book titled %q.\n", title)
	}
	a.render(result.Books)
	return nil
}

func (a *App) issueBook(role command.Role) error {
	title, ok, err := a.promptText("Enter title to issue")
	if err != nil || !ok {
		return err
	}
	result, err := a.handler.Handle(role, command.BuildIssueBook(title))
	if err != nil {
		return err
	}
	if result.Changed == 0 {
		fmt.Fprintf(a.out, "No available book titled %q.\n", title)
	}
	a.render(result.Books)
	return nil
}

func (a *App) returnBook(role command.Role) error {
	title, ok, err := a.promptText("Enter title to return")
	if err != nil || !ok {
		return err
	}
	result, err := a.handler.Handle(role, command.BuildReturnBook(title))
	if err != nil {
		return err
	}
	if result.Changed == 0 {
		fmt.Fprintf(a.out, "No issued book titled %q.\n", title)
	}
	a.render(result.Books)
	return nil
}

func (a *App) sortBy(field books.Field) func(command.Role) error {
	return func(role command.Role) error {
		return a.show(role, command.BuildSortBooks(field))
	}
}

func (a *App) viewAll(role command.Role) error {
	return a.show(role, command.ListBooks{})
}

func (a *App) linearSearch(role command.Role) error {
	query, ok, err := a.promptText("Search query")
	if err != nil {
		return err
	}
	if !ok {
		a.println("Please enter a search query.")
		return nil
	}

	a.println("Search by:")
	a.println("  1) Title")
	a.println("  2) Author")
	choice, err := a.promptInt("Choose", 1, 2, true, true)
	if err != nil {
		return err
	}
	field := books.FieldTitle
	if choice == 2 {
		field = books.FieldAuthor
	}

	result, err := a.handler.Handle(role, command.BuildSearchBooks(query, field))
	if err != nil {
		return err
	}
	if !result.Found {
		a.println("No books found matching your search.")
		return nil
	}
	a.render(result.Books)
	return nil
}

func (a *App) binarySearch(role command.Role) error {
	title, ok, err := a.promptText("Exact title")
	if err != nil {
		return err
	}
	if !ok {
		a.println("Please enter a title for binary search.")
		return nil
	}

	result, err := a.handler.Handle(role, command.BuildFindBook(title))
	if err != nil {
		return err
	}
	if !result.Found {
		a.println("Book not found using binary search (exact title match required).")
		return nil
	}
	a.render(result.Books)
	return nil
}

// show runs cmd and prints the books it returns.
func (a *App) show(role command.Role, cmd command.Command) error {
	result, err := a.handler.Handle(role, cmd)
	if err != nil {
		return err
	}
	a.render(result.Books)
	return nil
}
