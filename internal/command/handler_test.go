package command_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ugur10/book-tracker/internal/books"
	"github.com/ugur10/book-tracker/internal/command"
)

func newHandler(t *testing.T, seed ...books.Book) (*command.Handler, *books.MemoryCatalog) {
	t.Helper()
	catalog := books.NewMemoryCatalog(seed)
	logger := zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel)
	return command.NewHandler(catalog, command.WithLogger(logger)), catalog
}

func Test_Handler_AddBook_TrimsAndAppends(t *testing.T) {
	handler, catalog := newHandler(t)

	result, err := handler.Handle(command.RoleAdmin, command.BuildAddBook("  Emma ", " Jane Austen"))

	require.NoError(t, err)
	assert.Equal(t, 1, result.Changed)
	assert.Equal(t, []books.Book{{Title: "Emma", Author: "Jane Austen"}}, result.Books)
	assert.Equal(t, result.Books, catalog.List())
}

func Test_Handler_Validation(t *testing.T) {
	tests := []struct {
		name    string
		cmd     command.Command
		wantErr error
	}{
		{name: "add without title", cmd: command.BuildAddBook("  ", "Author"), wantErr: command.ErrEmptyTitle},
		{name: "add without author", cmd: command.BuildAddBook("Title", ""), wantErr: command.ErrEmptyAuthor},
		{name: "delete without title", cmd: command.BuildDeleteBook(""), wantErr: command.ErrEmptyTitle},
		{name: "issue without title", cmd: command.BuildIssueBook(" "), wantErr: command.ErrEmptyTitle},
		{name: "return without title", cmd: command.BuildReturnBook(""), wantErr: command.ErrEmptyTitle},
		{name: "search without query", cmd: command.BuildSearchBooks(" ", books.FieldTitle), wantErr: command.ErrEmptyQuery},
		{name: "search unknown field", cmd: command.BuildSearchBooks("go", books.Field("isbn")), wantErr: command.ErrUnknownField},
		{name: "find without title", cmd: command.BuildFindBook(""), wantErr: command.ErrEmptyTitle},
		{name: "sort unknown field", cmd: command.BuildSortBooks(books.Field("year")), wantErr: command.ErrUnknownField},
		{name: "nil command", cmd: nil, wantErr: command.ErrUnknownCommand},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handler, catalog := newHandler(t, books.Book{Title: "Emma", Author: "Austen"})

			_, err := handler.Handle(command.RoleAdmin, tc.cmd)

			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, []books.Book{{Title: "Emma", Author: "Austen"}}, catalog.List())
		})
	}
}

func Test_Handler_StudentCannotChangeHoldings(t *testing.T) {
	handler, catalog := newHandler(t, books.Book{Title: "Emma", Author: "Austen"})

	_, err := handler.Handle(command.RoleStudent, command.BuildAddBook("Dune", "Herbert"))
	assert.ErrorIs(t, err, command.ErrNotPermitted)

	_, err = handler.Handle(command.RoleStudent, command.BuildDeleteBook("Emma"))
	assert.ErrorIs(t, err, command.ErrNotPermitted)

	assert.Equal(t, 1, catalog.Len())
}

func Test_Handler_StudentCanIssueAndReturn(t *testing.T) {
	handler, catalog := newHandler(t, books.Book{Title: "Emma", Author: "Austen"})

	result, err := handler.Handle(command.RoleStudent, command.BuildIssueBook("emma"))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Changed)
	assert.True(t, catalog.List()[0].Issued)

	result, err = handler.Handle(command.RoleStudent, command.BuildIssueBook("emma"))
	require.NoError(t, err)
	assert.Equal(t, 0, result.Changed, "second issue is a no-op")

	result, err = handler.Handle(command.RoleStudent, command.BuildReturnBook("EMMA"))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Changed)
	assert.False(t, result.Books[0].Issued)
}

func Test_Handler_DeleteReportsRemovedCount(t *testing.T) {
	handler, _ := newHandler(t,
		books.Book{Title: "Dune", Author: "Herbert"},
		books.Book{Title: "dune", Author: "Herbert"},
		books.Book{Title: "Emma", Author: "Austen"},
	)

	result, err := handler.Handle(command.RoleAdmin, command.BuildDeleteBook("DUNE"))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Changed)
	assert.Equal(t, []books.Book{{Title: "Emma", Author: "Austen"}}, result.Books)

	result, err = handler.Handle(command.RoleAdmin, command.BuildDeleteBook("DUNE"))
	require.NoError(t, err)
	assert.Equal(t, 0, result.Changed)
}

func Test_Handler_SearchAndFind(t *testing.T) {
	handler, _ := newHandler(t,
		books.Book{Title: "Cherry", Author: "C"},
		books.Book{Title: "Apple", Author: "A"},
		books.Book{Title: "Banana", Author: "B"},
	)

	result, err := handler.Handle(command.RoleStudent, command.BuildSearchBooks("AN", "Title"))
	require.NoError(t, err)
	assert.True(t, result.Found)
	assert.Equal(t, []books.Book{{Title: "Banana", Author: "B"}}, result.Books)

	result, err = handler.Handle(command.RoleStudent, command.BuildSearchBooks("zzz", books.FieldAuthor))
	require.NoError(t, err)
	assert.False(t, result.Found)
	assert.Empty(t, result.Books)

	result, err = handler.Handle(command.RoleStudent, command.BuildFindBook(" banana "))
	require.NoError(t, err)
	assert.True(t, result.Found)
	assert.Equal(t, []books.Book{{Title: "Banana", Author: "B"}}, result.Books)

	result, err = handler.Handle(command.RoleStudent, command.BuildFindBook("Durian"))
	require.NoError(t, err)
	assert.False(t, result.Found)
	assert.Empty(t, result.Books)
}

func Test_Handler_SortAndList(t *testing.T) {
	handler, _ := newHandler(t,
		books.Book{Title: "Zeta", Author: "A"},
		books.Book{Title: "Alpha", Author: "B"},
	)

	result, err := handler.Handle(command.RoleStudent, command.BuildSortBooks(books.FieldTitle))
	require.NoError(t, err)
	assert.Equal(t, []books.Book{{Title: "Alpha", Author: "B"}, {Title: "Zeta", Author: "A"}}, result.Books)

	result, err = handler.Handle(command.RoleStudent, command.BuildSortBooks(books.FieldAuthor))
	require.NoError(t, err)
	assert.Equal(t, []books.Book{{Title: "Zeta", Author: "A"}, {Title: "Alpha", Author: "B"}}, result.Books)

	result, err = handler.Handle(command.RoleAdmin, command.ListBooks{})
	require.NoError(t, err)
	assert.Len(t, result.Books, 2)
}

func Test_Handler_LogsRejections(t *testing.T) {
	var buf bytes.Buffer
	handler := command.NewHandler(books.NewMemoryCatalog(nil), command.WithLogger(zerolog.New(&buf)))

	_, err := handler.Handle(command.RoleStudent, command.BuildAddBook("Dune", "Herbert"))
	require.Error(t, err)

	assert.Contains(t, buf.String(), `"command":"AddBook"`)
	assert.Contains(t, buf.String(), "command rejected")
}
