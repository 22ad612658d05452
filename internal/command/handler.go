package command

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ugur10/book-tracker/internal/books"
)

// Result is what a command produced. Books holds whatever should be shown
// next: the matches for a search or lookup, otherwise the whole catalog.
type Result struct {
	Books   []books.Book
	Changed int
	Found   bool
}

// Handler validates commands, applies role rules and runs them on a catalog.
type Handler struct {
	catalog books.Catalog
	logger  zerolog.Logger
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the logger used for command outcomes.
func WithLogger(logger zerolog.Logger) Option {
	return func(h *Handler) {
		h.logger = logger
	}
}

func NewHandler(catalog books.Catalog, opts ...Option) *Handler {
	h := &Handler{
		catalog: catalog,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Handle runs cmd on behalf of role. An operation that matches nothing is a
// successful Result with Changed == 0 or Found == false.
func (h *Handler) Handle(role Role, cmd Command) (Result, error) {
	if cmd == nil {
		return Result{}, ErrUnknownCommand
	}
	commandType := cmd.CommandType()
	if !role.Allows(commandType) {
		h.logger.Warn().
			Str("role", role.String()).
			Str("command", commandType).
			Msg("command rejected")
		return Result{}, fmt.Errorf("%s as %s: %w", commandType, role, ErrNotPermitted)
	}

	result, err := h.execute(cmd)
	if err != nil {
		h.logger.Warn().
			Err(err).
			Str("role", role.String()).
			Str("command", commandType).
			Msg("command invalid")
		return Result{}, err
	}

	h.logger.Debug().
		Str("role", role.String()).
		Str("command", commandType).
		Int("changed", result.Changed).
		Bool("found", result.Found).
		Int("books", len(result.Books)).
		Msg("command handled")

	return result, nil
}

func (h *Handler) execute(cmd Command) (Result, error) {
	switch c := cmd.(type) {
	case AddBook:
		if c.Title == "" {
			return Result{}, ErrEmptyTitle
		}
		if c.Author == "" {
			return Result{}, ErrEmptyAuthor
		}
		h.catalog.Add(c.Title, c.Author)
		return h.listing(1), nil

	case DeleteBook:
		if c.Title == "" {
			return Result{}, ErrEmptyTitle
		}
		return h.listing(h.catalog.Delete(c.Title)), nil

	case IssueBook:
		if c.Title == "" {
			return Result{}, ErrEmptyTitle
		}
		_, ok := h.catalog.Issue(c.Title)
		return h.toggled(ok), nil

	case ReturnBook:
		if c.Title == "" {
			return Result{}, ErrEmptyTitle
		}
		_, ok := h.catalog.Return(c.Title)
		return h.toggled(ok), nil

	case SearchBooks:
		if c.Query == "" {
			return Result{}, ErrEmptyQuery
		}
		field, ok := books.ParseField(string(c.Field))
		if !ok {
			return Result{}, fmt.Errorf("%w %q", ErrUnknownField, c.Field)
		}
		matches := h.catalog.Search(c.Query, field)
		return Result{Books: matches, Found: len(matches) > 0}, nil

	case FindBook:
		if c.Title == "" {
			return Result{}, ErrEmptyTitle
		}
		book, ok := h.catalog.FindExact(c.Title)
		if !ok {
			return Result{Books: []books.Book{}}, nil
		}
		return Result{Books: []books.Book{book}, Found: true}, nil

	case SortBooks:
		by, _ := books.ParseField(string(c.By))
		switch by {
		case books.FieldTitle:
			h.catalog.SortByTitle()
		case books.FieldAuthor:
			h.catalog.SortByAuthor()
		default:
			return Result{}, fmt.Errorf("%w %q", ErrUnknownField, c.By)
		}
		return h.listing(0), nil

	case ListBooks:
		return h.listing(0), nil

	default:
		return Result{}, fmt.Errorf("%w %s", ErrUnknownCommand, cmd.CommandType())
	}
}

func (h *Handler) listing(changed int) Result {
	return Result{Books: h.catalog.List(), Changed: changed}
}

func (h *Handler) toggled(ok bool) Result {
	if ok {
		return h.listing(1)
	}
	return h.listing(0)
}
