package command

import "errors"

var (
	ErrEmptyTitle     = errors.New("title is required")
	ErrEmptyAuthor    = errors.New("author is required")
	ErrEmptyQuery     = errors.New("search query is required")
	ErrUnknownField   = errors.New("unknown book field")
	ErrUnknownCommand = errors.New("unknown command")
	ErrUnknownRole    = errors.New("unknown role")
	ErrNotPermitted   = errors.New("command not permitted for role")
)
