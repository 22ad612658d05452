// Package shell is the interactive terminal front end of the tracker: role
// selection followed by an admin or student menu over one catalog.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ugur10/book-tracker/internal/command"
)

var (
	// ErrNavigateBack signals caller-intent to return to the previous menu.
	ErrNavigateBack = errors.New("navigate back")
	// ErrNavigateExit signals caller-intent to leave the shell.
	ErrNavigateExit = errors.New("navigate exit")
)

// Handler runs catalog commands for a role.
type Handler interface {
	Handle(role command.Role, cmd command.Command) (command.Result, error)
}

type App struct {
	reader    *bufio.Reader
	out       io.Writer
	handler   Handler
	logger    zerolog.Logger
	startRole command.Role
}

// Option configures an App.
type Option func(*App)

func WithLogger(logger zerolog.Logger) Option {
	return func(a *App) {
		a.logger = logger
	}
}

// WithRole skips role selection for the first session.
func WithRole(role command.Role) Option {
	return func(a *App) {
		a.startRole = role
	}
}

func New(in io.Reader, out io.Writer, handler Handler, opts ...Option) *App {
	a := &App{
		reader:  bufio.NewReader(in),
		out:     out,
		handler: handler,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.logger = a.logger.With().Str("session", uuid.NewString()).Logger()
	return a
}

// Run executes the role selection loop until the user exits or input ends.
func (a *App) Run() error {
	a.logger.Info().Msg("shell started")

	if a.startRole != "" {
		if err := a.runRole(a.startRole); err != nil {
			return a.finish(err)
		}
	}

	for {
		a.printRoleMenu()
		choice, err := a.promptInt("Choose", 1, 3, false, true)
		if err != nil {
			return a.finish(err)
		}
		switch choice {
		case 1:
			err = a.runRole(command.RoleAdmin)
		case 2:
			err = a.runRole(command.RoleStudent)
		case 3:
			return a.finish(ErrNavigateExit)
		}
		if err != nil {
			return a.finish(err)
		}
	}
}

// finish maps the ways a session can end onto Run's result.
func (a *App) finish(err error) error {
	if errors.Is(err, ErrNavigateExit) || errors.Is(err, io.EOF) {
		a.logger.Info().Msg("shell exiting")
		return nil
	}
	a.logger.Error().Err(err).Msg("shell failed")
	return err
}

func (a *App) printRoleMenu() {
	a.println()
	a.println("Library Book Tracker - Role Selection")
	a.println("  1) Continue as Admin")
	a.println("  2) Continue as Student")
	a.println("  3) Exit")
}

// runRole drives one role's menu. It returns nil when the user goes back to
// role selection.
func (a *App) runRole(role command.Role) error {
	items := a.menuFor(role)
	a.logger.Info().Str("role", role.String()).Msg("role selected")

	if err := a.show(role, command.ListBooks{}); err != nil {
		return err
	}

	for {
		a.printMenu(role, items)
		choice, err := a.promptInt("Choose", 1, len(items)+1, true, true)
		if err != nil {
			if errors.Is(err, ErrNavigateBack) {
				return nil
			}
			return err
		}
		if choice == len(items)+1 {
			return nil
		}
		if err := items[choice-1].run(role); err != nil {
			if errors.Is(err, ErrNavigateBack) {
				continue
			}
			if errors.Is(err, ErrNavigateExit) || errors.Is(err, io.EOF) {
				return err
			}
			fmt.Fprintf(a.out, "Error: %v\n", err)
		}
	}
}

func (a *App) printMenu(role command.Role, items []menuItem) {
	a.println()
	switch role {
	case command.RoleAdmin:
		a.println("Admin Dashboard - Library Management")
	default:
		a.println("Student Dashboard - Library Books")
	}
	for i, item := range items {
		fmt.Fprintf(a.out, "  %d) %s\n", i+1, item.label)
	}
	fmt.Fprintf(a.out, "  %d) Back to Role Selection\n", len(items)+1)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) promptLine(label string) (string, error) {
	if strings.TrimSpace(label) != "" {
		fmt.Fprintf(a.out, "%s: ", label)
	}
	line, err := a.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (a *App) promptInt(label string, min int, max int, allowBack bool, allowExit bool) (int, error) {
	for {
		rangePrompt := fmt.Sprintf("%s [%d-%d", label, min, max)
		if allowBack {
			rangePrompt += "|back|b"
		}
		if allowExit {
			rangePrompt += "|exit|e"
		}
		rangePrompt += "]"
		line, err := a.promptLine(rangePrompt)
		if err != nil {
			return 0, err
		}
		trimmed := strings.ToLower(strings.TrimSpace(line))
		if allowBack && (trimmed == "back" || trimmed == "b") {
			return 0, ErrNavigateBack
		}
		if allowExit && (trimmed == "exit" || trimmed == "e") {
			return 0, ErrNavigateExit
		}
		v, err := strconv.Atoi(trimmed)
		if err != nil || v < min || v > max {
			a.println("Invalid selection.")
			continue
		}
		return v, nil
	}
}
