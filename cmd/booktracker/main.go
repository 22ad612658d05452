package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/ugur10/book-tracker/internal/books"
	"github.com/ugur10/book-tracker/internal/command"
	"github.com/ugur10/book-tracker/internal/config"
	"github.com/ugur10/book-tracker/internal/logging"
	"github.com/ugur10/book-tracker/internal/shell"
)

func main() {
	var configPath string
	var role string
	flag.StringVar(&configPath, "config", "", "path to a TOML config file")
	flag.StringVar(&role, "role", "", "start directly as admin or student")
	flag.Parse()

	if err := run(configPath, role, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "booktracker: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, roleFlag string, in io.Reader, out, logOut io.Writer) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if roleFlag != "" {
		cfg.Role = roleFlag
	}

	logger := newLogger(cfg, logOut)

	opts := []shell.Option{shell.WithLogger(logger)}
	if cfg.Role != "" {
		role, err := command.ParseRole(cfg.Role)
		if err != nil {
			return err
		}
		opts = append(opts, shell.WithRole(role))
	}

	catalog := books.NewMemoryCatalog(cfg.InitialBooks())
	logger.Info().Int("books", catalog.Len()).Msg("catalog ready")

	handler := command.NewHandler(catalog, command.WithLogger(logger))
	return shell.New(in, out, handler, opts...).Run()
}

func newLogger(cfg config.Config, w io.Writer) zerolog.Logger {
	level, _ := logging.ParseLevel(cfg.LogLevel)
	return logging.New(w, logging.Options{Level: level, Format: cfg.LogFormat})
}
