package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ugur10/book-tracker/internal/books"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "booktracker.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Empty(t, cfg.InitialBooks())
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
log_level = "debug"
log_format = "json"
role = "student"

[[books]]
title = "Emma"
author = "Jane Austen"

[[books]]
title = " Dune "
author = "Frank Herbert"
issued = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "student", cfg.Role)
	assert.Equal(t, []books.Book{
		{Title: "Emma", Author: "Jane Austen"},
		{Title: "Dune", Author: "Frank Herbert", Issued: true},
	}, cfg.InitialBooks())
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
log_level = "debug"
role = "student"
`)
	t.Setenv("BOOKTRACKER_LOG_LEVEL", "warn")
	t.Setenv("BOOKTRACKER_SEED_SAMPLE", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "student", cfg.Role)
	assert.True(t, cfg.SeedSample)
	assert.Len(t, cfg.InitialBooks(), len(books.SeedData()))
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed toml", body: "log_level = "},
		{name: "bad level", body: `log_level = "loud"`},
		{name: "bad format", body: `log_format = "xml"`},
		{name: "bad role", body: `role = "librarian"`},
		{name: "book without title", body: "[[books]]\nauthor = \"Nobody\""},
		{name: "book without author", body: "[[books]]\ntitle = \"Untitled\""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadBadEnvBool(t *testing.T) {
	t.Setenv("BOOKTRACKER_SEED_SAMPLE", "maybe")

	_, err := Load("")
	assert.Error(t, err)
}
