package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atvirokodosprendimai/deskkit/internal/config"
)

func run(t *testing.T, dbPath string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	a := &app{cfg: config.Default(), out: &out}
	full := append([]string{"passbook", "--db-path", dbPath}, args...)
	require.NoError(t, a.command().Run(context.Background(), full))
	return out.String()
}

func TestAddAndSearch(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "data", "passwords.db")

	assert.Contains(t, run(t, dbPath, "add", "--service", "GitHub", "--username", "octo@example.com", "--hint", "cat"), "Entry saved.")
	assert.Contains(t, run(t, dbPath, "add", "--service", "Mail", "--username", "me"), "Entry saved.")

	all := run(t, dbPath, "list")
	assert.Contains(t, all, "GitHub")
	assert.Contains(t, all, "Mail")
	assert.Contains(t, all, "Entries: 2")

	found := run(t, dbPath, "list", "--search", "git")
	assert.Contains(t, found, "octo@example.com")
	assert.NotContains(t, found, "Mail")
}

func TestAddRejectsInvalidInput(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "passwords.db")

	assert.Contains(t, run(t, dbPath, "add", "--username", "me"), "Service name is required.")
	assert.Contains(t, run(t, dbPath, "add", "--service", "x"), "Username or email is required.")
	assert.Contains(t, run(t, dbPath, "add", "--service", "x", "--username", "a@b"), "The email address is invalid.")

	out := run(t, dbPath, "list")
	assert.True(t, strings.Contains(out, "no results"))
	assert.Contains(t, out, "Entries: 0")
}
