package main_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	main "github.com/mr-devs/querymode/cmd/querymode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestMain returns a Main backed by a database in a temp directory.
func newTestMain(t *testing.T) *main.Main {
	t.Helper()
	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "querymode.db")
	return m
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("no arguments shows help and errors", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), nil, stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
		assert.Contains(t, stdout.String(), "Usage:")
	})

	t.Run("help flag shows usage without error", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"--help"}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Usage:")
		assert.Contains(t, stdout.String(), "ask")
		assert.Contains(t, stdout.String(), "news")
	})

	t.Run("unknown command errors", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"frobnicate"}, stdout, stderr)

		require.Error(t, err)
	})

	t.Run("history runs end to end against a fresh database", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"history"}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No conversations found")
	})
}
