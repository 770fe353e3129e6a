package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestWatcherFiresOnAssetWrite(t *testing.T) {
	dir := t.TempDir()
	changes := make(chan string, 8)

	w, err := NewWatcher(dir, func(path string) { changes <- path }, zerolog.Nop())
	require.NoError(t, err)
	defer w.Stop()

	path := filepath.Join(dir, "ear_catalogue.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))

	select {
	case got := <-changes:
		require.Equal(t, path, got)
	case <-time.After(3 * time.Second):
		t.Fatal("no change event for asset write")
	}
}

func TestWatcherIgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	changes := make(chan string, 8)

	w, err := NewWatcher(dir, func(path string) { changes <- path }, zerolog.Nop())
	require.NoError(t, err)
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	select {
	case got := <-changes:
		t.Fatalf("unexpected change event for %s", got)
	case <-time.After(700 * time.Millisecond):
	}
}

func TestWatcherRejectsMissingDir(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "nope"), func(string) {}, zerolog.Nop())
	require.Error(t, err)
}
