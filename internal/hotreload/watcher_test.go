package hotreload

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReportsMatchingWrites(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "pages")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	changed := make(chan string, 8)
	w, err := NewWatcher(Config{Dirs: []string{dir}, Exts: []string{".html"}, Debounce: 20 * time.Millisecond}, nil,
		func(path string) { changed <- path })
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(sub, "notes.txt"), []byte("x"), 0o644))
	target := filepath.Join(sub, "index.html")
	require.NoError(t, os.WriteFile(target, []byte("<p>x</p>"), 0o644))

	select {
	case got := <-changed:
		assert.Equal(t, target, got)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestWatcherStartTwice(t *testing.T) {
	w, err := NewWatcher(Config{Dirs: []string{t.TempDir()}}, nil, func(string) {})
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	assert.Error(t, w.Start(context.Background()))
	assert.NoError(t, w.Stop())
	assert.NoError(t, w.Stop())
}

func TestMatches(t *testing.T) {
	w := &Watcher{cfg: Config{Exts: []string{".html", ".tmpl"}}}
	assert.True(t, w.matches("a/b.html"))
	assert.True(t, w.matches("b.tmpl"))
	assert.False(t, w.matches("b.txt"))
	assert.True(t, (&Watcher{}).matches("anything"))
}

func TestWatcherFollowsNewDirectories(t *testing.T) {
	dir := t.TempDir()
	changed := make(chan string, 64)
	w, err := NewWatcher(Config{Dirs: []string{dir}, Exts: []string{".html"}, Debounce: 20 * time.Millisecond}, nil,
		func(path string) { changed <- path })
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	defer w.Stop()

	sub := filepath.Join(dir, "pages", "studios")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	target := filepath.Join(sub, "index.html")

	// The directory is registered asynchronously, so keep writing until a change inside it is seen.
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case got := <-changed:
			if got == target {
				return
			}
		case <-tick.C:
			require.NoError(t, os.WriteFile(target, []byte("<p>studio</p>"), 0o644))
		case <-deadline:
			t.Fatal("no change reported from the new directory")
		}
	}
}
