package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/milk9111/ldtk"
	"github.com/milk9111/ldtk/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Watch.Debounce = 50 * time.Millisecond
	return cfg
}

func nextEvent(t *testing.T, w *Watcher) string {
	t.Helper()
	select {
	case name := <-w.Events:
		return name
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("no event")
	}
	return ""
}

func TestWatcherFiltersAndDebounces(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(testConfig().Watch, zerolog.Nop(), dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	project := filepath.Join(dir, "world.ldtk")
	for i := range 5 {
		require.NoError(t, os.WriteFile(project, []byte{byte('0' + i)}, 0o644))
	}

	assert.Equal(t, project, nextEvent(t, w))
	select {
	case name := <-w.Events:
		t.Fatalf("unexpected second event for %s", name)
	case <-time.After(300 * time.Millisecond):
	}

	level := filepath.Join(dir, "Level_0.LDTKL")
	require.NoError(t, os.WriteFile(level, []byte("{}"), 0o644))
	assert.Equal(t, level, nextEvent(t, w))
}

func TestWatcherClose(t *testing.T) {
	w, err := NewWatcher(testConfig().Watch, zerolog.Nop(), t.TempDir())
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	select {
	case _, ok := <-w.Events:
		assert.False(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("events not closed")
	}
}

func TestNewWatcherMissingDir(t *testing.T) {
	_, err := NewWatcher(testConfig().Watch, zerolog.Nop(), filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func nextReload(t *testing.T, r *Reloader) Reload {
	t.Helper()
	select {
	case reload, ok := <-r.Reloads():
		require.True(t, ok, "reloads closed")
		return reload
	case <-time.After(5 * time.Second):
		t.Fatal("no reload")
	}
	return Reload{}
}

func TestReloader(t *testing.T) {
	src, err := os.ReadFile("../testdata/tiles.ldtk")
	require.NoError(t, err)
	dir := t.TempDir()
	path := filepath.Join(dir, "tiles.ldtk")
	require.NoError(t, os.WriteFile(path, src, 0o644))

	r, err := NewReloader(path, testConfig(), zerolog.Nop())
	require.NoError(t, err)
	defer r.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	require.NoError(t, os.WriteFile(path, src, 0o644))
	reload := nextReload(t, r)
	require.NoError(t, reload.Err)
	assert.Equal(t, path, reload.Changed)
	require.NotNil(t, reload.Project)
	assert.Equal(t, ldtk.Version113, reload.Project.Version)
	first := reload.Project.ID

	require.NoError(t, os.WriteFile(path, []byte(`{"jsonVersion": "1.1.3",`), 0o644))
	reload = nextReload(t, r)
	assert.Nil(t, reload.Project)
	assert.True(t, errors.Is(reload.Err, ldtk.ErrMalformedDocument))

	require.NoError(t, os.WriteFile(path, src, 0o644))
	reload = nextReload(t, r)
	require.NoError(t, reload.Err)
	assert.Equal(t, first, reload.Project.ID)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return")
	}
}

func TestReloaderWatchesLevelDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "world.ldtk")
	levels := filepath.Join(dir, "world")
	require.NoError(t, os.Mkdir(levels, 0o755))
	for _, name := range []string{"project.ldtk", "level_0.ldtkl", "level_1.ldtkl"} {
		data, err := os.ReadFile(filepath.Join("../testdata/external", name))
		require.NoError(t, err)
		target := filepath.Join(levels, name)
		if name == "project.ldtk" {
			target = path
		}
		require.NoError(t, os.WriteFile(target, data, 0o644))
	}

	r, err := NewReloader(path, testConfig(), zerolog.Nop())
	require.NoError(t, err)
	defer r.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = r.Run(ctx) }()

	level := filepath.Join(levels, "level_1.ldtkl")
	data, err := os.ReadFile(level)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(level, data, 0o644))

	reload := nextReload(t, r)
	require.NoError(t, reload.Err)
	assert.Equal(t, level, reload.Changed)
}
