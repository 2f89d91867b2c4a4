package settings

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitForChange(t *testing.T, w *Watcher) Digest {
	t.Helper()
	select {
	case d := <-w.Changes():
		return d
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for settings change")
		return Digest{}
	}
}

func TestWatcher_ReportsExternalEdit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tdata", "ayu_settings.json")
	w, err := NewWatcher(path, 20*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	data := []byte(`{"enableAds":true}`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	assert.Equal(t, Sum(data), waitForChange(t, w))
}

func TestWatcher_StoreSkipsOwnWrite(t *testing.T) {
	s := newTestStore(t)
	w, err := NewWatcher(s.Path(), 20*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	s.SetEnableAds(true)
	require.NoError(t, s.Save())

	reloaded, err := s.ReloadIfChanged(waitForChange(t, w))
	require.NoError(t, err)
	assert.False(t, reloaded)

	external := []byte(`{"enableAds":false,"editedMark":"ext"}`)
	require.NoError(t, os.WriteFile(s.Path(), external, 0o600))

	reloaded, err = s.ReloadIfChanged(waitForChange(t, w))
	require.NoError(t, err)
	assert.True(t, reloaded)
	assert.Equal(t, "ext", s.EditedMarkReactive().Current())
	assert.False(t, s.Instance().EnableAds)
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "tdata")
	path := filepath.Join(dir, "ayu_settings.json")
	w, err := NewWatcher(path, 20*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte("{}"), 0o600))

	select {
	case d := <-w.Changes():
		t.Fatalf("unexpected change %s", d)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_CloseTwice(t *testing.T) {
	w, err := NewWatcher(filepath.Join(t.TempDir(), "ayu_settings.json"), 0)
	require.NoError(t, err)
	w.Start(context.Background())

	require.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}
