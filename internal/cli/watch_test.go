package cli

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_DebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "q.yaml")
	other := filepath.Join(dir, "other.yaml")
	require.NoError(t, os.WriteFile(file, []byte("table: a"), 0o644))

	var calls atomic.Int32
	w, err := newWatcher(file, func() error {
		calls.Add(1)
		return nil
	}, func(err error) {
		t.Errorf("unexpected watch error: %v", err)
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.run(ctx) }()

	require.NoError(t, os.WriteFile(other, []byte("table: ignored"), 0o644))
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(file, []byte("table: b"), 0o644))
	}

	require.Eventually(t, func() bool { return calls.Load() >= 1 }, 5*time.Second, 20*time.Millisecond)
	time.Sleep(2 * debounceDelay)
	assert.Equal(t, int32(1), calls.Load())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestWatcher_ReportsCallbackErrors(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "q.yaml")
	require.NoError(t, os.WriteFile(file, []byte("table: a"), 0o644))

	errs := make(chan error, 4)
	w, err := newWatcher(file, func() error {
		return assert.AnError
	}, func(err error) {
		errs <- err
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.run(ctx) }()

	require.NoError(t, os.WriteFile(file, []byte("table: b"), 0o644))

	select {
	case err := <-errs:
		assert.ErrorIs(t, err, assert.AnError)
	case <-time.After(5 * time.Second):
		t.Fatal("onError was not called")
	}
}
