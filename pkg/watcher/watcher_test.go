package watcher

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

func TestHandleFileChangeDebounces(t *testing.T) {
	fw, err := NewFileWatcher(20*time.Millisecond, nil)
	require.NoError(t, err)
	defer fw.Close()

	path := filepath.Join(t.TempDir(), "job.yaml")
	require.NoError(t, os.WriteFile(path, []byte("steps: []\n"), 0o644))

	var calls atomic.Int32
	require.NoError(t, fw.Watch([]string{path}, func(string) { calls.Add(1) }))

	abs, err := filepath.Abs(path)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		fw.handleFileChange(abs)
	}
	fw.handleFileChange(filepath.Join(filepath.Dir(abs), "other.yaml"))

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

func TestRunStopsOnCancel(t *testing.T) {
	fw, err := NewFileWatcher(time.Millisecond, nil)
	require.NoError(t, err)
	defer fw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		fw.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
