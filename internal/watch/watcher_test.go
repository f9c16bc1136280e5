package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"flashd/internal/deck"
	"flashd/pkg/testutils"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherFsnotify(t *testing.T) {
	tempDir := t.TempDir()

	w, err := New()
	require.NoError(t, err)
	require.NoError(t, w.AddDirectory(tempDir))
	require.NoError(t, w.Start())
	defer w.Stop()
	assert.Equal(t, []string{tempDir}, w.GetDirectories())

	evChan := w.FileChannel()

	// Allow fsnotify to settle
	time.Sleep(100 * time.Millisecond)

	path := testutils.WritePNG(t, tempDir, "q.png", 4, 4)

	timeout := time.After(3 * time.Second)
	for {
		select {
		case ev, ok := <-evChan:
			require.True(t, ok, "event channel closed unexpectedly")
			if ev.Path == path && (ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Write)) {
				return
			}
		case <-timeout:
			t.Fatal("Timeout waiting for CREATE/WRITE event")
		}
	}
}

func TestWatcherStopClosesChannel(t *testing.T) {
	w, err := New()
	require.NoError(t, err)
	require.NoError(t, w.AddDirectory(t.TempDir()))
	require.NoError(t, w.Start())
	assert.Error(t, w.Start(), "second start should fail")

	w.Stop()
	w.Stop()

	select {
	case _, ok := <-w.FileChannel():
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("channel not closed after stop")
	}
}

func TestAddDirectoryRejectsFiles(t *testing.T) {
	w, err := New()
	require.NoError(t, err)
	defer w.Stop()

	file := filepath.Join(t.TempDir(), "f.txt")
	require.NoError(t, os.WriteFile(file, nil, 0644))
	assert.Error(t, w.AddDirectory(file))
	assert.Error(t, w.AddDirectory(filepath.Join(file, "missing")))
}

func TestForward(t *testing.T) {
	dir := t.TempDir()
	w, err := ForDeck([]deck.Card{{Front: filepath.Join(dir, "q.png"), Back: "answer"}})
	require.NoError(t, err)
	defer w.Stop()
	assert.Equal(t, []string{dir}, w.GetDirectories())
	time.Sleep(100 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	got := make(chan string, 1)
	go w.Forward(ctx, func(path string) {
		select {
		case got <- path:
		default:
		}
	})

	target := testutils.WritePNG(t, dir, "q.png", 4, 4)
	select {
	case p := <-got:
		assert.True(t, SamePath(p, target))
	case <-ctx.Done():
		t.Fatal("no event forwarded")
	}
}

func TestImageDirs(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0755))

	cards := []deck.Card{
		{Front: filepath.Join(dir, "a.png"), Back: filepath.Join(sub, "b.jpg")},
		{Front: filepath.Join(dir, "c.gif"), Back: "plain text"},
		{Front: filepath.Join(dir, "missing", "d.png"), Back: "notes.txt"},
	}
	assert.Equal(t, []string{dir, sub}, ImageDirs(cards))
}

func TestSamePath(t *testing.T) {
	assert.True(t, SamePath("cards/q.png", "./cards/q.png"))
	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.True(t, SamePath(filepath.Join(wd, "q.png"), "q.png"))
	assert.False(t, SamePath("a.png", "b.png"))
}
