package persistence

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/fragrewards/internal/domain"
)

func TestFileStorage(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "records")
	fs := NewFileStorage(dir)

	_, err := fs.Read(ctx, "p.json")
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)

	require.NoError(t, fs.Write(ctx, "p.json", []byte("one")))
	require.NoError(t, fs.Write(ctx, "p.json", []byte("two")))

	data, err := fs.Read(ctx, "p.json")
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temp files left behind")
	assert.Equal(t, "p.json", entries[0].Name())

	require.NoError(t, fs.Delete(ctx, "p.json"))
	assert.ErrorIs(t, fs.Delete(ctx, "p.json"), domain.ErrRecordNotFound)
}

func TestFileStorage_RejectsEscapingPaths(t *testing.T) {
	fs := NewFileStorage(t.TempDir())
	err := fs.Write(context.Background(), "../outside.json", []byte("x"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFileStorage_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	fs := NewFileStorage(t.TempDir())

	assert.ErrorIs(t, fs.Write(ctx, "p.json", []byte("x")), context.Canceled)
	_, err := fs.Read(ctx, "p.json")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStore_OverFileStorage(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewFileStorage(t.TempDir()))

	require.NoError(t, store.Checkpoint(ctx, "player_1", sampleRecord()))
	got, err := store.Restore(ctx, "player_1")
	require.NoError(t, err)
	assert.Equal(t, sampleRecord(), got)
}
