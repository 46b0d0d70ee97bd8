package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/fragrewards/internal/domain"
	"github.com/osse101/fragrewards/mocks"
)

func TestStore_CheckpointRestore(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	store := NewStore(storage)

	require.NoError(t, store.Checkpoint(ctx, "player-1", sampleRecord()))
	assert.Equal(t, 1, storage.Len())

	got, err := store.Restore(ctx, "player-1")
	require.NoError(t, err)
	assert.Equal(t, sampleRecord(), got)

	require.NoError(t, store.Delete(ctx, "player-1"))
	require.NoError(t, store.Delete(ctx, "player-1"), "deleting twice is fine")
}

func TestStore_RestoreMissing(t *testing.T) {
	rec, err := NewStore(NewMemoryStorage()).Restore(context.Background(), "nobody")
	assert.NoError(t, err)
	assert.Nil(t, rec)
}

func TestStore_RestoreCorrupt(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	require.NoError(t, storage.Write(ctx, PathFor("p"), []byte("garbage")))

	rec, err := NewStore(storage).Restore(ctx, "p")
	assert.ErrorIs(t, err, domain.ErrCorruptRecord)
	assert.Nil(t, rec)
}

func TestStore_StorageFailure(t *testing.T) {
	ctx := context.Background()
	storage := mocks.NewMockStorage(t)
	boom := errors.New("disk on fire")
	storage.On("Write", ctx, "p.json", mock.Anything).Return(boom).Once()
	storage.On("Read", ctx, "p.json").Return(nil, boom).Once()

	store := NewStore(storage)

	err := store.Checkpoint(ctx, "p", sampleRecord())
	assert.ErrorIs(t, err, boom)

	rec, err := store.Restore(ctx, "p")
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, rec)
}

func TestStore_InvalidKey(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewMemoryStorage())

	for _, key := range []string{"", "../etc/passwd", "a b", "x/y"} {
		t.Run(key, func(t *testing.T) {
			assert.ErrorIs(t, store.Checkpoint(ctx, key, sampleRecord()), domain.ErrInvalidInput)
			_, err := store.Restore(ctx, key)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.ErrorIs(t, store.Delete(ctx, key), domain.ErrInvalidInput)
		})
	}
}

func TestStore_Quarantine(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2026, 3, 1, 20, 0, 0, 5, time.UTC)
	storage := NewMemoryStorage()
	store := NewStore(storage)
	require.NoError(t, storage.Write(ctx, PathFor("p"), []byte("garbage")))

	dst, err := store.Quarantine(ctx, "p", at)
	require.NoError(t, err)
	assert.Equal(t, "p.corrupt-20260301T200000.000000005Z.json", dst)

	moved, err := storage.Read(ctx, dst)
	require.NoError(t, err)
	assert.Equal(t, []byte("garbage"), moved)
	_, err = storage.Read(ctx, PathFor("p"))
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)

	dst, err = store.Quarantine(ctx, "p", at)
	assert.NoError(t, err)
	assert.Empty(t, dst, "nothing left to move")
}

func TestStore_QuarantineWriteFailure(t *testing.T) {
	ctx := context.Background()
	storage := mocks.NewMockStorage(t)
	storage.On("Read", ctx, "p.json").Return([]byte("garbage"), nil).Once()
	storage.On("Write", ctx, mock.Anything, []byte("garbage")).Return(errors.New("read-only")).Once()

	_, err := NewStore(storage).Quarantine(ctx, "p", time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgQuarantineRecord)
	storage.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
