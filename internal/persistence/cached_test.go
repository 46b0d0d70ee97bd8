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

func TestCachedStorage_ReadThrough(t *testing.T) {
	ctx := context.Background()
	inner := mocks.NewMockStorage(t)
	inner.On("Read", ctx, "p.json").Return([]byte("data"), nil).Once()

	c := NewCachedStorage(inner, 0, 0)

	for i := 0; i < 3; i++ {
		data, err := c.Read(ctx, "p.json")
		require.NoError(t, err)
		assert.Equal(t, "data", string(data))
	}
	assert.Equal(t, 1, c.Len())
}

func TestCachedStorage_WriteThrough(t *testing.T) {
	ctx := context.Background()
	inner := NewMemoryStorage()
	c := NewCachedStorage(inner, 4, time.Minute)

	require.NoError(t, c.Write(ctx, "p.json", []byte("v1")))
	data, err := inner.Read(ctx, "p.json")
	require.NoError(t, err)
	assert.Equal(t, "v1", string(data))

	require.NoError(t, inner.Write(ctx, "p.json", []byte("changed underneath")))
	data, err = c.Read(ctx, "p.json")
	require.NoError(t, err)
	assert.Equal(t, "v1", string(data), "served from cache")

	require.NoError(t, c.Delete(ctx, "p.json"))
	_, err = c.Read(ctx, "p.json")
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
}

func TestCachedStorage_FailedWriteEvicts(t *testing.T) {
	ctx := context.Background()
	inner := mocks.NewMockStorage(t)
	inner.On("Write", ctx, "p.json", []byte("v1")).Return(nil).Once()
	inner.On("Write", ctx, "p.json", mock.Anything).Return(errors.New("down")).Once()
	inner.On("Read", ctx, "p.json").Return([]byte("v1"), nil).Once()

	c := NewCachedStorage(inner, 4, time.Minute)
	require.NoError(t, c.Write(ctx, "p.json", []byte("v1")))
	require.Error(t, c.Write(ctx, "p.json", []byte("v2")))
	assert.Zero(t, c.Len())

	data, err := c.Read(ctx, "p.json")
	require.NoError(t, err)
	assert.Equal(t, "v1", string(data))
}

func TestCachedStorage_Expiry(t *testing.T) {
	ctx := context.Background()
	inner := mocks.NewMockStorage(t)
	inner.On("Read", ctx, "p.json").Return([]byte("data"), nil).Twice()

	c := NewCachedStorage(inner, 4, 20*time.Millisecond)
	_, err := c.Read(ctx, "p.json")
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
	_, err = c.Read(ctx, "p.json")
	require.NoError(t, err)
}
