package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Roundtrip(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	id, err := store.Create(ctx, Session{UserID: 7, Username: "ops", Role: "MANAGER"})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	sess, err := store.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, 7, sess.UserID)
	assert.Equal(t, "ops", sess.Username)
	assert.Equal(t, "MANAGER", sess.Role)
}

func TestMemoryStore_UnknownID(t *testing.T) {
	store := NewMemoryStore(time.Hour)

	sess, err := store.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestMemoryStore_Destroy(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	id, err := store.Create(ctx, Session{UserID: 1})
	require.NoError(t, err)

	require.NoError(t, store.Destroy(ctx, id))

	sess, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestMemoryStore_TTLExpiry(t *testing.T) {
	store := NewMemoryStore(10 * time.Millisecond)
	ctx := context.Background()

	id, err := store.Create(ctx, Session{UserID: 1})
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	sess, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, sess, "expired session must read as absent")
}

func TestMemoryStore_DistinctIDs(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	id1, err := store.Create(ctx, Session{UserID: 1})
	require.NoError(t, err)
	id2, err := store.Create(ctx, Session{UserID: 1})
	require.NoError(t, err)

	assert.NotEqual(t, id1, id2)
}
