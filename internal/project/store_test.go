package project

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/toolbox/internal/model"
)

// exerciseStore runs the common Store contract against an implementation.
func exerciseStore(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := store.Load(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Save(ctx, "a/b key", []byte("one")))
	v, ok, err := store.Load(ctx, "a/b key")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("one"), v)

	require.NoError(t, store.Save(ctx, "a/b key", []byte("two")))
	v, _, err = store.Load(ctx, "a/b key")
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), v)

	require.NoError(t, store.Delete(ctx, "a/b key"))
	_, ok, err = store.Load(ctx, "a/b key")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, store.Delete(ctx, "never-stored"))
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	value := []byte("abc")
	require.NoError(t, store.Save(ctx, "k", value))
	value[0] = 'x'

	got, _, err := store.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got)
}

func TestFileStore(t *testing.T) {
	exerciseStore(t, NewFileStore(t.TempDir()))
}

func TestRedisStore(t *testing.T) {
	addr := os.Getenv("TOOLBOX_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TOOLBOX_TEST_REDIS_ADDR not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()

	store := NewRedisStore(client, "toolbox-test", time.Minute)
	require.NoError(t, store.Ping(context.Background()))
	exerciseStore(t, store)
}

func TestRedisStoreKeyPrefix(t *testing.T) {
	assert.Equal(t, "toolbox:abc", NewRedisStore(nil, "toolbox", 0).buildKey("abc"))
	assert.Equal(t, "abc", NewRedisStore(nil, "", 0).buildKey("abc"))
}

func TestSessionRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, ok, err := LoadSession(ctx, store, SessionKey)
	require.NoError(t, err)
	assert.False(t, ok)

	p := sampleProject(t)
	require.NoError(t, SaveSession(ctx, store, SessionKey, p))

	loaded, ok, err := LoadSession(ctx, store, SessionKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, p.ProjectName, loaded.ProjectName)
	assert.Len(t, loaded.Cuts, len(p.Cuts))
}

func TestLoadSessionCorrupt(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Save(ctx, SessionKey, []byte("garbage")))

	_, ok, err := LoadSession(ctx, store, SessionKey)
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestSessionUsesFileStore(t *testing.T) {
	ctx := context.Background()
	store := NewFileStore(t.TempDir())
	p := model.NewProject()
	p.ProjectName = "Gaube"
	require.NoError(t, SaveSession(ctx, store, "gaube", p))

	loaded, ok, err := LoadSession(ctx, store, "gaube")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Gaube", loaded.ProjectName)
}
