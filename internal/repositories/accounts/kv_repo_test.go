package accounts

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/myblog/internal/jsonstore"
	"github.com/dmitrijs2005/myblog/internal/models"
	"github.com/dmitrijs2005/myblog/internal/repositories/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) (*KVRepository, *kv.MemoryStore) {
	t.Helper()
	store := kv.NewMemoryStore()
	return NewKVRepository(jsonstore.New(store, nil)), store
}

func TestAll_EmptyWhenAbsentOrMalformed(t *testing.T) {
	r, store := newRepo(t)
	ctx := context.Background()

	all, err := r.All(ctx)
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	require.NoError(t, store.Set(ctx, models.KeyAccounts, []byte(`{"username":"not-an-array"}`)))
	all, err = r.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	require.NoError(t, store.Set(ctx, models.KeyAccounts, []byte(`null`)))
	all, err = r.All(ctx)
	require.NoError(t, err)
	assert.NotNil(t, all)
}

func TestSaveAll_BrowserShape(t *testing.T) {
	r, store := newRepo(t)
	ctx := context.Background()

	in := []models.Account{{Username: "alice", Email: "alice@example.org", Password: "Abc1!23"}}
	require.NoError(t, r.Save(ctx, in))

	raw, err := store.Get(ctx, models.KeyAccounts)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"username":"alice","email":"alice@example.org","password":"Abc1!23"}]`, string(raw))

	out, err := r.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestSession_Lifecycle(t *testing.T) {
	r, store := newRepo(t)
	ctx := context.Background()

	_, ok, err := r.Session(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, r.SetSession(ctx, "alice"))
	raw, _ := store.Get(ctx, models.KeySession)
	assert.Equal(t, "alice", string(raw))

	user, ok, err := r.Session(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "alice", user)

	require.NoError(t, r.ClearSession(ctx))
	_, ok, err = r.Session(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFarewell_OneShot(t *testing.T) {
	r, _ := newRepo(t)
	ctx := context.Background()

	require.NoError(t, r.SetFarewell(ctx, "bye"))

	msg, ok, err := r.TakeFarewell(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "bye", msg)

	_, ok, err = r.TakeFarewell(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}
