package kv

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func openTestBolt(t *testing.T) *BoltStore {
	t.Helper()
	s, err := OpenBolt(filepath.Join(t.TempDir(), "myblog.bolt"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestBoltStore_Contract(t *testing.T) {
	runStoreContract(t, func(t *testing.T) Store { return openTestBolt(t) })
}

func TestOpenBolt_RequiresPath(t *testing.T) {
	_, err := OpenBolt("  ")
	require.Error(t, err)
}

func TestBoltStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "myblog.bolt")

	s, err := OpenBolt(path)
	require.NoError(t, err)
	_, err = s.Incr(ctx, "blogPosts_nextId")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	reopened, err := Open(ctx, Options{Backend: BackendBolt, Path: path})
	require.NoError(t, err)
	defer reopened.Close()

	n, err := reopened.Incr(ctx, "blogPosts_nextId")
	require.NoError(t, err)
	require.Equal(t, int64(2), n)
}

func TestBoltStore_CancelledContext(t *testing.T) {
	s := openTestBolt(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Take(ctx, "k")
	require.ErrorIs(t, err, context.Canceled)
}
