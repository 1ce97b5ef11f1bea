package kv

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runStoreContract checks the behaviour every backend must share.
func runStoreContract(t *testing.T, newStore func(t *testing.T) Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("get absent returns nil nil", func(t *testing.T) {
		s := newStore(t)
		v, err := s.Get(ctx, "absent")
		require.NoError(t, err)
		require.Nil(t, v)
	})

	t.Run("set then get, upsert overwrites", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "blogPosts", []byte(`[]`)))
		require.NoError(t, s.Set(ctx, "blogPosts", []byte(`[{"postId":1}]`)))

		v, err := s.Get(ctx, "blogPosts")
		require.NoError(t, err)
		require.Equal(t, `[{"postId":1}]`, string(v))
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "k", []byte("v")))
		require.NoError(t, s.Delete(ctx, "k"))
		require.NoError(t, s.Delete(ctx, "k"))

		v, err := s.Get(ctx, "k")
		require.NoError(t, err)
		require.Nil(t, v)
	})

	t.Run("take delivers at most once", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "pendingEdit", []byte(`{"id":42}`)))

		v, err := s.Take(ctx, "pendingEdit")
		require.NoError(t, err)
		require.Equal(t, `{"id":42}`, string(v))

		v, err = s.Take(ctx, "pendingEdit")
		require.NoError(t, err)
		require.Nil(t, v)

		v, err = s.Get(ctx, "pendingEdit")
		require.NoError(t, err)
		require.Nil(t, v)
	})

	t.Run("incr starts at one and stores decimal text", func(t *testing.T) {
		s := newStore(t)
		n, err := s.Incr(ctx, "blogPosts_nextId")
		require.NoError(t, err)
		require.Equal(t, int64(1), n)

		n, err = s.Incr(ctx, "blogPosts_nextId")
		require.NoError(t, err)
		require.Equal(t, int64(2), n)

		v, err := s.Get(ctx, "blogPosts_nextId")
		require.NoError(t, err)
		require.Equal(t, "2", string(v))
	})

	t.Run("incr continues from a stored value", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "blogPosts_nextId", []byte("41")))
		n, err := s.Incr(ctx, "blogPosts_nextId")
		require.NoError(t, err)
		require.Equal(t, int64(42), n)
	})

	t.Run("incr on garbage fails and keeps the value", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "blogPosts_nextId", []byte("NaN")))

		_, err := s.Incr(ctx, "blogPosts_nextId")
		require.ErrorIs(t, err, ErrNotInteger)

		v, err := s.Get(ctx, "blogPosts_nextId")
		require.NoError(t, err)
		require.Equal(t, "NaN", string(v))
	})

	t.Run("incr rejects padded digits and keeps the value", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "blogPosts_nextId", []byte(" 3")))

		_, err := s.Incr(ctx, "blogPosts_nextId")
		require.ErrorIs(t, err, ErrNotInteger)

		v, err := s.Get(ctx, "blogPosts_nextId")
		require.NoError(t, err)
		require.Equal(t, " 3", string(v))
	})

	t.Run("incr treats an empty value as zero", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "blogPosts_nextId", []byte{}))

		n, err := s.Incr(ctx, "blogPosts_nextId")
		require.NoError(t, err)
		require.Equal(t, int64(1), n)
	})

	t.Run("concurrent incr never repeats", func(t *testing.T) {
		s := newStore(t)
		const workers, per = 4, 10

		var (
			mu   sync.Mutex
			seen = map[int64]bool{}
			wg   sync.WaitGroup
		)
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := 0; i < per; i++ {
					n, err := s.Incr(ctx, "seq")
					assert.NoError(t, err)
					mu.Lock()
					assert.False(t, seen[n], "id %d allocated twice", n)
					seen[n] = true
					mu.Unlock()
				}
			}()
		}
		wg.Wait()
		require.Len(t, seen, workers*per)
	})

	t.Run("list and clear", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "a", []byte{0xAA}))
		require.NoError(t, s.Set(ctx, "b", []byte("bb")))

		m, err := s.List(ctx)
		require.NoError(t, err)
		assert.Len(t, m, 2)
		assert.Equal(t, []byte{0xAA}, m["a"])
		assert.Equal(t, []byte("bb"), m["b"])

		require.NoError(t, s.Clear(ctx))
		m, err = s.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, m)
	})
}
