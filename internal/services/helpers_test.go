package services

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/myblog/internal/jsonstore"
	"github.com/dmitrijs2005/myblog/internal/repositories/accounts"
	"github.com/dmitrijs2005/myblog/internal/repositories/kv"
	"github.com/dmitrijs2005/myblog/internal/repositories/posts"
)

type fixture struct {
	store    *kv.MemoryStore
	adapter  *jsonstore.Adapter
	auth     *AuthService
	posts    *PostService
	handoff  *HandoffService
	theme    *ThemeService
	storage  *StorageService
	clock    time.Time
	advanced time.Duration
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		store: kv.NewMemoryStore(),
		clock: time.Date(2024, time.March, 5, 14, 7, 9, 0, time.Local),
	}
	f.adapter = jsonstore.New(f.store, nil)
	f.auth = NewAuthService(accounts.NewKVRepository(f.adapter), nil)
	f.posts = NewPostService(posts.NewKVRepository(f.adapter, nil), nil)
	f.posts.now = f.now
	f.handoff = NewHandoffService(f.adapter, 10*time.Minute, nil)
	f.handoff.now = f.now
	f.theme = NewThemeService(f.adapter)
	f.storage = NewStorageService(f.store, nil)
	return f
}

func (f *fixture) now() time.Time {
	return f.clock.Add(f.advanced)
}
