package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/myblog/internal/common"
	"github.com/dmitrijs2005/myblog/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.posts.Create(ctx, "", "T", "C")
	require.ErrorIs(t, err, common.ErrAuthRequired)

	_, err = f.posts.Create(ctx, "alice", "  ", "C")
	require.ErrorIs(t, err, common.ErrValidation)

	_, err = f.posts.Create(ctx, "alice", strings.Repeat("t", models.MaxTitleLength+1), "C")
	require.ErrorIs(t, err, common.ErrValidation)

	raw, _ := f.store.Get(ctx, models.KeyPosts)
	assert.Nil(t, raw)

	p, err := f.posts.Create(ctx, "alice", " Hello ", " World ")
	require.NoError(t, err)
	assert.Equal(t, models.Post{
		ID:       1,
		Username: "alice",
		Title:    "Hello",
		Content:  "World",
		Date:     "3/5/2024, 2:07:09 PM",
	}, p)

	p2, err := f.posts.Create(ctx, "bob", strings.Repeat("t", models.MaxTitleLength), "x")
	require.NoError(t, err)
	assert.Equal(t, models.PostID(2), p2.ID)
}

func TestListVisible_OwnerAndOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	list, err := f.posts.ListVisible(ctx, "alice")
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	for _, title := range []string{"one", "two", "three"} {
		_, err := f.posts.Create(ctx, "alice", title, "c")
		require.NoError(t, err)
	}
	_, err = f.posts.Create(ctx, "bob", "bob's", "c")
	require.NoError(t, err)

	hidden, err := f.posts.Hide(ctx, 2, "alice", func(models.Post) bool { return true })
	require.NoError(t, err)
	require.True(t, hidden)

	list, err = f.posts.ListVisible(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "one", list[0].Title)
	assert.Equal(t, "three", list[1].Title)
}

func TestFindAndGet(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p, err := f.posts.Create(ctx, "alice", "T", "C")
	require.NoError(t, err)

	_, err = f.posts.Find(ctx, p.ID, "bob")
	require.ErrorIs(t, err, common.ErrNotFound)
	_, err = f.posts.Find(ctx, 99, "alice")
	require.ErrorIs(t, err, common.ErrNotFound)

	got, err := f.posts.Get(ctx, p.ID, "alice")
	require.NoError(t, err)
	assert.Equal(t, p, got)

	_, err = f.posts.Hide(ctx, p.ID, "alice", func(models.Post) bool { return true })
	require.NoError(t, err)

	_, err = f.posts.Get(ctx, p.ID, "alice")
	require.ErrorIs(t, err, common.ErrNotFound)

	found, err := f.posts.Find(ctx, p.ID, "alice")
	require.NoError(t, err)
	assert.True(t, found.Hidden)
}

func TestUpdate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p, err := f.posts.Create(ctx, "alice", "T", "C")
	require.NoError(t, err)
	f.advanced = time.Hour

	res, err := f.posts.Update(ctx, p.ID, "alice", " T ", "C")
	require.NoError(t, err)
	assert.Equal(t, NoChange, res)
	got, _ := f.posts.Get(ctx, p.ID, "alice")
	assert.Equal(t, p.Date, got.Date, "no-op update keeps the date")

	_, err = f.posts.Update(ctx, p.ID, "alice", "", "C")
	require.ErrorIs(t, err, common.ErrValidation)

	_, err = f.posts.Update(ctx, p.ID, "bob", "T2", "C2")
	require.ErrorIs(t, err, common.ErrNotFound)

	res, err = f.posts.Update(ctx, p.ID, "alice", "T2", "C2")
	require.NoError(t, err)
	assert.Equal(t, Updated, res)

	got, _ = f.posts.Get(ctx, p.ID, "alice")
	assert.Equal(t, "T2", got.Title)
	assert.Equal(t, "C2", got.Content)
	assert.Equal(t, "3/5/2024, 3:07:09 PM", got.Date)
	assert.Equal(t, p.ID, got.ID)
}

func TestUpdate_HiddenIsNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p, _ := f.posts.Create(ctx, "alice", "T", "C")
	_, err := f.posts.Hide(ctx, p.ID, "alice", func(models.Post) bool { return true })
	require.NoError(t, err)

	_, err = f.posts.Update(ctx, p.ID, "alice", "T2", "C2")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestHide(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p, _ := f.posts.Create(ctx, "alice", "Title", "C")

	_, err := f.posts.Hide(ctx, p.ID, "alice", nil)
	require.ErrorIs(t, err, common.ErrValidation)

	var asked []string
	decline := func(p models.Post) bool { asked = append(asked, p.Title); return false }
	ok, err := f.posts.Hide(ctx, p.ID, "alice", decline)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, []string{"Title"}, asked)

	list, _ := f.posts.ListVisible(ctx, "alice")
	assert.Len(t, list, 1)

	_, err = f.posts.Hide(ctx, p.ID, "bob", func(models.Post) bool { return true })
	require.ErrorIs(t, err, common.ErrNotFound)

	ok, err = f.posts.Hide(ctx, p.ID, "alice", func(models.Post) bool { return true })
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = f.posts.Hide(ctx, p.ID, "alice", func(models.Post) bool { return true })
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestCreate_IdsNotReusedAfterHide(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p1, _ := f.posts.Create(ctx, "alice", "a", "a")
	_, err := f.posts.Hide(ctx, p1.ID, "alice", func(models.Post) bool { return true })
	require.NoError(t, err)

	require.NoError(t, f.store.Delete(ctx, models.KeyNextPostID))

	p2, err := f.posts.Create(ctx, "alice", "b", "b")
	require.NoError(t, err)
	assert.Greater(t, p2.ID, p1.ID)
}
