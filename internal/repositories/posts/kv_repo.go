package posts

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/myblog/internal/jsonstore"
	"github.com/dmitrijs2005/myblog/internal/logging"
	"github.com/dmitrijs2005/myblog/internal/models"
	"github.com/dmitrijs2005/myblog/internal/repositories/kv"
)

type KVRepository struct {
	store *jsonstore.Adapter
	log   logging.Logger
}

func NewKVRepository(store *jsonstore.Adapter, log logging.Logger) *KVRepository {
	if log == nil {
		log = logging.Discard()
	}
	return &KVRepository{store: store, log: log}
}

func (r *KVRepository) All(ctx context.Context) ([]models.Post, error) {
	var all []models.Post
	found, err := r.store.Load(ctx, models.KeyPosts, &all)
	if err != nil {
		return nil, fmt.Errorf("failed to load posts: %w", err)
	}
	if !found || all == nil {
		return []models.Post{}, nil
	}
	return all, nil
}

func (r *KVRepository) Save(ctx context.Context, all []models.Post) error {
	if all == nil {
		all = []models.Post{}
	}
	if err := r.store.Save(ctx, models.KeyPosts, all); err != nil {
		return fmt.Errorf("failed to save posts: %w", err)
	}
	return nil
}

// NextID increments blogPosts_nextId. A counter that is not a number, or
// that is behind the stored posts (store partly cleared), is moved past the
// highest existing id so an id is never handed out twice.
func (r *KVRepository) NextID(ctx context.Context, existing []models.Post) (models.PostID, error) {
	n, err := r.store.Next(ctx, models.KeyNextPostID)
	switch {
	case errors.Is(err, kv.ErrNotInteger):
		r.log.Warn(ctx, "post id counter is corrupted, rebuilding", "key", models.KeyNextPostID)
		n = 0
	case err != nil:
		return 0, fmt.Errorf("failed to allocate post id: %w", err)
	}

	highest := int64(0)
	for _, p := range existing {
		if int64(p.ID) > highest {
			highest = int64(p.ID)
		}
	}

	if n <= highest {
		r.log.Warn(ctx, "post id counter behind stored posts", "counter", n, "highest", highest)
		n = highest + 1
		if err := r.store.SetString(ctx, models.KeyNextPostID, strconv.FormatInt(n, 10)); err != nil {
			return 0, fmt.Errorf("failed to reset post id counter: %w", err)
		}
	}

	return models.PostID(n), nil
}
