package posts

import (
	"context"

	"github.com/dmitrijs2005/myblog/internal/models"
)

// Repository persists the post collection as a whole: callers read every
// post, change the slice in memory and write it back.
type Repository interface {
	// All returns the stored posts in insertion order, never nil.
	All(ctx context.Context) ([]models.Post, error)
	Save(ctx context.Context, all []models.Post) error

	// NextID allocates a post id. existing is the collection the new post
	// will be appended to; the id is always greater than any id in it.
	NextID(ctx context.Context, existing []models.Post) (models.PostID, error)
}
