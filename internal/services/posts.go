package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/myblog/internal/common"
	"github.com/dmitrijs2005/myblog/internal/logging"
	"github.com/dmitrijs2005/myblog/internal/models"
	"github.com/dmitrijs2005/myblog/internal/repositories/posts"
	"github.com/dmitrijs2005/myblog/internal/validation"
)

// UpdateResult tells whether Update wrote anything.
type UpdateResult int

const (
	NoChange UpdateResult = iota
	Updated
)

func (r UpdateResult) String() string {
	if r == Updated {
		return "updated"
	}
	return "no change"
}

// ConfirmFunc asks the user to confirm hiding p.
type ConfirmFunc func(p models.Post) bool

// PostService manages the posts of one owner at a time. Every mutation
// reads the whole collection, changes it in memory and writes it back.
type PostService struct {
	repo posts.Repository
	log  logging.Logger
	now  func() time.Time
}

func NewPostService(repo posts.Repository, log logging.Logger) *PostService {
	if log == nil {
		log = logging.Discard()
	}
	return &PostService{repo: repo, log: log, now: time.Now}
}

// Create appends a new visible post owned by owner.
func (s *PostService) Create(ctx context.Context, owner, title, content string) (models.Post, error) {
	if strings.TrimSpace(owner) == "" {
		return models.Post{}, fmt.Errorf("%w: Please log in to create a post", common.ErrAuthRequired)
	}
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if err := validation.Post(title, content); err != nil {
		return models.Post{}, err
	}

	all, err := s.repo.All(ctx)
	if err != nil {
		return models.Post{}, err
	}
	id, err := s.repo.NextID(ctx, all)
	if err != nil {
		return models.Post{}, err
	}

	p := models.Post{
		ID:       id,
		Username: owner,
		Title:    title,
		Content:  content,
		Date:     models.FormatDate(s.now()),
	}
	if err := s.repo.Save(ctx, append(all, p)); err != nil {
		return models.Post{}, err
	}

	s.log.Info(ctx, "post created", "post_id", id, "user", owner)
	return p, nil
}

// ListVisible returns owner's non-hidden posts in stored order.
func (s *PostService) ListVisible(ctx context.Context, owner string) ([]models.Post, error) {
	all, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Post, 0, len(all))
	for _, p := range all {
		if p.Username == owner && !p.Hidden {
			out = append(out, p)
		}
	}
	return out, nil
}

// Find looks the post up among all of owner's posts, hidden ones included.
func (s *PostService) Find(ctx context.Context, id models.PostID, owner string) (models.Post, error) {
	all, err := s.repo.All(ctx)
	if err != nil {
		return models.Post{}, err
	}
	i := indexOf(all, id, owner)
	if i < 0 {
		return models.Post{}, postNotFound(id)
	}
	return all[i], nil
}

// Get is Find restricted to visible posts.
func (s *PostService) Get(ctx context.Context, id models.PostID, owner string) (models.Post, error) {
	p, err := s.Find(ctx, id, owner)
	if err != nil {
		return models.Post{}, err
	}
	if p.Hidden {
		return models.Post{}, postNotFound(id)
	}
	return p, nil
}

// Update overwrites title, content and date of a visible post. Submitting
// the stored title and content again is NoChange and writes nothing.
func (s *PostService) Update(ctx context.Context, id models.PostID, owner, title, content string) (UpdateResult, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if err := validation.Post(title, content); err != nil {
		return NoChange, err
	}

	all, err := s.repo.All(ctx)
	if err != nil {
		return NoChange, err
	}
	i := indexOf(all, id, owner)
	if i < 0 || all[i].Hidden {
		return NoChange, postNotFound(id)
	}
	if all[i].Title == title && all[i].Content == content {
		return NoChange, nil
	}

	all[i].Title = title
	all[i].Content = content
	all[i].Date = models.FormatDate(s.now())
	if err := s.repo.Save(ctx, all); err != nil {
		return NoChange, err
	}

	s.log.Info(ctx, "post updated", "post_id", id, "user", owner)
	return Updated, nil
}

// Hide soft-deletes a visible post once confirm accepts it. A declined
// confirmation returns (false, nil) and leaves storage untouched.
func (s *PostService) Hide(ctx context.Context, id models.PostID, owner string, confirm ConfirmFunc) (bool, error) {
	if confirm == nil {
		return false, fmt.Errorf("%w: confirmation is required", common.ErrValidation)
	}

	all, err := s.repo.All(ctx)
	if err != nil {
		return false, err
	}
	i := indexOf(all, id, owner)
	if i < 0 || all[i].Hidden {
		return false, postNotFound(id)
	}
	if !confirm(all[i]) {
		return false, nil
	}

	all[i].Hidden = true
	if err := s.repo.Save(ctx, all); err != nil {
		return false, err
	}

	s.log.Info(ctx, "post hidden", "post_id", id, "user", owner)
	return true, nil
}

func indexOf(all []models.Post, id models.PostID, owner string) int {
	for i, p := range all {
		if p.OwnedBy(id, owner) {
			return i
		}
	}
	return -1
}

func postNotFound(id models.PostID) error {
	return fmt.Errorf("%w: Post %s not found or not owned by current user.", common.ErrNotFound, id)
}
