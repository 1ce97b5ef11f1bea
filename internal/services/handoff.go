package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/myblog/internal/common"
	"github.com/dmitrijs2005/myblog/internal/jsonstore"
	"github.com/dmitrijs2005/myblog/internal/logging"
	"github.com/dmitrijs2005/myblog/internal/models"
)

// HandoffService passes the post to edit from the listing to the edit view
// through the pendingEdit key. A token is read at most once.
type HandoffService struct {
	store  *jsonstore.Adapter
	maxAge time.Duration
	log    logging.Logger
	now    func() time.Time
}

// NewHandoffService builds the service; maxAge <= 0 accepts tokens of any age.
func NewHandoffService(store *jsonstore.Adapter, maxAge time.Duration, log logging.Logger) *HandoffService {
	if log == nil {
		log = logging.Discard()
	}
	return &HandoffService{store: store, maxAge: maxAge, log: log, now: time.Now}
}

// Issue records (id, owner) for the edit view, replacing any earlier token.
func (s *HandoffService) Issue(ctx context.Context, id models.PostID, owner string) error {
	tok := models.PendingEdit{ID: id, User: owner, TS: s.now().UnixMilli()}
	if err := s.store.Save(ctx, models.KeyPendingEdit, tok); err != nil {
		return fmt.Errorf("failed to save pending edit: %w", err)
	}
	s.log.Debug(ctx, "pending edit issued", "post_id", id, "user", owner)
	return nil
}

// Consume takes the token. It is removed whether or not it is valid.
func (s *HandoffService) Consume(ctx context.Context) (models.PendingEdit, error) {
	var tok models.PendingEdit
	found, err := s.store.Take(ctx, models.KeyPendingEdit, &tok)
	if err != nil {
		return models.PendingEdit{}, fmt.Errorf("failed to take pending edit: %w", err)
	}

	switch {
	case !found:
		return models.PendingEdit{}, fmt.Errorf("%w: No post selected for editing", common.ErrInvalidHandoff)
	case tok.ID == 0 || strings.TrimSpace(tok.User) == "":
		return models.PendingEdit{}, fmt.Errorf("%w: Invalid post selected for editing", common.ErrInvalidHandoff)
	case s.maxAge > 0 && s.now().Sub(tok.IssuedAt()) > s.maxAge:
		s.log.Warn(ctx, "stale pending edit dropped", "post_id", tok.ID, "issued_at", tok.IssuedAt())
		return models.PendingEdit{}, fmt.Errorf("%w: Edit request expired, please select the post again", common.ErrInvalidHandoff)
	}
	return tok, nil
}
