package accounts

import (
	"context"

	"github.com/dmitrijs2005/myblog/internal/models"
)

// Repository persists the account set and the single active session.
// The account set is read and written as a whole.
type Repository interface {
	All(ctx context.Context) ([]models.Account, error)
	Save(ctx context.Context, all []models.Account) error

	// Session returns the logged-in username; ok is false when logged out.
	Session(ctx context.Context) (username string, ok bool, err error)
	SetSession(ctx context.Context, username string) error
	ClearSession(ctx context.Context) error

	// SetFarewell and TakeFarewell carry the one-shot logout message.
	SetFarewell(ctx context.Context, msg string) error
	TakeFarewell(ctx context.Context) (msg string, ok bool, err error)
}
