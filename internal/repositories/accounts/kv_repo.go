package accounts

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/myblog/internal/jsonstore"
	"github.com/dmitrijs2005/myblog/internal/models"
)

type KVRepository struct {
	store *jsonstore.Adapter
}

func NewKVRepository(store *jsonstore.Adapter) *KVRepository {
	return &KVRepository{store: store}
}

// All never returns nil; an absent or malformed users_profile is empty.
func (r *KVRepository) All(ctx context.Context) ([]models.Account, error) {
	var all []models.Account
	found, err := r.store.Load(ctx, models.KeyAccounts, &all)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	if !found || all == nil {
		return []models.Account{}, nil
	}
	return all, nil
}

func (r *KVRepository) Save(ctx context.Context, all []models.Account) error {
	if all == nil {
		all = []models.Account{}
	}
	if err := r.store.Save(ctx, models.KeyAccounts, all); err != nil {
		return fmt.Errorf("failed to save accounts: %w", err)
	}
	return nil
}

func (r *KVRepository) Session(ctx context.Context) (string, bool, error) {
	user, ok, err := r.store.String(ctx, models.KeySession)
	if err != nil {
		return "", false, fmt.Errorf("failed to read session: %w", err)
	}
	return user, ok, nil
}

func (r *KVRepository) SetSession(ctx context.Context, username string) error {
	if err := r.store.SetString(ctx, models.KeySession, username); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (r *KVRepository) ClearSession(ctx context.Context) error {
	if err := r.store.Remove(ctx, models.KeySession); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func (r *KVRepository) SetFarewell(ctx context.Context, msg string) error {
	if err := r.store.SetString(ctx, models.KeyLogoutMsg, msg); err != nil {
		return fmt.Errorf("failed to save logout message: %w", err)
	}
	return nil
}

func (r *KVRepository) TakeFarewell(ctx context.Context) (string, bool, error) {
	msg, ok, err := r.store.TakeString(ctx, models.KeyLogoutMsg)
	if err != nil {
		return "", false, fmt.Errorf("failed to take logout message: %w", err)
	}
	return msg, ok, nil
}
