package services

import (
	"context"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/myblog/internal/logging"
	"github.com/dmitrijs2005/myblog/internal/repositories/kv"
)

// StorageEntry is one raw key/value pair as kept by the store.
type StorageEntry struct {
	Key   string
	Value string
}

// StorageService inspects and wipes the whole blog storage, below the
// typed repositories.
type StorageService struct {
	store kv.Store
	log   logging.Logger
}

func NewStorageService(store kv.Store, log logging.Logger) *StorageService {
	if log == nil {
		log = logging.Discard()
	}
	return &StorageService{store: store, log: log}
}

// Dump returns every stored entry ordered by key.
func (s *StorageService) Dump(ctx context.Context) ([]StorageEntry, error) {
	all, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to dump storage: %w", err)
	}

	keys := make([]string, 0, len(all))
	for k := range all {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	entries := make([]StorageEntry, 0, len(all))
	for _, k := range keys {
		entries = append(entries, StorageEntry{Key: k, Value: string(all[k])})
	}
	return entries, nil
}

// Reset removes accounts, posts, the session, the id counter and the theme.
func (s *StorageService) Reset(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to reset storage: %w", err)
	}
	s.log.Warn(ctx, "storage reset")
	return nil
}
