package service

import (
	"context"

	"github.com/mishumang/prame/internal/domain"
)

// ProgressStore is the per-user date-keyed activity log store.
type ProgressStore interface {
	Merge(ctx context.Context, uid string, entries map[string]domain.DayActivity) error
	Get(ctx context.Context, uid string) (map[string]domain.DayActivity, error)
}

type ProgressService struct {
	store ProgressStore
}

func NewProgressService(store ProgressStore) *ProgressService {
	return &ProgressService{store: store}
}

// Update merges entries into the user's log, creating it on first write.
func (s *ProgressService) Update(ctx context.Context, uid string, entries map[string]domain.DayActivity) error {
	return s.store.Merge(ctx, uid, entries)
}

// Get is total over uids: a user with no record gets an empty mapping.
func (s *ProgressService) Get(ctx context.Context, uid string) (map[string]domain.DayActivity, error) {
	return s.store.Get(ctx, uid)
}
