package mylist

import (
	"context"
	"errors"

	"github.com/Wilyam390/Pyrenees-forecast/internal/store"
	"github.com/Wilyam390/Pyrenees-forecast/pkg/logger"
)

// ListStore is the slice of the persistence layer the service needs.
type ListStore interface {
	AddMountain(ctx context.Context, mountainID string) error
	RemoveMountain(ctx context.Context, mountainID string) error
	ListMountains(ctx context.Context) ([]string, error)
	ReorderMountains(ctx context.Context, mountainIDs []string) error
}

// Service manages the single-user ordered mountain list.
type Service struct {
	store ListStore
	l     *logger.Logger
}

func NewService(store ListStore, l *logger.Logger) *Service {
	return &Service{store: store, l: l}
}

// Add saves a mountain. Adding one that is already saved is a no-op.
func (s *Service) Add(ctx context.Context, mountainID string) error {
	err := s.store.AddMountain(ctx, mountainID)
	if errors.Is(err, store.ErrDuplicateEntry) {
		s.l.Debug("mountain already saved", map[string]any{"mountain": mountainID})
		return nil
	}
	return err
}

// Remove deletes a mountain from the list.
func (s *Service) Remove(ctx context.Context, mountainID string) error {
	return s.store.RemoveMountain(ctx, mountainID)
}

// List returns the saved mountain ids in display order.
func (s *Service) List(ctx context.Context) ([]string, error) {
	ids, err := s.store.ListMountains(ctx)
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

// Reorder rewrites the display order to match the given sequence.
func (s *Service) Reorder(ctx context.Context, mountainIDs []string) error {
	return s.store.ReorderMountains(ctx, mountainIDs)
}
