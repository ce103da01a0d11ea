package mylist

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wilyam390/Pyrenees-forecast/internal/store"
	"github.com/Wilyam390/Pyrenees-forecast/pkg/logger"
)

type mockListStore struct {
	addErr  error
	listErr error
	ids     []string
	added   []string
	removed []string
	order   []string
}

func (m *mockListStore) AddMountain(_ context.Context, mountainID string) error {
	m.added = append(m.added, mountainID)
	return m.addErr
}

func (m *mockListStore) RemoveMountain(_ context.Context, mountainID string) error {
	m.removed = append(m.removed, mountainID)
	return nil
}

func (m *mockListStore) ListMountains(_ context.Context) ([]string, error) {
	return m.ids, m.listErr
}

func (m *mockListStore) ReorderMountains(_ context.Context, mountainIDs []string) error {
	m.order = mountainIDs
	return nil
}

func newTestService(m *mockListStore) *Service {
	return NewService(m, logger.NewZapLogger("test-app", io.Discard))
}

func TestAddIsIdempotent(t *testing.T) {
	m := &mockListStore{addErr: store.ErrDuplicateEntry}
	s := newTestService(m)

	assert.NoError(t, s.Add(context.Background(), "aneto"))
	assert.Equal(t, []string{"aneto"}, m.added)
}

func TestAddPropagatesOtherErrors(t *testing.T) {
	storeErr := errors.New("connection lost")
	s := newTestService(&mockListStore{addErr: storeErr})

	assert.ErrorIs(t, s.Add(context.Background(), "aneto"), storeErr)
}

func TestListNeverReturnsNil(t *testing.T) {
	s := newTestService(&mockListStore{ids: nil})

	ids, err := s.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, ids)
	assert.Empty(t, ids)
}

func TestListPreservesOrder(t *testing.T) {
	s := newTestService(&mockListStore{ids: []string{"posets", "aneto"}})

	ids, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"posets", "aneto"}, ids)
}

func TestRemoveAndReorderDelegate(t *testing.T) {
	m := &mockListStore{}
	s := newTestService(m)

	require.NoError(t, s.Remove(context.Background(), "aneto"))
	assert.Equal(t, []string{"aneto"}, m.removed)

	require.NoError(t, s.Reorder(context.Background(), []string{"b", "a"}))
	assert.Equal(t, []string{"b", "a"}, m.order)
}
