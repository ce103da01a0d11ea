package scheduler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wilyam390/Pyrenees-forecast/internal/catalog"
	"github.com/Wilyam390/Pyrenees-forecast/internal/models"
	"github.com/Wilyam390/Pyrenees-forecast/internal/repositories"
	"github.com/Wilyam390/Pyrenees-forecast/internal/services/mylist"
	"github.com/Wilyam390/Pyrenees-forecast/internal/services/weather"
	"github.com/Wilyam390/Pyrenees-forecast/pkg/logger"
)

type prewarmStore struct {
	saved    []string
	fresh    map[string]models.ForecastCacheEntry
	inserted []models.ForecastCacheEntry
}

func (m *prewarmStore) GetForecast(_ context.Context, mountainID, band string) (*models.ForecastCacheEntry, error) {
	if e, ok := m.fresh[mountainID+"/"+band]; ok {
		return &e, nil
	}
	return nil, nil
}

func (m *prewarmStore) InsertForecast(_ context.Context, entry models.ForecastCacheEntry) error {
	m.inserted = append(m.inserted, entry)
	return nil
}

func (m *prewarmStore) UpdateForecast(_ context.Context, _ models.ForecastCacheEntry) error {
	return nil
}

func (m *prewarmStore) AddMountain(_ context.Context, mountainID string) error {
	m.saved = append(m.saved, mountainID)
	return nil
}

func (m *prewarmStore) RemoveMountain(_ context.Context, _ string) error { return nil }

func (m *prewarmStore) ListMountains(_ context.Context) ([]string, error) {
	return m.saved, nil
}

func (m *prewarmStore) ReorderMountains(_ context.Context, _ []string) error { return nil }

type countingRepo struct {
	fetches int
	err     error
}

func (r *countingRepo) Name() string { return "counting" }

func (r *countingRepo) FetchHourly(_ context.Context, _, _ float64) (models.HourlySeries, error) {
	r.fetches++
	if r.err != nil {
		return models.HourlySeries{}, &repositories.UpstreamError{Err: r.err}
	}
	return models.HourlySeries{
		Time:          []string{"2025-11-21T10:00"},
		Temperature2m: []float64{1.0},
		Precipitation: []float64{0.0},
		WindSpeed10m:  []*float64{nil},
	}, nil
}

func newTestScheduler(t *testing.T, store *prewarmStore, repo repositories.ForecastRepository) *Scheduler {
	t.Helper()

	cat, err := catalog.Load()
	require.NoError(t, err)

	l := logger.NewZapLogger("test-app", io.Discard)
	return New(
		weather.NewService(store, repo, time.Hour, l),
		mylist.NewService(store, l),
		cat,
		30*time.Minute,
		l,
	)
}

func TestPrewarmRefreshesAllBandsOfSavedMountains(t *testing.T) {
	store := &prewarmStore{saved: []string{"aneto"}}
	repo := &countingRepo{}
	s := newTestScheduler(t, store, repo)

	s.prewarm()

	assert.Equal(t, 3, repo.fetches)
	require.Len(t, store.inserted, 3)
	bands := map[string]bool{}
	for _, e := range store.inserted {
		assert.Equal(t, "aneto", e.MountainID)
		bands[e.Band] = true
	}
	assert.Equal(t, map[string]bool{"base": true, "mid": true, "summit": true}, bands)
}

func TestPrewarmSkipsMountainsMissingFromCatalog(t *testing.T) {
	store := &prewarmStore{saved: []string{"ghost-peak", "aneto"}}
	repo := &countingRepo{}
	s := newTestScheduler(t, store, repo)

	s.prewarm()

	// The unknown id is skipped, the known one is still warmed.
	assert.Equal(t, 3, repo.fetches)
	assert.Len(t, store.inserted, 3)
}

func TestPrewarmLeavesFreshEntriesAlone(t *testing.T) {
	entry := models.ForecastCacheEntry{
		MountainID: "aneto",
		Payload:    json.RawMessage(`[]`),
		FetchedAt:  time.Now().UTC(),
		TTLSeconds: 3600,
	}
	store := &prewarmStore{
		saved: []string{"aneto"},
		fresh: map[string]models.ForecastCacheEntry{
			"aneto/base":   entry,
			"aneto/mid":    entry,
			"aneto/summit": entry,
		},
	}
	repo := &countingRepo{}
	s := newTestScheduler(t, store, repo)

	s.prewarm()

	assert.Zero(t, repo.fetches)
	assert.Empty(t, store.inserted)
}

func TestPrewarmSurvivesUpstreamFailures(t *testing.T) {
	store := &prewarmStore{saved: []string{"aneto", "posets"}}
	repo := &countingRepo{err: errors.New("status 503")}
	s := newTestScheduler(t, store, repo)

	s.prewarm()

	assert.Equal(t, 6, repo.fetches)
	assert.Empty(t, store.inserted)
}
