package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Wilyam390/Pyrenees-forecast/internal/models"
	"github.com/Wilyam390/Pyrenees-forecast/internal/repositories"
	"github.com/Wilyam390/Pyrenees-forecast/internal/store"
	"github.com/Wilyam390/Pyrenees-forecast/pkg/logger"
)

// ForecastStore is the slice of the persistence layer the service needs.
type ForecastStore interface {
	GetForecast(ctx context.Context, mountainID, band string) (*models.ForecastCacheEntry, error)
	InsertForecast(ctx context.Context, entry models.ForecastCacheEntry) error
	UpdateForecast(ctx context.Context, entry models.ForecastCacheEntry) error
}

// Service implements the read-through forecast cache: fresh rows are served
// as stored, stale or absent rows trigger an upstream fetch followed by an
// insert-or-update keyed on (mountain, band).
type Service struct {
	store ForecastStore
	repo  repositories.ForecastRepository
	ttl   time.Duration
	l     *logger.Logger
}

func NewService(store ForecastStore, repo repositories.ForecastRepository, ttl time.Duration, l *logger.Logger) *Service {
	return &Service{
		store: store,
		repo:  repo,
		ttl:   ttl,
		l:     l,
	}
}

// HourlyForecast returns the cached payload for (mountainID, band) when it is
// still fresh, refreshing it from upstream otherwise. Cache read failures
// degrade to a refetch, never to stale data.
func (s *Service) HourlyForecast(ctx context.Context, mountainID, band string, loc models.BandLocation) (json.RawMessage, error) {
	entry, err := s.store.GetForecast(ctx, mountainID, band)
	if err != nil {
		s.l.Warning("cache read failed, forcing refresh", map[string]any{
			"mountain": mountainID,
			"band":     band,
			"err":      err.Error(),
		})
		entry = nil
	}

	if isFresh(entry, time.Now().UTC()) {
		s.l.Debug("cache hit", map[string]any{"mountain": mountainID, "band": band})
		return entry.Payload, nil
	}

	return s.refresh(ctx, mountainID, band, loc)
}

// refresh fetches upstream, windows and enriches the series, and upserts the
// row. Two concurrent refreshers of the same stale key both fetch; the loser
// of the insert converts to an update, and both callers succeed. The fetch
// and write run detached from request cancellation: a disconnecting caller
// never aborts a cache write in flight.
func (s *Service) refresh(ctx context.Context, mountainID, band string, loc models.BandLocation) (json.RawMessage, error) {
	ctx = context.WithoutCancel(ctx)

	series, err := s.repo.FetchHourly(ctx, loc.Lat, loc.Lon)
	if err != nil {
		return nil, err
	}

	records := SliceNext24h(series, loc.ElevM)
	payload, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("failed to encode forecast payload: %w", err)
	}

	entry := models.ForecastCacheEntry{
		MountainID: mountainID,
		Band:       band,
		Payload:    payload,
		FetchedAt:  time.Now().UTC(),
		TTLSeconds: int(s.ttl.Seconds()),
	}

	if err := s.store.InsertForecast(ctx, entry); err != nil {
		if !errors.Is(err, store.ErrDuplicateEntry) {
			return nil, fmt.Errorf("failed to store forecast: %w", err)
		}
		// Row already present: either a stale row being refreshed or a
		// concurrent first-writer that inserted this key since our read.
		s.l.Debug("cache row exists, updating in place", map[string]any{
			"mountain": mountainID,
			"band":     band,
		})
		if err := s.store.UpdateForecast(ctx, entry); err != nil {
			return nil, fmt.Errorf("failed to store forecast: %w", err)
		}
	}

	s.l.Info("forecast refreshed", map[string]any{
		"mountain": mountainID,
		"band":     band,
		"hours":    len(records),
	})

	return payload, nil
}

// isFresh treats absent rows and unset fetched-at/ttl as stale so any
// evaluation problem falls open to a refetch.
func isFresh(entry *models.ForecastCacheEntry, now time.Time) bool {
	if entry == nil || entry.FetchedAt.IsZero() || entry.TTLSeconds <= 0 {
		return false
	}
	return now.Sub(entry.FetchedAt) < time.Duration(entry.TTLSeconds)*time.Second
}
