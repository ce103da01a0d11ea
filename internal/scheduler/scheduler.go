package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/Wilyam390/Pyrenees-forecast/internal/catalog"
	"github.com/Wilyam390/Pyrenees-forecast/internal/models"
	"github.com/Wilyam390/Pyrenees-forecast/internal/services/mylist"
	"github.com/Wilyam390/Pyrenees-forecast/internal/services/weather"
	"github.com/Wilyam390/Pyrenees-forecast/pkg/logger"
)

// Scheduler periodically pre-warms the forecast cache for every saved
// mountain. It goes through the same read path as user requests, so fresh
// entries are no-ops and stale ones refresh. It never evicts anything.
type Scheduler struct {
	scheduler *gocron.Scheduler
	weather   *weather.Service
	mylist    *mylist.Service
	catalog   *catalog.Catalog
	interval  time.Duration
	l         *logger.Logger
}

func New(weatherSvc *weather.Service, listSvc *mylist.Service, cat *catalog.Catalog, interval time.Duration, l *logger.Logger) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		weather:   weatherSvc,
		mylist:    listSvc,
		catalog:   cat,
		interval:  interval,
		l:         l,
	}
}

// Start schedules the pre-warm job and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 30
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(s.prewarm)
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	s.l.Info("prewarm scheduler started", map[string]any{"interval_minutes": minutes})
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}

func (s *Scheduler) prewarm() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	ids, err := s.mylist.List(ctx)
	if err != nil {
		s.l.Warning("prewarm: could not list saved mountains", map[string]any{"err": err.Error()})
		return
	}

	var refreshed, failed int
	for _, id := range ids {
		for _, band := range []string{models.BandBase, models.BandMid, models.BandSummit} {
			loc, err := s.catalog.BandLocation(id, band)
			if err != nil {
				s.l.Warning("prewarm: saved mountain missing from catalog", map[string]any{"mountain": id})
				break
			}
			if _, err := s.weather.HourlyForecast(ctx, id, band, loc); err != nil {
				failed++
				continue
			}
			refreshed++
		}
	}

	s.l.Info("prewarm pass completed", map[string]any{
		"mountains": len(ids),
		"ok":        refreshed,
		"failed":    failed,
	})
}
