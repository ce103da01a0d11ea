package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Wilyam390/Pyrenees-forecast/config"
	"github.com/Wilyam390/Pyrenees-forecast/internal/catalog"
	v1 "github.com/Wilyam390/Pyrenees-forecast/internal/controllers/http/v1"
	"github.com/Wilyam390/Pyrenees-forecast/internal/repositories"
	"github.com/Wilyam390/Pyrenees-forecast/internal/scheduler"
	"github.com/Wilyam390/Pyrenees-forecast/internal/services/mylist"
	"github.com/Wilyam390/Pyrenees-forecast/internal/services/weather"
	"github.com/Wilyam390/Pyrenees-forecast/internal/store"
	"github.com/Wilyam390/Pyrenees-forecast/pkg/httpserver"
	"github.com/Wilyam390/Pyrenees-forecast/pkg/logger"
)

// @title Pyrenees Mountain Weather API
// @version 1.0.0
// @description Elevation-adjusted 24-hour forecasts for Spanish Pyrenees peaks, cached per mountain and elevation band.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @tag.name Weather
// @tag.description Forecast operations
// @tag.name Catalog
// @tag.description Peak catalog drill-down and search
// @tag.name MyMountains
// @tag.description Saved mountain list
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	cnf, err := config.NewConfig("config/config.yaml")
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot load configuration:", err)
		os.Exit(1)
	}

	l := logger.NewZapLogger(cnf.AppName, os.Stdout)

	cat, err := catalog.Load()
	if err != nil {
		l.Fatal("cannot load peak catalog", map[string]any{"err": err})
	}

	db, err := store.New(ctx, cnf.DatabaseURL)
	if err != nil {
		l.Fatal("cannot connect to database", map[string]any{"err": err})
	}
	if err := db.Migrate(ctx); err != nil {
		l.Fatal("cannot run database migration", map[string]any{"err": err})
	}

	repo := repositories.NewOpenMeteoRepository(
		cnf.Weather.APIURL,
		cnf.Weather.Timezone,
		cnf.Weather.Timeout(),
		cnf.Weather.MaxConcurrentFetches,
		l,
	)

	weatherService := weather.NewService(db, repo, cnf.Weather.CacheTTL(), l)
	mylistService := mylist.NewService(db, l)

	app := httpserver.InitFiberServer(cnf.AppName)

	v1.NewRouter(
		app,
		weatherService,
		mylistService,
		cat,
		l,
	)

	var prewarm *scheduler.Scheduler
	if cnf.Prewarm.Enabled {
		prewarm = scheduler.New(weatherService, mylistService, cat, cnf.Prewarm.Interval(), l)
		if err := prewarm.Start(); err != nil {
			l.Fatal("cannot start prewarm scheduler", map[string]any{"err": err})
		}
	}

	go func() {
		if err := app.Listen(":" + cnf.Port); err != nil {
			l.Fatal("cannot run the server", map[string]any{"err": err})
		}
	}()

	l.Info("application started successfully", map[string]any{"port": cnf.Port})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		l.Warning("stopping application services")
		signal.Stop(sigCh)
		close(sigCh)

		if prewarm != nil {
			prewarm.Stop()
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		_ = app.ShutdownWithContext(shutdownCtx)
		db.Close()
		_ = l.Stop()
		cancel()
	}()

	select {
	case <-sigCh:
		fmt.Println("received shutdown signal")
	case <-ctx.Done():
		fmt.Println("context cancelled")
	}
}
