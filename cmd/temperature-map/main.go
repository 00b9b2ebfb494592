package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"temperature-map/config"
	_ "temperature-map/docs"
	v1 "temperature-map/internal/controllers/http/v1"
	"temperature-map/internal/models"
	"temperature-map/internal/repositories"
	"temperature-map/internal/scheduler"
	"temperature-map/internal/services/temperature"
	"temperature-map/internal/views"
	"temperature-map/pkg/httpserver"
	"temperature-map/pkg/memo"
	"temperature-map/pkg/observe"
)

// @title Temperature Map API
// @version 1.0.0
// @description Current temperature of Japan's prefectural capitals, fetched from Open-Meteo and rendered as a table and a 3D column map.

// @contact.name Temperature Map Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @tag.name Readings
// @tag.description Memoized temperature readings and fetch progress
// @tag.name Locations
// @tag.description The fixed location table
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	cnf, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot load config: %v\n", err)
		os.Exit(1)
	}

	l := observe.NewZapLogger(cnf.App.Name, os.Stdout).WithEnv(cnf.App.Env)
	if err := l.SetLevel(cnf.Log.Level); err != nil {
		l.Fatal("invalid log level", map[string]any{"err": err, "level": cnf.Log.Level})
	}
	if err := l.SetFormat(cnf.Log.Format); err != nil {
		l.Fatal("invalid log format", map[string]any{"err": err, "format": cnf.Log.Format})
	}

	var sentryHook *observe.SentryHook
	if cnf.Sentry.DSN != "" {
		sentryHook = observe.NewSentryHook(cnf.App.Env, cnf.App.Name, 0, cnf.Sentry.Debug, cnf.Sentry.DSN)
		l.AddHook(sentryHook)
		sentryHook.SetLogger(l)
	}

	if err := views.LoadTemplates(); err != nil {
		l.Fatal("cannot load dashboard templates", map[string]any{"err": err})
	}

	repo, err := repositories.InitTemperatureRepository(cnf, l)
	if err != nil {
		l.Fatal("cannot init temperature repository", map[string]any{"err": err})
	}

	fetcher := temperature.NewFetcher(repo, models.PrefecturalCapitals(), l)
	cache := memo.New[models.ReadingSet](cnf.CacheTTL(), nil)
	service := temperature.NewTemperatureService(fetcher, cache, l)

	warmer, err := scheduler.NewWarmer(cnf.Weather.WarmupSchedule, service, l)
	if err != nil {
		l.Fatal("cannot schedule cache warm-up", map[string]any{"err": err})
	}

	app := httpserver.InitFiberServer(httpserver.Options{
		AppName:      cnf.App.Name,
		ReadTimeout:  cnf.ReadTimeout(),
		WriteTimeout: cnf.WriteTimeout(),
		IdleTimeout:  cnf.IdleTimeout(),
	}, l)

	v1.NewRouter(
		app,
		service,
		l,
	)

	go func() {
		if err := app.Listen(":" + cnf.Server.Port); err != nil {
			l.Fatal("cannot run the server", map[string]any{"err": err})
		}
	}()

	if warmer != nil {
		warmer.Start()
	}

	l.Info("application started successfully", map[string]any{
		"port":      cnf.Server.Port,
		"provider":  repo.Name(),
		"cache_ttl": cnf.CacheTTL().String(),
		"locations": len(fetcher.Locations()),
	})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		l.Warning("stopping application services")
		signal.Stop(sigCh)
		close(sigCh)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if warmer != nil {
			warmer.Stop()
		}
		_ = app.ShutdownWithContext(shutdownCtx)
		if sentryHook != nil {
			sentryHook.Flush()
		}
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
