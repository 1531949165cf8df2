package main

import (
	"expvar"
	"os"
	"runtime"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/rayal-systems/bookapi/config"
	"github.com/rayal-systems/bookapi/handler"
	"github.com/rayal-systems/bookapi/internal/jsonlog"
	"github.com/rayal-systems/bookapi/repository"
	"github.com/rayal-systems/bookapi/repository/postgres"
	"github.com/rayal-systems/bookapi/service"
)

const version = "1.0.0"

// app defines the application's layers and shared resources.
type app struct {
	config  config.Config
	repo    repository.Repository
	service service.Service
	handler *handler.Handler
}

func main() {
	logger := jsonlog.New(os.Stdout, jsonlog.LevelInfo)

	// Initialize configuration
	cfg, err := config.Decode()
	if err != nil {
		logger.PrintFatal(err, nil)
	}

	// Initialize database connection
	db, err := postgres.OpenDBConn(cfg)
	if err != nil {
		logger.PrintFatal(err, nil)
	}
	defer db.Close()
	logger.PrintInfo("database connection pool established", nil)

	// Bring the schema up to date
	err = postgres.Migrate(db)
	if err != nil {
		logger.PrintFatal(err, nil)
	}

	// In-memory cache for book ratings
	cache := ttlcache.New(ttlcache.WithTTL[string, float64](30 * time.Minute))
	go cache.Start()

	// Publish runtime metrics for the /debug/vars endpoint
	expvar.NewString("version").Set(version)
	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))
	expvar.Publish("database", expvar.Func(func() any {
		return db.Stats()
	}))
	expvar.Publish("timestamp", expvar.Func(func() any {
		return time.Now().Unix()
	}))

	// Application layers
	repo := repository.New(db)
	service := service.New(cfg, logger, repo)
	handler := handler.New(cfg, logger, cache, service)

	// Load the starter catalog into an empty database
	err = repo.Seed()
	if err != nil {
		logger.PrintFatal(err, nil)
	}

	// Instantiate application
	app := &app{
		config:  cfg,
		repo:    repo,
		service: service,
		handler: handler,
	}

	// Start HTTP server
	err = app.serve(logger)
	if err != nil {
		logger.PrintFatal(err, nil)
	}
}
