package main

import (
	"flag"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/chinedum/bookverse/config"
	_ "github.com/chinedum/bookverse/docs"
	"github.com/chinedum/bookverse/handler"
	"github.com/chinedum/bookverse/internal/jsonlog"
	"github.com/chinedum/bookverse/repository"
	"github.com/chinedum/bookverse/repository/postgres"
	"github.com/chinedum/bookverse/service"
	"github.com/jellydator/ttlcache/v3"
)

// app defines the application's layers and shared resources.
type app struct {
	config  config.Config
	repo    repository.Repository
	service service.Service
	handler *handler.Handler
}

// @title  Bookverse API
// @version 1.0.0
// @description This is an API service for sharing, rating and commenting on books.
// @termsOfService http://swagger.io/terms/
// @contact.name API Support
// @contact.email chinedum.okafor@yandex.com
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:4000
// @BasePath /
func main() {
	logger := jsonlog.New(os.Stdout, jsonlog.LevelInfo)

	// Initialize configuration from an optional YAML file and the environment
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "Path to YAML configuration file")

	// Command line flags override file and environment values
	port := flag.Int("port", 0, "API server port")
	env := flag.String("env", "", "Environment(development|staging|production)")
	dsn := flag.String("db-dsn", "", "PostgreSQL DSN")
	var corsTrustedOrigins []string
	flag.Func("cors-trusted-origin", "Trusted CORS origin (space separated)", func(s string) error {
		corsTrustedOrigins = strings.Fields(s)
		return nil
	})
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.PrintFatal(err, nil)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *env != "" {
		cfg.Server.Env = *env
	}
	if *dsn != "" {
		cfg.Database.DSN = *dsn
	}
	if corsTrustedOrigins != nil {
		cfg.Cors.TrustedOrigins = corsTrustedOrigins
	}

	// Initialize database connection
	db, err := postgres.OpenDBConn(cfg)
	if err != nil {
		logger.PrintFatal(err, nil)
	}
	defer db.Close()
	logger.PrintInfo("database connection pool established", nil)

	// Other shared resources: waitgroup and in-memory cache
	var wg sync.WaitGroup
	cache := ttlcache.New(ttlcache.WithTTL[string, int64](30 * time.Minute))
	go cache.Start()

	// Application layers
	repo := repository.New(db)
	service := service.New(cfg, &wg, logger, repo)
	handler := handler.New(cfg, logger, cache, service)

	// Instantiate application
	app := &app{
		config:  cfg,
		repo:    repo,
		service: service,
		handler: handler,
	}

	// Start HTTP server
	err = app.serve(&wg, logger)
	if err != nil {
		logger.PrintFatal(err, nil)
	}
}
