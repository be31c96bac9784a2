package service

import (
	"sync"

	"github.com/chinedum/bookverse/config"
	"github.com/chinedum/bookverse/internal/jsonlog"
	"github.com/chinedum/bookverse/repository"
)

type Service interface {
	books
	comments
	users
	tokens
	failedValidation(map[string]string) error
}

// service defines a service layer. The waitgroup is shared with the server so
// that graceful shutdown waits for background tasks.
type service struct {
	config config.Config
	wg     *sync.WaitGroup
	logger *jsonlog.Logger
	repo   repository.Repository
}

// New creates a new instance of Service.
func New(cfg config.Config, wg *sync.WaitGroup, logger *jsonlog.Logger, repo repository.Repository) *service {
	return &service{
		config: cfg,
		wg:     wg,
		logger: logger,
		repo:   repo,
	}
}
