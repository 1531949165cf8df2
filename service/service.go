package service

import (
	"github.com/rayal-systems/bookapi/config"
	"github.com/rayal-systems/bookapi/internal/jsonlog"
	"github.com/rayal-systems/bookapi/repository"
)

type Service interface {
	books
	authors
	categories
	countries
	reviewers
	reviews
}

// service defines the app's service layer.
type service struct {
	config config.Config
	logger *jsonlog.Logger
	repo   repository.Repository
}

// New creates a new instance of Service.
func New(cfg config.Config, logger *jsonlog.Logger, repo repository.Repository) *service {
	return &service{
		config: cfg,
		logger: logger,
		repo:   repo,
	}
}
