package handler

import (
	"github.com/jellydator/ttlcache/v3"
	"github.com/rayal-systems/bookapi/config"
	"github.com/rayal-systems/bookapi/internal/jsonlog"
	"github.com/rayal-systems/bookapi/service"
)

// Handler defines Handler layer.
type Handler struct {
	config  config.Config
	logger  *jsonlog.Logger
	cache   *ttlcache.Cache[string, float64]
	service service.Service
}

// New creates a new instance of Handler.
func New(cfg config.Config, logger *jsonlog.Logger, cache *ttlcache.Cache[string, float64], service service.Service) *Handler {
	return &Handler{
		config:  cfg,
		logger:  logger,
		cache:   cache,
		service: service,
	}
}
