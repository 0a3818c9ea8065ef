package handlers

import (
	"time"

	"go.uber.org/zap"

	"resto-dashboard/internal/config"
	"resto-dashboard/internal/order"
)

type Handler struct {
	Repo     order.Repository
	Logger   *zap.Logger
	Config   config.Config
	Location *time.Location

	cache *reportCache
}

func New(repo order.Repository, logger *zap.Logger, cfg config.Config, loc *time.Location) *Handler {
	return &Handler{
		Repo:     repo,
		Logger:   logger,
		Config:   cfg,
		Location: loc,
		cache:    newReportCache(),
	}
}
