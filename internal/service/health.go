package service

import (
	"context"
	"time"

	"studymate/internal/domain"
	"studymate/internal/dto"
	"studymate/internal/logger"
	"studymate/internal/session"

	"go.uber.org/zap"
)

const (
	HealthOK       = "ok"
	HealthDegraded = "degraded"

	pingTimeout = 2 * time.Second
)

// HealthService reports whether the instance is ready to serve.
type HealthService interface {
	Check(ctx context.Context) *dto.HealthResponse
}

type healthService struct {
	store *session.Store
	cache domain.Cache
}

func NewHealthService(store *session.Store, c domain.Cache) HealthService {
	return &healthService{store: store, cache: c}
}

// Check pings the result cache. An unreachable cache degrades the instance
// without stopping generation, which falls through to the producers.
func (s *healthService) Check(ctx context.Context) *dto.HealthResponse {
	resp := &dto.HealthResponse{Status: HealthOK, Cache: HealthOK, Sessions: s.store.Len()}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := s.cache.Ping(pingCtx); err != nil {
		logger.Get().Warn("Result cache ping failed", zap.Error(err))
		resp.Status = HealthDegraded
		resp.Cache = err.Error()
	}
	return resp
}
