package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"studymate/internal/service"
	"studymate/internal/session"

	"github.com/stretchr/testify/assert"
)

func TestHealthService_Check(t *testing.T) {
	store := session.NewStore(func() session.Pages { return session.Pages{} }, time.Hour)

	t.Run("CacheReachable", func(t *testing.T) {
		var pinged bool
		svc := service.NewHealthService(store, &ManualMockCache{PingFunc: func(ctx context.Context) error {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			pinged = true
			return nil
		}})

		resp := svc.Check(context.Background())
		assert.True(t, pinged)
		assert.Equal(t, service.HealthOK, resp.Status)
		assert.Equal(t, service.HealthOK, resp.Cache)
		assert.Equal(t, 0, resp.Sessions)
	})

	t.Run("CacheDown", func(t *testing.T) {
		svc := service.NewHealthService(store, &ManualMockCache{PingFunc: func(context.Context) error {
			return errors.New("dial tcp: connection refused")
		}})

		resp := svc.Check(context.Background())
		assert.Equal(t, service.HealthDegraded, resp.Status)
		assert.Equal(t, "dial tcp: connection refused", resp.Cache)
	})
}
