package adapter

import (
	"context"
	"time"

	"studymate/internal/domain"
)

// NopCache is used when no Redis is configured: every Get misses and
// writes are dropped.
type NopCache struct{}

func NewNopCache() domain.Cache {
	return NopCache{}
}

func (NopCache) Get(context.Context, string) (string, error) {
	return "", domain.ErrCacheMiss
}

func (NopCache) Set(context.Context, string, string, time.Duration) error { return nil }

func (NopCache) Ping(context.Context) error { return nil }
