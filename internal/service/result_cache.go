package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"studymate/internal/cache"
	"studymate/internal/domain"
	"studymate/internal/logger"

	"go.uber.org/zap"
)

// cached returns the result stored under key, or produces and stores it.
// A cache failure never fails a generation: reads fall through to the
// producer and failed writes are only logged.
func cached[T any](ctx context.Context, c domain.Cache, ttl time.Duration, key string, produce func() (T, error)) (T, error) {
	data, err := c.Get(ctx, key)
	switch {
	case err == nil && data != "":
		var out T
		uerr := json.Unmarshal([]byte(data), &out)
		if uerr == nil {
			logger.Get().Debug("Generated result served from cache", zap.String("key", key))
			return out, nil
		}
		logger.Get().Warn("Failed to unmarshal cached result", zap.String("key", key), zap.Error(uerr))
	case err != nil && !errors.Is(err, domain.ErrCacheMiss):
		logger.Get().Warn("Failed to read generated result from cache", zap.String("key", key), zap.Error(err))
	}

	out, err := produce()
	if err != nil {
		return out, err
	}

	dataBytes, err := json.Marshal(out)
	if err != nil {
		logger.Get().Error("Failed to marshal generated result for caching", zap.String("key", key), zap.Error(err))
		return out, nil
	}
	if err := c.Set(ctx, key, string(dataBytes), ttl); err != nil {
		logger.Get().Warn("Failed to cache generated result", zap.String("key", key), zap.Error(err))
		return out, nil
	}
	logger.Get().Debug("Cached generated result", zap.String("key", key), zap.Duration("ttl", ttl))
	return out, nil
}

type cachedSummarizer struct {
	next  domain.Summarizer
	cache domain.Cache
	ttl   time.Duration
}

// NewCachedSummarizer keys summaries by file name and content.
func NewCachedSummarizer(next domain.Summarizer, c domain.Cache, ttl time.Duration) domain.Summarizer {
	return &cachedSummarizer{next: next, cache: c, ttl: ttl}
}

func (s *cachedSummarizer) Summarize(ctx context.Context, file domain.UploadedFile) (*domain.Summary, error) {
	key := cache.GenerateCacheKey("summary", "document", cache.Digest([]byte(file.Name), file.Content))
	return cached(ctx, s.cache, s.ttl, key, func() (*domain.Summary, error) {
		return s.next.Summarize(ctx, file)
	})
}

type cachedFlashcardGenerator struct {
	next  domain.FlashcardGenerator
	cache domain.Cache
	ttl   time.Duration
}

func NewCachedFlashcardGenerator(next domain.FlashcardGenerator, c domain.Cache, ttl time.Duration) domain.FlashcardGenerator {
	return &cachedFlashcardGenerator{next: next, cache: c, ttl: ttl}
}

func (g *cachedFlashcardGenerator) GenerateFlashcards(ctx context.Context, req domain.FlashcardRequest) ([]domain.Flashcard, error) {
	key := cache.GenerateCacheKey("flashcards", "deck", cache.Digest([]byte(req.Notes)), string(req.Language))
	return cached(ctx, g.cache, g.ttl, key, func() ([]domain.Flashcard, error) {
		return g.next.GenerateFlashcards(ctx, req)
	})
}

type cachedStudyPlanGenerator struct {
	next  domain.StudyPlanGenerator
	cache domain.Cache
	ttl   time.Duration
}

func NewCachedStudyPlanGenerator(next domain.StudyPlanGenerator, c domain.Cache, ttl time.Duration) domain.StudyPlanGenerator {
	return &cachedStudyPlanGenerator{next: next, cache: c, ttl: ttl}
}

func (g *cachedStudyPlanGenerator) GenerateStudyPlan(ctx context.Context, notes string) ([]domain.StudyStep, error) {
	key := cache.GenerateCacheKey("studyplan", "plan", cache.Digest([]byte(notes)))
	return cached(ctx, g.cache, g.ttl, key, func() ([]domain.StudyStep, error) {
		return g.next.GenerateStudyPlan(ctx, notes)
	})
}
