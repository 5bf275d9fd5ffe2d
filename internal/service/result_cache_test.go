package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"studymate/internal/adapter/simulated"
	"studymate/internal/domain"
	"studymate/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ManualMockCache for domain.Cache
type ManualMockCache struct {
	GetFunc  func(ctx context.Context, key string) (string, error)
	SetFunc  func(ctx context.Context, key string, value string, ttl time.Duration) error
	PingFunc func(ctx context.Context) error
}

func (m *ManualMockCache) Get(ctx context.Context, key string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	return "", errors.New("GetFunc not set")
}

func (m *ManualMockCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	return errors.New("SetFunc not set")
}

func (m *ManualMockCache) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

// memoryCache is a map-backed cache for round trips.
func memoryCache() (*ManualMockCache, map[string]string) {
	store := map[string]string{}
	return &ManualMockCache{
		GetFunc: func(_ context.Context, key string) (string, error) {
			v, ok := store[key]
			if !ok {
				return "", domain.ErrCacheMiss
			}
			return v, nil
		},
		SetFunc: func(_ context.Context, key, value string, _ time.Duration) error {
			store[key] = value
			return nil
		},
	}, store
}

type countingFlashcards struct {
	calls int
	next  domain.FlashcardGenerator
}

func (c *countingFlashcards) GenerateFlashcards(ctx context.Context, req domain.FlashcardRequest) ([]domain.Flashcard, error) {
	c.calls++
	return c.next.GenerateFlashcards(ctx, req)
}

const notes = "Photosynthesis converts light energy into chemical energy inside the chloroplasts."

func TestCachedFlashcardGenerator_MissThenHit(t *testing.T) {
	c, store := memoryCache()
	inner := &countingFlashcards{next: simulated.NewFlashcardGenerator()}
	gen := service.NewCachedFlashcardGenerator(inner, c, time.Hour)
	ctx := context.Background()
	req := domain.FlashcardRequest{Notes: notes, Language: domain.LanguageEnglish}

	first, err := gen.GenerateFlashcards(ctx, req)
	require.NoError(t, err)
	require.Len(t, store, 1)
	for k := range store {
		assert.True(t, strings.HasPrefix(k, "studymate:flashcards:deck:"), k)
		assert.True(t, strings.HasSuffix(k, ":english"), k)
	}

	second, err := gen.GenerateFlashcards(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.calls)

	_, err = gen.GenerateFlashcards(ctx, domain.FlashcardRequest{Notes: notes, Language: domain.LanguageHindi})
	require.NoError(t, err)
	assert.Equal(t, 2, inner.calls, "language is part of the key")
}

func TestCachedFlashcardGenerator_CacheFailuresFallThrough(t *testing.T) {
	var setCalled bool
	c := &ManualMockCache{
		GetFunc: func(context.Context, string) (string, error) { return "", errors.New("redis down") },
		SetFunc: func(context.Context, string, string, time.Duration) error {
			setCalled = true
			return errors.New("redis down")
		},
	}
	gen := service.NewCachedFlashcardGenerator(simulated.NewFlashcardGenerator(), c, time.Hour)

	cards, err := gen.GenerateFlashcards(context.Background(), domain.FlashcardRequest{Notes: notes})
	require.NoError(t, err)
	assert.Len(t, cards, simulated.FlashcardBatchSize)
	assert.True(t, setCalled)
}

func TestCachedFlashcardGenerator_CorruptEntryIsRegenerated(t *testing.T) {
	c, store := memoryCache()
	gen := service.NewCachedFlashcardGenerator(simulated.NewFlashcardGenerator(), c, time.Hour)
	ctx := context.Background()
	req := domain.FlashcardRequest{Notes: notes, Language: domain.LanguageEnglish}

	_, err := gen.GenerateFlashcards(ctx, req)
	require.NoError(t, err)
	for k := range store {
		store[k] = "{not json"
	}

	cards, err := gen.GenerateFlashcards(ctx, req)
	require.NoError(t, err)
	assert.Len(t, cards, simulated.FlashcardBatchSize)
	for _, v := range store {
		assert.True(t, json.Valid([]byte(v)))
	}
}

func TestCachedSummarizer_KeyIncludesFileName(t *testing.T) {
	c, store := memoryCache()
	s := service.NewCachedSummarizer(simulated.NewSummarizer(), c, time.Hour)
	ctx := context.Background()
	content := []byte("%PDF-1.4 same bytes")

	a, err := s.Summarize(ctx, domain.UploadedFile{Name: "a.pdf", Content: content})
	require.NoError(t, err)
	b, err := s.Summarize(ctx, domain.UploadedFile{Name: "b.pdf", Content: content})
	require.NoError(t, err)

	assert.Len(t, store, 2)
	assert.Equal(t, "a.pdf", a.FileName)
	assert.Equal(t, "b.pdf", b.FileName)
}

func TestCachedStudyPlanGenerator_ProducerErrorIsNotCached(t *testing.T) {
	c, store := memoryCache()
	g := service.NewCachedStudyPlanGenerator(simulated.NewStudyPlanGenerator(), c, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := g.GenerateStudyPlan(ctx, notes)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, store)

	steps, err := g.GenerateStudyPlan(context.Background(), notes)
	require.NoError(t, err)
	assert.Len(t, steps, 5)
	assert.Len(t, store, 1)
}
