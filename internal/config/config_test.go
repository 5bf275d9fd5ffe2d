package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, 8090, cfg.Server.Port)
	assert.Equal(t, 20*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 3*time.Second, cfg.Generation.SummaryDelay)
	assert.Equal(t, 3*time.Second, cfg.Generation.FlashcardDelay)
	assert.Equal(t, 2500*time.Millisecond, cfg.Generation.StudyPlanDelay)
	assert.Equal(t, 2*time.Second, cfg.Generation.TutorDelay)
	assert.Equal(t, 50, cfg.Generation.MinNoteLength)
	assert.Equal(t, int64(10*1024*1024), cfg.Upload.MaxBytes)
	assert.Equal(t, 30*time.Minute, cfg.Session.IdleTTL)
	assert.Empty(t, cfg.Redis.Address)
	assert.Equal(t, 24*time.Hour, cfg.Redis.TTL)
}

func TestFromViper_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9100")
	t.Setenv("REDIS_ADDRESS", "localhost:6379")
	t.Setenv("TUTOR_SEED", "42")
	t.Setenv("LOG_LEVEL", "debug")

	v := viper.New()
	setDefaults(v)

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, "localhost:6379", cfg.Redis.Address)
	assert.Equal(t, uint64(42), cfg.Tutor.Seed)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestFromViper_InvalidPortEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-port")

	v := viper.New()
	setDefaults(v)

	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	base, err := fromViper(v)
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"zero note length", func(c *Config) { c.Generation.MinNoteLength = 0 }},
		{"negative delay", func(c *Config) { c.Generation.TutorDelay = -time.Second }},
		{"zero upload limit", func(c *Config) { c.Upload.MaxBytes = 0 }},
		{"zero session ttl", func(c *Config) { c.Session.IdleTTL = 0 }},
		{"port out of range", func(c *Config) { c.Server.Port = 70000 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := *base
			tt.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}
