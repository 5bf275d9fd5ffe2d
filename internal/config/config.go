package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Logger     LoggerConfig
	Redis      RedisConfig
	Generation GenerationConfig
	Upload     UploadConfig
	Session    SessionConfig
	Tutor      TutorConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type LoggerConfig struct {
	Level string
	Env   string
}

// RedisConfig is optional. An empty Address disables the result cache.
type RedisConfig struct {
	Address  string        `yaml:"address"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	TTL      time.Duration `yaml:"ttl"`
}

// GenerationConfig holds the simulated latency of each generating page and
// the minimum note length accepted by the text-driven pages.
type GenerationConfig struct {
	SummaryDelay   time.Duration
	FlashcardDelay time.Duration
	StudyPlanDelay time.Duration
	TutorDelay     time.Duration
	MinNoteLength  int
}

type UploadConfig struct {
	MaxBytes int64
}

type SessionConfig struct {
	IdleTTL       time.Duration
	SweepInterval time.Duration
}

type TutorConfig struct {
	// Seed of the reply picker. Zero means seed from the clock.
	Seed uint64
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", 20)
	v.SetDefault("server.write_timeout", 20)
	v.SetDefault("server.idle_timeout", 20)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.env", "development")

	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", "24h")

	v.SetDefault("generation.summary_delay", "3s")
	v.SetDefault("generation.flashcard_delay", "3s")
	v.SetDefault("generation.study_plan_delay", "2500ms")
	v.SetDefault("generation.tutor_delay", "2s")
	v.SetDefault("generation.min_note_length", 50)

	v.SetDefault("upload.max_bytes", 10*1024*1024)

	v.SetDefault("session.idle_ttl", "30m")
	v.SetDefault("session.sweep_interval", "1m")

	v.SetDefault("tutor.seed", 0)
}

// LoadConfig reads config.yaml when present and applies environment
// overrides on top of the defaults. A missing file is not an error.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setDefaults(v)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  time.Duration(v.GetInt("server.read_timeout")) * time.Second,
			WriteTimeout: time.Duration(v.GetInt("server.write_timeout")) * time.Second,
			IdleTimeout:  time.Duration(v.GetInt("server.idle_timeout")) * time.Second,
		},
		Logger: LoggerConfig{
			Level: v.GetString("logger.level"),
			Env:   v.GetString("logger.env"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
			TTL:      v.GetDuration("redis.ttl"),
		},
		Generation: GenerationConfig{
			SummaryDelay:   v.GetDuration("generation.summary_delay"),
			FlashcardDelay: v.GetDuration("generation.flashcard_delay"),
			StudyPlanDelay: v.GetDuration("generation.study_plan_delay"),
			TutorDelay:     v.GetDuration("generation.tutor_delay"),
			MinNoteLength:  v.GetInt("generation.min_note_length"),
		},
		Upload: UploadConfig{
			MaxBytes: v.GetInt64("upload.max_bytes"),
		},
		Session: SessionConfig{
			IdleTTL:       v.GetDuration("session.idle_ttl"),
			SweepInterval: v.GetDuration("session.sweep_interval"),
		},
		Tutor: TutorConfig{
			Seed: v.GetUint64("tutor.seed"),
		},
	}

	// Override with environment variables if set
	if port := os.Getenv("SERVER_PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid SERVER_PORT %q: %w", port, err)
		}
		cfg.Server.Port = p
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Logger.Level = level
	}
	if env := os.Getenv("ENV"); env != "" {
		cfg.Logger.Env = env
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		cfg.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		cfg.Redis.Password = redisPassword
	}
	if seed := os.Getenv("TUTOR_SEED"); seed != "" {
		s, err := strconv.ParseUint(seed, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid TUTOR_SEED %q: %w", seed, err)
		}
		cfg.Tutor.Seed = s
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the pages cannot run with.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	if c.Generation.MinNoteLength < 1 {
		return fmt.Errorf("generation.min_note_length must be positive, got %d", c.Generation.MinNoteLength)
	}
	for name, d := range map[string]time.Duration{
		"generation.summary_delay":    c.Generation.SummaryDelay,
		"generation.flashcard_delay":  c.Generation.FlashcardDelay,
		"generation.study_plan_delay": c.Generation.StudyPlanDelay,
		"generation.tutor_delay":      c.Generation.TutorDelay,
	} {
		if d < 0 {
			return fmt.Errorf("%s must not be negative, got %s", name, d)
		}
	}
	if c.Upload.MaxBytes <= 0 {
		return fmt.Errorf("upload.max_bytes must be positive, got %d", c.Upload.MaxBytes)
	}
	if c.Session.IdleTTL <= 0 || c.Session.SweepInterval <= 0 {
		return fmt.Errorf("session.idle_ttl and session.sweep_interval must be positive")
	}
	return nil
}
