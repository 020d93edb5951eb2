package config

import (
	"log"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// AppConfig описывает конфигурацию сервиса анализа.
type AppConfig struct {
	AppEnv      string `envconfig:"APP_ENV" default:"dev"`
	Port        int    `envconfig:"PORT" default:"8080"`
	MetricsPort int    `envconfig:"METRICS_PORT" default:"9090"`

	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`

	MaxFileSizeMB int64 `envconfig:"MAX_FILE_SIZE_MB" default:"50"`

	Analysis struct {
		TopN             int `envconfig:"DEFAULT_TOP_N" default:"50"`
		MinWordLength    int `envconfig:"MIN_WORD_LENGTH" default:"2"`
		MinMessageLength int `envconfig:"MIN_MESSAGE_LENGTH" default:"2"`
		MinWordCount     int `envconfig:"MIN_WORD_COUNT" default:"2"`
		MinMessageCount  int `envconfig:"MIN_MESSAGE_COUNT" default:"2"`
	} `envconfig:""`

	Demo struct {
		Enabled         bool          `envconfig:"ENABLE_DEMO_MODE" default:"false"`
		TriggerFilename string        `envconfig:"DEMO_TRIGGER_FILENAME" default:"demo.txt"`
		Delay           time.Duration `envconfig:"DEMO_DELAY" default:"2s"`
		CacheTTL        time.Duration `envconfig:"DEMO_CACHE_TTL" default:"24h"`
	} `envconfig:""`

	RedisAddr string `envconfig:"REDIS_ADDR"`
}

// MaxFileSizeBytes возвращает лимит загрузки в байтах.
func (c AppConfig) MaxFileSizeBytes() int64 {
	return c.MaxFileSizeMB * 1024 * 1024
}

// Load загружает конфиг из окружения.
func Load() AppConfig {
	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("не удалось загрузить конфиг: %v", err)
	}
	return cfg
}
