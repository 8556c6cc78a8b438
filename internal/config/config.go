package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port  string `envconfig:"PORT" default:"8080"`
	Debug bool   `envconfig:"DEBUG" default:"false"`

	// Source document: a local path, or an S3 object when the S3
	// settings are present. S3 wins when both are configured.
	DocPath      string        `envconfig:"DOC_PATH"`
	PollInterval time.Duration `envconfig:"POLL_INTERVAL" default:"30s"`

	S3Endpoint  string `envconfig:"S3_ENDPOINT"`
	S3AccessKey string `envconfig:"S3_ACCESS_KEY_ID"`
	S3SecretKey string `envconfig:"S3_SECRET_ACCESS_KEY"`
	S3Bucket    string `envconfig:"S3_BUCKET" default:"docfaq-documents"`
	S3Region    string `envconfig:"S3_REGION" default:"us-east-1"`
	S3ObjectKey string `envconfig:"S3_OBJECT_KEY"`

	// Static API key guarding the knowledge and reload endpoints; the
	// query endpoint stays open. Empty disables auth.
	APIKey string `envconfig:"API_KEY"`

	// Matching heuristics. These are tuned values, not structural
	// invariants; the defaults mirror service.DefaultEngineConfig.
	ScoreThreshold     float64 `envconfig:"SCORE_THRESHOLD" default:"0.35"`
	MaxKeywords        int     `envconfig:"MAX_KEYWORDS" default:"8"`
	MaxFallbackEntries int     `envconfig:"MAX_FALLBACK_ENTRIES" default:"300"`
	FallbackMessage    string  `envconfig:"FALLBACK_MESSAGE" default:"I couldn't confidently match that question. Try rephrasing it."`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("DOCFAQ", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return cfg
}

func (c *Config) HasS3() bool {
	return c.S3Endpoint != "" && c.S3AccessKey != "" && c.S3SecretKey != "" && c.S3ObjectKey != ""
}

func (c *Config) HasLocalDoc() bool {
	return c.DocPath != ""
}
