package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_WithEnvVars(t *testing.T) {
	os.Setenv("DOCFAQ_PORT", "9090")
	os.Setenv("DOCFAQ_DEBUG", "true")
	os.Setenv("DOCFAQ_DOC_PATH", "/srv/docs/faq.pdf")
	os.Setenv("DOCFAQ_POLL_INTERVAL", "5s")
	os.Setenv("DOCFAQ_SCORE_THRESHOLD", "0.5")
	defer func() {
		os.Unsetenv("DOCFAQ_PORT")
		os.Unsetenv("DOCFAQ_DEBUG")
		os.Unsetenv("DOCFAQ_DOC_PATH")
		os.Unsetenv("DOCFAQ_POLL_INTERVAL")
		os.Unsetenv("DOCFAQ_SCORE_THRESHOLD")
	}()

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "/srv/docs/faq.pdf", cfg.DocPath)
	assert.Equal(t, 5*time.Second, cfg.PollInterval)
	assert.Equal(t, 0.5, cfg.ScoreThreshold)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.Debug)
	assert.Equal(t, 30*time.Second, cfg.PollInterval)
	assert.Equal(t, 0.35, cfg.ScoreThreshold)
	assert.Equal(t, 8, cfg.MaxKeywords)
	assert.Equal(t, 300, cfg.MaxFallbackEntries)
	assert.Equal(t, "docfaq-documents", cfg.S3Bucket)
	assert.Equal(t, "us-east-1", cfg.S3Region)
	assert.NotEmpty(t, cfg.FallbackMessage)
}

func TestHasS3(t *testing.T) {
	cfg := &Config{
		S3Endpoint:  "http://localhost:9000",
		S3AccessKey: "key",
		S3SecretKey: "secret",
		S3ObjectKey: "docs/faq.pdf",
	}
	assert.True(t, cfg.HasS3())

	cfg.S3ObjectKey = ""
	assert.False(t, cfg.HasS3())
}

func TestHasLocalDoc(t *testing.T) {
	cfg := &Config{DocPath: "./faq.md"}
	assert.True(t, cfg.HasLocalDoc())

	cfg.DocPath = ""
	assert.False(t, cfg.HasLocalDoc())
}
