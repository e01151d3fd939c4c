package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig(t *testing.T) *Config {
	t.Helper()
	registry := NewLLMProviderRegistry(map[string]*LLMProviderConfig{
		"openai-default": {
			Model:               "gpt-4o",
			BaseURL:             "https://api.openai.com/v1",
			MaxToolResultTokens: 4000,
		},
	})
	return &Config{
		DefaultLLM:   "openai-default",
		LLMProviders: registry,
		Similarity:   DefaultSimilarityConfig(),
		ToolQuotas:   DefaultToolQuotaConfig(),
		Admission:    DefaultAdmissionConfig(),
		Orchestrator: DefaultOrchestratorConfig(),
		External: &ExternalConfig{
			EmbedderURL:        "http://embedder.local",
			ImageHashURL:       "http://imghash.local",
			ScreenshotURL:      "http://screenshot.local",
			SearchURL:          "http://search.local",
			URLScanURL:         "http://urlscan.local",
			VotingWebhookURL:   "http://voting.local",
			HTTPTimeoutSeconds: 30,
			BlobCacheDir:       "/tmp/checkmate-blobcache",
		},
	}
}

func TestValidateAll_HappyPath(t *testing.T) {
	require.NoError(t, NewValidator(validConfig(t)).ValidateAll())
}

func TestValidateAll_RejectsOutOfRangeThreshold(t *testing.T) {
	cfg := validConfig(t)
	cfg.Similarity.TextScoreThreshold = 1.5

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestValidateAll_RejectsNegativeToolQuota(t *testing.T) {
	cfg := validConfig(t)
	cfg.ToolQuotas.SearchGoogle = -1

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestValidateAll_RejectsUnknownDefaultLLM(t *testing.T) {
	cfg := validConfig(t)
	cfg.DefaultLLM = "does-not-exist"

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestValidateAll_RequiresAtLeastOneProvider(t *testing.T) {
	cfg := validConfig(t)
	cfg.LLMProviders = NewLLMProviderRegistry(map[string]*LLMProviderConfig{})
	cfg.DefaultLLM = ""

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingRequiredField)
}

func TestValidateAll_RejectsJitterNotLessThanPollInterval(t *testing.T) {
	cfg := validConfig(t)
	cfg.Orchestrator.PollInterval = cfg.Orchestrator.PollIntervalJitter

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
}
