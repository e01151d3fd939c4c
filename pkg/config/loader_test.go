package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testExternalYAML supplies the external-service URLs every valid
// checkmate.yaml must carry.
const testExternalYAML = `
external:
  embedder_url: http://embedder.local
  image_hash_url: http://imghash.local
  screenshot_url: http://screenshot.local
  search_url: http://search.local
  urlscan_url: http://urlscan.local
  voting_webhook_url: http://voting.local
`

func writeCheckmateYAML(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "checkmate.yaml"), []byte(content), 0644))
}

func TestInitialize(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("OPENAI_API_KEY", "test-key")
	writeCheckmateYAML(t, dir, testExternalYAML+`
default_llm: openai-default
llm_providers:
  openai-default:
    model: gpt-4o
    base_url: https://api.openai.com/v1
    api_key_env: OPENAI_API_KEY
    max_tool_result_tokens: 4000
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, 0.85, cfg.Similarity.TextScoreThreshold)
	assert.Equal(t, 31, cfg.Similarity.HammingThreshold)
	assert.Equal(t, 1, cfg.LLMProviders.Len())

	provider, err := cfg.GetLLMProvider("")
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", provider.Model)
}

func TestInitializeOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	writeCheckmateYAML(t, dir, testExternalYAML+`
default_llm: openai-default
server:
  address: ":9090"
similarity:
  text_score_threshold: 0.9
  hamming_threshold: 20
llm_providers:
  openai-default:
    model: gpt-4o
    base_url: https://api.openai.com/v1
    max_tool_result_tokens: 4000
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, 0.9, cfg.Similarity.TextScoreThreshold)
	assert.Equal(t, 20, cfg.Similarity.HammingThreshold)
	// Untouched fields keep their built-in defaults.
	assert.Equal(t, 10, cfg.Similarity.CandidateMultiplier)
}

func TestInitializeConfigNotFound(t *testing.T) {
	_, err := Initialize(context.Background(), "/nonexistent/directory")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestInitializeInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeCheckmateYAML(t, dir, `{{{`)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestInitializeRequiresAtLeastOneProvider(t *testing.T) {
	dir := t.TempDir()
	writeCheckmateYAML(t, dir, testExternalYAML+`default_llm: openai-default`)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one llm_providers entry is required")
}

func TestInitializeRejectsUnknownDefaultLLM(t *testing.T) {
	dir := t.TempDir()
	writeCheckmateYAML(t, dir, testExternalYAML+`
default_llm: does-not-exist
llm_providers:
  openai-default:
    model: gpt-4o
    base_url: https://api.openai.com/v1
    max_tool_result_tokens: 4000
`)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidReference)
}
