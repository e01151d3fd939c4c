// Package config loads and validates CheckMate's runtime configuration:
// a single checkmate.yaml file (LLM providers, similarity thresholds, tool
// quotas, consumer admission defaults, orchestrator worker-pool sizing,
// and Slack moderator-channel settings), layered over built-in defaults
// and environment variable expansion.
package config

// Config is the umbrella configuration object returned by Initialize and
// threaded through the application.
type Config struct {
	configDir string

	Server       *ServerConfig
	Similarity   *SimilarityConfig
	ToolQuotas   *ToolQuotaConfig
	Admission    *AdmissionConfig
	Orchestrator *OrchestratorConfig
	External     *ExternalConfig
	Slack        *SlackConfig
	DefaultLLM   string
	LLMProviders *LLMProviderRegistry
}

// ConfigDir returns the configuration directory path.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// GetLLMProvider retrieves an LLM provider configuration by name, falling
// back to DefaultLLM when name is empty.
func (c *Config) GetLLMProvider(name string) (*LLMProviderConfig, error) {
	if name == "" {
		name = c.DefaultLLM
	}
	return c.LLMProviders.Get(name)
}
