package config

// ServerConfig holds the HTTP API listener settings.
type ServerConfig struct {
	Address string `yaml:"address"`

	// AdminKeyEnv names the environment variable holding the shared secret
	// that gates the consumer-management endpoints (spec.md §6's "admin
	// endpoints using signed headers" clause), distinct from the
	// per-consumer x-api-key used by every other endpoint.
	AdminKeyEnv string `yaml:"admin_key_env"`
}

// SlackConfig holds resolved moderator-channel notification settings (C9).
type SlackConfig struct {
	Enabled         bool   // Whether the moderator channel is wired up
	TokenEnv        string // Env var name containing the bot token (default: "SLACK_BOT_TOKEN")
	Channel         string // Moderator channel id/name
	LangfuseBaseURL string // Base URL for the "View on LangFuse" button; omitted when empty
}

// SlackYAMLConfig is the raw YAML shape for Slack settings, mirroring the
// source file's optional-pointer convention so "unset" and "false" are
// distinguishable.
type SlackYAMLConfig struct {
	Enabled         *bool  `yaml:"enabled,omitempty"`
	TokenEnv        string `yaml:"token_env,omitempty"`
	Channel         string `yaml:"channel,omitempty"`
	LangfuseBaseURL string `yaml:"langfuse_base_url,omitempty"`
}

func resolveSlackConfig(raw *SlackYAMLConfig) *SlackConfig {
	cfg := &SlackConfig{
		Enabled:  false,
		TokenEnv: "SLACK_BOT_TOKEN",
	}
	if raw == nil {
		return cfg
	}
	if raw.Enabled != nil {
		cfg.Enabled = *raw.Enabled
	}
	if raw.TokenEnv != "" {
		cfg.TokenEnv = raw.TokenEnv
	}
	if raw.Channel != "" {
		cfg.Channel = raw.Channel
	}
	if raw.LangfuseBaseURL != "" {
		cfg.LangfuseBaseURL = raw.LangfuseBaseURL
	}
	return cfg
}
