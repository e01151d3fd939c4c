package config

// ToolQuotaConfig holds the default per-check quota for each
// externally-billed tool the agent loop may call. The three tools
// tracked here are the ones whose remaining count is reported in the
// agent loop's system message.
type ToolQuotaConfig struct {
	SearchGoogle         int `yaml:"search_google" validate:"gte=0"`
	GetWebsiteScreenshot int `yaml:"get_website_screenshot" validate:"gte=0"`
	CheckMaliciousURL    int `yaml:"check_malicious_url" validate:"gte=0"`
}

// DefaultToolQuotaConfig returns the built-in per-check tool quotas.
func DefaultToolQuotaConfig() *ToolQuotaConfig {
	return &ToolQuotaConfig{
		SearchGoogle:         8,
		GetWebsiteScreenshot: 5,
		CheckMaliciousURL:    5,
	}
}
