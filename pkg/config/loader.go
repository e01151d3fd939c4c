package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// CheckmateYAMLConfig represents the complete checkmate.yaml file structure.
type CheckmateYAMLConfig struct {
	Server       *ServerConfig                `yaml:"server"`
	DefaultLLM   string                       `yaml:"default_llm"`
	LLMProviders map[string]LLMProviderConfig `yaml:"llm_providers"`
	Similarity   *SimilarityConfig            `yaml:"similarity"`
	ToolQuotas   *ToolQuotaConfig             `yaml:"tool_quotas"`
	Admission    *AdmissionConfig             `yaml:"admission"`
	Orchestrator *OrchestratorConfig          `yaml:"orchestrator"`
	External     *ExternalConfig              `yaml:"external"`
	Slack        *SlackYAMLConfig             `yaml:"slack"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load checkmate.yaml from configDir
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Merge user-provided sections onto built-in defaults
//  5. Build the LLM provider registry
//  6. Validate all configuration
//  7. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized successfully",
		"llm_providers", cfg.LLMProviders.Len(),
		"default_llm", cfg.DefaultLLM)

	return cfg, nil
}

func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{configDir: configDir}

	raw, err := loader.loadCheckmateYAML()
	if err != nil {
		return nil, NewLoadError("checkmate.yaml", err)
	}

	similarity := DefaultSimilarityConfig()
	if raw.Similarity != nil {
		if err := mergo.Merge(similarity, raw.Similarity, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge similarity config: %w", err)
		}
	}

	toolQuotas := DefaultToolQuotaConfig()
	if raw.ToolQuotas != nil {
		if err := mergo.Merge(toolQuotas, raw.ToolQuotas, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge tool quota config: %w", err)
		}
	}

	admission := DefaultAdmissionConfig()
	if raw.Admission != nil {
		if err := mergo.Merge(admission, raw.Admission, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge admission config: %w", err)
		}
	}

	orchestrator := DefaultOrchestratorConfig()
	if raw.Orchestrator != nil {
		if err := mergo.Merge(orchestrator, raw.Orchestrator, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge orchestrator config: %w", err)
		}
	}

	external := DefaultExternalConfig()
	if raw.External != nil {
		if err := mergo.Merge(external, raw.External, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge external config: %w", err)
		}
	}

	server := &ServerConfig{Address: ":8080", AdminKeyEnv: "CHECKMATE_ADMIN_KEY"}
	if raw.Server != nil && raw.Server.Address != "" {
		server.Address = raw.Server.Address
	}
	if raw.Server != nil && raw.Server.AdminKeyEnv != "" {
		server.AdminKeyEnv = raw.Server.AdminKeyEnv
	}

	providers := make(map[string]*LLMProviderConfig, len(raw.LLMProviders))
	for name, p := range raw.LLMProviders {
		providerCopy := p
		providers[name] = &providerCopy
	}

	return &Config{
		configDir:    configDir,
		Server:       server,
		Similarity:   similarity,
		ToolQuotas:   toolQuotas,
		Admission:    admission,
		Orchestrator: orchestrator,
		External:     external,
		Slack:        resolveSlackConfig(raw.Slack),
		DefaultLLM:   raw.DefaultLLM,
		LLMProviders: NewLLMProviderRegistry(providers),
	}, nil
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Note: ExpandEnv has no error path; whatever it returns goes
	// straight to the YAML parser, which reports malformed content.
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadCheckmateYAML() (*CheckmateYAMLConfig, error) {
	var cfg CheckmateYAMLConfig
	cfg.LLMProviders = make(map[string]LLMProviderConfig)

	if err := l.loadYAML("checkmate.yaml", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	return NewValidator(cfg).ValidateAll()
}
