package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Validator validates configuration comprehensively with clear error messages.
type Validator struct {
	cfg      *Config
	validate *validator.Validate
}

// NewValidator creates a validator for the given configuration.
func NewValidator(cfg *Config) *Validator {
	return &Validator{cfg: cfg, validate: validator.New()}
}

// ValidateAll performs comprehensive validation (fail-fast — stops at the
// first error).
func (v *Validator) ValidateAll() error {
	if err := v.validateStructTags(); err != nil {
		return err
	}

	if err := v.validateLLMProviders(); err != nil {
		return fmt.Errorf("LLM provider validation failed: %w", err)
	}

	if v.cfg.Orchestrator.PollIntervalJitter >= v.cfg.Orchestrator.PollInterval {
		return fmt.Errorf("%w: orchestrator poll_interval_jitter (%v) must be less than poll_interval (%v)",
			ErrInvalidValue, v.cfg.Orchestrator.PollIntervalJitter, v.cfg.Orchestrator.PollInterval)
	}

	return nil
}

// validateStructTags runs go-playground/validator's tag-based checks over
// every section with `validate:"..."` struct tags.
func (v *Validator) validateStructTags() error {
	sections := map[string]any{
		"similarity":   v.cfg.Similarity,
		"tool_quotas":  v.cfg.ToolQuotas,
		"admission":    v.cfg.Admission,
		"orchestrator": v.cfg.Orchestrator,
		"external":     v.cfg.External,
	}
	for name, section := range sections {
		if err := v.validate.Struct(section); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrValidationFailed, name, err)
		}
	}
	return nil
}

func (v *Validator) validateLLMProviders() error {
	providers := v.cfg.LLMProviders.GetAll()
	if len(providers) == 0 {
		return fmt.Errorf("%w: at least one llm_providers entry is required", ErrMissingRequiredField)
	}

	if v.cfg.DefaultLLM != "" {
		if _, ok := providers[v.cfg.DefaultLLM]; !ok {
			return fmt.Errorf("%w: default_llm %q is not defined in llm_providers", ErrInvalidReference, v.cfg.DefaultLLM)
		}
	}

	for name, provider := range providers {
		if err := v.validate.Struct(provider); err != nil {
			return fmt.Errorf("provider %q: %w", name, err)
		}
	}

	return nil
}
