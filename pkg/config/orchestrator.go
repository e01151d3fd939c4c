package config

import "time"

// OrchestratorConfig contains worker-pool configuration for the pipeline
// orchestrator (C6): how many checks run concurrently, how workers poll
// for pending submissions, and orphan-recovery timing.
type OrchestratorConfig struct {
	// WorkerCount is the number of worker goroutines per replica.
	WorkerCount int `yaml:"worker_count" validate:"gte=1,lte=50"`

	// MaxConcurrentChecks is the global limit of checks being processed
	// across all replicas, enforced by a database COUNT(*) check.
	MaxConcurrentChecks int `yaml:"max_concurrent_checks" validate:"gte=1"`

	// PollInterval is the base interval for claiming pending submissions.
	PollInterval time.Duration `yaml:"poll_interval" validate:"gt=0"`

	// PollIntervalJitter is random jitter added to PollInterval.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter" validate:"gte=0"`

	// CheckTimeout is the maximum time a single check's pipeline may run.
	CheckTimeout time.Duration `yaml:"check_timeout" validate:"gt=0"`

	// GracefulShutdownTimeout bounds how long Stop waits for active checks.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout" validate:"gt=0"`

	// OrphanDetectionInterval is how often to scan for stale in-progress checks.
	OrphanDetectionInterval time.Duration `yaml:"orphan_detection_interval" validate:"gt=0"`

	// OrphanThreshold is how long a check can go without a heartbeat
	// before it is considered orphaned.
	OrphanThreshold time.Duration `yaml:"orphan_threshold" validate:"gt=0"`
}

// DefaultOrchestratorConfig returns the built-in orchestrator defaults.
func DefaultOrchestratorConfig() *OrchestratorConfig {
	return &OrchestratorConfig{
		WorkerCount:             5,
		MaxConcurrentChecks:     5,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		CheckTimeout:            15 * time.Minute,
		GracefulShutdownTimeout: 15 * time.Minute,
		OrphanDetectionInterval: 5 * time.Minute,
		OrphanThreshold:         5 * time.Minute,
	}
}
