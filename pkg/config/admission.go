package config

// AdmissionConfig holds the default token-bucket parameters applied to
// newly created consumers, mirroring the per-request fields a Consumer
// row carries (C7).
type AdmissionConfig struct {
	DefaultCapacity               int `yaml:"default_capacity" validate:"gte=1"`
	DefaultMillisecondsPerRequest int `yaml:"default_milliseconds_per_request" validate:"gte=1"`
	DefaultMillisecondsForUpdates int `yaml:"default_milliseconds_for_updates" validate:"gte=1"`
}

// DefaultAdmissionConfig returns the built-in consumer bucket defaults.
func DefaultAdmissionConfig() *AdmissionConfig {
	return &AdmissionConfig{
		DefaultCapacity:               60,
		DefaultMillisecondsPerRequest: 1000,
		DefaultMillisecondsForUpdates: 60000,
	}
}
