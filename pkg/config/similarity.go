package config

// SimilarityConfig controls the thresholds and candidate-set sizing the
// similarity engine (C2) uses to decide whether a submission matches an
// existing check.
type SimilarityConfig struct {
	// TextScoreThreshold is the cosine-similarity score above which a
	// vector-search hit is considered a candidate match (default 0.85).
	TextScoreThreshold float64 `yaml:"text_score_threshold" validate:"gt=0,lte=1"`

	// HammingThreshold is the PDQ Hamming distance, out of 256, at or
	// above which two hashes are no longer a perceptual match; a match
	// needs a distance strictly below it (default 31).
	HammingThreshold int `yaml:"hamming_threshold" validate:"gte=0,lte=256"`

	// CandidateMultiplier sets numCandidates = CandidateMultiplier * limit
	// for vector search (default 10).
	CandidateMultiplier int `yaml:"candidate_multiplier" validate:"gte=1"`

	// DefaultLimit is the default vector-search result limit ("k").
	DefaultLimit int `yaml:"default_limit" validate:"gte=1"`

	// RequireHumanAssessed mirrors the source system's production-only
	// behavior of restricting vector search to isHumanAssessed=true
	// checks; kept as a configurable predicate rather than an environment
	// branch so the same binary serves both staging and production.
	RequireHumanAssessed bool `yaml:"require_human_assessed"`

	// SameClaimTimeoutSeconds bounds the LLM same-claim tiebreak call.
	SameClaimTimeoutSeconds int `yaml:"same_claim_timeout_seconds" validate:"gte=1"`

	// ImageCandidateLimit is how many top image matches are fanned out to
	// for the image+caption combined lookup (spec default 5).
	ImageCandidateLimit int `yaml:"image_candidate_limit" validate:"gte=1"`
}

// DefaultSimilarityConfig returns the built-in similarity thresholds.
func DefaultSimilarityConfig() *SimilarityConfig {
	return &SimilarityConfig{
		TextScoreThreshold:      0.85,
		HammingThreshold:        31,
		CandidateMultiplier:     10,
		DefaultLimit:            5,
		RequireHumanAssessed:    false,
		SameClaimTimeoutSeconds: 30,
		ImageCandidateLimit:     5,
	}
}
