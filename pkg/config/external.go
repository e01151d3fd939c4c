package config

// ExternalConfig holds the base URLs of the external services the
// pipeline orchestrator (C6) and tool registry (C4) call out to: the
// embedding service, the PDQ perceptual-hash service, the headless
// screenshot renderer, the web search API, the URL-reputation scanner,
// and the voting-platform webhook. All are plain HTTP services per
// spec.md §4.4/§4.6, so pkg/external talks to them with net/http rather
// than a generated SDK client.
type ExternalConfig struct {
	// EmbedderURL is the base URL of the text-embedding service (C2).
	EmbedderURL string `yaml:"embedder_url" validate:"required,url"`

	// ImageHashURL is the base URL of the PDQ perceptual image-hash service.
	ImageHashURL string `yaml:"image_hash_url" validate:"required,url"`

	// ScreenshotURL is the base URL of the headless-browser screenshot service.
	ScreenshotURL string `yaml:"screenshot_url" validate:"required,url"`

	// SearchURL is the base URL of the web search tool backend.
	SearchURL string `yaml:"search_url" validate:"required,url"`

	// URLScanURL is the base URL of the URL-reputation scanner.
	URLScanURL string `yaml:"urlscan_url" validate:"required,url"`

	// VotingWebhookURL is the base URL the orchestrator's voting step
	// posts the check artifacts to once a check completes or fails
	// (spec.md §4.6 step 13).
	VotingWebhookURL string `yaml:"voting_webhook_url" validate:"required,url"`

	// HTTPTimeoutSeconds bounds every outbound call made by pkg/external.
	HTTPTimeoutSeconds int `yaml:"http_timeout_seconds" validate:"gte=1"`

	// BlobCacheDir is where downloaded submission images are cached on
	// disk, content-addressed by sha256 of their URL.
	BlobCacheDir string `yaml:"blob_cache_dir" validate:"required"`
}

// DefaultExternalConfig returns the built-in external-service defaults.
// URLs default to empty and must be supplied by the deployment's
// checkmate.yaml; only the cross-cutting knobs get real defaults.
func DefaultExternalConfig() *ExternalConfig {
	return &ExternalConfig{
		HTTPTimeoutSeconds: 30,
		BlobCacheDir:       "/var/lib/checkmate/blobcache",
	}
}
