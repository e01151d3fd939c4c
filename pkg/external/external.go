// Package external holds thin HTTP clients for the collaborators
// spec.md §1 declares out of scope and §6 fixes the wire contract for:
// the embedder, the PDQ image-hash service, the screenshot renderer, the
// web search API, and the URL-reputation scanner. Each is a small
// stdlib net/http client with a bounded context deadline — justified as
// stdlib in DESIGN.md because no repo in the retrieval pack vendors a
// generic REST client library; every pack HTTP call site (teacher's
// dead gRPC aside) goes straight through net/http.
package external

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/checkmate-dev/checkmate/pkg/checkerr"
)

// HTTPClient is the subset of *http.Client every wrapper here depends on,
// so tests can substitute a fake round-tripper.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

func defaultClient() HTTPClient {
	return &http.Client{Timeout: 30 * time.Second}
}

func postJSON(ctx context.Context, hc HTTPClient, url string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return checkerr.Wrap(checkerr.InternalError, "encode request body", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return checkerr.Wrap(checkerr.InternalError, "build request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return doJSON(ctx, hc, req, out)
}

func doJSON(ctx context.Context, hc HTTPClient, req *http.Request, out any) error {
	resp, err := hc.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return checkerr.Wrap(checkerr.UpstreamTimeout, "upstream call timed out", err)
		}
		return checkerr.Wrap(checkerr.UpstreamFailure, "upstream call failed", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return checkerr.Wrap(checkerr.UpstreamFailure, "read upstream response", err)
	}

	if resp.StatusCode >= 300 {
		return checkerr.New(checkerr.UpstreamFailure, fmt.Sprintf("upstream returned %d: %s", resp.StatusCode, string(data)))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return checkerr.Wrap(checkerr.UpstreamFailure, "unmarshal upstream response", err)
	}
	return nil
}

// EmbedderClient implements `embed({text}) -> {embedding: float[384]}`.
type EmbedderClient struct {
	BaseURL string
	HC      HTTPClient
}

func NewEmbedderClient(baseURL string) *EmbedderClient {
	return &EmbedderClient{BaseURL: baseURL, HC: defaultClient()}
}

// Embed requests a 384-dim embedding for text.
func (c *EmbedderClient) Embed(ctx context.Context, text string) ([]float64, error) {
	var out struct {
		Embedding []float64 `json:"embedding"`
	}
	if err := postJSON(ctx, c.HC, c.BaseURL+"/embed", map[string]string{"text": text}, &out); err != nil {
		return nil, err
	}
	if len(out.Embedding) != 384 {
		return nil, checkerr.New(checkerr.InvalidFingerprint, "embedder returned non-384-dim vector")
	}
	return out.Embedding, nil
}

// ImageHashClient implements `POST /pdq` -> {hash_hex, quality}.
type ImageHashClient struct {
	BaseURL string
	HC      HTTPClient
}

func NewImageHashClient(baseURL string) *ImageHashClient {
	return &ImageHashClient{BaseURL: baseURL, HC: defaultClient()}
}

// HashURL requests the PDQ hash of the image at imageURL.
func (c *ImageHashClient) HashURL(ctx context.Context, imageURL string) (hashHex string, quality float64, err error) {
	var out struct {
		HashHex string  `json:"hash_hex"`
		Quality float64 `json:"quality"`
	}
	if err := postJSON(ctx, c.HC, c.BaseURL+"/pdq", map[string]string{"url": imageURL}, &out); err != nil {
		return "", 0, err
	}
	return out.HashHex, out.Quality, nil
}

// ScreenshotClient implements `screenshot({url,id}) -> {result:{imageUrl, base64?}}`.
type ScreenshotClient struct {
	BaseURL string
	HC      HTTPClient
}

func NewScreenshotClient(baseURL string) *ScreenshotClient {
	return &ScreenshotClient{BaseURL: baseURL, HC: defaultClient()}
}

// ScreenshotResult is the decoded `result` payload; ImageURL is empty on a
// capture failure, per spec.md §4.4's "special handling" note.
type ScreenshotResult struct {
	ImageURL string `json:"imageUrl"`
	Base64   string `json:"base64,omitempty"`
}

func (c *ScreenshotClient) Capture(ctx context.Context, targetURL, requestID string) (ScreenshotResult, error) {
	var out struct {
		Result ScreenshotResult `json:"result"`
	}
	err := postJSON(ctx, c.HC, c.BaseURL+"/screenshot", map[string]string{"url": targetURL, "id": requestID}, &out)
	if err != nil {
		return ScreenshotResult{}, err
	}
	return out.Result, nil
}

// SearchClient implements `search({q,id}) -> {result: object}`.
type SearchClient struct {
	BaseURL string
	HC      HTTPClient
}

func NewSearchClient(baseURL string) *SearchClient {
	return &SearchClient{BaseURL: baseURL, HC: defaultClient()}
}

func (c *SearchClient) Search(ctx context.Context, query, requestID string) (map[string]any, error) {
	var out struct {
		Result map[string]any `json:"result"`
	}
	if err := postJSON(ctx, c.HC, c.BaseURL+"/search", map[string]string{"q": query, "id": requestID}, &out); err != nil {
		return nil, err
	}
	return out.Result, nil
}

// URLScanClient implements
// `urlScan({url,id}) -> {result:{malicious, categories[], tags[], hasVerdicts}}`.
type URLScanClient struct {
	BaseURL string
	HC      HTTPClient
}

func NewURLScanClient(baseURL string) *URLScanClient {
	return &URLScanClient{BaseURL: baseURL, HC: defaultClient()}
}

// URLScanResult is the decoded `result` payload.
type URLScanResult struct {
	Malicious   bool     `json:"malicious"`
	Categories  []string `json:"categories"`
	Tags        []string `json:"tags"`
	HasVerdicts bool     `json:"hasVerdicts"`
}

func (c *URLScanClient) Scan(ctx context.Context, targetURL, requestID string) (URLScanResult, error) {
	var out struct {
		Result URLScanResult `json:"result"`
	}
	err := postJSON(ctx, c.HC, c.BaseURL+"/urlscan", map[string]string{"url": targetURL, "id": requestID}, &out)
	if err != nil {
		return URLScanResult{}, err
	}
	return out.Result, nil
}

// VotingClient implements `POST /polls/webhook`. It carries the check
// artifacts so the webhook can render a poll without a callback into the
// store. Per spec.md §6, a 409 response means a poll already exists for
// this check and its id is returned exactly as a 2xx would.
type VotingClient struct {
	BaseURL string
	HC      HTTPClient
}

func NewVotingClient(baseURL string) *VotingClient {
	return &VotingClient{BaseURL: baseURL, HC: defaultClient()}
}

// VotingPayload is the webhook request body.
type VotingPayload struct {
	CheckID           string `json:"checkId"`
	Text              string `json:"text,omitempty"`
	ImageURL          string `json:"imageUrl,omitempty"`
	Caption           string `json:"caption,omitempty"`
	LongformResponse  any    `json:"longformResponse,omitempty"`
	ShortformResponse any    `json:"shortformResponse,omitempty"`
}

// Trigger posts the voting payload, returning the poll id whether this
// call created the poll (2xx) or one already existed (409) — both cases
// are success from the caller's point of view, which is what makes
// retrying the trigger idempotent (spec.md testable property 6).
func (c *VotingClient) Trigger(ctx context.Context, payload VotingPayload) (pollID string, err error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		return "", checkerr.Wrap(checkerr.InternalError, "encode voting payload", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/polls/webhook", &buf)
	if err != nil {
		return "", checkerr.Wrap(checkerr.InternalError, "build voting request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HC.Do(req)
	if err != nil {
		return "", checkerr.Wrap(checkerr.UpstreamFailure, "voting webhook call failed", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", checkerr.Wrap(checkerr.UpstreamFailure, "read voting webhook response", err)
	}

	if resp.StatusCode != http.StatusConflict && resp.StatusCode >= 300 {
		return "", checkerr.New(checkerr.UpstreamFailure, fmt.Sprintf("voting webhook returned %d: %s", resp.StatusCode, string(data)))
	}

	var out struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return "", checkerr.Wrap(checkerr.UpstreamFailure, "unmarshal voting webhook response", err)
	}
	return out.ID, nil
}

// NormalizeImageURL parses and reserializes a URL the way C1's hashUrl
// does, so callers that need a stable cache key can share the logic.
func NormalizeImageURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", checkerr.Wrap(checkerr.InvalidInput, "parse image url", err)
	}
	if u.Scheme == "" {
		u.Scheme = "https"
	}
	return u.String(), nil
}
