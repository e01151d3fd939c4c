// Package tools is the Tool Registry (C4): uniform capability wrappers
// around search, screenshot, URL-scan, internal-search, and the
// pipeline's own preprocess/summarize/translate/submit steps. Every tool
// is a (name, schema, execute) triple, the only surface the Agent Loop
// (C5) sees. Modeled on the ToolContext/ExecutionContext shape of the
// teacher's pkg/agent/context.go, generalized from "DB service bundle
// injected per session" to "external-service handles injected per check".
package tools

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/checkmate-dev/checkmate/pkg/checkerr"
	"github.com/checkmate-dev/checkmate/pkg/config"
	"github.com/checkmate-dev/checkmate/pkg/external"
	"github.com/checkmate-dev/checkmate/pkg/llmclient"
)

// Names of the canonical tool set, spec.md §4.4.
const (
	NameSearchGoogle           = "search_google"
	NameGetWebsiteScreenshot   = "get_website_screenshot"
	NameCheckMaliciousURL      = "check_malicious_url"
	NameScanURL                = "scan_url" // alias of NameCheckMaliciousURL
	NameSearchInternal         = "search_internal"
	NamePreprocessInputs       = "preprocess_inputs"
	NameExtractImageURLs       = "extract_image_urls"
	NameSummariseReport        = "summarise_report"
	NameTranslateText          = "translate_text"
	NameSubmitReportForReview  = "submit_report_for_review"
)

// Result is the envelope every tool returns, spec.md §7: tools never
// throw across the tool boundary, they return {success:false, error}.
type Result struct {
	Success bool           `json:"success"`
	Result  any            `json:"result,omitempty"`
	Error   *ResultError   `json:"error,omitempty"`
}

// ResultError is the error shape nested in a failed Result.
type ResultError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

func ok(result any) Result { return Result{Success: true, Result: result} }

func fail(err error) Result {
	return Result{Success: false, Error: &ResultError{Message: err.Error(), Code: string(checkerr.KindOf(err))}}
}

// Scratch is the mutable per-check state tools read and write: the
// inferred intent and input shape threaded through the agent loop.
type Scratch struct {
	mu       sync.Mutex
	Intent   string
	Type     string
	ImageURL string
	Caption  string
	Text     string
}

func (s *Scratch) Set(intent, typ, imageURL, caption, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Intent, s.Type, s.ImageURL, s.Caption, s.Text = intent, typ, imageURL, caption, text
}

func (s *Scratch) Get() (intent, typ, imageURL, caption, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Intent, s.Type, s.ImageURL, s.Caption, s.Text
}

// Quotas tracks the remaining per-check call budget for the three
// externally-billed tools, decremented only on an actual invocation
// (spec.md §4.4: the registry "MUST enforce quotas before calling the
// underlying service").
type Quotas struct {
	mu                   sync.Mutex
	SearchGoogle         int
	GetWebsiteScreenshot int
	CheckMaliciousURL    int
}

// NewQuotas seeds a Quotas from the configured per-check defaults.
func NewQuotas(cfg *config.ToolQuotaConfig) *Quotas {
	return &Quotas{
		SearchGoogle:         cfg.SearchGoogle,
		GetWebsiteScreenshot: cfg.GetWebsiteScreenshot,
		CheckMaliciousURL:    cfg.CheckMaliciousURL,
	}
}

// Remaining returns a snapshot used both by the advertised-tool filter and
// by the agent loop's system-message quota line.
func (q *Quotas) Remaining() (search, screenshot, scan int) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.SearchGoogle, q.GetWebsiteScreenshot, q.CheckMaliciousURL
}

// consume decrements the named quota if any remains, returning false when
// exhausted. Locking here is what makes concurrent parallel tool calls
// within one agent-loop step safe to decrement without a lost update.
func (q *Quotas) consume(name string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	switch name {
	case NameSearchGoogle:
		if q.SearchGoogle <= 0 {
			return false
		}
		q.SearchGoogle--
	case NameGetWebsiteScreenshot:
		if q.GetWebsiteScreenshot <= 0 {
			return false
		}
		q.GetWebsiteScreenshot--
	case NameCheckMaliciousURL, NameScanURL:
		if q.CheckMaliciousURL <= 0 {
			return false
		}
		q.CheckMaliciousURL--
	}
	return true
}

func (q *Quotas) exhausted(name string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	switch name {
	case NameSearchGoogle:
		return q.SearchGoogle <= 0
	case NameGetWebsiteScreenshot:
		return q.GetWebsiteScreenshot <= 0
	case NameCheckMaliciousURL, NameScanURL:
		return q.CheckMaliciousURL <= 0
	default:
		return false
	}
}

// Context is injected per check into every tool's Execute call: the
// request id, a structured logger, remaining quotas, the mutable scratch,
// a tracing span, and typed handles to external services.
type Context struct {
	RequestID string
	Logger    Logger
	Quotas    *Quotas
	Scratch   *Scratch
	Span      trace.Span

	Search     *external.SearchClient
	Screenshot *external.ScreenshotClient
	URLScan    *external.URLScanClient
	LLM        *llmclient.Client

	// Internal search is served by the document store's own text-embedding
	// vector search, injected as a closure to avoid an import cycle with
	// pkg/checkstore.
	InternalSearch func(ctx context.Context, query string) ([]InternalSearchHit, error)
}

// InternalSearchHit is one result of the search_internal tool.
type InternalSearchHit struct {
	CheckID string `json:"checkId"`
	Title   string `json:"title,omitempty"`
	Snippet string `json:"snippet,omitempty"`
}

// Logger is the minimal structured-logging surface tools use; satisfied
// by *slog.Logger via the adapter in pkg/tools/log.go.
type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Schema declares a tool's parameters in JSON-schema shape, strict per
// spec.md §4.4 (additionalProperties: false).
type Schema struct {
	Name        string
	Description string
	Parameters  map[string]any
}

// Tool is the (name, schema, execute) triple.
type Tool struct {
	Name     string
	Schema   Schema
	Quota    bool // true if this tool is subject to a per-check quota
	Execute  func(ctx context.Context, params json.RawMessage, tc *Context) Result
}

// Registry holds the canonical tool set and advertises only tools whose
// quota has not reached zero.
type Registry struct {
	tools map[string]*Tool
	order []string
}

// NewRegistry builds the canonical registry, spec.md §4.4's "canonical set".
func NewRegistry(deps Dependencies) *Registry {
	r := &Registry{tools: map[string]*Tool{}}
	for _, t := range buildTools(deps) {
		r.tools[t.Name] = t
		r.order = append(r.order, t.Name)
	}
	// The alias is invocable but not advertised separately.
	r.tools[NameScanURL] = r.tools[NameCheckMaliciousURL]
	return r
}

// Advertised returns the tool schemas to present to the LLM this step,
// suppressing any whose quota has reached zero (spec.md §4.4).
func (r *Registry) Advertised(tc *Context) []llmclient.ToolSchema {
	out := make([]llmclient.ToolSchema, 0, len(r.order))
	for _, name := range r.order {
		t := r.tools[name]
		if t.Quota && tc.Quotas.exhausted(name) {
			continue
		}
		out = append(out, llmclient.ToolSchema{Name: t.Schema.Name, Description: t.Schema.Description, Parameters: t.Schema.Parameters})
	}
	return out
}

// Invoke looks up a tool by name, enforces its quota, and executes it.
// Quota enforcement happens here — before the underlying service call —
// exactly where spec.md §4.4 requires it.
func (r *Registry) Invoke(ctx context.Context, name string, params json.RawMessage, tc *Context) Result {
	t, found := r.tools[name]
	if !found {
		return fail(checkerr.New(checkerr.InvalidInput, "unknown tool: "+name))
	}
	if t.Quota && !tc.Quotas.consume(name) {
		return fail(checkerr.New(checkerr.QuotaExhausted, name+" quota exhausted for this check"))
	}

	start := time.Now()
	result := t.Execute(ctx, params, tc)
	if tc.Span != nil {
		tc.Span.AddEvent("tool_invoked")
	}
	if tc.Logger != nil {
		tc.Logger.Info("tool invoked", "tool", name, "success", result.Success, "duration_ms", time.Since(start).Milliseconds())
	}
	return result
}
