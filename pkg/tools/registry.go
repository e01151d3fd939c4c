package tools

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/checkmate-dev/checkmate/pkg/checkerr"
	"github.com/checkmate-dev/checkmate/pkg/external"
	"github.com/checkmate-dev/checkmate/pkg/llmclient"
)

// Dependencies bundles the handles NewRegistry wires into each tool's
// closure. Construction happens once per process; RequestID/Quotas/Scratch
// come in per-invocation via Context instead.
type Dependencies struct {
	Search     *external.SearchClient
	Screenshot *external.ScreenshotClient
	URLScan    *external.URLScanClient
	LLM        *llmclient.Client
}

func strParam(params json.RawMessage, name string) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(params, &m); err != nil {
		return "", checkerr.Wrap(checkerr.InvalidInput, "parse tool params", err)
	}
	v, found := m[name]
	if !found {
		return "", checkerr.New(checkerr.InvalidInput, "missing required param: "+name)
	}
	s, ok := v.(string)
	if !ok {
		return "", checkerr.New(checkerr.InvalidInput, "param "+name+" must be a string")
	}
	return s, nil
}

func buildTools(deps Dependencies) []*Tool {
	return []*Tool{
		searchGoogleTool(deps),
		getWebsiteScreenshotTool(deps),
		checkMaliciousURLTool(deps),
		searchInternalTool(),
		preprocessInputsTool(deps),
		extractImageURLsTool(),
		summariseReportTool(deps),
		translateTextTool(deps),
		submitReportForReviewTool(),
	}
}

func searchGoogleTool(deps Dependencies) *Tool {
	return &Tool{
		Name:  NameSearchGoogle,
		Quota: true,
		Schema: Schema{
			Name:        NameSearchGoogle,
			Description: "Search the web for pages relevant to a query, to gather evidence for or against a claim.",
			Parameters: map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"required":             []string{"query"},
				"properties": map[string]any{
					"query": map[string]any{"type": "string", "description": "the search query"},
				},
			},
		},
		Execute: func(ctx context.Context, params json.RawMessage, tc *Context) Result {
			query, err := strParam(params, "query")
			if err != nil {
				return fail(err)
			}
			out, err := deps.Search.Search(ctx, query, tc.RequestID)
			if err != nil {
				return fail(err)
			}
			return ok(out)
		},
	}
}

func getWebsiteScreenshotTool(deps Dependencies) *Tool {
	return &Tool{
		Name:  NameGetWebsiteScreenshot,
		Quota: true,
		Schema: Schema{
			Name:        NameGetWebsiteScreenshot,
			Description: "Render a screenshot of a URL, for visual inspection when a page can't be read as text.",
			Parameters: map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"required":             []string{"url"},
				"properties": map[string]any{
					"url": map[string]any{"type": "string", "description": "the URL to capture"},
				},
			},
		},
		Execute: func(ctx context.Context, params json.RawMessage, tc *Context) Result {
			url, err := strParam(params, "url")
			if err != nil {
				return fail(err)
			}
			shot, err := deps.Screenshot.Capture(ctx, url, tc.RequestID)
			if err != nil {
				return fail(err)
			}
			// A failed capture still returns success:true with an empty
			// imageUrl, per spec.md §4.4's special handling — the agent
			// loop, not the tool, decides what to do with a blank result.
			return ok(shot)
		},
	}
}

func checkMaliciousURLTool(deps Dependencies) *Tool {
	t := &Tool{
		Name:  NameCheckMaliciousURL,
		Quota: true,
		Schema: Schema{
			Name:        NameCheckMaliciousURL,
			Description: "Check whether a URL is flagged as malicious, phishing, or otherwise unsafe.",
			Parameters: map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"required":             []string{"url"},
				"properties": map[string]any{
					"url": map[string]any{"type": "string", "description": "the URL to scan"},
				},
			},
		},
		Execute: func(ctx context.Context, params json.RawMessage, tc *Context) Result {
			url, err := strParam(params, "url")
			if err != nil {
				return fail(err)
			}
			res, err := deps.URLScan.Scan(ctx, url, tc.RequestID)
			if err != nil {
				return fail(err)
			}
			return ok(res)
		},
	}
	return t
}

func searchInternalTool() *Tool {
	return &Tool{
		Name:  NameSearchInternal,
		Quota: false,
		Schema: Schema{
			Name:        NameSearchInternal,
			Description: "Search previously published checks for a claim that may already have been fact-checked.",
			Parameters: map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"required":             []string{"query"},
				"properties": map[string]any{
					"query": map[string]any{"type": "string", "description": "the claim to search for among existing checks"},
				},
			},
		},
		Execute: func(ctx context.Context, params json.RawMessage, tc *Context) Result {
			query, err := strParam(params, "query")
			if err != nil {
				return fail(err)
			}
			if tc.InternalSearch == nil {
				return ok([]InternalSearchHit{})
			}
			hits, err := tc.InternalSearch(ctx, query)
			if err != nil {
				return fail(err)
			}
			return ok(hits)
		},
	}
}

// preprocessInputsResult is the shape the preprocess tool returns: a
// snapshot of the per-check scratch, with no model call of its own.
type preprocessInputsResult struct {
	Intent   string `json:"intent"`
	Type     string `json:"type"`
	ImageURL string `json:"imageUrl,omitempty"`
	Caption  string `json:"caption,omitempty"`
	Text     string `json:"text,omitempty"`
}

func preprocessInputsTool(deps Dependencies) *Tool {
	return &Tool{
		Name:  NamePreprocessInputs,
		Quota: false,
		Schema: Schema{
			Name:        NamePreprocessInputs,
			Description: "Classify the submission's intent and normalized shape (text/image/caption) from the raw inputs.",
			Parameters: map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties":           map[string]any{},
			},
		},
		Execute: func(ctx context.Context, params json.RawMessage, tc *Context) Result {
			intent, typ, imageURL, caption, text := tc.Scratch.Get()
			if intent == "" && typ == "" {
				return fail(checkerr.New(checkerr.InvalidInput, "no submission loaded into scratch"))
			}
			result := preprocessInputsResult{Intent: intent, Type: typ, ImageURL: imageURL, Caption: caption, Text: text}
			return ok(result)
		},
	}
}

func extractImageURLsTool() *Tool {
	return &Tool{
		Name:  NameExtractImageURLs,
		Quota: false,
		Schema: Schema{
			Name:        NameExtractImageURLs,
			Description: "Pull every http(s) URL, image or not, out of a block of free text.",
			Parameters: map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"required":             []string{"text"},
				"properties": map[string]any{
					"text": map[string]any{"type": "string"},
				},
			},
		},
		Execute: func(ctx context.Context, params json.RawMessage, tc *Context) Result {
			text, err := strParam(params, "text")
			if err != nil {
				return fail(err)
			}
			return ok(map[string]any{"urls": extractURLs(text)})
		},
	}
}

func extractURLs(text string) []string {
	var urls []string
	for _, word := range strings.Fields(text) {
		word = strings.Trim(word, "()[]{}<>,.;\"'")
		if strings.HasPrefix(word, "http://") || strings.HasPrefix(word, "https://") {
			urls = append(urls, word)
		}
	}
	return urls
}

func summariseReportTool(deps Dependencies) *Tool {
	return &Tool{
		Name:  NameSummariseReport,
		Quota: false,
		Schema: Schema{
			Name:        NameSummariseReport,
			Description: "Condense the agent's longform findings into a short, WhatsApp-ready note.",
			Parameters: map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"required":             []string{"longformReport"},
				"properties": map[string]any{
					"longformReport": map[string]any{"type": "string"},
				},
			},
		},
		Execute: func(ctx context.Context, params json.RawMessage, tc *Context) Result {
			longform, err := strParam(params, "longformReport")
			if err != nil {
				return fail(err)
			}
			system := "Summarize the following fact-check into a concise note under 400 characters. Respond with the note text only."
			summary, err := chatText(ctx, deps.LLM, system, longform, 30*time.Second)
			if err != nil {
				return fail(err)
			}
			return ok(map[string]string{"summary": summary})
		},
	}
}

func translateTextTool(deps Dependencies) *Tool {
	return &Tool{
		Name:  NameTranslateText,
		Quota: false,
		Schema: Schema{
			Name:        NameTranslateText,
			Description: "Translate text into a target language.",
			Parameters: map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"required":             []string{"text", "targetLanguage"},
				"properties": map[string]any{
					"text":           map[string]any{"type": "string"},
					"targetLanguage": map[string]any{"type": "string", "description": "BCP-47 language code, e.g. en, cn, ta, ms"},
				},
			},
		},
		Execute: func(ctx context.Context, params json.RawMessage, tc *Context) Result {
			var in struct {
				Text           string `json:"text"`
				TargetLanguage string `json:"targetLanguage"`
			}
			if err := json.Unmarshal(params, &in); err != nil {
				return fail(checkerr.Wrap(checkerr.InvalidInput, "parse translate_text params", err))
			}
			if in.Text == "" || in.TargetLanguage == "" {
				return fail(checkerr.New(checkerr.InvalidInput, "text and targetLanguage are required"))
			}
			system := "Translate the user's text into language code '" + in.TargetLanguage + "'. Respond with the translation only, no preamble."
			translated, err := chatText(ctx, deps.LLM, system, in.Text, 30*time.Second)
			if err != nil {
				return fail(err)
			}
			return ok(map[string]string{"translated": translated})
		},
	}
}

// SubmitReportResult is the draft payload this tool hands to the agent
// loop's reviewer sub-protocol (C5 §4.5's last paragraph), which decides
// the terminal passedReview verdict — this tool only carries the
// longform report, its sources, and the model's own controversy call
// across the boundary.
type SubmitReportResult struct {
	LongformReport  string   `json:"longformReport"`
	Sources         []string `json:"sources,omitempty"`
	IsControversial bool     `json:"isControversial"`
}

func submitReportForReviewTool() *Tool {
	return &Tool{
		Name:  NameSubmitReportForReview,
		Quota: false,
		Schema: Schema{
			Name:        NameSubmitReportForReview,
			Description: "Submit the completed longform report for reviewer sign-off. Ends the loop once passedReview is true.",
			Parameters: map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"required":             []string{"longformReport", "sources", "isControversial"},
				"properties": map[string]any{
					"longformReport":  map[string]any{"type": "string"},
					"isControversial": map[string]any{"type": "boolean", "description": "true if the claim or its assessment is contested"},
					"sources": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
				},
			},
		},
		Execute: func(ctx context.Context, params json.RawMessage, tc *Context) Result {
			var in SubmitReportResult
			if err := json.Unmarshal(params, &in); err != nil {
				return fail(checkerr.Wrap(checkerr.InvalidInput, "parse submit_report_for_review params", err))
			}
			if in.LongformReport == "" {
				return fail(checkerr.New(checkerr.InvalidInput, "longformReport is required"))
			}
			return ok(in)
		},
	}
}

func chatText(ctx context.Context, llm *llmclient.Client, system, user string, timeout time.Duration) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	msg, err := llm.Chat(ctx, llmclient.ChatRequest{
		Messages: []openai.ChatCompletionMessage{
			llmclient.TextMessage(openai.ChatMessageRoleSystem, system),
			llmclient.TextMessage(openai.ChatMessageRoleUser, user),
		},
		Timeout: timeout,
	})
	if err != nil {
		return "", err
	}
	return msg.Content, nil
}
