// Package llmclient wraps an OpenAI-compatible chat-completions backend
// for the Agent Loop (C5), the Similarity Engine's same-claim tiebreak
// (C2), and the Pipeline Orchestrator's preprocess/summarize/translate
// calls (C6). Grounded on the go-openai usage pattern in
// roelfdiedericks-goclaw's internal/llm OpenAIProvider (BaseURL-configured
// client, ChatCompletionMessage/ToolCall conversion, image-url vision
// parts) — the teacher itself talks to its LLM over a dead gRPC sidecar
// (pkg/llm/client.go), which DESIGN.md drops in favor of the HTTP
// chat-completions contract spec.md §6 fixes.
package llmclient

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/checkmate-dev/checkmate/pkg/checkerr"
	"github.com/checkmate-dev/checkmate/pkg/config"
)

// Client is a thin wrapper around *openai.Client bound to one provider
// configuration (model, base URL, max tool-result tokens).
type Client struct {
	raw                 *openai.Client
	model               string
	maxToolResultTokens int
}

// New builds a Client from a resolved LLMProviderConfig, reading the API
// key from the configured environment variable.
func New(cfg *config.LLMProviderConfig) (*Client, error) {
	apiKey := "not-needed"
	if cfg.APIKeyEnv != "" {
		if v := os.Getenv(cfg.APIKeyEnv); v != "" {
			apiKey = v
		}
	}

	oaiCfg := openai.DefaultConfig(apiKey)
	if cfg.BaseURL != "" {
		oaiCfg.BaseURL = cfg.BaseURL
	}

	return &Client{
		raw:                 openai.NewClientWithConfig(oaiCfg),
		model:               cfg.Model,
		maxToolResultTokens: cfg.MaxToolResultTokens,
	}, nil
}

// MaxToolResultTokens returns the configured cap used to truncate tool
// results before they re-enter the agent loop's message history.
func (c *Client) MaxToolResultTokens() int { return c.maxToolResultTokens }

// ToolSchema is one entry of the advertised (quota-filtered) tool set the
// agent loop sends alongside the message history (C4/C5).
type ToolSchema struct {
	Name        string
	Description string
	Parameters  map[string]any
}

// ChatRequest is the input to Chat: a full message history plus the
// advertised tool schemas. Deterministic sampling parameters
// (temperature=0, seed=11) are fixed by spec.md §4.5 and always applied.
type ChatRequest struct {
	Messages     []openai.ChatCompletionMessage
	Tools        []ToolSchema
	ToolsRequired bool
	Timeout      time.Duration
}

// Chat issues one chat-completions call and returns the raw assistant
// message (which may carry tool_calls).
func (c *Client) Chat(ctx context.Context, req ChatRequest) (openai.ChatCompletionMessage, error) {
	if req.Timeout <= 0 {
		req.Timeout = 60 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, req.Timeout)
	defer cancel()

	tools := make([]openai.Tool, 0, len(req.Tools))
	for _, t := range req.Tools {
		tools = append(tools, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.Parameters,
			},
		})
	}

	toolChoice := any("auto")
	if req.ToolsRequired && len(tools) > 0 {
		toolChoice = "required"
	}

	seed := 11
	resp, err := c.raw.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    req.Messages,
		Tools:       tools,
		ToolChoice:  toolChoice,
		Temperature: 0,
		Seed:        &seed,
	})
	if err != nil {
		if ctx.Err() != nil {
			return openai.ChatCompletionMessage{}, checkerr.Wrap(checkerr.UpstreamTimeout, "chat completion timed out", err)
		}
		return openai.ChatCompletionMessage{}, checkerr.Wrap(checkerr.UpstreamFailure, "chat completion failed", err)
	}
	if len(resp.Choices) == 0 {
		return openai.ChatCompletionMessage{}, checkerr.New(checkerr.UpstreamFailure, "chat completion returned no choices")
	}
	return resp.Choices[0].Message, nil
}

// ChatJSON issues a chat completion constrained to a single JSON object
// response (used for the preprocess step's strict schema and the
// reviewer's {passedReview, feedback} verdict) and unmarshals it into out.
func (c *Client) ChatJSON(ctx context.Context, messages []openai.ChatCompletionMessage, timeout time.Duration, out any) error {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := c.raw.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:          c.model,
		Messages:       messages,
		Temperature:    0,
		ResponseFormat: &openai.ChatCompletionResponseFormat{Type: openai.ChatCompletionResponseFormatTypeJSONObject},
	})
	if err != nil {
		if ctx.Err() != nil {
			return checkerr.Wrap(checkerr.UpstreamTimeout, "json chat completion timed out", err)
		}
		return checkerr.Wrap(checkerr.UpstreamFailure, "json chat completion failed", err)
	}
	if len(resp.Choices) == 0 {
		return checkerr.New(checkerr.UpstreamFailure, "json chat completion returned no choices")
	}
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), out); err != nil {
		return checkerr.Wrap(checkerr.UpstreamFailure, "unmarshal json chat completion response", err)
	}
	return nil
}

// TextMessage builds a plain role/content message.
func TextMessage(role, content string) openai.ChatCompletionMessage {
	return openai.ChatCompletionMessage{Role: role, Content: content}
}

// ImageMessage builds a user message carrying an image-url vision part
// alongside a text part, used for screenshot injection (C5 step 5) and
// multimodal preprocessing (C6 step 7).
func ImageMessage(text, imageURL string) openai.ChatCompletionMessage {
	return openai.ChatCompletionMessage{
		Role: openai.ChatMessageRoleUser,
		MultiContent: []openai.ChatMessagePart{
			{Type: openai.ChatMessagePartTypeText, Text: text},
			{
				Type: openai.ChatMessagePartTypeImageURL,
				ImageURL: &openai.ChatMessageImageURL{
					URL:    imageURL,
					Detail: openai.ImageURLDetailAuto,
				},
			},
		},
	}
}

// ToolResultMessage builds the tool-role reply for a given tool_call id.
func ToolResultMessage(toolCallID, content string) openai.ChatCompletionMessage {
	return openai.ChatCompletionMessage{
		Role:       openai.ChatMessageRoleTool,
		Content:    content,
		ToolCallID: toolCallID,
	}
}

// FormatError renders a tool-level failure as the text fed back to the LLM.
func FormatError(err error) string {
	return fmt.Sprintf("error: %v", err)
}
