// Package agentloop is the Agent Loop (C5): a bounded step-by-step state
// machine that calls tools through the Tool Registry until the model
// submits a report that passes reviewer sign-off. Grounded on the
// teacher's iterate-call-execute shape in pkg/agent/controller's ReAct
// loop, generalized from text-based tool calling to native OpenAI
// tool_calls and from sequential to parallel per-turn tool execution
// (the tool-before-user ordering rule is new: the teacher never injects
// synthetic user turns mid-loop, so it never had to reorder them).
package agentloop

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/checkmate-dev/checkmate/pkg/checkerr"
	"github.com/checkmate-dev/checkmate/pkg/llmclient"
	"github.com/checkmate-dev/checkmate/pkg/tools"
)

const (
	maxMessageHistory = 50
	maxSteps          = 50
	stepTimeout       = 90 * time.Second
)

// Outcome is what the loop produces on success, spec.md §4.5.
type Outcome struct {
	Report          string
	Sources         []string
	IsControversial bool
}

// chatClient is the subset of *llmclient.Client the loop depends on, so
// tests can substitute a fake without a network-backed fake server.
type chatClient interface {
	Chat(ctx context.Context, req llmclient.ChatRequest) (openai.ChatCompletionMessage, error)
	ChatJSON(ctx context.Context, messages []openai.ChatCompletionMessage, timeout time.Duration, out any) error
}

// Loop drives one check's agent-loop run.
type Loop struct {
	llm      chatClient
	registry *tools.Registry
}

// New builds a Loop bound to one LLM client and the canonical registry.
func New(llm *llmclient.Client, registry *tools.Registry) *Loop {
	return &Loop{llm: llm, registry: registry}
}

// Run executes the state machine until termination, an exhausted bound,
// or a propagated upstream error. now is injected so step timestamps are
// deterministic in tests.
func (l *Loop) Run(ctx context.Context, tc *tools.Context, startingContent string, now func() time.Time) (Outcome, error) {
	messages := []openai.ChatCompletionMessage{
		llmclient.TextMessage(openai.ChatMessageRoleUser, startingContent),
	}

	for step := 0; step < maxSteps; step++ {
		if len(messages) >= maxMessageHistory {
			return Outcome{}, checkerr.New(checkerr.AgentLoopExhausted, "message history exceeded bound before termination")
		}

		system := l.systemMessage(tc, now())
		full := append([]openai.ChatCompletionMessage{system}, messages...)

		assistant, err := l.llm.Chat(ctx, llmclient.ChatRequest{
			Messages:      full,
			Tools:         l.registry.Advertised(tc),
			ToolsRequired: true,
			Timeout:       stepTimeout,
		})
		if err != nil {
			return Outcome{}, err
		}

		if len(assistant.ToolCalls) == 0 {
			// Deterministic sampling with tool_choice=required should never
			// produce this, but a provider drifting from that contract is a
			// loop step to recover from, not a crash.
			messages = append(messages, assistant, llmclient.TextMessage(openai.ChatMessageRoleUser, "you must call a tool to continue"))
			continue
		}
		messages = append(messages, assistant)

		flattened, outcome, done := l.executeStep(ctx, tc, assistant.ToolCalls)
		messages = append(messages, flattened...)
		if done {
			return outcome, nil
		}
	}

	return Outcome{}, checkerr.New(checkerr.AgentLoopExhausted, fmt.Sprintf("exceeded %d steps without termination", maxSteps))
}

// systemMessage composes the current datetime and remaining quotas,
// spec.md §4.5 step 1.
func (l *Loop) systemMessage(tc *tools.Context, now time.Time) openai.ChatCompletionMessage {
	search, screenshot, scan := tc.Quotas.Remaining()
	content := fmt.Sprintf(
		"Current time: %s.\nRemaining tool quotas this check: search_google=%d, get_website_screenshot=%d, check_malicious_url=%d.\n"+
			"Investigate the claim using the available tools, then call submit_report_for_review with your findings.",
		now.Format(time.RFC3339), search, screenshot, scan)
	return llmclient.TextMessage(openai.ChatMessageRoleSystem, content)
}

// toolOutcome is one tool call's contribution to the flattened message
// batch, plus a non-nil outcome when it terminated the loop.
type toolOutcome struct {
	toolMsg openai.ChatCompletionMessage
	userMsg *openai.ChatCompletionMessage
	outcome *Outcome
}

// executeStep runs every tool call from one assistant turn in parallel,
// flattens results under the tool-before-user ordering rule (spec.md
// §4.5 step 4), and checks for termination via submit_report_for_review.
func (l *Loop) executeStep(ctx context.Context, tc *tools.Context, calls []openai.ToolCall) ([]openai.ChatCompletionMessage, Outcome, bool) {
	resultCh := make(chan toolOutcome, len(calls))
	for _, call := range calls {
		call := call
		go func() { resultCh <- l.invokeOne(ctx, tc, call) }()
	}

	toolMsgs := make([]openai.ChatCompletionMessage, 0, len(calls))
	userMsgs := make([]openai.ChatCompletionMessage, 0, 2)
	var outcome *Outcome

	for range calls {
		r := <-resultCh
		toolMsgs = append(toolMsgs, r.toolMsg)
		if r.userMsg != nil {
			userMsgs = append(userMsgs, *r.userMsg)
		}
		if r.outcome != nil {
			outcome = r.outcome
		}
	}

	flattened := append(toolMsgs, userMsgs...)
	if outcome != nil {
		return flattened, *outcome, true
	}
	return flattened, Outcome{}, false
}

func (l *Loop) invokeOne(ctx context.Context, tc *tools.Context, call openai.ToolCall) toolOutcome {
	name := call.Function.Name
	params := json.RawMessage(call.Function.Arguments)

	if name == tools.NameGetWebsiteScreenshot {
		return l.invokeScreenshot(ctx, tc, call)
	}

	result := l.registry.Invoke(ctx, name, params, tc)

	if name == tools.NameSubmitReportForReview && result.Success {
		toolMsg := llmclient.ToolResultMessage(call.ID, encodeResult(result))
		outcome, passed := l.review(ctx, tc, result)
		if passed {
			return toolOutcome{toolMsg: toolMsg, outcome: &outcome}
		}
		return toolOutcome{toolMsg: toolMsg}
	}

	return toolOutcome{toolMsg: llmclient.ToolResultMessage(call.ID, encodeResult(result))}
}

// invokeScreenshot implements spec.md §4.5 step 5: a short tool
// acknowledgement, plus — only when capture succeeded — a synthetic user
// message carrying the image.
func (l *Loop) invokeScreenshot(ctx context.Context, tc *tools.Context, call openai.ToolCall) toolOutcome {
	params := json.RawMessage(call.Function.Arguments)
	result := l.registry.Invoke(ctx, tools.NameGetWebsiteScreenshot, params, tc)
	if !result.Success {
		return toolOutcome{toolMsg: llmclient.ToolResultMessage(call.ID, encodeResult(result))}
	}

	imageURL, targetURL := extractScreenshot(result)
	if imageURL == "" {
		ack := llmclient.ToolResultMessage(call.ID, `{"success":true,"note":"screenshot capture failed, no image available"}`)
		return toolOutcome{toolMsg: ack}
	}

	ack := llmclient.ToolResultMessage(call.ID, `{"success":true,"note":"screenshot captured"}`)
	userMsg := llmclient.ImageMessage(fmt.Sprintf("Here is the screenshot for %s", targetURL), imageURL)
	return toolOutcome{toolMsg: ack, userMsg: &userMsg}
}

// extractScreenshot pulls imageUrl/url out of the tool result's loosely
// typed payload without a compile-time dependency on external.ScreenshotResult,
// keeping agentloop decoupled from pkg/external.
func extractScreenshot(result tools.Result) (imageURL, targetURL string) {
	data, err := json.Marshal(result.Result)
	if err != nil {
		return "", ""
	}
	var out struct {
		ImageURL string `json:"imageUrl"`
		URL      string `json:"url"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return "", ""
	}
	return out.ImageURL, out.URL
}

func encodeResult(r tools.Result) string {
	data, err := json.Marshal(r)
	if err != nil {
		return `{"success":false,"error":{"message":"failed to encode tool result"}}`
	}
	return string(data)
}

type reviewVerdict struct {
	PassedReview bool   `json:"passedReview"`
	Feedback     string `json:"feedback,omitempty"`
}

// review runs the reviewer sub-protocol, spec.md §4.5's last paragraph. A
// JSON-parse failure defaults to passedReview=true to avoid an infinite
// loop, exactly as the spec requires.
func (l *Loop) review(ctx context.Context, tc *tools.Context, submitted tools.Result) (Outcome, bool) {
	payload, _ := json.Marshal(submitted.Result)

	var draft tools.SubmitReportResult
	_ = json.Unmarshal(payload, &draft)

	intent, _, _, _, _ := tc.Scratch.Get()

	messages := []openai.ChatCompletionMessage{
		llmclient.TextMessage(openai.ChatMessageRoleSystem,
			`You are reviewing a fact-check draft for completeness and neutrality. Respond with strict JSON: {"passedReview": bool, "feedback": string}.`),
		llmclient.TextMessage(openai.ChatMessageRoleUser,
			fmt.Sprintf("User intent: %s\n\nDraft report:\n%s", intent, draft.LongformReport)),
	}

	var verdict reviewVerdict
	if err := l.llm.ChatJSON(ctx, messages, 30*time.Second, &verdict); err != nil {
		verdict = reviewVerdict{PassedReview: true}
	}

	if !verdict.PassedReview {
		return Outcome{}, false
	}
	return Outcome{Report: draft.LongformReport, Sources: draft.Sources, IsControversial: draft.IsControversial}, true
}
