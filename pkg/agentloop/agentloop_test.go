package agentloop

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/checkmate-dev/checkmate/pkg/checkerr"
	"github.com/checkmate-dev/checkmate/pkg/config"
	"github.com/checkmate-dev/checkmate/pkg/llmclient"
	"github.com/checkmate-dev/checkmate/pkg/tools"
)

func fixedNow() time.Time { return time.Date(2026, 7, 31, 12, 0, 0, 0, time.UTC) }

func newTestRegistry() *tools.Registry {
	return tools.NewRegistry(tools.Dependencies{})
}

func newTestContext() *tools.Context {
	quotas := tools.NewQuotas(&config.ToolQuotaConfig{SearchGoogle: 3, GetWebsiteScreenshot: 3, CheckMaliciousURL: 3})
	return &tools.Context{RequestID: "req-1", Quotas: quotas, Scratch: &tools.Scratch{}}
}

// fakeChat scripts a sequence of assistant turns and JSON review verdicts.
type fakeChat struct {
	turns    []openai.ChatCompletionMessage
	turnIdx  int
	verdicts []string
	verdictI int
}

func (f *fakeChat) Chat(ctx context.Context, req llmclient.ChatRequest) (openai.ChatCompletionMessage, error) {
	if f.turnIdx >= len(f.turns) {
		return openai.ChatCompletionMessage{}, checkerr.New(checkerr.UpstreamFailure, "no more scripted turns")
	}
	m := f.turns[f.turnIdx]
	f.turnIdx++
	return m, nil
}

func (f *fakeChat) ChatJSON(ctx context.Context, messages []openai.ChatCompletionMessage, timeout time.Duration, out any) error {
	if f.verdictI >= len(f.verdicts) {
		return checkerr.New(checkerr.UpstreamFailure, "no more scripted verdicts")
	}
	v := f.verdicts[f.verdictI]
	f.verdictI++
	return json.Unmarshal([]byte(v), out)
}

func submitCall(id string, report string) openai.ChatCompletionMessage {
	args, _ := json.Marshal(tools.SubmitReportResult{LongformReport: report, Sources: []string{"https://example.com"}, IsControversial: false})
	return openai.ChatCompletionMessage{
		Role: openai.ChatMessageRoleAssistant,
		ToolCalls: []openai.ToolCall{
			{ID: id, Type: openai.ToolTypeFunction, Function: openai.FunctionCall{Name: tools.NameSubmitReportForReview, Arguments: string(args)}},
		},
	}
}

func TestLoop_TerminatesOnPassedReview(t *testing.T) {
	chat := &fakeChat{
		turns:    []openai.ChatCompletionMessage{submitCall("call-1", "the claim is false")},
		verdicts: []string{`{"passedReview": true, "feedback": "looks good"}`},
	}
	l := &Loop{llm: chat, registry: newTestRegistry()}

	outcome, err := l.Run(context.Background(), newTestContext(), "check this claim", fixedNow)
	require.NoError(t, err)
	assert.Equal(t, "the claim is false", outcome.Report)
	assert.Equal(t, []string{"https://example.com"}, outcome.Sources)
}

func TestLoop_RetriesAfterFailedReview(t *testing.T) {
	chat := &fakeChat{
		turns: []openai.ChatCompletionMessage{
			submitCall("call-1", "draft one"),
			submitCall("call-2", "draft two, improved"),
		},
		verdicts: []string{
			`{"passedReview": false, "feedback": "needs more sources"}`,
			`{"passedReview": true, "feedback": "now it's fine"}`,
		},
	}
	l := &Loop{llm: chat, registry: newTestRegistry()}

	outcome, err := l.Run(context.Background(), newTestContext(), "check this claim", fixedNow)
	require.NoError(t, err)
	assert.Equal(t, "draft two, improved", outcome.Report)
}

func TestLoop_ReviewJSONParseFailureDefaultsToPassed(t *testing.T) {
	chat := &fakeChat{
		turns:    []openai.ChatCompletionMessage{submitCall("call-1", "draft")},
		verdicts: []string{}, // ChatJSON errors -> review defaults passedReview=true
	}
	l := &Loop{llm: chat, registry: newTestRegistry()}

	outcome, err := l.Run(context.Background(), newTestContext(), "check this claim", fixedNow)
	require.NoError(t, err)
	assert.Equal(t, "draft", outcome.Report)
}

func TestLoop_NoToolCallsNudgesThenExhausts(t *testing.T) {
	turns := make([]openai.ChatCompletionMessage, 0, maxSteps)
	for i := 0; i < maxSteps; i++ {
		turns = append(turns, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: "thinking..."})
	}
	chat := &fakeChat{turns: turns}
	l := &Loop{llm: chat, registry: newTestRegistry()}

	_, err := l.Run(context.Background(), newTestContext(), "check this claim", fixedNow)
	require.Error(t, err)
	assert.Equal(t, checkerr.AgentLoopExhausted, checkerr.KindOf(err))
}

func TestSystemMessage_ReportsRemainingQuotas(t *testing.T) {
	l := &Loop{registry: newTestRegistry()}
	tc := newTestContext()
	tc.Quotas.SearchGoogle = 1

	msg := l.systemMessage(tc, fixedNow())
	assert.Contains(t, msg.Content, "search_google=1")
	assert.Contains(t, msg.Content, "2026-07-31")
}
