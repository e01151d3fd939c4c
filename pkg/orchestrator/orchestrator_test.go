package orchestrator

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/checkmate-dev/checkmate/ent"
	"github.com/checkmate-dev/checkmate/ent/check"
	"github.com/checkmate-dev/checkmate/pkg/checkerr"
	"github.com/checkmate-dev/checkmate/pkg/checkstore"
	"github.com/checkmate-dev/checkmate/pkg/config"
	"github.com/checkmate-dev/checkmate/pkg/external"
	"github.com/checkmate-dev/checkmate/pkg/fingerprint"
	"github.com/checkmate-dev/checkmate/pkg/llmclient"
	"github.com/checkmate-dev/checkmate/pkg/models"
	"github.com/checkmate-dev/checkmate/pkg/similarity"
	"github.com/checkmate-dev/checkmate/pkg/submission"
)

// newTestEntClient mirrors the same testcontainers-backed helper used
// across pkg/checkstore, pkg/submission and pkg/similarity.
func newTestEntClient(t *testing.T) *ent.Client {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(pgContainer); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	drv, err := sql.Open(dialect.Postgres, connStr)
	require.NoError(t, err)

	entClient := ent.NewClient(ent.Driver(drv))
	require.NoError(t, entClient.Schema.Create(ctx))
	t.Cleanup(func() { _ = entClient.Close() })
	return entClient
}

type roundTripFunc func(req *http.Request) (*http.Response, error)

func (f roundTripFunc) Do(req *http.Request) (*http.Response, error) { return f(req) }

func failingHTTPClient(t *testing.T) external.HTTPClient {
	return roundTripFunc(func(req *http.Request) (*http.Response, error) {
		t.Fatal("unexpected upstream call on the exact-hash path")
		return nil, nil
	})
}

// newTestOrchestrator wires the admission half (Submit) against a real
// Postgres-backed store and submission ledger, with every outward-facing
// collaborator (embedder, image hasher, LLM, Slack) either nil-safe or
// stubbed to fail loudly if called on a path that shouldn't reach it.
func newTestOrchestrator(t *testing.T, entClient *ent.Client) (*Orchestrator, *checkstore.Store, *submission.Store) {
	store := checkstore.New(entClient)
	subs := submission.New(entClient)

	llm, err := llmclient.New(&config.LLMProviderConfig{Model: "stub-model", BaseURL: "http://llm.invalid/v1", MaxToolResultTokens: 2000})
	require.NoError(t, err)

	embedder := &external.EmbedderClient{HC: failingHTTPClient(t)}
	imgHash := &external.ImageHashClient{HC: failingHTTPClient(t)}
	sim := similarity.New(config.DefaultSimilarityConfig(), store, embedder, imgHash, llm)

	deps := Dependencies{
		Store:       store,
		Submissions: subs,
		Similarity:  sim,
		LLM:         llm,
		Embedder:    embedder,
		ImageHash:   imgHash,
		Background:  NewBackground(nil, 1),
		Slack:       nil, // nil Service is valid and every method is a no-op
	}
	return New(deps), store, subs
}

// TestSubmit_NewCheck_ReservesRowAndSubmission covers spec.md §4.6 steps
// 1-4 on the common path: no existing match, so Submit reserves a fresh
// Check row and an auditable, pending Submission row before any LLM spend.
func TestSubmit_NewCheck_ReservesRowAndSubmission(t *testing.T) {
	entClient := newTestEntClient(t)
	orch, store, subs := newTestOrchestrator(t, entClient)
	ctx := context.Background()

	// A fresh check backfills its text embedding in the background; an
	// unavailable embedder there is only logged, so answer with a 503.
	orch.deps.Embedder = &external.EmbedderClient{HC: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return &http.Response{StatusCode: http.StatusServiceUnavailable, Body: io.NopCloser(bytes.NewReader(nil))}, nil
	})}

	result, err := orch.Submit(ctx, models.SubmissionRequest{Text: "Donald Trump is the president"}, "some-partner")
	require.NoError(t, err)
	assert.False(t, result.Matched)
	require.NotEmpty(t, result.CheckID)

	row, err := store.FindByID(ctx, result.CheckID)
	require.NoError(t, err)
	assert.Equal(t, check.GenerationStatusPending, row.GenerationStatus)
	assert.Equal(t, fingerprint.HashText("Donald Trump is the president"), *row.TextHash)

	subsForCheck, err := subs.ListByCheckID(ctx, result.CheckID)
	require.NoError(t, err)
	require.Len(t, subsForCheck, 1)
	assert.Equal(t, "pending", string(subsForCheck[0].CheckStatus))
	assert.Equal(t, "some-partner", subsForCheck[0].ConsumerName)
}

// TestSubmit_FindSimilar_ExactHashMatchShortCircuits covers the cached-hit
// branch: when a prior check's text hash matches exactly, Submit links the
// new request to it and returns the cached result instead of reserving a
// new row, without ever calling the embedder (the exact-hash path never
// needs one).
func TestSubmit_FindSimilar_ExactHashMatchShortCircuits(t *testing.T) {
	entClient := newTestEntClient(t)
	orch, store, subs := newTestOrchestrator(t, entClient)
	ctx := context.Background()

	text := "Is this claim a scam?"
	title := "Prior fact-check"
	_, err := store.Insert(ctx, checkstore.NewCheckInput{
		ID: "prior-check", Type: check.TypeText, Text: &text,
		Timestamp: time.Now(), TextHash: func() *string { h := fingerprint.HashText(text); return &h }(),
	})
	require.NoError(t, err)
	require.NoError(t, store.UpdateFields(ctx, "prior-check", checkstore.Partial{Title: &title}))

	result, err := orch.Submit(ctx, models.SubmissionRequest{Text: text, FindSimilar: true}, "some-partner")
	require.NoError(t, err)

	assert.True(t, result.Matched)
	assert.Equal(t, "prior-check", result.CheckID)
	assert.Equal(t, title, result.Result.Title)

	subsForCheck, err := subs.ListByCheckID(ctx, "prior-check")
	require.NoError(t, err)
	require.Len(t, subsForCheck, 1)
	assert.Equal(t, "completed", string(subsForCheck[0].CheckStatus))
}

// TestSubmit_FindSimilar_TiebreakFailureProceedsWithFreshCheck covers
// spec.md §4.2's rule that an unparsable same-claim tiebreak is a
// no-match outcome, not a hard failure: Submit must swallow the
// checkerr.SimilarityUpstreamFailure from the engine and reserve a fresh
// check exactly as it would if no candidate had been found at all.
func TestSubmit_FindSimilar_TiebreakFailureProceedsWithFreshCheck(t *testing.T) {
	entClient := newTestEntClient(t)
	store := checkstore.New(entClient)
	subs := submission.New(entClient)
	ctx := context.Background()

	prior := "Is X a scam?"
	_, err := store.Insert(ctx, checkstore.NewCheckInput{
		ID: "prior-check", Type: check.TypeText, Text: &prior,
		Timestamp: time.Now(), TextHash: func() *string { h := fingerprint.HashText(prior); return &h }(),
	})
	require.NoError(t, err)
	vec := make([]float64, 384)
	vec[0] = 1
	require.NoError(t, store.UpdateFields(ctx, "prior-check", checkstore.Partial{TextEmbedding: vec}))

	embedder := &external.EmbedderClient{HC: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		body, _ := json.Marshal(map[string]any{"embedding": vec})
		return &http.Response{
			StatusCode: 200,
			Body:       io.NopCloser(bytes.NewReader(body)),
			Header:     http.Header{"Content-Type": {"application/json"}},
		}, nil
	})}

	llmSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := openai.ChatCompletionResponse{Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: "not json"}},
		}}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer llmSrv.Close()
	llm, err := llmclient.New(&config.LLMProviderConfig{Model: "stub-model", BaseURL: llmSrv.URL + "/v1", MaxToolResultTokens: 2000})
	require.NoError(t, err)

	sim := similarity.New(config.DefaultSimilarityConfig(), store, embedder, &external.ImageHashClient{}, llm)
	orch := New(Dependencies{
		Store: store, Submissions: subs, Similarity: sim, LLM: llm,
		Embedder: embedder, ImageHash: &external.ImageHashClient{},
		Background: NewBackground(nil, 1),
	})

	result, err := orch.Submit(ctx, models.SubmissionRequest{Text: "Is X truly a scam?", FindSimilar: true}, "some-partner")
	require.NoError(t, err)

	assert.False(t, result.Matched)
	assert.NotEqual(t, "prior-check", result.CheckID)

	row, err := store.FindByID(ctx, result.CheckID)
	require.NoError(t, err)
	assert.Equal(t, check.GenerationStatusPending, row.GenerationStatus)
}

// TestSubmit_InvalidInput covers spec.md §4.6's admission guard: a
// submission with neither text nor an image is rejected before any row is
// reserved.
func TestSubmit_InvalidInput(t *testing.T) {
	entClient := newTestEntClient(t)
	orch, _, _ := newTestOrchestrator(t, entClient)

	_, err := orch.Submit(context.Background(), models.SubmissionRequest{}, "some-partner")
	require.Error(t, err)
	assert.Equal(t, checkerr.InvalidInput, checkerr.KindOf(err))
}

// TestBuildCheckResult_PendingCheck covers the still-pending shape of
// spec.md §6's CheckResult: artifact fields stay at their zero value until
// the pipeline populates them.
func TestBuildCheckResult_PendingCheck(t *testing.T) {
	entClient := newTestEntClient(t)
	store := checkstore.New(entClient)
	ctx := context.Background()

	text := "a claim"
	_, err := store.Insert(ctx, checkstore.NewCheckInput{
		ID: "check-1", Type: check.TypeText, Text: &text, Timestamp: time.Now(),
	})
	require.NoError(t, err)

	row, err := store.FindByID(ctx, "check-1")
	require.NoError(t, err)

	out := BuildCheckResult(row)
	assert.Equal(t, "a claim", out.Text)
	assert.Empty(t, out.Report)
	assert.Empty(t, out.CommunityNote)
	assert.False(t, out.IsHumanAssessed)
}
