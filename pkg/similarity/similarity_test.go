package similarity

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
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
)

func newTestStore(t *testing.T) *checkstore.Store {
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

	return checkstore.New(entClient)
}

func mustStr(s string) *string { return &s }

// roundTripFunc adapts a plain function to external.HTTPClient, letting
// each test script the embedder/image-hash response without a real server.
type roundTripFunc func(req *http.Request) (*http.Response, error)

func (f roundTripFunc) Do(req *http.Request) (*http.Response, error) { return f(req) }

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

func fixedEmbeddingVector(seed float64) []float64 {
	v := make([]float64, 384)
	v[0] = seed
	return v
}

func defaultCfg() *config.SimilarityConfig {
	return config.DefaultSimilarityConfig()
}

// newOpenAIStubServer starts an httptest server that answers every
// chat-completions call with the given JSON content string, letting tests
// drive the same-claim LLM tiebreak without a real provider.
func newOpenAIStubServer(t *testing.T, content string) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: content}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newLLMClient(t *testing.T, baseURL string) *llmclient.Client {
	c, err := llmclient.New(&config.LLMProviderConfig{
		Model: "stub-model", BaseURL: baseURL, MaxToolResultTokens: 2000,
	})
	require.NoError(t, err)
	return c
}

// TestMatch_TextExactHashHit covers S1: a prior check with the same text
// hash is returned with no embedding call issued (testable property #1 —
// the embedder fake here would error if invoked, proving it wasn't).
func TestMatch_TextExactHashHit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	text := "Donald Trump is the president"
	_, err := store.Insert(ctx, checkstore.NewCheckInput{
		ID: "preexisting-id", Type: check.TypeText, Text: mustStr(text),
		Timestamp: time.Now(), TextHash: mustStr(fingerprint.HashText(text)),
	})
	require.NoError(t, err)

	embedder := &external.EmbedderClient{BaseURL: "http://embedder.invalid", HC: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		t.Fatal("embedder must not be called on an exact hash hit")
		return nil, nil
	})}
	imgHash := external.NewImageHashClient("http://imghash.invalid")
	llm := newLLMClient(t, "http://llm.invalid/v1")

	eng := New(defaultCfg(), store, embedder, imgHash, llm)
	result, err := eng.Match(ctx, Request{Text: text})
	require.NoError(t, err)

	assert.True(t, result.IsMatch)
	assert.Equal(t, "preexisting-id", result.MatchedCheckID)
	assert.Equal(t, MatchText, result.MatchType)
	assert.Equal(t, 1.0, result.SimilarityScore)
}

// TestMatch_TextVectorHitWithLLMConfirm covers S2: a near-miss on exact
// hash falls through to vector search, and the LLM same-claim tiebreak
// decides the final match.
func TestMatch_TextVectorHitWithLLMConfirm(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	prior := "Is X a scam?"
	_, err := store.Insert(ctx, checkstore.NewCheckInput{
		ID: "prior-check", Type: check.TypeText, Text: mustStr(prior),
		Timestamp: time.Now(), TextHash: mustStr(fingerprint.HashText(prior)),
	})
	require.NoError(t, err)
	require.NoError(t, store.UpdateFields(ctx, "prior-check", checkstore.Partial{TextEmbedding: fixedEmbeddingVector(1)}))

	embedder := &external.EmbedderClient{HC: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		body, _ := json.Marshal(map[string]any{"embedding": fixedEmbeddingVector(1)})
		return jsonResponse(200, string(body)), nil
	})}
	imgHash := external.NewImageHashClient("http://imghash.invalid")

	llmSrv := newOpenAIStubServer(t, `{"are_variants_of_same_claim": true, "reasoning": "same underlying claim"}`)
	llm := newLLMClient(t, llmSrv.URL+"/v1")

	eng := New(defaultCfg(), store, embedder, imgHash, llm)
	result, err := eng.Match(ctx, Request{Text: "Is X truly a scam?"})
	require.NoError(t, err)

	assert.True(t, result.IsMatch)
	assert.Equal(t, "prior-check", result.MatchedCheckID)
	assert.Equal(t, MatchText, result.MatchType)
	assert.InDelta(t, 1.0, result.SimilarityScore, 1e-9)
}

// TestMatch_TextVectorBelowThreshold_NoMatch covers the miss branch: a low
// vector score never reaches the LLM tiebreak.
func TestMatch_TextVectorBelowThreshold_NoMatch(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.Insert(ctx, checkstore.NewCheckInput{
		ID: "prior-check", Type: check.TypeText, Text: mustStr("completely unrelated claim"),
		Timestamp: time.Now(), TextHash: mustStr(fingerprint.HashText("completely unrelated claim")),
	})
	require.NoError(t, err)
	orthogonal := make([]float64, 384)
	orthogonal[1] = 1
	require.NoError(t, store.UpdateFields(ctx, "prior-check", checkstore.Partial{TextEmbedding: orthogonal}))

	embedder := &external.EmbedderClient{HC: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		body, _ := json.Marshal(map[string]any{"embedding": fixedEmbeddingVector(1)})
		return jsonResponse(200, string(body)), nil
	})}
	imgHash := external.NewImageHashClient("http://imghash.invalid")
	llm := newLLMClient(t, "http://llm.invalid/v1")

	eng := New(defaultCfg(), store, embedder, imgHash, llm)
	result, err := eng.Match(ctx, Request{Text: "another unrelated claim"})
	require.NoError(t, err)
	assert.False(t, result.IsMatch)
}

// TestMatch_ImageOnlyExactHit covers S3: PDQ hash equals a stored check
// with no caption, reported with hamming distance 0.
func TestMatch_ImageOnlyExactHit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	hashHex := repeatHex("a")
	_, err := store.Insert(ctx, checkstore.NewCheckInput{
		ID: "img-check", Type: check.TypeImage, ImageURL: mustStr("https://example.com/a.jpg"),
		Timestamp: time.Now(), ImageHash: mustStr(hashHex),
	})
	require.NoError(t, err)

	embedder := &external.EmbedderClient{}
	imgHash := &external.ImageHashClient{HC: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		body, _ := json.Marshal(map[string]any{"hash_hex": hashHex, "quality": 0.9})
		return jsonResponse(200, string(body)), nil
	})}
	llm := newLLMClient(t, "http://llm.invalid/v1")

	eng := New(defaultCfg(), store, embedder, imgHash, llm)
	result, err := eng.Match(ctx, Request{ImageURL: "https://example.com/a-dup.jpg"})
	require.NoError(t, err)

	assert.True(t, result.IsMatch)
	assert.Equal(t, "img-check", result.MatchedCheckID)
	assert.Equal(t, MatchImage, result.MatchType)
	assert.Equal(t, 0, result.HammingDistance)
}

// TestMatch_ImageAndCaptionFuzzyMatch covers S4: Hamming distance 12 (below
// the 31 threshold) plus an equal caption hash yields matchType=both.
func TestMatch_ImageAndCaptionFuzzyMatch(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	caption := "scam alert shared widely"
	storedHash := repeatHex("f")
	vec, err := fingerprint.PDQToVector(storedHash)
	require.NoError(t, err)
	_, err = store.Insert(ctx, checkstore.NewCheckInput{
		ID: "img-cap-check", Type: check.TypeImage, ImageURL: mustStr("https://example.com/b.jpg"),
		Caption: mustStr(caption), Timestamp: time.Now(),
		ImageHash: mustStr(storedHash), CaptionHash: mustStr(fingerprint.HashText(caption)),
		PDQVector: vec,
	})
	require.NoError(t, err)

	// Flip the first three hex digits (f -> 0, 12 bits) so the exact-hash
	// lookup misses and the vector-search + Hamming re-verification path
	// is exercised instead, while staying under the 31-bit threshold.
	queryHash := "000" + storedHash[3:]

	embedder := &external.EmbedderClient{}
	imgHash := &external.ImageHashClient{HC: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		body, _ := json.Marshal(map[string]any{"hash_hex": queryHash, "quality": 0.9})
		return jsonResponse(200, string(body)), nil
	})}
	llm := newLLMClient(t, "http://llm.invalid/v1")

	cfg := defaultCfg()
	eng := New(cfg, store, embedder, imgHash, llm)
	result, err := eng.Match(ctx, Request{ImageURL: "https://example.com/b-dup.jpg", Caption: caption})
	require.NoError(t, err)

	assert.True(t, result.IsMatch)
	assert.Equal(t, "img-cap-check", result.MatchedCheckID)
	assert.Equal(t, MatchBoth, result.MatchType)
	assert.Less(t, result.HammingDistance, cfg.HammingThreshold)
}

func repeatHex(seed string) string {
	out := make([]byte, 64)
	for i := range out {
		out[i] = seed[0]
	}
	return string(out)
}

// TestMatch_LLMTiebreakUnavailable_PropagatesSimilarityUpstreamFailure
// covers spec.md §4.2's explicit rule for this case: an unparsable or
// timed-out same-claim tiebreak is a no-match outcome, surfaced as
// checkerr.SimilarityUpstreamFailure for the orchestrator to treat as
// "no-match, proceed fresh" — never a qualified match on the threshold
// decision alone.
func TestMatch_LLMTiebreakUnavailable_PropagatesSimilarityUpstreamFailure(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	prior := "Is X a scam?"
	_, err := store.Insert(ctx, checkstore.NewCheckInput{
		ID: "prior-check", Type: check.TypeText, Text: mustStr(prior),
		Timestamp: time.Now(), TextHash: mustStr(fingerprint.HashText(prior)),
	})
	require.NoError(t, err)
	require.NoError(t, store.UpdateFields(ctx, "prior-check", checkstore.Partial{TextEmbedding: fixedEmbeddingVector(1)}))

	embedder := &external.EmbedderClient{HC: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		body, _ := json.Marshal(map[string]any{"embedding": fixedEmbeddingVector(1)})
		return jsonResponse(200, string(body)), nil
	})}
	imgHash := external.NewImageHashClient("http://imghash.invalid")

	// an LLM stub that always returns unparsable content
	llmSrv := newOpenAIStubServer(t, `not json`)
	llm := newLLMClient(t, llmSrv.URL+"/v1")

	eng := New(defaultCfg(), store, embedder, imgHash, llm)
	_, err = eng.Match(ctx, Request{Text: "Is X truly a scam?"})
	require.Error(t, err)
	assert.Equal(t, checkerr.SimilarityUpstreamFailure, checkerr.KindOf(err))
}

func TestMatch_NoInput(t *testing.T) {
	store := newTestStore(t)
	eng := New(defaultCfg(), store, &external.EmbedderClient{}, external.NewImageHashClient(""), newLLMClient(t, "http://llm.invalid/v1"))
	_, err := eng.Match(context.Background(), Request{})
	require.Error(t, err)
	assert.Equal(t, checkerr.InvalidInput, checkerr.KindOf(err))
}
