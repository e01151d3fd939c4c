// Package similarity is the Similarity Engine (C2): it decides whether an
// incoming submission reuses an existing Check, routing by submission
// shape (text-only, image-only, image+caption) through exact-hash lookup,
// vector search, and an LLM tiebreak, per spec.md §4.2.
package similarity

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/checkmate-dev/checkmate/pkg/checkerr"
	"github.com/checkmate-dev/checkmate/pkg/checkstore"
	"github.com/checkmate-dev/checkmate/pkg/config"
	"github.com/checkmate-dev/checkmate/pkg/external"
	"github.com/checkmate-dev/checkmate/pkg/fingerprint"
	"github.com/checkmate-dev/checkmate/pkg/llmclient"
)

// MatchType mirrors spec.md §4.2's matchType enum.
type MatchType string

const (
	MatchText  MatchType = "text"
	MatchImage MatchType = "image"
	MatchBoth  MatchType = "both"
)

// Result is the Engine's output shape, spec.md §4.2.
type Result struct {
	MatchedCheckID  string
	MatchType       MatchType
	SimilarityScore float64
	HammingDistance int
	Reasoning       string
	IsMatch         bool
}

// Request is the incoming submission as the engine needs it.
type Request struct {
	Text     string
	ImageURL string
	Caption  string
}

// Engine implements the three routing paths of spec.md §4.2.
type Engine struct {
	cfg      *config.SimilarityConfig
	store    *checkstore.Store
	embedder *external.EmbedderClient
	imgHash  *external.ImageHashClient
	llm      *llmclient.Client
}

// New builds an Engine.
func New(cfg *config.SimilarityConfig, store *checkstore.Store, embedder *external.EmbedderClient, imgHash *external.ImageHashClient, llm *llmclient.Client) *Engine {
	return &Engine{cfg: cfg, store: store, embedder: embedder, imgHash: imgHash, llm: llm}
}

func (e *Engine) searchOpts() checkstore.SearchOpts {
	return checkstore.SearchOpts{RequireHumanAssessed: e.cfg.RequireHumanAssessed}
}

// Match routes req to the appropriate matching path. A failure in the LLM
// same-claim tiebreak is returned as a checkerr.SimilarityUpstreamFailure:
// per spec.md §4.2 this is a no-match outcome, not a qualified one, and
// it's left to the caller (the orchestrator) to treat that Kind as
// "no-match, proceed fresh" rather than a hard failure.
func (e *Engine) Match(ctx context.Context, req Request) (Result, error) {
	switch {
	case req.ImageURL != "" && req.Caption != "":
		return e.matchImageAndCaption(ctx, req)
	case req.ImageURL != "":
		return e.matchImageOnly(ctx, req)
	case req.Text != "":
		return e.matchTextOnly(ctx, req)
	default:
		return Result{}, checkerr.New(checkerr.InvalidInput, "submission must carry text or imageUrl")
	}
}

func noMatch(reason string) Result {
	return Result{IsMatch: false, Reasoning: reason}
}

func (e *Engine) matchTextOnly(ctx context.Context, req Request) (Result, error) {
	textHash := fingerprint.HashText(req.Text)

	exact, err := e.store.FindByTextHash(ctx, textHash)
	if err != nil {
		return Result{}, err
	}
	if exact != nil {
		return Result{MatchedCheckID: exact.ID, MatchType: MatchText, SimilarityScore: 1.0, IsMatch: true, Reasoning: "exact text hash match"}, nil
	}

	embedding, err := e.embedder.Embed(ctx, req.Text)
	if err != nil {
		return Result{}, checkerr.Wrap(checkerr.SimilarityUpstreamFailure, "embed submission text", err)
	}

	k := e.cfg.DefaultLimit
	candidates, err := e.store.FindSimilarTextEmbedding(ctx, embedding, k, e.cfg.CandidateMultiplier*k, e.searchOpts())
	if err != nil {
		return Result{}, checkerr.Wrap(checkerr.SimilarityUpstreamFailure, "text vector search", err)
	}
	if len(candidates) == 0 {
		return noMatch("no vector-search candidates"), nil
	}

	top := candidates[0]
	if top.Score <= e.cfg.TextScoreThreshold {
		return noMatch(fmt.Sprintf("top score %.3f below threshold %.3f", top.Score, e.cfg.TextScoreThreshold)), nil
	}

	existing, err := e.store.FindByID(ctx, top.ID)
	if err != nil {
		return Result{}, err
	}
	priorText := ""
	if existing.Text != nil {
		priorText = *existing.Text
	}

	sameClaim, reasoning, err := e.sameClaim(ctx, req.Text, priorText)
	if err != nil {
		return Result{}, checkerr.Wrap(checkerr.SimilarityUpstreamFailure, "same-claim tiebreak", err)
	}

	return Result{
		MatchedCheckID:  top.ID,
		MatchType:       MatchText,
		SimilarityScore: top.Score,
		IsMatch:         sameClaim,
		Reasoning:       reasoning,
	}, nil
}

func (e *Engine) matchImageOnly(ctx context.Context, req Request) (Result, error) {
	hashHex, _, err := e.imgHash.HashURL(ctx, req.ImageURL)
	if err != nil {
		return Result{}, checkerr.Wrap(checkerr.SimilarityUpstreamFailure, "pdq hash image", err)
	}

	exact, err := e.store.FindByImageHash(ctx, hashHex, nil)
	if err != nil {
		return Result{}, err
	}
	if exact != nil {
		return Result{MatchedCheckID: exact.ID, MatchType: MatchImage, HammingDistance: 0, IsMatch: true, Reasoning: "exact PDQ hash match"}, nil
	}

	vec, err := fingerprint.PDQToVector(hashHex)
	if err != nil {
		return Result{}, checkerr.Wrap(checkerr.InvalidFingerprint, "expand pdq hash to vector", err)
	}

	k := e.cfg.DefaultLimit
	candidates, err := e.store.FindSimilarImageEmbedding(ctx, vec, k, e.cfg.CandidateMultiplier*k, false)
	if err != nil {
		return Result{}, checkerr.Wrap(checkerr.SimilarityUpstreamFailure, "pdq vector search", err)
	}
	if len(candidates) == 0 {
		return noMatch("no pdq vector-search candidates"), nil
	}

	top := candidates[0]
	distance, err := fingerprint.HammingDistance(hashHex, top.ImageHash)
	if err != nil {
		return noMatch("top candidate has no comparable image hash"), nil
	}
	if distance >= e.cfg.HammingThreshold {
		return noMatch(fmt.Sprintf("hamming distance %d at or above threshold %d", distance, e.cfg.HammingThreshold)), nil
	}

	return Result{MatchedCheckID: top.ID, MatchType: MatchImage, HammingDistance: distance, IsMatch: true,
		Reasoning: fmt.Sprintf("hamming distance %d below threshold", distance)}, nil
}

func (e *Engine) matchImageAndCaption(ctx context.Context, req Request) (Result, error) {
	imageHashHex, _, err := e.imgHash.HashURL(ctx, req.ImageURL)
	if err != nil {
		return Result{}, checkerr.Wrap(checkerr.SimilarityUpstreamFailure, "pdq hash image", err)
	}
	captionHash := fingerprint.HashText(req.Caption)

	exact, err := e.store.FindByImageHash(ctx, imageHashHex, &captionHash)
	if err != nil {
		return Result{}, err
	}
	if exact != nil {
		return Result{MatchedCheckID: exact.ID, MatchType: MatchBoth, HammingDistance: 0, IsMatch: true, Reasoning: "exact image+caption hash match"}, nil
	}

	vec, err := fingerprint.PDQToVector(imageHashHex)
	if err != nil {
		return Result{}, checkerr.Wrap(checkerr.InvalidFingerprint, "expand pdq hash to vector", err)
	}

	candidates, err := e.store.FindSimilarImageEmbedding(ctx, vec, e.cfg.ImageCandidateLimit, e.cfg.CandidateMultiplier*e.cfg.ImageCandidateLimit, true)
	if err != nil {
		return Result{}, checkerr.Wrap(checkerr.SimilarityUpstreamFailure, "pdq vector search", err)
	}

	for _, cand := range candidates {
		if cand.Caption == nil || *cand.Caption == "" {
			continue
		}
		distance, err := fingerprint.HammingDistance(imageHashHex, cand.ImageHash)
		if err != nil {
			continue
		}
		if distance < e.cfg.HammingThreshold && fingerprint.HashText(*cand.Caption) == captionHash {
			return Result{MatchedCheckID: cand.ID, MatchType: MatchBoth, HammingDistance: distance, IsMatch: true,
				Reasoning: fmt.Sprintf("hamming distance %d and caption hash match", distance)}, nil
		}
	}

	return noMatch("no combined image+caption candidate satisfied both conditions"), nil
}

type sameClaimVerdict struct {
	AreVariantsOfSameClaim bool   `json:"are_variants_of_same_claim"`
	Reasoning              string `json:"reasoning"`
}

// sameClaim invokes the LLM same-claim check under a hard 30s cap
// (configurable via SameClaimTimeoutSeconds). An unparsable response or a
// timeout is surfaced as an error for the caller to treat as "tiebreak
// unavailable", never as a hard pipeline failure.
func (e *Engine) sameClaim(ctx context.Context, a, b string) (bool, string, error) {
	timeout := time.Duration(e.cfg.SameClaimTimeoutSeconds) * time.Second

	messages := []openai.ChatCompletionMessage{
		llmclient.TextMessage(openai.ChatMessageRoleSystem,
			"You decide whether two pieces of text make the same fact-checkable claim. "+
				`Respond with strict JSON: {"are_variants_of_same_claim": bool, "reasoning": string}.`),
		llmclient.TextMessage(openai.ChatMessageRoleUser,
			fmt.Sprintf("Text A: %s\n\nText B: %s", a, b)),
	}

	var verdict sameClaimVerdict
	if err := e.llm.ChatJSON(ctx, messages, timeout, &verdict); err != nil {
		return false, "", err
	}
	return verdict.AreVariantsOfSameClaim, verdict.Reasoning, nil
}
