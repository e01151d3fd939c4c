// Package orchestrator is the Pipeline Orchestrator (C6): it turns one
// inbound submission into a durable Check row visible to moderators
// within milliseconds, then — on a claimed background worker — drives
// that row through image download, URL extraction, preprocessing, the
// agent loop, summarization, translation, moderator notification, and
// voting. Grounded on the teacher's pkg/queue worker-pool shape
// (claim-next, heartbeat, orphan recovery, graceful shutdown), split here
// into a synchronous admission half (Submit) and an asynchronous
// pipeline half (RunPipeline) to honor spec.md §4.6's ordering guarantee
// that a submission is visible to moderators before any LLM spend.
package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/checkmate-dev/checkmate/ent/check"
	"github.com/checkmate-dev/checkmate/pkg/agentloop"
	"github.com/checkmate-dev/checkmate/pkg/blobcache"
	"github.com/checkmate-dev/checkmate/pkg/checkerr"
	"github.com/checkmate-dev/checkmate/pkg/checkstore"
	"github.com/checkmate-dev/checkmate/pkg/config"
	"github.com/checkmate-dev/checkmate/pkg/external"
	"github.com/checkmate-dev/checkmate/pkg/fingerprint"
	"github.com/checkmate-dev/checkmate/pkg/ids"
	"github.com/checkmate-dev/checkmate/pkg/llmclient"
	"github.com/checkmate-dev/checkmate/pkg/models"
	"github.com/checkmate-dev/checkmate/pkg/similarity"
	"github.com/checkmate-dev/checkmate/pkg/slack"
	"github.com/checkmate-dev/checkmate/pkg/submission"
	"github.com/checkmate-dev/checkmate/pkg/tools"
)

// Dependencies bundles every collaborator the orchestrator needs, built
// once at process startup and shared by both the HTTP-facing admission
// half and every worker in the pool.
type Dependencies struct {
	Store       *checkstore.Store
	Submissions *submission.Store
	Similarity  *similarity.Engine
	LLM         *llmclient.Client
	Loop        *agentloop.Loop
	Registry    *tools.Registry
	Embedder    *external.EmbedderClient
	ImageHash   *external.ImageHashClient
	Search      *external.SearchClient
	Screenshot  *external.ScreenshotClient
	URLScan     *external.URLScanClient
	Blobs       *blobcache.Cache
	Voting      *external.VotingClient
	Slack       *slack.Service
	Cfg         *config.Config
	Background  *Background
	Logger      *slog.Logger
}

// Orchestrator implements C6 over an injected Dependencies bundle.
type Orchestrator struct {
	deps Dependencies
}

// New builds an Orchestrator.
func New(deps Dependencies) *Orchestrator {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &Orchestrator{deps: deps}
}

// SubmitResult is what Submit hands back to the HTTP layer: the resolved
// check id, whether it was a pre-existing match, and — only when
// matched — the cached result ready to serve immediately.
type SubmitResult struct {
	CheckID string
	Matched bool
	Result  models.CheckResult
}

// Submit implements spec.md §4.6 steps 1-4: classify the submission's
// source, run the similarity check, and either link to an existing check
// or reserve a fresh one and notify moderators — synchronously, so the
// HTTP response never races the moderator notification it promises.
func (o *Orchestrator) Submit(ctx context.Context, req models.SubmissionRequest, consumerName string) (SubmitResult, error) {
	if req.Text == "" && req.ImageURL == "" {
		return SubmitResult{}, checkerr.New(checkerr.InvalidInput, "submission must carry text or imageUrl")
	}

	requestID := ids.New()
	sourceType := models.ClassifySourceType(consumerName)
	subType := models.SubmissionText
	if req.ImageURL != "" {
		subType = models.SubmissionImage
	}
	now := time.Now()

	if req.FindSimilar {
		match, err := o.deps.Similarity.Match(ctx, similarity.Request{Text: req.Text, ImageURL: req.ImageURL, Caption: req.Caption})
		if err != nil && checkerr.KindOf(err) != checkerr.SimilarityUpstreamFailure {
			return SubmitResult{}, err
		}
		// A SimilarityUpstreamFailure (e.g. an unparsable same-claim
		// tiebreak) is a no-match outcome per spec.md §4.2, not a hard
		// failure: fall through and reserve a fresh check as if no
		// candidate had been found at all.
		if err == nil && match.IsMatch {
			if err := o.deps.Submissions.Insert(ctx, models.Submission{
				RequestID: requestID, Timestamp: now, SourceType: sourceType, ConsumerName: consumerName,
				Type: subType, Text: req.Text, ImageURL: req.ImageURL, Caption: req.Caption,
				CheckID: match.MatchedCheckID, CheckStatus: models.CheckStatusCompleted,
			}); err != nil {
				return SubmitResult{}, err
			}
			row, err := o.deps.Store.FindByID(ctx, match.MatchedCheckID)
			if err != nil {
				return SubmitResult{}, err
			}
			return SubmitResult{CheckID: match.MatchedCheckID, Matched: true, Result: BuildCheckResult(row)}, nil
		}
	}

	checkID := ids.New()

	var textHash, captionHash, imageHash *string
	var pdqVec []int
	if req.Text != "" {
		h := fingerprint.HashText(req.Text)
		textHash = &h
	}
	if req.Caption != "" {
		h := fingerprint.HashText(req.Caption)
		captionHash = &h
	}
	if req.ImageURL != "" {
		hashHex, _, err := o.deps.ImageHash.HashURL(ctx, req.ImageURL)
		if err != nil {
			return SubmitResult{}, checkerr.Wrap(checkerr.SimilarityUpstreamFailure, "pdq hash image", err)
		}
		imageHash = &hashHex
		vec, err := fingerprint.PDQToVector(hashHex)
		if err != nil {
			return SubmitResult{}, checkerr.Wrap(checkerr.InvalidFingerprint, "expand pdq hash to vector", err)
		}
		pdqVec = vec
	}

	in := checkstore.NewCheckInput{
		ID: checkID, Type: check.Type(subType), Timestamp: now,
		TextHash: textHash, CaptionHash: captionHash, ImageHash: imageHash, PDQVector: pdqVec,
	}
	if req.Text != "" {
		in.Text = &req.Text
	}
	if req.ImageURL != "" {
		in.ImageURL = &req.ImageURL
	}
	if req.Caption != "" {
		in.Caption = &req.Caption
	}
	if _, err := o.deps.Store.Insert(ctx, in); err != nil {
		return SubmitResult{}, err
	}

	if err := o.deps.Submissions.Insert(ctx, models.Submission{
		RequestID: requestID, Timestamp: now, SourceType: sourceType, ConsumerName: consumerName,
		Type: subType, Text: req.Text, ImageURL: req.ImageURL, Caption: req.Caption,
		CheckID: checkID, CheckStatus: models.CheckStatusPending,
	}); err != nil {
		return SubmitResult{}, err
	}

	o.backfillEmbeddings(checkID, req)

	// Synchronous: moderators must see the check before any LLM spend,
	// and the pipeline worker needs notificationId to thread later replies.
	o.deps.Slack.NotifyNewCheck(ctx, slack.NewCheckInput{CheckID: checkID, Text: req.Text, ImageURL: req.ImageURL, Caption: req.Caption})

	row, err := o.deps.Store.FindByID(ctx, checkID)
	if err != nil {
		return SubmitResult{}, err
	}
	return SubmitResult{CheckID: checkID, Matched: false, Result: BuildCheckResult(row)}, nil
}

// backfillEmbeddings dispatches the text/caption embedding writes to the
// best-effort background executor: a slow or failing embedder must never
// delay the moderator-visible response Submit returns.
func (o *Orchestrator) backfillEmbeddings(checkID string, req models.SubmissionRequest) {
	if req.Text == "" && req.Caption == "" {
		return
	}
	o.deps.Background.Go(fmt.Sprintf("embed:%s", checkID), func(ctx context.Context) error {
		var p checkstore.Partial
		if req.Text != "" {
			v, err := o.deps.Embedder.Embed(ctx, req.Text)
			if err != nil {
				return err
			}
			p.TextEmbedding = v
		}
		if req.Caption != "" {
			v, err := o.deps.Embedder.Embed(ctx, req.Caption)
			if err != nil {
				return err
			}
			p.CaptionEmbedding = v
		}
		return o.deps.Store.UpdateFields(ctx, checkID, p)
	})
}
