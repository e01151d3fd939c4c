package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"sync"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/otel"

	"github.com/checkmate-dev/checkmate/ent"
	"github.com/checkmate-dev/checkmate/ent/check"
	"github.com/checkmate-dev/checkmate/pkg/checkerr"
	"github.com/checkmate-dev/checkmate/pkg/checkstore"
	"github.com/checkmate-dev/checkmate/pkg/checktypes"
	"github.com/checkmate-dev/checkmate/pkg/external"
	"github.com/checkmate-dev/checkmate/pkg/llmclient"
	"github.com/checkmate-dev/checkmate/pkg/models"
	"github.com/checkmate-dev/checkmate/pkg/slack"
	"github.com/checkmate-dev/checkmate/pkg/tools"
)

var tracer = otel.Tracer("checkmate/orchestrator")

var urlRe = regexp.MustCompile(`https?://[^\s()<>\[\]{}"']+`)

// BuildCheckResult converts a persisted Check row into the public
// CheckResult shape of spec.md §6. A still-pending check simply carries
// its empty-valued artifact fields (all `omitempty`).
func BuildCheckResult(row *ent.Check) models.CheckResult {
	out := models.CheckResult{
		IsControversial:      row.IsControversial,
		IsVideo:              row.IsVideo,
		IsAccessBlocked:      row.IsAccessBlocked,
		Timestamp:            row.Timestamp,
		IsHumanAssessed:      row.IsHumanAssessed,
		IsVoteTriggered:      row.IsVoteTriggered,
		CrowdsourcedCategory: row.CrowdsourcedCategory,
	}
	if row.Text != nil {
		out.Text = *row.Text
	}
	if row.ImageURL != nil {
		out.ImageURL = *row.ImageURL
	}
	if row.Caption != nil {
		out.Caption = *row.Caption
	}
	if row.Title != nil {
		out.Title = *row.Title
	}
	if row.Slug != nil {
		out.Slug = *row.Slug
	}
	if row.LongformResponse != nil {
		out.Report = row.LongformResponse.En
	}
	if row.ShortformResponse != nil {
		out.CommunityNote = row.ShortformResponse.En
	}
	if row.HumanResponse != nil {
		out.HumanNote = row.HumanResponse.En
	}
	return out
}

// errorStatusFor maps a pipeline phase to its terminal generationStatus.
// models.GenerationStatus and check.GenerationStatus share the same
// underlying string values (spec.md §3's enum), so the conversion is a
// plain cast rather than a lookup table.
func errorStatusFor(phase string) check.GenerationStatus {
	return check.GenerationStatus(string(models.ErrorStatusForPhase(phase)))
}

// RunPipeline implements spec.md §4.6 steps 5-13 over a check a worker has
// already claimed: download, URL extraction, preprocessing, the agent
// loop, summarization, translation, moderator notification, and voting.
// Any step's failure is handled in place (persist terminal status, still
// notify moderators, still attempt voting) rather than propagated, since
// the worker pool has no one left to propagate to but its own log.
func (o *Orchestrator) RunPipeline(ctx context.Context, row *ent.Check) {
	checkID := row.ID
	logger := o.deps.Logger.With("checkId", checkID)

	text, imageURL, caption := "", "", ""
	if row.Text != nil {
		text = *row.Text
	}
	if row.ImageURL != nil {
		imageURL = *row.ImageURL
	}
	if row.Caption != nil {
		caption = *row.Caption
	}

	// Step 5: the image itself isn't needed again until the agent loop or
	// preprocessing asks a vision-capable model to look at it directly
	// (via its URL); downloading here only warms the blob cache so a
	// retried claim doesn't re-fetch it from the origin.
	if imageURL != "" {
		if _, err := o.deps.Blobs.GetBase64(ctx, imageURL); err != nil {
			logger.Warn("image download failed, continuing without cache warm", "error", err)
		}
	}

	pre, err := o.preprocess(ctx, text, imageURL, caption)
	if err != nil {
		o.failPipeline(ctx, checkID, "preprocessing", err, logger)
		return
	}
	if err := o.deps.Store.UpdateFields(ctx, checkID, checkstore.Partial{
		Title:           &pre.Title,
		IsAccessBlocked: &pre.IsAccessBlocked,
		IsVideo:         &pre.IsVideo,
	}); err != nil {
		o.failPipeline(ctx, checkID, "preprocessing", err, logger)
		return
	}

	outcome, err := o.runAgentLoop(ctx, checkID, pre, text, imageURL, caption)
	if err != nil {
		o.failPipeline(ctx, checkID, "agent loop", err, logger)
		return
	}
	longform := checktypes.LongformResponse{En: outcome.Report, Links: outcome.Sources, Timestamp: time.Now()}
	if err := o.deps.Store.UpdateFields(ctx, checkID, checkstore.Partial{
		LongformResponse: &longform,
		IsControversial:  &outcome.IsControversial,
	}); err != nil {
		o.failPipeline(ctx, checkID, "agent loop", err, logger)
		return
	}

	shortform, err := o.summarizeAndTranslate(ctx, outcome.Report, outcome.Sources)
	if err != nil {
		o.failPipeline(ctx, checkID, "summarise", err, logger)
		return
	}
	completed := check.GenerationStatusCompleted
	if err := o.deps.Store.UpdateFields(ctx, checkID, checkstore.Partial{
		ShortformResponse: &shortform,
		GenerationStatus:  &completed,
	}); err != nil {
		o.failPipeline(ctx, checkID, "summarise", err, logger)
		return
	}

	notifTS := ""
	if row.NotificationID != nil {
		notifTS = *row.NotificationID
	}
	o.deps.Slack.NotifyCommunityNote(ctx, slack.CommunityNoteInput{
		CheckID: checkID, Summary: shortform.En, IsControversial: outcome.IsControversial,
	}, notifTS)

	o.triggerVoting(ctx, checkID, text, imageURL, caption, &longform, &shortform, logger)
	o.closeSubmissions(ctx, checkID, models.CheckStatusCompleted, logger)
}

// preprocessResult is what preprocess infers before the agent loop runs.
type preprocessResult struct {
	Intent          string `json:"intent"`
	IsAccessBlocked bool   `json:"isAccessBlocked"`
	IsVideo         bool   `json:"isVideo"`
	Title           string `json:"title"`
}

// preprocess implements step 6 (URL extraction) and step 7
// (classification): it extracts any http(s) URLs from the text/caption
// and asks the model to classify intent and surface-level flags in one
// strict-JSON call, handing it the image directly (via vision) when one
// is present rather than pre-rendering screenshots — the agent loop's
// own get_website_screenshot tool covers linked pages it decides are
// worth a closer look.
func (o *Orchestrator) preprocess(ctx context.Context, text, imageURL, caption string) (preprocessResult, error) {
	ctx, span := tracer.Start(ctx, "preprocess")
	defer span.End()

	urls := dedupeURLs(append(urlRe.FindAllString(text, -1), urlRe.FindAllString(caption, -1)...))

	messages := []openai.ChatCompletionMessage{
		llmclient.TextMessage(openai.ChatMessageRoleSystem,
			`Classify this fact-check submission. Respond with strict JSON: `+
				`{"intent": string, "isAccessBlocked": bool, "isVideo": bool, "title": string}. `+
				`isAccessBlocked is true if the content appears to require a login or paywall to view. `+
				`isVideo is true if the submission is or links to a video. title is a short human-readable title.`),
	}
	if imageURL != "" {
		messages = append(messages, llmclient.ImageMessage(fmt.Sprintf("Caption: %s\n\nLinked URLs: %v", caption, urls), imageURL))
	} else {
		messages = append(messages, llmclient.TextMessage(openai.ChatMessageRoleUser, fmt.Sprintf("Text: %s\n\nLinked URLs: %v", text, urls)))
	}

	var out preprocessResult
	if err := o.deps.LLM.ChatJSON(ctx, messages, 45*time.Second, &out); err != nil {
		return preprocessResult{}, err
	}
	if out.Title == "" {
		out.Title = fmt.Sprintf("Check %s", time.Now().Format("2006-01-02"))
	}
	return out, nil
}

func dedupeURLs(urls []string) []string {
	seen := map[string]bool{}
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if !seen[u] {
			seen[u] = true
			out = append(out, u)
		}
	}
	return out
}

type agentLoopOutcome struct {
	Report          string
	Sources         []string
	IsControversial bool
}

// runAgentLoop implements step 8: seed the tool scratch with the
// preprocessed shape, build the investigation's starting message, and
// drive the agent loop to a reviewed report.
func (o *Orchestrator) runAgentLoop(ctx context.Context, checkID string, pre preprocessResult, text, imageURL, caption string) (agentLoopOutcome, error) {
	ctx, span := tracer.Start(ctx, "agent_loop")
	defer span.End()

	scratch := &tools.Scratch{}
	typ := "text"
	if imageURL != "" {
		typ = "image"
	}
	scratch.Set(pre.Intent, typ, imageURL, caption, text)

	tc := &tools.Context{
		RequestID:      checkID,
		Logger:         tools.SlogAdapter{L: o.deps.Logger},
		Quotas:         tools.NewQuotas(o.deps.Cfg.ToolQuotas),
		Scratch:        scratch,
		Span:           span,
		Search:         o.deps.Search,
		Screenshot:     o.deps.Screenshot,
		URLScan:        o.deps.URLScan,
		LLM:            o.deps.LLM,
		InternalSearch: o.internalSearch,
	}

	startingContent := fmt.Sprintf("Investigate this claim and produce a fact-check report.\n\nIntent: %s\nContent: %s", pre.Intent, firstNonEmpty(text, caption))

	outcome, err := o.deps.Loop.Run(ctx, tc, startingContent, time.Now)
	if err != nil {
		return agentLoopOutcome{}, err
	}
	return agentLoopOutcome{Report: outcome.Report, Sources: outcome.Sources, IsControversial: outcome.IsControversial}, nil
}

// internalSearch backs the search_internal tool with the same
// text-embedding index the Similarity Engine (C2) uses, so the agent
// loop can find a previously published check without a second index.
func (o *Orchestrator) internalSearch(ctx context.Context, query string) ([]tools.InternalSearchHit, error) {
	embedding, err := o.deps.Embedder.Embed(ctx, query)
	if err != nil {
		return nil, err
	}
	candidates, err := o.deps.Store.FindSimilarTextEmbedding(ctx, embedding, 5, 50, checkstore.SearchOpts{})
	if err != nil {
		return nil, err
	}
	hits := make([]tools.InternalSearchHit, 0, len(candidates))
	for _, c := range candidates {
		row, err := o.deps.Store.FindByID(ctx, c.ID)
		if err != nil {
			continue
		}
		hit := tools.InternalSearchHit{CheckID: c.ID}
		if row.Title != nil {
			hit.Title = *row.Title
		}
		if row.ShortformResponse != nil {
			hit.Snippet = row.ShortformResponse.En
		}
		hits = append(hits, hit)
	}
	return hits, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// summarizeAndTranslate implements steps 9-10: condense the longform
// report via the summarise_report tool, then fan the summary out to the
// four community-note languages in parallel — a wait-all fan-out
// (sync.WaitGroup, not an early-exit errgroup), so one slow translation
// never starves the others before the gate that decides completeness.
func (o *Orchestrator) summarizeAndTranslate(ctx context.Context, longform string, sources []string) (checktypes.ShortformResponse, error) {
	ctx, span := tracer.Start(ctx, "summarize_translate")
	defer span.End()

	tc := &tools.Context{Logger: tools.SlogAdapter{L: o.deps.Logger}, Quotas: &tools.Quotas{}, Scratch: &tools.Scratch{}, LLM: o.deps.LLM, Span: span}

	summaryParams, _ := json.Marshal(map[string]string{"longformReport": longform})
	summaryResult := o.deps.Registry.Invoke(ctx, tools.NameSummariseReport, summaryParams, tc)
	if !summaryResult.Success {
		return checktypes.ShortformResponse{}, checkerr.New(checkerr.UpstreamFailure, summaryResult.Error.Message)
	}
	var summaryOut struct {
		Summary string `json:"summary"`
	}
	if b, err := json.Marshal(summaryResult.Result); err == nil {
		_ = json.Unmarshal(b, &summaryOut)
	}

	langs := []struct {
		code string
		set  func(*checktypes.ShortformResponse, string)
	}{
		{"cn", func(s *checktypes.ShortformResponse, v string) { s.Cn = v }},
		{"ms", func(s *checktypes.ShortformResponse, v string) { s.Ms = v }},
		{"id", func(s *checktypes.ShortformResponse, v string) { s.ID = v }},
		{"ta", func(s *checktypes.ShortformResponse, v string) { s.Ta = v }},
	}

	out := checktypes.ShortformResponse{En: summaryOut.Summary, Links: sources, Timestamp: time.Now()}
	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, lang := range langs {
		lang := lang
		wg.Add(1)
		go func() {
			defer wg.Done()
			params, _ := json.Marshal(map[string]string{"text": summaryOut.Summary, "targetLanguage": lang.code})
			res := o.deps.Registry.Invoke(ctx, tools.NameTranslateText, params, tc)
			if !res.Success {
				o.deps.Logger.Warn("translation failed", "language", lang.code, "error", res.Error.Message)
				return
			}
			var tOut struct {
				Translated string `json:"translated"`
			}
			if b, err := json.Marshal(res.Result); err == nil {
				_ = json.Unmarshal(b, &tOut)
			}
			mu.Lock()
			lang.set(&out, tOut.Translated)
			mu.Unlock()
		}()
	}
	wg.Wait()

	return out, nil
}

// triggerVoting implements step 13: post the check artifacts to the
// voting webhook, treating a 409 (poll already exists) as success, since
// a retried or re-claimed pipeline must not create a duplicate poll.
func (o *Orchestrator) triggerVoting(ctx context.Context, checkID, text, imageURL, caption string, longform *checktypes.LongformResponse, shortform *checktypes.ShortformResponse, logger *slog.Logger) {
	pollID, err := o.deps.Voting.Trigger(ctx, external.VotingPayload{
		CheckID: checkID, Text: text, ImageURL: imageURL, Caption: caption,
		LongformResponse: longform, ShortformResponse: shortform,
	})
	if err != nil {
		logger.Warn("voting trigger failed", "error", err)
		return
	}
	triggered := true
	if err := o.deps.Store.UpdateFields(ctx, checkID, checkstore.Partial{PollID: &pollID, IsVoteTriggered: &triggered}); err != nil {
		logger.Warn("failed to persist pollId", "error", err)
	}
}

// failPipeline implements spec.md §4.6's error policy: persist the
// phase-mapped terminal status, still run the completion notification
// with isError=true, and still attempt to trigger voting with whatever
// artifacts exist — a terminal error is not a reason to leave moderators
// or the voting platform without a record of this check.
func (o *Orchestrator) failPipeline(ctx context.Context, checkID, phase string, cause error, logger *slog.Logger) {
	logger.Error("pipeline step failed", "phase", phase, "error", cause)

	status := errorStatusFor(phase)
	if err := o.deps.Store.UpdateFields(ctx, checkID, checkstore.Partial{GenerationStatus: &status}); err != nil {
		logger.Error("failed to persist terminal error status", "error", err)
	}

	row, err := o.deps.Store.FindByID(ctx, checkID)
	if err != nil {
		logger.Error("failed to reload check after error", "error", err)
		o.closeSubmissions(ctx, checkID, models.CheckStatusError, logger)
		return
	}

	notifTS := ""
	if row.NotificationID != nil {
		notifTS = *row.NotificationID
	}
	o.deps.Slack.NotifyCommunityNote(ctx, slack.CommunityNoteInput{
		CheckID: checkID, IsError: true, ErrorMessage: cause.Error(),
	}, notifTS)

	text, imageURL, caption := "", "", ""
	if row.Text != nil {
		text = *row.Text
	}
	if row.ImageURL != nil {
		imageURL = *row.ImageURL
	}
	if row.Caption != nil {
		caption = *row.Caption
	}
	o.triggerVoting(ctx, checkID, text, imageURL, caption, row.LongformResponse, row.ShortformResponse, logger)

	o.closeSubmissions(ctx, checkID, models.CheckStatusError, logger)
}

func (o *Orchestrator) closeSubmissions(ctx context.Context, checkID string, status models.CheckStatus, logger *slog.Logger) {
	subs, err := o.deps.Submissions.ListByCheckID(ctx, checkID)
	if err != nil {
		logger.Warn("failed to list submissions for closure", "error", err)
		return
	}
	for _, s := range subs {
		if string(s.CheckStatus) != string(models.CheckStatusPending) {
			continue
		}
		if err := o.deps.Submissions.UpdateStatus(ctx, s.ID, status); err != nil {
			logger.Warn("failed to close submission", "requestId", s.ID, "error", err)
		}
	}
}
