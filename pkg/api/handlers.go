package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	openai "github.com/sashabaranov/go-openai"

	"github.com/checkmate-dev/checkmate/pkg/admission"
	"github.com/checkmate-dev/checkmate/pkg/checkstore"
	"github.com/checkmate-dev/checkmate/pkg/llmclient"
	"github.com/checkmate-dev/checkmate/pkg/models"
	"github.com/checkmate-dev/checkmate/pkg/orchestrator"
	"github.com/checkmate-dev/checkmate/pkg/slack"
)

// submit backs both /getAgentResult and /getCommunityNote: the
// orchestrator's admission half only reserves a check and notifies
// moderators synchronously, so both endpoints return either the cached
// match or a freshly reserved pending CheckResult and callers poll
// GET /check/:id for completion. This async-by-necessity shape is a
// deliberate departure from a request/response system that blocks the
// HTTP call on the full pipeline: the worker pool (pkg/orchestrator.Pool)
// runs the agent loop on its own background claim, not on this goroutine.
// includeReport is false for /getCommunityNote, which never surfaces the
// full longform report.
func (s *Server) submit(includeReport bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.SubmissionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			failWith(c, http.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}

		result, err := s.orch.Submit(c.Request.Context(), req, consumerName(c))
		if err != nil {
			fail(c, err)
			return
		}

		out := result.Result
		if !includeReport {
			out.Report = ""
		}
		okWithID(c, result.CheckID, out)
	}
}

func (s *Server) getEmbedding(c *gin.Context) {
	var req embeddingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failWith(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	embedding, err := s.embedder.Embed(c.Request.Context(), req.Text)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, embeddingResponse{Embedding: embedding})
}

// getNeedsChecking runs a standalone strict-JSON triage call
// ({needsChecking, reason}), separate from the pipeline's preprocess
// classification, so a consumer can triage a submission before spending a
// full /getAgentResult call on it.
func (s *Server) getNeedsChecking(c *gin.Context) {
	var req needsCheckingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failWith(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Text == "" && req.ImageURL == "" {
		failWith(c, http.StatusBadRequest, "request must carry text or imageUrl")
		return
	}

	messages := []openai.ChatCompletionMessage{
		llmclient.TextMessage(openai.ChatMessageRoleSystem,
			`Decide whether this submission contains a factual claim worth fact-checking. `+
				`Respond with strict JSON: {"needsChecking": bool, "reason": string}.`),
	}
	if req.ImageURL != "" {
		messages = append(messages, llmclient.ImageMessage(req.Caption, req.ImageURL))
	} else {
		messages = append(messages, llmclient.TextMessage(openai.ChatMessageRoleUser, req.Text))
	}

	var out needsCheckingResponse
	if err := s.llm.ChatJSON(c.Request.Context(), messages, 0, &out); err != nil {
		fail(c, err)
		return
	}
	ok(c, out)
}

func (s *Server) getCheck(c *gin.Context) {
	id := c.Param("id")
	row, err := s.store.FindByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	okWithID(c, id, orchestrator.BuildCheckResult(row))
}

// patchCheck applies an assessment update via the Assessment Reconciler
// (C10): isHumanAssessed, crowdsourcedCategory, isCommunityNoteDownvoted.
func (s *Server) patchCheck(c *gin.Context) {
	var update models.AssessmentUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		failWith(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := s.reconciler.Apply(c.Request.Context(), c.Param("id"), update); err != nil {
		fail(c, err)
		return
	}
	okEmpty(c)
}

// patchHumanNote sets the moderator-authored human assessment note on a
// check (spec.md §4.10).
func (s *Server) patchHumanNote(c *gin.Context) {
	var update models.HumanNoteUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		failWith(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	checkID := c.Param("id")
	response := update.ToHumanResponse(time.Now())
	if err := s.store.UpdateFields(c.Request.Context(), checkID, checkstore.Partial{HumanResponse: &response}); err != nil {
		fail(c, err)
		return
	}
	okEmpty(c)
}

// createConsumer registers a new API consumer, returning its freshly
// generated api key. Name collisions are the one error shape the closed
// checkerr.Kind taxonomy doesn't carry, so admission.ErrConsumerExists is
// detected directly here and mapped to 409.
func (s *Server) createConsumer(c *gin.Context) {
	var req models.CreateConsumerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failWith(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Name == "" {
		failWith(c, http.StatusBadRequest, "name is required")
		return
	}

	result, err := s.admission.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, admission.ErrConsumerExists) {
			failWith(c, http.StatusConflict, err.Error())
			return
		}
		fail(c, err)
		return
	}
	created(c, result)
}

func (s *Server) listConsumers(c *gin.Context) {
	views, err := s.admission.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, views)
}

// consumerDetails is self-service: it resolves the caller's own consumer
// view from the x-api-key that RequireAPIKey already validated, distinct
// from the admin-gated consumer CRUD below.
func (s *Server) consumerDetails(c *gin.Context) {
	view, err := s.admission.Get(c.Request.Context(), consumerName(c))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, view)
}

func (s *Server) deactivateConsumer(c *gin.Context) {
	if err := s.admission.Deactivate(c.Request.Context(), c.Param("name")); err != nil {
		fail(c, err)
		return
	}
	okEmpty(c)
}

func (s *Server) updateConsumer(c *gin.Context) {
	var req models.UpdateConsumerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failWith(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := s.admission.UpdateAllowedAPIs(c.Request.Context(), c.Param("name"), req.AllowedAPIs); err != nil {
		fail(c, err)
		return
	}
	okEmpty(c)
}

// slackInteractivity handles Slack's button-click webhook callback (C9):
// the payload arrives as a form-encoded "payload" field carrying the
// interaction JSON, per the Slack Block Kit interactivity contract.
func (s *Server) slackInteractivity(c *gin.Context) {
	raw := c.PostForm("payload")
	if raw == "" {
		failWith(c, http.StatusBadRequest, "missing payload field")
		return
	}

	action, err := slack.ParseWebhookPayload([]byte(raw))
	if err != nil {
		fail(c, err)
		return
	}
	if err := s.slack.HandleWebhookAction(c.Request.Context(), action); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (s *Server) health(c *gin.Context) {
	status, err := s.healthCheck(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, status)
}
