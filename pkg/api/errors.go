// Package api is the HTTP surface of CheckMate: the inbound contract of
// spec.md §6 over the Pipeline Orchestrator (C6), Consumer Admission (C7),
// and Assessment Reconciler (C10). Grounded on the teacher's pkg/api
// package boundary — one server type wrapping a router, Set*-style
// dependency injection, a health endpoint — rebuilt on gin (the teacher's
// own go.mod dependency, even though its source used echo/v5, an
// undeclared drift this transformation does not carry forward).
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/checkmate-dev/checkmate/pkg/checkerr"
)

// errorResponse is the `{success:false, error:{message}}` envelope of
// spec.md §7.
type errorResponse struct {
	Success bool      `json:"success"`
	Error   errorBody `json:"error"`
}

type errorBody struct {
	Message string `json:"message"`
}

// statusFor maps a checkerr.Kind to the HTTP status spec.md §6/§7 assigns
// it. Kinds with no explicit status in §6 (upstream/timeout/quota/loop
// failures) get the closest conventional mapping.
func statusFor(kind checkerr.Kind) int {
	switch kind {
	case checkerr.InvalidInput, checkerr.InvalidFingerprint:
		return http.StatusBadRequest
	case checkerr.Unauthorized:
		return http.StatusUnauthorized
	case checkerr.Forbidden:
		return http.StatusForbidden
	case checkerr.NotFound:
		return http.StatusNotFound
	case checkerr.RateLimited, checkerr.QuotaExhausted:
		return http.StatusTooManyRequests
	case checkerr.UpstreamTimeout:
		return http.StatusGatewayTimeout
	case checkerr.UpstreamFailure, checkerr.SimilarityUpstreamFailure:
		return http.StatusBadGateway
	case checkerr.AgentLoopExhausted, checkerr.InternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// fail writes the error envelope for err, deriving its status from the
// wrapped checkerr.Kind when present.
func fail(c *gin.Context, err error) {
	status := statusFor(checkerr.KindOf(err))
	c.JSON(status, errorResponse{Error: errorBody{Message: err.Error()}})
}

// failWith writes the error envelope at an explicit status, for call
// sites (duplicate-consumer 409, malformed-body 400) that don't flow
// through a checkerr.Kind.
func failWith(c *gin.Context, status int, message string) {
	c.JSON(status, errorResponse{Error: errorBody{Message: message}})
}

// successResponse is the `{success:true, id?, result}` envelope of
// spec.md §6.
type successResponse struct {
	Success bool        `json:"success"`
	ID      string      `json:"id,omitempty"`
	Result  interface{} `json:"result"`
}

// ok writes a 200 success envelope carrying result.
func ok(c *gin.Context, result interface{}) {
	c.JSON(http.StatusOK, successResponse{Success: true, Result: result})
}

// okWithID writes a 200 success envelope carrying both a check id and
// result, as /getAgentResult and GET /check/:id do.
func okWithID(c *gin.Context, id string, result interface{}) {
	c.JSON(http.StatusOK, successResponse{Success: true, ID: id, Result: result})
}

// created writes a 201 success envelope, used by POST /consumers.
func created(c *gin.Context, result interface{}) {
	c.JSON(http.StatusCreated, successResponse{Success: true, Result: result})
}

// okEmpty writes the bare `{success: true}` body spec.md §6 documents for
// mutations that carry no result payload (PATCH /check/:id and its
// humanNote variant, consumer deactivate/update).
func okEmpty(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}
