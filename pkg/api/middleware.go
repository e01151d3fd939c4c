package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/checkmate-dev/checkmate/pkg/admission"
)

const requestIDHeader = "x-request-id"

// RequestID generates an x-request-id for inbound requests that don't
// already carry one, and echoes it back on the response, grounded on the
// teacher's pkg/api request-scoped logging middleware.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDHeader, id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

// RequireAPIKey validates the x-api-key header against api's admission
// gate and records the call's outcome once the handler has written its
// response, so 5xx responses never burn a consumer's quota (spec.md
// §4.7).
func RequireAPIKey(gate *admission.Gate, apiName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("x-api-key")
		if apiKey == "" {
			failWith(c, http.StatusUnauthorized, "missing x-api-key header")
			c.Abort()
			return
		}

		decision, err := gate.Admit(c.Request.Context(), apiKey, apiName)
		if err != nil {
			fail(c, err)
			c.Abort()
			return
		}
		if !decision.Admitted {
			c.Writer.Header().Set("Retry-After", strconv.Itoa(int(decision.RetryAfter.Seconds())))
			failWith(c, http.StatusTooManyRequests, "rate limit exceeded")
			c.Abort()
			return
		}

		c.Set("consumerName", decision.ConsumerName)
		c.Next()

		_ = gate.RecordCall(c.Request.Context(), decision.ConsumerName, apiName, c.Writer.Status(), time.Now())
	}
}

// AdminAuth gates the consumer-management endpoints behind a shared
// secret header, distinct from the per-consumer x-api-key scheme every
// other endpoint uses (spec.md §6).
func AdminAuth(adminKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if adminKey == "" || c.GetHeader("x-admin-key") != adminKey {
			failWith(c, http.StatusUnauthorized, "missing or invalid admin credentials")
			c.Abort()
			return
		}
		c.Next()
	}
}

func consumerName(c *gin.Context) string {
	v, _ := c.Get("consumerName")
	name, _ := v.(string)
	return name
}
