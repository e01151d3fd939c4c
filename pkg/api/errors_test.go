package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/checkmate-dev/checkmate/pkg/checkerr"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestStatusFor(t *testing.T) {
	cases := []struct {
		kind checkerr.Kind
		want int
	}{
		{checkerr.InvalidInput, http.StatusBadRequest},
		{checkerr.InvalidFingerprint, http.StatusBadRequest},
		{checkerr.Unauthorized, http.StatusUnauthorized},
		{checkerr.Forbidden, http.StatusForbidden},
		{checkerr.NotFound, http.StatusNotFound},
		{checkerr.RateLimited, http.StatusTooManyRequests},
		{checkerr.QuotaExhausted, http.StatusTooManyRequests},
		{checkerr.UpstreamTimeout, http.StatusGatewayTimeout},
		{checkerr.UpstreamFailure, http.StatusBadGateway},
		{checkerr.SimilarityUpstreamFailure, http.StatusBadGateway},
		{checkerr.AgentLoopExhausted, http.StatusInternalServerError},
		{checkerr.InternalError, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, statusFor(tc.kind), "kind=%s", tc.kind)
	}
}

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	return c, rec
}

func TestFail_UsesWrappedKind(t *testing.T) {
	c, rec := newTestContext()
	fail(c, checkerr.New(checkerr.NotFound, "no such check"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var body errorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "NotFound: no such check", body.Error.Message)
}

func TestFail_DefaultsUnwrappedErrorToInternalError(t *testing.T) {
	c, rec := newTestContext()
	fail(c, assertionError{"boom"})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestFailWith_WritesExplicitStatus(t *testing.T) {
	c, rec := newTestContext()
	failWith(c, http.StatusConflict, "consumer already exists")

	assert.Equal(t, http.StatusConflict, rec.Code)
	var body errorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "consumer already exists", body.Error.Message)
}

type assertionError struct{ msg string }

func (e assertionError) Error() string { return e.msg }

func TestOk_WritesSuccessEnvelope(t *testing.T) {
	c, rec := newTestContext()
	ok(c, embeddingResponse{Embedding: []float64{1, 2}})

	assert.Equal(t, http.StatusOK, rec.Code)
	var body successResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Empty(t, body.ID)
}

func TestOkWithID_CarriesID(t *testing.T) {
	c, rec := newTestContext()
	okWithID(c, "chk_123", embeddingResponse{})

	var body successResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "chk_123", body.ID)
}

func TestCreated_WritesStatusCreated(t *testing.T) {
	c, rec := newTestContext()
	created(c, embeddingResponse{})

	assert.Equal(t, http.StatusCreated, rec.Code)
	var body successResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
}
