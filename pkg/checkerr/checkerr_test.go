package checkerr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorWrapping(t *testing.T) {
	t.Run("Unwrap exposes the wrapped cause", func(t *testing.T) {
		cause := errors.New("boom")
		err := Wrap(UpstreamFailure, "embedder request failed", cause)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("Is matches on Kind", func(t *testing.T) {
		err := New(QuotaExhausted, "daily quota exceeded")
		assert.True(t, Is(err, QuotaExhausted))
		assert.False(t, Is(err, RateLimited))
	})

	t.Run("KindOf defaults to InternalError for foreign errors", func(t *testing.T) {
		assert.Equal(t, InternalError, KindOf(errors.New("plain")))
	})

	t.Run("KindOf recovers Kind through wrapping", func(t *testing.T) {
		wrapped := errors.Join(New(NotFound, "no such check"))
		assert.Equal(t, NotFound, KindOf(wrapped))
	})
}
