package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	t.Run("braced substitution", func(t *testing.T) {
		t.Setenv("API_KEY", "secret123")
		assert.Equal(t, "api_key: secret123", string(ExpandEnv([]byte("api_key: ${API_KEY}"))))
	})

	t.Run("bare substitution", func(t *testing.T) {
		t.Setenv("HOST", "example.com")
		assert.Equal(t, "host: example.com", string(ExpandEnv([]byte("host: $HOST"))))
	})

	t.Run("missing variable expands to empty", func(t *testing.T) {
		assert.Equal(t, "endpoint: ", string(ExpandEnv([]byte("endpoint: ${CHECKMATE_UNSET_VAR}"))))
	})

	t.Run("multiple substitutions in one line", func(t *testing.T) {
		t.Setenv("PROTOCOL", "https")
		t.Setenv("PORT", "443")
		got := string(ExpandEnv([]byte("url: ${PROTOCOL}://example.com:${PORT}")))
		assert.Equal(t, "url: https://example.com:443", got)
	})
}
