package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadError(t *testing.T) {
	cause := errors.New("file not found")
	err := NewLoadError("checkmate.yaml", cause)

	assert.Contains(t, err.Error(), "checkmate.yaml")
	assert.ErrorIs(t, err, cause)
}
