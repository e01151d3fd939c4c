package admission

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestErrConsumerExists_WrapsNameAndUnwraps(t *testing.T) {
	err := fmt.Errorf("%w: %q", ErrConsumerExists, "acme-bot")
	assert.True(t, errors.Is(err, ErrConsumerExists))
	assert.Contains(t, err.Error(), "acme-bot")
}

func TestGenerateAPIKey_LengthAndAlphabet(t *testing.T) {
	key, err := GenerateAPIKey()
	assert.NoError(t, err)
	assert.Len(t, key, apiKeyLength)
	for _, r := range key {
		assert.Contains(t, base62Alphabet, string(r))
	}
}

func TestGenerateAPIKey_Unique(t *testing.T) {
	a, err := GenerateAPIKey()
	assert.NoError(t, err)
	b, err := GenerateAPIKey()
	assert.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestRefill_NoLastRefillClampsToCapacity(t *testing.T) {
	got := refill(999, nil, time.Now(), 60, 1000)
	assert.Equal(t, float64(60), got)
}

func TestRefill_AddsWholeTokensForElapsedTime(t *testing.T) {
	last := time.Now().Add(-5500 * time.Millisecond)
	got := refill(10, &last, time.Now(), 60, 1000)
	// floor(5500/1000) = 5 tokens added
	assert.Equal(t, float64(15), got)
}

func TestRefill_ClampsAtCapacity(t *testing.T) {
	last := time.Now().Add(-100 * time.Second)
	got := refill(58, &last, time.Now(), 60, 1000)
	assert.Equal(t, float64(60), got)
}

func TestRefill_NoTimeElapsedNoChange(t *testing.T) {
	last := time.Now()
	got := refill(10, &last, last, 60, 1000)
	assert.Equal(t, float64(10), got)
}
