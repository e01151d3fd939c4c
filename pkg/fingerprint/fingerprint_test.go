package fingerprint

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashText(t *testing.T) {
	t.Run("stable across casing and whitespace", func(t *testing.T) {
		a := HashText("Donald Trump is the president")
		b := HashText("  donald   trump IS the   president  ")
		assert.Equal(t, a, b)
	})

	t.Run("64 hex characters", func(t *testing.T) {
		h := HashText("anything")
		assert.Len(t, h, 64)
		assert.Regexp(t, "^[0-9a-f]{64}$", h)
	})

	t.Run("different text hashes differently", func(t *testing.T) {
		assert.NotEqual(t, HashText("a"), HashText("b"))
	})
}

func TestHashURL(t *testing.T) {
	t.Run("missing scheme defaults to https", func(t *testing.T) {
		assert.Equal(t, HashURL("https://www.example.com/path"), HashURL("www.example.com/path"))
	})

	t.Run("unparseable input falls back to text hash", func(t *testing.T) {
		assert.Equal(t, HashText(strings.ToLower("not a url at all")), HashURL("not a url at all"))
	})
}

func TestHammingDistance(t *testing.T) {
	allZero := strings.Repeat("0", 64)
	allF := strings.Repeat("f", 64)

	t.Run("identical hashes are zero distance", func(t *testing.T) {
		d, err := HammingDistance(allZero, allZero)
		require.NoError(t, err)
		assert.Equal(t, 0, d)
	})

	t.Run("all bits differing is 256", func(t *testing.T) {
		d, err := HammingDistance(allZero, allF)
		require.NoError(t, err)
		assert.Equal(t, 256, d)
	})

	t.Run("rejects non-64-char input", func(t *testing.T) {
		_, err := HammingDistance("abc", allZero)
		assert.ErrorIs(t, err, ErrInvalidFingerprint)
	})

	t.Run("rejects non-hex input", func(t *testing.T) {
		_, err := HammingDistance(strings.Repeat("z", 64), allZero)
		assert.ErrorIs(t, err, ErrInvalidFingerprint)
	})
}

func TestPDQToVector(t *testing.T) {
	t.Run("round trips to 256 elements for every 64-hex hash", func(t *testing.T) {
		for _, h := range []string{strings.Repeat("0", 64), strings.Repeat("f", 64), strings.Repeat("a5", 32)} {
			vec, err := PDQToVector(h)
			require.NoError(t, err)
			assert.Len(t, vec, 256)
		}
	})

	t.Run("expands hex nibble MSB-first", func(t *testing.T) {
		h := "8" + strings.Repeat("0", 63)
		vec, err := PDQToVector(h)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 0, 0, 0}, vec[:4])
	})

	t.Run("rejects invalid length", func(t *testing.T) {
		_, err := PDQToVector("00")
		assert.ErrorIs(t, err, ErrInvalidFingerprint)
	})
}
