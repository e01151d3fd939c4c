// Package fingerprint computes the stable hashes and vector encodings that
// the rest of the pipeline uses to recognize duplicate or near-duplicate
// submissions: SHA-256 over normalized text/URLs, and Hamming distance and
// bit-vector expansion over 64-hex PDQ perceptual image hashes.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/bits"
	"net/url"
	"regexp"
	"strings"
)

// ErrInvalidFingerprint is returned whenever a hash does not conform to the
// 64-hex-character PDQ shape this package expects.
var ErrInvalidFingerprint = fmt.Errorf("checkerr: invalid fingerprint")

var whitespaceRe = regexp.MustCompile(`\s+`)

// normalizeText lowercases, collapses runs of whitespace to a single space,
// and trims — the same normalization the moderator-channel fingerprint
// matcher applies to Slack message text, applied here so two submissions
// that differ only in casing or incidental whitespace hash identically.
func normalizeText(s string) string {
	s = strings.ToLower(s)
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// HashText returns the 64-hex SHA-256 digest of s's UTF-8 bytes after
// normalization.
func HashText(s string) string {
	sum := sha256.Sum256([]byte(normalizeText(s)))
	return hex.EncodeToString(sum[:])
}

// HashURL parses u, defaults its scheme to https when absent, preserves a
// leading "www" host label, reserializes it canonically, and hashes the
// result with HashText. A URL that fails to parse is hashed as plain text
// instead of erroring — submissions carry free-form strings, not
// guaranteed-valid URLs.
func HashURL(u string) string {
	trimmed := strings.TrimSpace(u)
	parsed, err := url.Parse(trimmed)
	if err != nil || parsed.Host == "" {
		// Try again assuming a missing scheme, the common case for
		// "example.com/path" style inputs.
		parsed, err = url.Parse("https://" + trimmed)
		if err != nil || parsed.Host == "" {
			return HashText(trimmed)
		}
	}
	if parsed.Scheme == "" {
		parsed.Scheme = "https"
	}
	return HashText(parsed.String())
}

// HammingDistance returns the number of differing bits between two 64-hex
// PDQ hashes, in the range 0..256. Both inputs must be exactly 64
// hexadecimal characters; otherwise it returns ErrInvalidFingerprint.
func HammingDistance(a, b string) (int, error) {
	av, err := decodeHex64(a)
	if err != nil {
		return 0, err
	}
	bv, err := decodeHex64(b)
	if err != nil {
		return 0, err
	}
	distance := 0
	for i := range av {
		distance += bits.OnesCount8(av[i] ^ bv[i])
	}
	return distance, nil
}

// PDQToVector expands a 64-hex PDQ hash into a 256-element vector of 0/1
// ints, each hex digit unpacked MSB-first into 4 bits. It returns
// ErrInvalidFingerprint if h is not exactly 64 hex characters.
func PDQToVector(h string) ([]int, error) {
	raw, err := decodeHex64(h)
	if err != nil {
		return nil, err
	}
	vec := make([]int, 0, 256)
	for _, b := range raw {
		for shift := 7; shift >= 0; shift-- {
			vec = append(vec, int((b>>uint(shift))&1))
		}
	}
	return vec, nil
}

func decodeHex64(h string) ([]byte, error) {
	if len(h) != 64 {
		return nil, ErrInvalidFingerprint
	}
	raw, err := hex.DecodeString(h)
	if err != nil {
		return nil, ErrInvalidFingerprint
	}
	return raw, nil
}
