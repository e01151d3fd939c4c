// Package blobcache is the content-addressed image cache the pipeline
// orchestrator (C6 step 5) uses to avoid re-downloading a submission's
// image on every pipeline retry: each URL is hashed and the bytes are
// written once under that key. No object-storage client (S3/minio/GCS)
// appears anywhere in the retrieval pack, so this is a stdlib net/http +
// os implementation, the same stdlib-first choice DESIGN.md already
// makes for pkg/external.
package blobcache

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/checkmate-dev/checkmate/pkg/checkerr"
)

// Cache downloads and caches images on local disk, keyed by sha256(url).
type Cache struct {
	dir    string
	client *http.Client
}

// New builds a Cache rooted at dir, creating it if necessary.
func New(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, checkerr.Wrap(checkerr.InternalError, "create blob cache directory", err)
	}
	return &Cache{dir: dir, client: &http.Client{Timeout: 30 * time.Second}}, nil
}

func keyFor(url string) string {
	sum := sha256.Sum256([]byte(url))
	return hex.EncodeToString(sum[:])
}

// GetBase64 returns the base64-encoded bytes of the image at url,
// downloading and caching it on first access. Subsequent calls for the
// same url are served from disk.
func (c *Cache) GetBase64(ctx context.Context, url string) (string, error) {
	path := filepath.Join(c.dir, keyFor(url))

	if data, err := os.ReadFile(path); err == nil {
		return base64.StdEncoding.EncodeToString(data), nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", checkerr.Wrap(checkerr.InvalidInput, "build image download request", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", checkerr.Wrap(checkerr.UpstreamTimeout, "image download timed out", err)
		}
		return "", checkerr.Wrap(checkerr.UpstreamFailure, "image download failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return "", checkerr.New(checkerr.UpstreamFailure, "image download returned non-2xx status")
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", checkerr.Wrap(checkerr.UpstreamFailure, "read downloaded image", err)
	}

	// Best-effort write: a cache miss on the next call just re-downloads,
	// so a write failure (full disk, read-only mount) is logged upstream
	// by the caller rather than failing the download that already
	// succeeded.
	_ = os.WriteFile(path, data, 0o644)

	return base64.StdEncoding.EncodeToString(data), nil
}
