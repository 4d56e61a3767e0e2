// Package cache provides the render cache used by the CLI and the HTTP
// service. Rendered SVG documents are cached keyed by a hash of the chart
// config, the data, and the render options, so repeated renders of the same
// inputs skip the pipeline entirely.
package cache

import (
	"context"
	"time"
)

// TTLs for cached entries.
const (
	// TTLRender is how long a rendered document stays cached. Renders are
	// pure functions of their key, so the TTL only bounds disk usage.
	TTLRender = 7 * 24 * time.Hour
)

// Cache is the storage backend contract. Implementations must treat a miss
// as (nil, false, nil), never as an error.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}

// RenderKeyOpts are the render parameters that participate in the cache key.
type RenderKeyOpts struct {
	Width  float64
	Height float64
	Debug  bool
}

// Keyer generates cache keys. Implementations must be deterministic: the
// same inputs always produce the same key.
type Keyer interface {
	// RenderKey generates a key for a rendered document from the config
	// hash, the data hash, and the render options.
	RenderKey(configHash, dataHash string, opts RenderKeyOpts) string
}

// DefaultKeyer hashes all key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// RenderKey generates a key for a rendered document.
func (k *DefaultKeyer) RenderKey(configHash, dataHash string, opts RenderKeyOpts) string {
	return hashKey("render", configHash, dataHash, opts.Width, opts.Height, opts.Debug)
}
