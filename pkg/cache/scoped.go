package cache

// ScopedKeyer wraps a Keyer with a prefix so multiple deployments (or test
// runs) can share one backend without key collisions.
//
// Example usage:
//
//	// Per-instance keys for a shared Redis
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "chartkit:prod:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// RenderKey generates a prefixed key for a rendered document.
func (k *ScopedKeyer) RenderKey(configHash, dataHash string, opts RenderKeyOpts) string {
	return k.prefix + k.inner.RenderKey(configHash, dataHash, opts)
}
