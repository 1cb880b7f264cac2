// Package cache stores rendered tree artifacts (SVG documents, JSON
// layouts) keyed by person id and render options.
//
// Only render output is cached. Relationship data always comes fresh from
// the provider: the upstream fetch strategy is the provider's concern and
// the engine never memoizes it.
package cache

import (
	"context"
	"time"
)

// TTLArtifact is how long rendered artifacts stay cached. Renders are
// deterministic for a given relationship set, so the TTL only bounds
// staleness after the underlying family data changes.
const TTLArtifact = 15 * time.Minute

// Cache is a byte-oriented cache with per-entry TTL.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores a value. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes a value; deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases any underlying resources.
	Close() error
}

// ArtifactKeyOpts carries every render option that changes the output
// bytes. Anything missing here causes stale artifacts to be served.
type ArtifactKeyOpts struct {
	Format      string
	Style       string
	OwnTree     bool
	FrameWidth  float64
	HrefBase    string
	AddHref     string
	Interactive bool
	Detailed    bool
}

// ArtifactKey builds the cache key for a rendered artifact.
func ArtifactKey(personID string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", personID, opts)
}
