package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/jonwraymond/gridstack-mcp/synth"
)

// Cache stores rendered text.
type Cache interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores value under key.
	Set(ctx context.Context, key, value string) error
}

// Key derives the cache key for one invocation. scope identifies the
// producing server build and rendering settings so a shared store never
// serves text rendered by a different configuration.
func Key(scope, operation string, params map[string]any, fingerprint string) (string, error) {
	canonical, err := synth.CompactJSON(params)
	if err != nil {
		return "", fmt.Errorf("cache key: %w", err)
	}

	h := sha256.New()
	h.Write([]byte(scope))
	h.Write([]byte{0})
	h.Write([]byte(operation))
	h.Write([]byte{0})
	h.Write([]byte(canonical))
	h.Write([]byte{0})
	h.Write([]byte(fingerprint))
	return hex.EncodeToString(h.Sum(nil)), nil
}
