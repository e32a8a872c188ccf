package asset

import (
	"crypto/rand"
	"encoding/hex"
)

// newAssetID returns a short opaque slug, e.g. "as-1f2a3b4c5d6e7f80".
func newAssetID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return "as-" + hex.EncodeToString(b)
}
