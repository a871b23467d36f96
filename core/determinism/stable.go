// Package determinism provides stable identifiers for quotes and rate cards.
// The same inputs always produce the same ID, across processes and machines.
package determinism

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// StableID is a hash-based identifier that's deterministic
type StableID string

// IDGenerator generates stable, namespaced IDs
type IDGenerator struct {
	namespace string
}

// NewIDGenerator creates an ID generator with a namespace
func NewIDGenerator(namespace string) *IDGenerator {
	return &IDGenerator{namespace: namespace}
}

// Generate creates a stable ID from inputs
func (g *IDGenerator) Generate(parts ...string) StableID {
	h := sha256.New()
	h.Write([]byte(g.namespace))
	h.Write([]byte{0}) // Separator
	for _, part := range parts {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return StableID(hex.EncodeToString(h.Sum(nil))[:16])
}

// GenerateFor creates a stable ID from a prefix and the JSON form of v.
// encoding/json writes struct fields in declaration order and sorts map keys,
// so equal values hash equally.
func (g *IDGenerator) GenerateFor(prefix string, v any) (StableID, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("cannot hash %T: %w", v, err)
	}
	return g.Generate(prefix, string(data)), nil
}

// ContentHash is a SHA-256 hash for content integrity
type ContentHash [32]byte

// ComputeHash computes a content hash from bytes
func ComputeHash(data []byte) ContentHash {
	return sha256.Sum256(data)
}

// Hex returns the hash as a hex string
func (h ContentHash) Hex() string {
	return hex.EncodeToString(h[:])
}

// Short returns the first 12 hex characters, for display
func (h ContentHash) Short() string {
	return h.Hex()[:12]
}

// String implements Stringer
func (h ContentHash) String() string {
	return h.Hex()[:16] + "..."
}
