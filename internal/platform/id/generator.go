package id

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// Generator creates opaque IDs suitable for external references.
type Generator interface {
	NewID() (string, error)
}

// idEntropyBytes gives 128 bits of entropy, enough that collisions across
// fans, predictions and teams are never a practical concern.
const idEntropyBytes = 16

type RandomGenerator struct{}

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{}
}

// NewID returns a 22-character URL-safe identifier.
func (g *RandomGenerator) NewID() (string, error) {
	var buf [idEntropyBytes]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf[:]), nil
}
