// Package uuid generates match identifiers behind an interface so tests can pin them.
package uuid

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator is an interface for generating IDs
type Generator interface {
	New() string
}

// GoogleUUIDGenerator implements the Generator interface using Google's UUID package
type GoogleUUIDGenerator struct{}

// New generates a new random UUID string
func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}

// NewGoogleUUIDGenerator creates a new GoogleUUIDGenerator
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// SeededGenerator derives UUIDs from a seed, so a reproducible match also
// gets a reproducible ID. Successive calls yield distinct IDs.
type SeededGenerator struct {
	seed  int64
	count int
}

// NewSeededGenerator creates a generator tied to a match seed
func NewSeededGenerator(seed int64) *SeededGenerator {
	return &SeededGenerator{seed: seed}
}

// New returns the next name-based (version 5) UUID for the seed
func (g *SeededGenerator) New() string {
	g.count++
	name := fmt.Sprintf("duel:%d:%d", g.seed, g.count)
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)).String()
}
