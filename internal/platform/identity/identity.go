// Package identity issues identifiers for new entities and layout components.
package identity

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator issues random version 4 UUIDs.
type Generator struct{}

// New returns a UUID generator.
func New() Generator { return Generator{} }

// NewID returns a new UUID string.
func (Generator) NewID() string {
	return uuid.NewString()
}

// Sequence issues predictable identifiers ("<prefix>1", "<prefix>2", ...).
// It is safe for concurrent use.
type Sequence struct {
	prefix string
	n      atomic.Uint64
}

// NewSequence returns a Sequence using prefix.
func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

// NewID returns the next identifier.
func (s *Sequence) NewID() string {
	return s.prefix + strconv.FormatUint(s.n.Add(1), 10)
}
