package ids

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"

	"checkgrip/internal/domain"
)

// Allocator hands out identifiers that are unique for its lifetime
type Allocator interface {
	Next() domain.ID
}

// Allocator kinds accepted by New
const (
	KindSequence = "sequence"
	KindUUID     = "uuid"
)

// DefaultPrefix is used by sequence allocators when none is given
const DefaultPrefix = "item"

// Sequence produces prefix-1, prefix-2, ...
type Sequence struct {
	prefix string
	next   atomic.Uint64
}

// NewSequence creates a sequence allocator
func NewSequence(prefix string) *Sequence {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Sequence{prefix: prefix}
}

// Next returns the following identifier in the sequence
func (s *Sequence) Next() domain.ID {
	n := s.next.Add(1)
	return domain.ID(fmt.Sprintf("%s-%d", s.prefix, n))
}

// UUID produces random version 4 identifiers
type UUID struct{}

// NewUUID creates a UUID allocator
func NewUUID() UUID {
	return UUID{}
}

// Next returns a fresh random identifier
func (UUID) Next() domain.ID {
	return domain.ID(uuid.NewString())
}

// New returns the allocator for kind
func New(kind, prefix string) (Allocator, error) {
	switch kind {
	case "", KindSequence:
		return NewSequence(prefix), nil
	case KindUUID:
		return NewUUID(), nil
	default:
		return nil, fmt.Errorf("unknown allocator %q", kind)
	}
}
