// ABOUTME: Build identifier generators injected into the build generator
// ABOUTME: UUIDs in production, deterministic sequences in tests

package services

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator yields one identifier per finished build
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator issues random UUIDs
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// SequentialIDGenerator issues prefix-1, prefix-2, ... and is safe for concurrent use
type SequentialIDGenerator struct {
	Prefix string
	n      atomic.Int64
}

func (g *SequentialIDGenerator) NewID() string {
	return fmt.Sprintf("%s-%d", g.Prefix, g.n.Add(1))
}
