// Package uuid mints identifiers behind an interface so tests can pin them
package uuid

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Generator mints session ids and message ids
type Generator interface {
	New() string
}

// GoogleUUIDGenerator hands out random v4 ids
type GoogleUUIDGenerator struct{}

func NewGoogleUUIDGenerator() *GoogleUUIDGenerator { return &GoogleUUIDGenerator{} }

func (g *GoogleUUIDGenerator) New() string { return uuid.NewString() }

// SequenceGenerator returns prefix-1, prefix-2, ... in order
type SequenceGenerator struct {
	mu     sync.Mutex
	prefix string
	next   int
}

func NewSequenceGenerator(prefix string) *SequenceGenerator {
	return &SequenceGenerator{prefix: prefix}
}

func (g *SequenceGenerator) New() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.next++
	return fmt.Sprintf("%s-%d", g.prefix, g.next)
}
