package store

import (
	"context"
	"sync"

	"bookbarter/internal/listing"
)

// Memory keeps the catalog slot in process memory. It backs tests as the
// injectable fake and doubles as an ephemeral backend for local runs.
type Memory struct {
	mu       sync.Mutex
	listings []listing.Listing
}

// NewMemory creates an empty in-memory catalog store.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Load(ctx context.Context) ([]listing.Listing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]listing.Listing, len(m.listings))
	copy(out, m.listings)
	return out, nil
}

func (m *Memory) Append(ctx context.Context, l listing.Listing) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listings = append(m.listings, l)
	return nil
}
