package listing

import (
	"context"
)

// Store defines the contract for the persisted slot of user-submitted
// listings. Seed records never pass through it.
type Store interface {
	// Load returns the persisted listings in insertion order. An empty
	// or unreadable slot yields an empty slice, not an error; Load only
	// errors when the backend itself is unreachable.
	Load(ctx context.Context) ([]Listing, error)

	// Append persists one more listing at the end of the slot. The write
	// is a whole-slot read-modify-write; there is no cross-process
	// atomicity (single-writer usage is assumed).
	Append(ctx context.Context, l Listing) error
}
