// Package store provides the slot-backed implementations of the catalog
// store port: one named slot holding a JSON array of user-submitted
// listings, on a local file, in Redis, or in memory.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"bookbarter/internal/listing"

	"github.com/rs/zerolog/log"
)

// File persists the catalog slot as a single JSON file on disk. It is
// the default backend: the closest server-side analog of the browser's
// localStorage slot. Writes rewrite the whole array; there is no
// cross-process locking (single-writer usage is assumed).
type File struct {
	path string
}

// NewFile creates a file-backed catalog store at path.
func NewFile(path string) *File {
	return &File{path: path}
}

// Load reads the slot. An absent file means an empty slot; a file that
// does not decode as a listing array is treated the same way, logged
// once, so a corrupted slot degrades the catalog instead of breaking it.
func (f *File) Load(ctx context.Context) ([]listing.Listing, error) {
	raw, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read catalog slot: %w", err)
	}
	return decodeSlot(raw, f.path), nil
}

// Append performs the read-modify-write of the whole slot.
func (f *File) Append(ctx context.Context, l listing.Listing) error {
	current, err := f.Load(ctx)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(append(current, l))
	if err != nil {
		return fmt.Errorf("encode catalog slot: %w", err)
	}
	if err := os.WriteFile(f.path, raw, 0o644); err != nil {
		return fmt.Errorf("write catalog slot: %w", err)
	}
	return nil
}

// decodeSlot parses a stored JSON array, falling back to an empty slot
// on malformed content.
func decodeSlot(raw []byte, slot string) []listing.Listing {
	var listings []listing.Listing
	if err := json.Unmarshal(raw, &listings); err != nil {
		log.Warn().Err(err).Str("slot", slot).Msg("malformed catalog slot, treating as empty")
		return nil
	}
	return listings
}
