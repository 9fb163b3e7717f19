package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"bookbarter/internal/listing"

	"github.com/redis/go-redis/v9"
)

// Redis persists the catalog slot as one named key holding the same JSON
// array the file backend writes. Append is a read-modify-write of the
// whole key, mirroring the slot semantics rather than using a Redis list.
type Redis struct {
	client *redis.Client
	key    string
}

// NewRedis creates a Redis-backed catalog store on the given key.
func NewRedis(client *redis.Client, key string) *Redis {
	return &Redis{client: client, key: key}
}

// Load reads the slot key. A missing key is an empty slot; malformed
// content decodes to empty with a warning, the same fail-soft policy as
// the file backend. Connection errors are returned.
func (r *Redis) Load(ctx context.Context) ([]listing.Listing, error) {
	raw, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read catalog slot %q: %w", r.key, err)
	}
	return decodeSlot(raw, r.key), nil
}

// Append performs the read-modify-write of the whole slot key.
func (r *Redis) Append(ctx context.Context, l listing.Listing) error {
	current, err := r.Load(ctx)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(append(current, l))
	if err != nil {
		return fmt.Errorf("encode catalog slot: %w", err)
	}
	if err := r.client.Set(ctx, r.key, raw, 0).Err(); err != nil {
		return fmt.Errorf("write catalog slot %q: %w", r.key, err)
	}
	return nil
}

// Ping reports whether the backend is reachable, for readiness checks.
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
