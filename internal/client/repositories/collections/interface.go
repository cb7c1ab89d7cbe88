// Package collections persists whole-collection JSON snapshots keyed by
// collection kind. Because sync is always wholesale (refetch replaces a
// collection in one shot), one row per kind is the natural storage shape.
package collections

import "context"

type Repository interface {
	// Get returns the stored payload for kind, or nil when absent.
	Get(ctx context.Context, kind string) ([]byte, error)
	Put(ctx context.Context, kind string, payload []byte) error
	Delete(ctx context.Context, kind string) error
	Clear(ctx context.Context) error
}
