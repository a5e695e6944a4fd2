package repository

import "context"

// BlobStore persists the orders collection as one opaque value under a fixed
// key. Writes fully replace prior content; durability is whatever the backing
// storage provides.
type BlobStore interface {
	// Get returns the stored blob. The boolean is false when nothing has been
	// stored yet.
	Get(ctx context.Context) ([]byte, bool, error)
	// Put overwrites the stored blob with data.
	Put(ctx context.Context, data []byte) error
}
