package ports

import "context"

// CollectionReader reads serialized collections by key
type CollectionReader interface {
	// Get returns the stored bytes and the schema version they were written with.
	// Returns domain.ErrCollectionNotFound when the key was never written.
	Get(ctx context.Context, key string) ([]byte, int, error)
	Keys(ctx context.Context) ([]string, error)
}

// CollectionWriter replaces whole collections by key
type CollectionWriter interface {
	Delete(ctx context.Context, key string) error
	Put(ctx context.Context, key string, data []byte, schemaVersion int) error
}

// CollectionStore is the durable key-value substrate behind every top-level collection
type CollectionStore interface {
	CollectionReader
	CollectionWriter
	Close() error
}
