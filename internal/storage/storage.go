package storage

import (
	"context"
	"time"
)

// SignedURLExpiry is how long persisted-delivery download links stay valid.
const SignedURLExpiry = time.Hour

// ObjectStore is the capability the conversion pipeline needs from an object
// storage backend. It is passed in explicitly so tests can substitute a fake.
type ObjectStore interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
	SignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// ObjectKey builds the storage path for an artifact, namespaced by artifact
// kind (file extension) and the request that produced it.
func ObjectKey(kind, requestID, filename string) string {
	return kind + "/" + requestID + "/" + filename
}
