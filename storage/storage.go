package storage

import (
	"context"
	"errors"
)

// ErrCorruptBlob wraps decode failures on a blob that exists but cannot be
// read. Stores treat it as absent data and report it through their diagnostic
// hook instead of failing the operation.
var ErrCorruptBlob = errors.New("storage: corrupt blob")

// Blob key suffixes, one fixed key per collection. Full keys are
// "<prefix>_<suffix>"; the default prefix keeps the keys the client has
// always written ("maharaja_users" and friends).
const (
	KeyUsers    = "users"    // registered account list
	KeySession  = "user"     // active session record
	KeyMenu     = "menu"     // menu item list
	KeyBookings = "bookings" // booking list
)

// BlobStore persists whole collections as JSON values under fixed keys.
// Every mutation rewrites the full collection; there are no partial writes
// and no transactions.
type BlobStore interface {
	// Get decodes the blob stored under key into dest and reports whether
	// the key existed. A present but undecodable value returns true and an
	// error wrapping ErrCorruptBlob.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Put encodes value and stores it under key, replacing any prior blob.
	Put(ctx context.Context, key string, value interface{}) error

	// Delete removes the blob under key. Deleting a missing key is not an
	// error.
	Delete(ctx context.Context, key string) error
}

// Key joins a configured prefix with a collection suffix.
func Key(prefix, suffix string) string {
	return prefix + "_" + suffix
}
