// internal/statestore/store.go
package statestore

import (
	"context"
)

// Store is a namespaced blob store for per-session container state.
// Each container serializes its entire state under one key on every
// mutation; there are no partial writes.
//
// Both operations are best-effort: implementations log failures and
// never surface them. Load reports absence (or any read failure) via
// the boolean, and Save silently drops writes it cannot complete, so
// in-memory state always reflects the caller's mutation regardless of
// persistence outcome.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, bool)
	Save(ctx context.Context, key string, data []byte)
	Delete(ctx context.Context, key string)
}
