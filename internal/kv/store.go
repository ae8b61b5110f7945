// AngelaMos | 2026
// store.go

package kv

import (
	"context"
	"fmt"
)

// Keys of the persisted layout. Every collection is a JSON blob under one
// of these names.
const (
	KeyUser      = "user"
	KeyUsers     = "users"
	KeyConsumers = "consumers"
	KeyLogins    = "logins"
	KeyProducts  = "products"
	KeyCart      = "cart"
	KeyOrders    = "orders"
	KeyDarkMode  = "darkMode"
)

var KnownKeys = []string{
	KeyUser,
	KeyUsers,
	KeyConsumers,
	KeyLogins,
	KeyProducts,
	KeyCart,
	KeyOrders,
	KeyDarkMode,
}

// Store holds named string blobs. A missing key is reported through the
// found flag of Get, never as an error.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
	Ping(ctx context.Context) error
	Close() error
}

// Op is one write of a batch. Delete removes the key and ignores Value.
type Op struct {
	Key    string
	Value  string
	Delete bool
}

func SetOp(key, value string) Op {
	return Op{Key: key, Value: value}
}

func RemoveOp(key string) Op {
	return Op{Key: key, Delete: true}
}

// Batcher is implemented by backends that can apply several writes as a
// unit.
type Batcher interface {
	Apply(ctx context.Context, ops ...Op) error
}

// Apply writes ops atomically when the backend supports it and one by one
// otherwise.
func Apply(ctx context.Context, s Store, ops ...Op) error {
	if b, ok := s.(Batcher); ok {
		return b.Apply(ctx, ops...)
	}

	for _, op := range ops {
		if err := applyOne(ctx, s, op); err != nil {
			return err
		}
	}
	return nil
}

func applyOne(ctx context.Context, s Store, op Op) error {
	if op.Delete {
		if err := s.Remove(ctx, op.Key); err != nil {
			return fmt.Errorf("remove %s: %w", op.Key, err)
		}
		return nil
	}

	if err := s.Set(ctx, op.Key, op.Value); err != nil {
		return fmt.Errorf("set %s: %w", op.Key, err)
	}
	return nil
}
