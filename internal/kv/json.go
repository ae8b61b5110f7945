// AngelaMos | 2026
// json.go

package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// LoadJSON decodes the blob under key and reports whether a usable value was
// found. A blob that fails to decode is logged and treated as absent, so the
// zero T comes back with found=false.
func LoadJSON[T any](ctx context.Context, s Store, key string) (T, bool, error) {
	var zero T

	raw, found, err := s.Get(ctx, key)
	if err != nil {
		return zero, false, fmt.Errorf("load %s: %w", key, err)
	}
	if !found {
		return zero, false, nil
	}

	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		slog.WarnContext(ctx, "discarding malformed blob",
			"key", key,
			"error", err,
		)
		return zero, false, nil
	}

	return v, true, nil
}

func SaveJSON(ctx context.Context, s Store, key string, v any) error {
	op, err := JSONOp(key, v)
	if err != nil {
		return err
	}

	if err := s.Set(ctx, op.Key, op.Value); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// JSONOp encodes v as a batch write of key.
func JSONOp(key string, v any) (Op, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return Op{}, fmt.Errorf("encode %s: %w", key, err)
	}
	return SetOp(key, string(raw)), nil
}
