// AngelaMos | 2026
// main_test.go

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/cskit/internal/kv"
)

func TestDispatch_SeedDumpReset(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	var out bytes.Buffer

	require.NoError(t, dispatch(ctx, store, []string{"seed"}, &out))
	assert.Contains(t, out.String(), "catalog has 6 products")

	require.NoError(t, store.Set(ctx, kv.KeyDarkMode, "true"))
	require.NoError(t, store.Set(ctx, kv.KeyCart, "not json {"))

	out.Reset()
	require.NoError(t, dispatch(ctx, store, []string{"dump"}, &out))

	var snapshot map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out.Bytes(), &snapshot))
	assert.Contains(t, snapshot, kv.KeyProducts)
	assert.JSONEq(t, `true`, string(snapshot[kv.KeyDarkMode]))
	assert.JSONEq(t, `"not json {"`, string(snapshot[kv.KeyCart]))

	out.Reset()
	require.NoError(t, dispatch(ctx, store, []string{"reset", "-key", kv.KeyCart}, &out))
	_, found, err := store.Get(ctx, kv.KeyCart)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, dispatch(ctx, store, []string{"reset"}, &out))
	keys, err := store.Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestDispatch_SeedForceOverwrites(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	require.NoError(t, store.Set(ctx, kv.KeyProducts, `[]`))

	var out bytes.Buffer
	require.NoError(t, dispatch(ctx, store, []string{"seed"}, &out))
	assert.Contains(t, out.String(), "catalog has 0 products")

	out.Reset()
	require.NoError(t, dispatch(ctx, store, []string{"seed", "-force"}, &out))
	assert.Contains(t, out.String(), "catalog reset to 6 products")
}

func TestDispatch_Usage(t *testing.T) {
	store := kv.NewMemoryStore()
	var out bytes.Buffer

	assert.ErrorIs(t, dispatch(context.Background(), store, []string{"explode"}, &out), errUsage)
	assert.ErrorIs(t, dispatch(context.Background(), store, []string{"reset", "-key", "nope"}, &out), errUsage)
	assert.ErrorIs(t, run(context.Background(), "", nil, &out), errUsage)
}
