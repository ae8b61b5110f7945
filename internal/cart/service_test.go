// AngelaMos | 2026
// service_test.go

package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/cskit/internal/core"
	"github.com/carterperez-dev/cskit/internal/kv"
	"github.com/carterperez-dev/cskit/internal/product"
)

var (
	cement = product.Product{ID: 1, Name: "Cement", Price: 350}
	bricks = product.Product{ID: 2, Name: "Bricks", Price: 10}
	steel  = product.Product{ID: 3, Name: "Steel", Price: 500}
)

func newTestService(t *testing.T) (*Service, kv.Store) {
	t.Helper()

	store := kv.NewMemoryStore()
	catalog := product.NewService(product.NewRepository(store))
	return NewService(NewRepository(store), catalog), store
}

func TestAdd_KeepsOrderAndDuplicates(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	for _, p := range []product.Product{cement, bricks, cement} {
		_, err := svc.Add(ctx, p)
		require.NoError(t, err)
	}

	items, err := svc.Items(ctx)
	require.NoError(t, err)
	assert.Equal(t, []product.Product{cement, bricks, cement}, items)

	count, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	total, err := svc.Total(ctx)
	require.NoError(t, err)
	assert.Equal(t, float64(710), total)
}

func TestAddByID_SnapshotsCatalogEntry(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	items, err := svc.AddByID(ctx, 6)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Wooden Planks", items[0].Name)

	_, err = svc.AddByID(ctx, 404)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestRemove_DropsAllMatchingLines(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	for _, p := range []product.Product{cement, bricks, cement, steel} {
		_, err := svc.Add(ctx, p)
		require.NoError(t, err)
	}

	removed, err := svc.Remove(ctx, cement.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	items, err := svc.Items(ctx)
	require.NoError(t, err)
	assert.Equal(t, []product.Product{bricks, steel}, items)

	has, err := svc.Contains(ctx, cement.ID)
	require.NoError(t, err)
	assert.False(t, has)

	removed, err = svc.Remove(ctx, 99)
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestClear_RemovesKey(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)

	_, err := svc.Add(ctx, steel)
	require.NoError(t, err)
	require.NoError(t, svc.Clear(ctx))

	_, found, err := store.Get(ctx, kv.KeyCart)
	require.NoError(t, err)
	assert.False(t, found)

	summary, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Empty(t, summary.Items)
	assert.Zero(t, summary.Total)
}

func TestDrain_WritesOpsAndEmptiesCart(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)

	_, err := svc.Add(ctx, bricks)
	require.NoError(t, err)

	lines, err := svc.Drain(ctx, func(lines []product.Product) ([]kv.Op, error) {
		return []kv.Op{kv.SetOp("drained", lines[0].Name)}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []product.Product{bricks}, lines)

	v, _, err := store.Get(ctx, "drained")
	require.NoError(t, err)
	assert.Equal(t, "Bricks", v)

	count, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestDrain_BuildErrorWritesNothing(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Add(ctx, bricks)
	require.NoError(t, err)

	boom := errors.New("boom")
	_, err = svc.Drain(ctx, func([]product.Product) ([]kv.Op, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)

	count, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestTotal_AvoidsFloatDrift(t *testing.T) {
	lines := []product.Product{{Price: 0.1}, {Price: 0.2}}
	assert.Equal(t, 0.3, Total(lines))
	assert.Zero(t, Total(nil))
}
