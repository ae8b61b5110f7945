// AngelaMos | 2026
// repository.go

package cart

import (
	"context"
	"fmt"

	"github.com/carterperez-dev/cskit/internal/kv"
	"github.com/carterperez-dev/cskit/internal/product"
)

type Repository interface {
	Load(ctx context.Context) ([]product.Product, error)
	Save(ctx context.Context, lines []product.Product) error
	Clear(ctx context.Context) error
	// ClearWith empties the cart and applies ops in the same write.
	ClearWith(ctx context.Context, ops ...kv.Op) error
}

type repository struct {
	store kv.Store
}

func NewRepository(store kv.Store) Repository {
	return &repository{store: store}
}

func (r *repository) Load(ctx context.Context) ([]product.Product, error) {
	lines, _, err := kv.LoadJSON[[]product.Product](ctx, r.store, kv.KeyCart)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if lines == nil {
		lines = []product.Product{}
	}
	return lines, nil
}

func (r *repository) Save(ctx context.Context, lines []product.Product) error {
	if err := kv.SaveJSON(ctx, r.store, kv.KeyCart, lines); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

func (r *repository) Clear(ctx context.Context) error {
	if err := r.store.Remove(ctx, kv.KeyCart); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

func (r *repository) ClearWith(ctx context.Context, ops ...kv.Op) error {
	ops = append(ops, kv.RemoveOp(kv.KeyCart))
	if err := kv.Apply(ctx, r.store, ops...); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
