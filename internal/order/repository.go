// AngelaMos | 2026
// repository.go

package order

import (
	"context"
	"fmt"

	"github.com/carterperez-dev/cskit/internal/kv"
)

type Repository interface {
	Load(ctx context.Context) ([]Order, error)
	Save(ctx context.Context, orders []Order) error
}

type repository struct {
	store kv.Store
}

func NewRepository(store kv.Store) Repository {
	return &repository{store: store}
}

func (r *repository) Load(ctx context.Context) ([]Order, error) {
	orders, _, err := kv.LoadJSON[[]Order](ctx, r.store, kv.KeyOrders)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	if orders == nil {
		orders = []Order{}
	}
	return orders, nil
}

func (r *repository) Save(ctx context.Context, orders []Order) error {
	if err := kv.SaveJSON(ctx, r.store, kv.KeyOrders, orders); err != nil {
		return fmt.Errorf("save orders: %w", err)
	}
	return nil
}
