// AngelaMos | 2026
// repository.go

package product

import (
	"context"
	"fmt"

	"github.com/carterperez-dev/cskit/internal/kv"
)

type Repository interface {
	// Load reports found=false when the catalog key is absent or unreadable.
	Load(ctx context.Context) ([]Product, bool, error)
	Save(ctx context.Context, products []Product) error
}

type repository struct {
	store kv.Store
}

func NewRepository(store kv.Store) Repository {
	return &repository{store: store}
}

func (r *repository) Load(ctx context.Context) ([]Product, bool, error) {
	products, found, err := kv.LoadJSON[[]Product](ctx, r.store, kv.KeyProducts)
	if err != nil {
		return nil, false, fmt.Errorf("load products: %w", err)
	}
	return products, found, nil
}

func (r *repository) Save(ctx context.Context, products []Product) error {
	if products == nil {
		products = []Product{}
	}
	if err := kv.SaveJSON(ctx, r.store, kv.KeyProducts, products); err != nil {
		return fmt.Errorf("save products: %w", err)
	}
	return nil
}
