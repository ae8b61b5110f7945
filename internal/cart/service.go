// AngelaMos | 2026
// service.go

package cart

import (
	"context"
	"slices"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/carterperez-dev/cskit/internal/kv"
	"github.com/carterperez-dev/cskit/internal/product"
)

// Catalog resolves product ids for the add-by-id path.
type Catalog interface {
	Get(ctx context.Context, id int64) (*product.Product, error)
}

type Service struct {
	repo    Repository
	catalog Catalog
	mu      sync.Mutex
}

func NewService(repo Repository, catalog Catalog) *Service {
	return &Service{repo: repo, catalog: catalog}
}

// Summary is the cart as shown to a shopper.
type Summary struct {
	Items []product.Product `json:"items"`
	Count int               `json:"count"`
	Total float64           `json:"total"`
}

func (s *Service) Items(ctx context.Context) ([]product.Product, error) {
	return s.repo.Load(ctx)
}

func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	lines, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	return &Summary{
		Items: lines,
		Count: len(lines),
		Total: Total(lines),
	}, nil
}

// Add appends a snapshot of p. Adding the same product twice yields two
// lines.
func (s *Service) Add(ctx context.Context, p product.Product) ([]product.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	lines = append(lines, p)
	if err := s.repo.Save(ctx, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (s *Service) AddByID(ctx context.Context, productID int64) ([]product.Product, error) {
	p, err := s.catalog.Get(ctx, productID)
	if err != nil {
		return nil, err
	}
	return s.Add(ctx, *p)
}

// Remove drops every line carrying productID and returns how many went.
func (s *Service) Remove(ctx context.Context, productID int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines, err := s.repo.Load(ctx)
	if err != nil {
		return 0, err
	}

	kept := slices.DeleteFunc(slices.Clone(lines), func(p product.Product) bool {
		return p.ID == productID
	})
	removed := len(lines) - len(kept)
	if removed == 0 {
		return 0, nil
	}

	if err := s.repo.Save(ctx, kept); err != nil {
		return 0, err
	}
	return removed, nil
}

func (s *Service) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.repo.Clear(ctx)
}

// Drain passes the current lines to build and then stores the ops build
// returns together with an empty cart. Nothing is written when build fails.
func (s *Service) Drain(
	ctx context.Context,
	build func(lines []product.Product) ([]kv.Op, error),
) ([]product.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	ops, err := build(lines)
	if err != nil {
		return nil, err
	}

	if err := s.repo.ClearWith(ctx, ops...); err != nil {
		return nil, err
	}
	return lines, nil
}

func (s *Service) Count(ctx context.Context) (int, error) {
	lines, err := s.repo.Load(ctx)
	if err != nil {
		return 0, err
	}
	return len(lines), nil
}

func (s *Service) Contains(ctx context.Context, productID int64) (bool, error) {
	lines, err := s.repo.Load(ctx)
	if err != nil {
		return false, err
	}
	return slices.ContainsFunc(lines, func(p product.Product) bool {
		return p.ID == productID
	}), nil
}

func (s *Service) Total(ctx context.Context) (float64, error) {
	lines, err := s.repo.Load(ctx)
	if err != nil {
		return 0, err
	}
	return Total(lines), nil
}

// Total sums line prices, one unit per line.
func Total(lines []product.Product) float64 {
	sum := decimal.Zero
	for _, p := range lines {
		sum = sum.Add(decimal.NewFromFloat(p.Price))
	}
	return sum.InexactFloat64()
}
