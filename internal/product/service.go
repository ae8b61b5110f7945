// AngelaMos | 2026
// service.go

package product

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/carterperez-dev/cskit/internal/core"
)

type Service struct {
	repo Repository
	now  func() time.Time
	mu   sync.Mutex
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// List returns the catalog, writing the default catalog first when none is
// stored.
func (s *Service) List(ctx context.Context) ([]Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(ctx)
}

func (s *Service) load(ctx context.Context) ([]Product, error) {
	products, found, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	if found {
		if products == nil {
			products = []Product{}
		}
		return products, nil
	}

	products = DefaultCatalog()
	if err := s.repo.Save(ctx, products); err != nil {
		return nil, fmt.Errorf("seed catalog: %w", err)
	}
	slog.InfoContext(ctx, "seeded default catalog", "products", len(products))

	return products, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Product, error) {
	products, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	idx := slices.IndexFunc(products, func(p Product) bool { return p.ID == id })
	if idx < 0 {
		return nil, fmt.Errorf("get product %d: %w", id, core.ErrNotFound)
	}
	return &products[idx], nil
}

// Create assigns the current Unix millisecond as id, moving past any id
// already taken.
func (s *Service) Create(ctx context.Context, f Fields) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	id := s.now().UnixMilli()
	for slices.ContainsFunc(products, func(p Product) bool { return p.ID == id }) {
		id++
	}

	p := Product{ID: id}
	p.apply(f)

	products = append(products, p)
	if err := s.repo.Save(ctx, products); err != nil {
		return nil, err
	}

	return &p, nil
}

// Update overwrites every field of id. It reports false and writes nothing
// when id is not in the catalog.
func (s *Service) Update(ctx context.Context, id int64, f Fields) (*Product, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.load(ctx)
	if err != nil {
		return nil, false, err
	}

	idx := slices.IndexFunc(products, func(p Product) bool { return p.ID == id })
	if idx < 0 {
		return nil, false, nil
	}

	products[idx].apply(f)
	if err := s.repo.Save(ctx, products); err != nil {
		return nil, false, err
	}

	updated := products[idx]
	return &updated, true, nil
}

// Delete removes id and reports whether it was present. A missing id leaves
// the stored catalog untouched.
func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.load(ctx)
	if err != nil {
		return false, err
	}

	kept := slices.DeleteFunc(slices.Clone(products), func(p Product) bool { return p.ID == id })
	if len(kept) == len(products) {
		return false, nil
	}

	if err := s.repo.Save(ctx, kept); err != nil {
		return false, err
	}
	return true, nil
}

// Search filters the catalog by a case-insensitive substring of the name.
// An empty term returns everything.
func (s *Service) Search(ctx context.Context, term string) ([]Product, error) {
	products, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return products, nil
	}

	matches := make([]Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), term) {
			matches = append(matches, p)
		}
	}
	return matches, nil
}
