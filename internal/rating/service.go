// AngelaMos | 2026
// service.go

package rating

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/carterperez-dev/cskit/internal/core"
	"github.com/carterperez-dev/cskit/internal/order"
)

const (
	MinStars = 1
	MaxStars = 5
)

var ErrNotDelivered = errors.New("order not delivered")

type Orders interface {
	Get(ctx context.Context, id string) (*order.Order, error)
	Update(
		ctx context.Context,
		id string,
		fn func(o *order.Order) (bool, error),
	) (*order.Order, bool, error)
}

// Service holds star selections until they are submitted. Staged values
// live in memory only.
type Service struct {
	orders Orders

	mu     sync.Mutex
	staged map[string]int
}

func NewService(orders Orders) *Service {
	return &Service{
		orders: orders,
		staged: make(map[string]int),
	}
}

func (s *Service) Stage(ctx context.Context, orderID string, stars int) error {
	if stars < MinStars || stars > MaxStars {
		return fmt.Errorf("stage rating: stars %d: %w", stars, core.ErrInvalidInput)
	}

	o, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return fmt.Errorf("stage rating: %w", err)
	}
	if o.Status != order.StatusDelivered {
		return fmt.Errorf("stage rating %s: %w", orderID, ErrNotDelivered)
	}

	s.mu.Lock()
	s.staged[orderID] = stars
	s.mu.Unlock()

	return nil
}

// Pending returns the staged value, or the stored rating when nothing is
// staged.
func (s *Service) Pending(ctx context.Context, orderID string) (int, error) {
	s.mu.Lock()
	stars, ok := s.staged[orderID]
	s.mu.Unlock()
	if ok {
		return stars, nil
	}

	o, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return 0, fmt.Errorf("pending rating: %w", err)
	}
	return o.Rating, nil
}

// Submit stores the staged value on the order. It reports false without
// writing when nothing is staged or the value is already stored.
func (s *Service) Submit(ctx context.Context, orderID string) (*order.Order, bool, error) {
	s.mu.Lock()
	stars, ok := s.staged[orderID]
	s.mu.Unlock()

	if !ok {
		o, err := s.orders.Get(ctx, orderID)
		if err != nil {
			return nil, false, fmt.Errorf("submit rating: %w", err)
		}
		return o, false, nil
	}

	o, changed, err := s.orders.Update(ctx, orderID, func(o *order.Order) (bool, error) {
		if o.Rating == stars {
			return false, nil
		}
		o.Rating = stars
		return true, nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("submit rating: %w", err)
	}

	s.mu.Lock()
	if s.staged[orderID] == stars {
		delete(s.staged, orderID)
	}
	s.mu.Unlock()

	if changed {
		slog.InfoContext(ctx, "rating submitted",
			"order_id", orderID,
			"stars", stars,
		)
	}
	return o, changed, nil
}
