// AngelaMos | 2026
// service.go

package admin

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/carterperez-dev/cskit/internal/order"
	"github.com/carterperez-dev/cskit/internal/user"
)

type OrderLister interface {
	List(ctx context.Context) ([]order.Order, error)
}

type Service struct {
	users  user.Repository
	orders OrderLister
}

func NewService(users user.Repository, orders OrderLister) *Service {
	return &Service{users: users, orders: orders}
}

func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin stats: %w", err)
	}

	consumers, err := s.users.Consumers(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin stats: %w", err)
	}

	logins, err := s.users.Logins(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin stats: %w", err)
	}

	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin stats: %w", err)
	}

	byStatus := make(map[order.Status]int, 4)
	for _, o := range orders {
		byStatus[o.Status]++
	}

	return &Stats{
		TotalUsers:     len(users),
		TotalOrders:    len(orders),
		TotalConsumers: len(consumers),
		TotalLogins:    logins,
		AverageRating:  AverageRating(orders),
		OrdersByStatus: byStatus,
	}, nil
}

// AverageRating is the mean rating over all orders, unrated ones counting
// as zero, rounded to two places. It is 0 without orders.
func AverageRating(orders []order.Order) float64 {
	if len(orders) == 0 {
		return 0
	}

	sum := decimal.Zero
	for _, o := range orders {
		sum = sum.Add(decimal.NewFromInt(int64(o.Rating)))
	}

	return sum.
		Div(decimal.NewFromInt(int64(len(orders)))).
		Round(2).
		InexactFloat64()
}

func (s *Service) Users(ctx context.Context) ([]user.User, error) {
	return s.users.List(ctx)
}

func (s *Service) Orders(ctx context.Context) ([]order.Order, error) {
	return s.orders.List(ctx)
}

// PromoteToSeller turns a consumer into a seller. Sellers and admins are
// returned unchanged.
func (s *Service) PromoteToSeller(ctx context.Context, userID string) (*user.User, bool, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, false, fmt.Errorf("promote %s: %w", userID, err)
	}
	if !u.IsConsumer() {
		return u, false, nil
	}

	updated, err := s.users.UpdateRole(ctx, userID, user.RoleSeller)
	if err != nil {
		return nil, false, fmt.Errorf("promote %s: %w", userID, err)
	}

	slog.InfoContext(ctx, "user promoted",
		"user_id", userID,
		"email", updated.Email,
	)
	return updated, true, nil
}
