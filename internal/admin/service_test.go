// AngelaMos | 2026
// service_test.go

package admin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/cskit/internal/core"
	"github.com/carterperez-dev/cskit/internal/kv"
	"github.com/carterperez-dev/cskit/internal/order"
	"github.com/carterperez-dev/cskit/internal/user"
)

type staticOrders []order.Order

func (s staticOrders) List(context.Context) ([]order.Order, error) {
	return s, nil
}

func newTestService(t *testing.T, orders []order.Order) (*Service, user.Repository) {
	t.Helper()

	ctx := context.Background()
	repo := user.NewRepository(kv.NewMemoryStore())
	for _, u := range []user.User{
		{ID: "u1", Name: "alice", Email: "alice@gmail.com", Role: user.RoleConsumer},
		{ID: "u2", Name: "bob", Email: "bob@cskit.com", Role: user.RoleSeller},
		{ID: "u3", Name: "root", Email: "admin@cskit.com", Role: user.RoleAdmin},
	} {
		require.NoError(t, repo.Create(ctx, &u))
	}

	return NewService(repo, staticOrders(orders)), repo
}

func TestAverageRating(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    float64
	}{
		{name: "no orders", ratings: nil, want: 0},
		{name: "whole", ratings: []int{5, 3, 4}, want: 4},
		{name: "unrated counts as zero", ratings: []int{5, 0}, want: 2.5},
		{name: "rounds half up", ratings: []int{5, 4, 4, 4, 4, 4, 4, 4}, want: 4.13},
		{name: "repeating", ratings: []int{1, 1, 0}, want: 0.67},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders := make([]order.Order, 0, len(tt.ratings))
			for _, r := range tt.ratings {
				orders = append(orders, order.Order{Rating: r})
			}
			assert.Equal(t, tt.want, AverageRating(orders))
		})
	}
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t, []order.Order{
		{ID: "a", Status: order.StatusDelivered, Rating: 5},
		{ID: "b", Status: order.StatusDelivered, Rating: 3},
		{ID: "c", Status: order.StatusPlaced, Rating: 4},
	})

	_, err := repo.AddConsumer(ctx, "alice")
	require.NoError(t, err)
	for range 4 {
		_, err := repo.IncrementLogins(ctx)
		require.NoError(t, err)
	}

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalUsers)
	assert.Equal(t, 3, stats.TotalOrders)
	assert.Equal(t, 1, stats.TotalConsumers)
	assert.Equal(t, 4, stats.TotalLogins)
	assert.Equal(t, 4.0, stats.AverageRating)
	assert.Equal(t, map[order.Status]int{
		order.StatusDelivered: 2,
		order.StatusPlaced:    1,
	}, stats.OrdersByStatus)
}

func TestStats_EmptyStore(t *testing.T) {
	svc := NewService(user.NewRepository(kv.NewMemoryStore()), staticOrders(nil))

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalUsers)
	assert.Zero(t, stats.AverageRating)
}

func TestPromoteToSeller(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t, nil)

	u, changed, err := svc.PromoteToSeller(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, user.RoleSeller, u.Role)

	stored, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, user.RoleSeller, stored.Role)

	_, changed, err = svc.PromoteToSeller(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, changed)

	u, changed, err = svc.PromoteToSeller(ctx, "u3")
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, user.RoleAdmin, u.Role)

	_, _, err = svc.PromoteToSeller(ctx, "ghost")
	require.ErrorIs(t, err, core.ErrNotFound)
}
