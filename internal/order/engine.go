// AngelaMos | 2026
// engine.go

package order

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/carterperez-dev/cskit/internal/config"
	"github.com/carterperez-dev/cskit/internal/core"
	"github.com/carterperez-dev/cskit/internal/events"
	"github.com/carterperez-dev/cskit/internal/kv"
	"github.com/carterperez-dev/cskit/internal/product"
	"github.com/carterperez-dev/cskit/internal/schedule"
)

var ErrEmptyCart = errors.New("cart is empty")

// CartDrainer hands over the cart lines and empties the cart in the same
// write as the ops returned by build.
type CartDrainer interface {
	Drain(
		ctx context.Context,
		build func(lines []product.Product) ([]kv.Op, error),
	) ([]product.Product, error)
}

// Engine turns carts into orders and walks each checkout through the
// delivery pipeline on timers.
type Engine struct {
	repo      Repository
	cart      CartDrainer
	scheduler *schedule.Scheduler
	publisher events.Publisher
	cfg       config.LifecycleConfig
	now       func() time.Time

	mu sync.Mutex

	trackMu  sync.RWMutex
	tracking *Tracking
}

func NewEngine(
	repo Repository,
	cart CartDrainer,
	scheduler *schedule.Scheduler,
	publisher events.Publisher,
	cfg config.LifecycleConfig,
) *Engine {
	if cfg.DeliveryScope == "" {
		cfg.DeliveryScope = config.ScopeBatch
	}
	return &Engine{
		repo:      repo,
		cart:      cart,
		scheduler: scheduler,
		publisher: publisher,
		cfg:       cfg,
		now:       time.Now,
	}
}

// Checkout converts every cart line into a Placed order with quantity 1,
// appends them to the order history and empties the cart in one write.
func (e *Engine) Checkout(ctx context.Context) (*CheckoutResult, error) {
	ctx, span := core.StartSpan(ctx, "order.checkout")
	defer span.End()

	batchID := uuid.New().String()

	var created, snapshot []Order

	e.mu.Lock()
	_, err := e.cart.Drain(ctx, func(lines []product.Product) ([]kv.Op, error) {
		if len(lines) == 0 {
			return nil, ErrEmptyCart
		}

		existing, err := e.repo.Load(ctx)
		if err != nil {
			return nil, err
		}

		created = make([]Order, 0, len(lines))
		for _, line := range lines {
			created = append(created, Order{
				ID:          uuid.New().String(),
				ProductName: line.Name,
				Quantity:    1,
				Status:      StatusPlaced,
			})
		}

		snapshot = append(slices.Clone(existing), created...)
		op, err := kv.JSONOp(kv.KeyOrders, snapshot)
		if err != nil {
			return nil, err
		}
		return []kv.Op{op}, nil
	})
	e.mu.Unlock()

	if err != nil {
		if !errors.Is(err, ErrEmptyCart) {
			core.SetSpanError(ctx, err)
		}
		return nil, fmt.Errorf("checkout: %w", err)
	}

	ids := orderIDs(created)
	latest := created[len(created)-1]

	tracking := Tracking{
		BatchID:   batchID,
		Order:     latest,
		Message:   StatusPlaced.Message(),
		UpdatedAt: e.now(),
	}
	e.setTracking(tracking)

	core.AddSpanEvent(ctx, "order.placed",
		attribute.String("batch_id", batchID),
		attribute.Int("orders", len(created)),
	)
	e.publish(ctx, events.OrderPlaced, Event{
		BatchID:  batchID,
		OrderIDs: ids,
		Status:   StatusPlaced,
	})

	slog.InfoContext(ctx, "checkout complete",
		"batch_id", batchID,
		"orders", len(created),
	)

	if err := e.schedule(batchID, ids, snapshot); err != nil {
		slog.WarnContext(ctx, "lifecycle not scheduled",
			"batch_id", batchID,
			"error", err,
		)
	}

	return &CheckoutResult{
		BatchID:  batchID,
		Orders:   created,
		Tracking: tracking,
	}, nil
}

func (e *Engine) schedule(batchID string, ids []string, snapshot []Order) error {
	steps := []struct {
		after  time.Duration
		status Status
	}{
		{e.cfg.PreparingAfter, StatusPreparing},
		{e.cfg.OutForDeliveryAfter, StatusOutForDelivery},
		{e.cfg.DeliveredAfter, StatusDelivered},
	}

	for _, step := range steps {
		status := step.status
		name := fmt.Sprintf("order:%s:%s", batchID, status)

		_, err := e.scheduler.After(step.after, name, func(ctx context.Context) {
			e.transition(ctx, batchID, ids, snapshot, status)
		})
		if err != nil {
			return fmt.Errorf("schedule %s: %w", status, err)
		}
	}
	return nil
}

// transition applies one lifecycle step. Only Delivered reaches the store.
func (e *Engine) transition(
	ctx context.Context,
	batchID string,
	ids []string,
	snapshot []Order,
	status Status,
) {
	ctx, span := core.StartSpan(ctx, "order.transition",
		attribute.String("batch_id", batchID),
		attribute.String("status", string(status)),
	)
	defer span.End()

	if status == StatusDelivered {
		if err := e.persistDelivered(ctx, ids, snapshot); err != nil {
			core.SetSpanError(ctx, err)
			slog.ErrorContext(ctx, "persist delivered orders",
				"batch_id", batchID,
				"error", err,
			)
			return
		}
	}

	e.advanceTracking(batchID, status)

	core.AddSpanEvent(ctx, "order.status_changed",
		attribute.String("status", string(status)),
	)
	e.publish(ctx, events.OrderStatusChanged, Event{
		BatchID:  batchID,
		OrderIDs: ids,
		Status:   status,
		Scope:    e.deliveryScope(status),
	})
}

func (e *Engine) deliveryScope(status Status) string {
	if status != StatusDelivered {
		return ""
	}
	return e.cfg.DeliveryScope
}

// persistDelivered marks orders Delivered. The batch scope re-reads the
// history and touches only this checkout's orders. The all scope rewrites
// the history captured at checkout with every order Delivered.
func (e *Engine) persistDelivered(
	ctx context.Context,
	ids []string,
	snapshot []Order,
) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cfg.DeliveryScope == config.ScopeAll {
		orders := slices.Clone(snapshot)
		for i := range orders {
			orders[i].Status = StatusDelivered
		}
		return e.repo.Save(ctx, orders)
	}

	orders, err := e.repo.Load(ctx)
	if err != nil {
		return err
	}

	changed := false
	for i := range orders {
		if !slices.Contains(ids, orders[i].ID) {
			continue
		}
		if orders[i].Status.Rank() < StatusDelivered.Rank() {
			orders[i].Status = StatusDelivered
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return e.repo.Save(ctx, orders)
}

func (e *Engine) setTracking(t Tracking) {
	e.trackMu.Lock()
	defer e.trackMu.Unlock()

	e.tracking = &t
}

// advanceTracking moves the tracked order one step forward when it still
// belongs to batchID. A newer checkout owns the view after it replaces it.
func (e *Engine) advanceTracking(batchID string, status Status) {
	e.trackMu.Lock()
	defer e.trackMu.Unlock()

	if e.tracking == nil || e.tracking.BatchID != batchID {
		return
	}

	next, err := e.tracking.Order.Status.Advance(status)
	if err != nil {
		slog.Warn("tracking not advanced",
			"batch_id", batchID,
			"error", err,
		)
		return
	}

	e.tracking.Order.Status = next
	e.tracking.Message = status.Message()
	e.tracking.UpdatedAt = e.now()
}

// Tracking returns the live view of the latest checkout, or the last stored
// order when nothing was checked out since start.
func (e *Engine) Tracking(ctx context.Context) (*Tracking, error) {
	e.trackMu.RLock()
	if e.tracking != nil {
		t := *e.tracking
		e.trackMu.RUnlock()
		return &t, nil
	}
	e.trackMu.RUnlock()

	orders, err := e.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("tracking: %w", err)
	}
	if len(orders) == 0 {
		return nil, fmt.Errorf("tracking: %w", core.ErrNotFound)
	}

	last := orders[len(orders)-1]
	return &Tracking{
		Order:   last,
		Message: last.Status.Message(),
	}, nil
}

func (e *Engine) List(ctx context.Context) ([]Order, error) {
	return e.repo.Load(ctx)
}

func (e *Engine) Get(ctx context.Context, id string) (*Order, error) {
	orders, err := e.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	idx := slices.IndexFunc(orders, func(o Order) bool { return o.ID == id })
	if idx < 0 {
		return nil, fmt.Errorf("get order %s: %w", id, core.ErrNotFound)
	}
	return &orders[idx], nil
}

// Update rewrites the stored order with the given id under the engine lock.
// fn returns false to skip the write.
func (e *Engine) Update(
	ctx context.Context,
	id string,
	fn func(o *Order) (bool, error),
) (*Order, bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	orders, err := e.repo.Load(ctx)
	if err != nil {
		return nil, false, err
	}

	idx := slices.IndexFunc(orders, func(o Order) bool { return o.ID == id })
	if idx < 0 {
		return nil, false, fmt.Errorf("update order %s: %w", id, core.ErrNotFound)
	}

	changed, err := fn(&orders[idx])
	if err != nil {
		return nil, false, err
	}
	if changed {
		if err := e.repo.Save(ctx, orders); err != nil {
			return nil, false, err
		}
	}

	updated := orders[idx]
	return &updated, changed, nil
}

// Pending is the number of lifecycle steps still waiting to fire.
func (e *Engine) Pending() int {
	return e.scheduler.Pending()
}

// Close cancels outstanding lifecycle steps and waits for running ones.
func (e *Engine) Close() {
	e.scheduler.Close()
}

func (e *Engine) publish(ctx context.Context, routingKey string, ev Event) {
	if e.publisher == nil {
		return
	}
	if err := e.publisher.Publish(ctx, routingKey, ev); err != nil {
		slog.WarnContext(ctx, "publish order event",
			"routing_key", routingKey,
			"batch_id", ev.BatchID,
			"error", err,
		)
	}
}

func orderIDs(orders []Order) []string {
	ids := make([]string, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}
	return ids
}
