// AngelaMos | 2026
// repository.go

package user

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/carterperez-dev/cskit/internal/core"
	"github.com/carterperez-dev/cskit/internal/kv"
)

type Repository interface {
	Active(ctx context.Context) (*Identity, error)
	SetActive(ctx context.Context, id Identity) error
	ClearActive(ctx context.Context) error

	List(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, user *User) error
	UpdateRole(ctx context.Context, id string, role Role) (*User, error)

	Consumers(ctx context.Context) ([]string, error)
	AddConsumer(ctx context.Context, name string) (bool, error)

	Logins(ctx context.Context) (int, error)
	IncrementLogins(ctx context.Context) (int, error)
}

type repository struct {
	store kv.Store
	mu    sync.Mutex
}

func NewRepository(store kv.Store) Repository {
	return &repository{store: store}
}

// Active returns nil without error when nobody is logged in.
func (r *repository) Active(ctx context.Context) (*Identity, error) {
	id, found, err := kv.LoadJSON[Identity](ctx, r.store, kv.KeyUser)
	if err != nil {
		return nil, fmt.Errorf("get active identity: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &id, nil
}

func (r *repository) SetActive(ctx context.Context, id Identity) error {
	if err := kv.SaveJSON(ctx, r.store, kv.KeyUser, id); err != nil {
		return fmt.Errorf("set active identity: %w", err)
	}
	return nil
}

func (r *repository) ClearActive(ctx context.Context) error {
	if err := r.store.Remove(ctx, kv.KeyUser); err != nil {
		return fmt.Errorf("clear active identity: %w", err)
	}
	return nil
}

func (r *repository) List(ctx context.Context) ([]User, error) {
	users, _, err := kv.LoadJSON[[]User](ctx, r.store, kv.KeyUsers)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	if users == nil {
		users = []User{}
	}
	return users, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, fmt.Errorf("get user by email: %w", core.ErrNotFound)
}

func (r *repository) Create(ctx context.Context, user *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.List(ctx)
	if err != nil {
		return err
	}

	for _, u := range users {
		if u.Email == user.Email {
			return fmt.Errorf("create user: %w", core.ErrConflict)
		}
	}

	users = append(users, *user)
	if err := kv.SaveJSON(ctx, r.store, kv.KeyUsers, users); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *repository) UpdateRole(ctx context.Context, id string, role Role) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	idx := slices.IndexFunc(users, func(u User) bool { return u.ID == id })
	if idx < 0 {
		return nil, fmt.Errorf("update role: %w", core.ErrNotFound)
	}

	users[idx].Role = role
	if err := kv.SaveJSON(ctx, r.store, kv.KeyUsers, users); err != nil {
		return nil, fmt.Errorf("update role: %w", err)
	}

	updated := users[idx]
	return &updated, nil
}

func (r *repository) Consumers(ctx context.Context) ([]string, error) {
	names, _, err := kv.LoadJSON[[]string](ctx, r.store, kv.KeyConsumers)
	if err != nil {
		return nil, fmt.Errorf("list consumers: %w", err)
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

// AddConsumer appends name unless it is already registered and reports
// whether it was added.
func (r *repository) AddConsumer(ctx context.Context, name string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	names, err := r.Consumers(ctx)
	if err != nil {
		return false, err
	}
	if slices.Contains(names, name) {
		return false, nil
	}

	names = append(names, name)
	if err := kv.SaveJSON(ctx, r.store, kv.KeyConsumers, names); err != nil {
		return false, fmt.Errorf("add consumer: %w", err)
	}
	return true, nil
}

// Logins reads the decimal counter. An unreadable value counts as zero.
func (r *repository) Logins(ctx context.Context) (int, error) {
	raw, found, err := r.store.Get(ctx, kv.KeyLogins)
	if err != nil {
		return 0, fmt.Errorf("get logins: %w", err)
	}
	if !found {
		return 0, nil
	}

	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		slog.WarnContext(ctx, "discarding malformed login counter",
			"value", raw,
		)
		return 0, nil
	}
	return n, nil
}

func (r *repository) IncrementLogins(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, err := r.Logins(ctx)
	if err != nil {
		return 0, err
	}

	n++
	if err := r.store.Set(ctx, kv.KeyLogins, strconv.Itoa(n)); err != nil {
		return 0, fmt.Errorf("increment logins: %w", err)
	}
	return n, nil
}
