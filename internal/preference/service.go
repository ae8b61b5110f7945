// AngelaMos | 2026
// service.go

package preference

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/carterperez-dev/cskit/internal/kv"
)

type Service struct {
	store kv.Store
	mu    sync.Mutex
}

func NewService(store kv.Store) *Service {
	return &Service{store: store}
}

// DarkMode is on only when the stored value is exactly "true".
func (s *Service) DarkMode(ctx context.Context) (bool, error) {
	v, found, err := s.store.Get(ctx, kv.KeyDarkMode)
	if err != nil {
		return false, fmt.Errorf("get dark mode: %w", err)
	}
	return found && v == "true", nil
}

func (s *Service) SetDarkMode(ctx context.Context, on bool) error {
	if err := s.store.Set(ctx, kv.KeyDarkMode, strconv.FormatBool(on)); err != nil {
		return fmt.Errorf("set dark mode: %w", err)
	}
	return nil
}

func (s *Service) ToggleDarkMode(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	on, err := s.DarkMode(ctx)
	if err != nil {
		return false, err
	}
	if err := s.SetDarkMode(ctx, !on); err != nil {
		return false, err
	}
	return !on, nil
}
