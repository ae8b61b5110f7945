// AngelaMos | 2026
// service.go

package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/carterperez-dev/cskit/internal/core"
	"github.com/carterperez-dev/cskit/internal/middleware"
)

type Service struct {
	repo   Repository
	policy RolePolicy
}

func NewService(repo Repository, policy RolePolicy) *Service {
	return &Service{repo: repo, policy: policy}
}

// Login declares an identity. Nothing is verified: the role comes from the
// email alone and the previous session, if any, is replaced.
func (s *Service) Login(
	ctx context.Context,
	email, username string,
) (*Identity, error) {
	email = strings.TrimSpace(email)
	username = strings.TrimSpace(username)
	if email == "" || username == "" {
		return nil, fmt.Errorf("login: email and username required: %w", core.ErrInvalidInput)
	}

	id := Identity{
		Email:    email,
		Username: username,
		Role:     s.policy.Classify(email),
	}

	if err := s.repo.SetActive(ctx, id); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	if id.Role == RoleConsumer {
		if _, err := s.repo.AddConsumer(ctx, username); err != nil {
			return nil, fmt.Errorf("login: %w", err)
		}
	}

	if err := s.register(ctx, id); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	logins, err := s.repo.IncrementLogins(ctx)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	slog.InfoContext(ctx, "identity declared",
		"email", id.Email,
		"role", id.Role,
		"total_logins", logins,
	)

	return &id, nil
}

// register adds the email to the user registry the first time it is seen.
// Later logins leave the entry alone so an admin promotion is kept.
func (s *Service) register(ctx context.Context, id Identity) error {
	_, err := s.repo.GetByEmail(ctx, id.Email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, core.ErrNotFound) {
		return err
	}

	err = s.repo.Create(ctx, &User{
		ID:    uuid.New().String(),
		Name:  id.Username,
		Email: id.Email,
		Role:  id.Role,
	})
	if errors.Is(err, core.ErrConflict) {
		return nil
	}
	return err
}

func (s *Service) Logout(ctx context.Context) error {
	return s.repo.ClearActive(ctx)
}

func (s *Service) Current(ctx context.Context) (*Identity, error) {
	id, err := s.repo.Active(ctx)
	if err != nil {
		return nil, err
	}
	if id == nil {
		return nil, fmt.Errorf("current identity: %w", core.ErrNoIdentity)
	}
	return id, nil
}

func (s *Service) ResolveIdentity(ctx context.Context) (*middleware.Identity, error) {
	id, err := s.repo.Active(ctx)
	if err != nil || id == nil {
		return nil, err
	}

	return &middleware.Identity{
		Email:    id.Email,
		Username: id.Username,
		Role:     string(id.Role),
	}, nil
}

var _ middleware.IdentityResolver = (*Service)(nil)
