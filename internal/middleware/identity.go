// AngelaMos | 2026
// identity.go

package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/carterperez-dev/cskit/internal/core"
)

type contextKey string

const IdentityKey contextKey = "identity"

// Identity is the declared identity of the active session. Nothing about it
// is verified.
type Identity struct {
	Email    string
	Username string
	Role     string
}

// IdentityResolver returns the active identity, or nil when nobody is
// logged in.
type IdentityResolver interface {
	ResolveIdentity(ctx context.Context) (*Identity, error)
}

// AttachIdentity puts the active identity on the request context. It never
// rejects a request.
func AttachIdentity(resolver IdentityResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := resolver.ResolveIdentity(r.Context())
			if err != nil {
				slog.WarnContext(r.Context(), "resolve identity failed",
					"error", err,
				)
			}

			if id != nil {
				r = r.WithContext(WithIdentity(r.Context(), id))
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireIdentity answers 401 when no identity is attached.
func RequireIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if GetIdentity(r.Context()) == nil {
			core.JSONError(w, core.NoIdentityError())
			return
		}
		next.ServeHTTP(w, r)
	})
}

func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, IdentityKey, id)
}

func GetIdentity(ctx context.Context) *Identity {
	if id, ok := ctx.Value(IdentityKey).(*Identity); ok {
		return id
	}
	return nil
}

func GetUserRole(ctx context.Context) string {
	if id := GetIdentity(ctx); id != nil {
		return id.Role
	}
	return ""
}
