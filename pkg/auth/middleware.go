package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/GlebRadaev/gomarket/internal/domain"
	"github.com/GlebRadaev/gomarket/pkg/utils"
)

type ContextKey string

const PrincipalKey ContextKey = "principal"

// Identity is what the external identity provider vouches for. Everything
// else about the user, role above all, comes from the store.
type Identity struct {
	ID          string
	Email       string
	DisplayName string
	PhotoURL    string
}

// UserResolver swaps the token identity for the stored user row, creating it
// with the default buyer role on first sight.
type UserResolver interface {
	Resolve(ctx context.Context, identity Identity) (*domain.User, error)
}

type Middleware struct {
	jwtService JWTServiceInterface
	users      UserResolver
}

func NewMiddleware(jwtService JWTServiceInterface, users UserResolver) *Middleware {
	return &Middleware{
		jwtService: jwtService,
		users:      users,
	}
}

// Authenticate validates the bearer token and loads the stored user row into
// the request context. Role checks downstream read that row, never the token.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondWithError(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := m.jwtService.ValidateToken(token)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		user, err := m.users.Resolve(r.Context(), Identity{
			ID:          claims.UID,
			Email:       claims.Email,
			DisplayName: claims.Name,
			PhotoURL:    claims.PhotoURL,
		})
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		ctx := context.WithValue(r.Context(), PrincipalKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Require gates a route group on a capability using the stored role.
func (m *Middleware) Require(cap Capability) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := Principal(r.Context())
			if !ok {
				utils.RespondWithError(w, http.StatusUnauthorized, "Authentication required")
				return
			}
			if !Allowed(principal.Role, cap) {
				utils.RespondWithError(w, http.StatusForbidden, "Insufficient privileges")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func Principal(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(PrincipalKey).(*domain.User)
	return user, ok
}
