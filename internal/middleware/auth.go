package middleware

import (
	"awty-football/internal/constants"
	"awty-football/internal/domain"
	"awty-football/internal/server/respond"
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog"
)

const userKey contextKey = "user"

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

// Session resolves the session cookie and stores the user in the request
// context. Requests without a valid session continue anonymously.
func Session(auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(constants.SessionCookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			user, err := auth.Authenticate(r.Context(), cookie.Value)
			if err != nil {
				if !errors.Is(err, domain.ErrUnauthorized) {
					zerolog.Ctx(r.Context()).Warn().Err(err).Msg("failed to resolve session")
				}
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			logger := zerolog.Ctx(r.Context()).With().Str("user_id", user.ID).Logger()
			ctx = logger.WithContext(ctx)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func UserFrom(ctx context.Context) *domain.User {
	user, _ := ctx.Value(userKey).(*domain.User)
	return user
}

// RequireUser rejects anonymous requests.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if UserFrom(r.Context()) == nil {
			respond.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "sign in required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin rejects anonymous and regular users.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := UserFrom(r.Context())
		switch {
		case user == nil:
			respond.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "sign in required")
		case !user.IsAdmin():
			respond.WriteError(w, http.StatusForbidden, "FORBIDDEN", "admin role required")
		default:
			next.ServeHTTP(w, r)
		}
	})
}
