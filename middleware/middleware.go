package middleware

import (
	"context"
	"net/http"
	"strings"

	"tripweaver/globals"
	"tripweaver/tokens"

	"github.com/julienschmidt/httprouter"
)

// Auth is the authentication gate. It turns a bearer token into a
// verified caller id on the request context, or rejects the request.
type Auth struct {
	Tokens *tokens.Service
}

func NewAuth(ts *tokens.Service) *Auth {
	return &Auth{Tokens: ts}
}

// bearerToken pulls the credential out of the Authorization header.
// Returns "" when the header is absent or not a bearer scheme.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

// Authenticate rejects requests without a valid token. A missing token,
// a bad signature and an expired token all produce the same 401 so
// verification internals never leak to the client.
func (a *Auth) Authenticate(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		tokenString := bearerToken(r)
		if tokenString == "" {
			http.Error(w, "Missing token", http.StatusUnauthorized)
			return
		}

		claims, err := a.Tokens.Verify(tokenString)
		if err != nil {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), globals.UserIDKey, claims.UserID)
		next(w, r.WithContext(ctx), ps)
	}
}

// OptionalAuth attaches the caller id when a valid token is present and
// proceeds regardless. Used on routes that serve public itineraries.
func (a *Auth) OptionalAuth(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if tokenString := bearerToken(r); tokenString != "" {
			if claims, err := a.Tokens.Verify(tokenString); err == nil {
				r = r.WithContext(context.WithValue(r.Context(), globals.UserIDKey, claims.UserID))
			}
		}
		next(w, r, ps)
	}
}
