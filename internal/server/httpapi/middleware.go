package httpapi

import (
	"context"
	"net/http"

	"github.com/mkochanov/listkeeper/internal/common"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// sessionMiddleware resolves the session cookie into a user id and rejects
// the request with 401 when the cookie is missing or the session no longer
// exists server-side.
func (s *HTTPServer) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(common.SessionCookieName)
		if err != nil || cookie.Value == "" {
			writeError(w, common.ErrAuthRequired)
			return
		}

		userID, err := s.users.ValidateSession(r.Context(), cookie.Value)
		if err != nil {
			writeError(w, common.ErrAuthRequired)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// userIDFromContext returns the session user's id placed by the middleware.
func userIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}
