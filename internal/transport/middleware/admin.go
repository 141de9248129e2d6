package middleware

import (
	"context"
	"net/http"

	"github.com/VictorCainj/doc-forge-buddy-sub007/internal/domain"
	"github.com/VictorCainj/doc-forge-buddy-sub007/pkg/ctxutil"
)

// RequireAdmin returns domain.ErrUnauthorized for anonymous callers and
// domain.ErrForbidden for authenticated callers without the admin role.
func RequireAdmin(ctx context.Context) error {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	return nil
}

// AdminOnly rejects requests that do not come from an admin. It must run
// after Auth.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch RequireAdmin(r.Context()) {
		case nil:
			next.ServeHTTP(w, r)
		case domain.ErrUnauthorized:
			writeJSONError(w, http.StatusUnauthorized, "unauthorized")
		default:
			writeJSONError(w, http.StatusForbidden, "forbidden")
		}
	})
}
