package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/VictorCainj/doc-forge-buddy-sub007/pkg/ctxutil"
)

func TestChain_AuthBeforeAdminOnly(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		role     string
		token    string
		wantCode int
		wantCall bool
	}{
		{name: "admin token", role: ctxutil.RoleAdmin, token: "valid-token", wantCode: http.StatusOK, wantCall: true},
		{name: "non-admin token", role: "user", token: "valid-token", wantCode: http.StatusForbidden},
		{name: "no token", role: ctxutil.RoleAdmin, wantCode: http.StatusUnauthorized},
		{name: "invalid token", role: ctxutil.RoleAdmin, token: "bogus", wantCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			called := false
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			})

			chained := Chain(Auth(staticValidator(uuid.New(), tt.role)), AdminOnly)(handler)

			req := httptest.NewRequest(http.MethodPost, "/admin/photos/duplicates/scan", nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()
			chained.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantCall, called)
		})
	}
}

func TestChain_OrderIsOutermostFirst(t *testing.T) {
	t.Parallel()

	// AdminOnly ahead of Auth never sees the caller's identity.
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be called")
	})
	chained := Chain(AdminOnly, Auth(staticValidator(uuid.New(), ctxutil.RoleAdmin)))(handler)

	req := httptest.NewRequest(http.MethodPost, "/admin/photos/limit", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()
	chained.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestChain_Empty(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	Chain()(handler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/live", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get(RequestIDHeader))
}

func TestChain_Single(t *testing.T) {
	t.Parallel()

	var gotID string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = ctxutil.RequestIDFromCtx(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	Chain(RequestID)(handler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/live", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, gotID)
	assert.Equal(t, gotID, rec.Header().Get(RequestIDHeader))
}
