package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/VictorCainj/doc-forge-buddy-sub007/pkg/ctxutil"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		incoming string
		reuse    bool
	}{
		{name: "reuse incoming", incoming: "abc-123", reuse: true},
		{name: "generate when missing", incoming: ""},
		{name: "reject oversized", incoming: strings.Repeat("a", maxRequestIDLen+1)},
		{name: "reject control chars", incoming: "abc\r\nInjected: yes"},
		{name: "reject spaces", incoming: "abc def"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var ctxID string
			handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctxID = ctxutil.RequestIDFromCtx(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header[RequestIDHeader] = []string{tt.incoming}
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			headerID := rec.Header().Get(RequestIDHeader)
			assert.Equal(t, ctxID, headerID)
			if tt.reuse {
				assert.Equal(t, tt.incoming, headerID)
				return
			}
			_, err := uuid.Parse(headerID)
			assert.NoError(t, err, "expected generated UUID, got %q", headerID)
		})
	}
}
