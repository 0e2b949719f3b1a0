package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name        string
		origins     []string
		method      string
		origin      string
		wantStatus  int
		wantAllowed string
	}{
		{
			name:        "wildcard allows any origin",
			origins:     []string{"*"},
			method:      http.MethodGet,
			origin:      "http://localhost:3000",
			wantStatus:  http.StatusOK,
			wantAllowed: "http://localhost:3000",
		},
		{
			name:        "listed origin allowed",
			origins:     []string{"https://events.campus.edu"},
			method:      http.MethodGet,
			origin:      "https://events.campus.edu",
			wantStatus:  http.StatusOK,
			wantAllowed: "https://events.campus.edu",
		},
		{
			name:       "unlisted origin gets no header",
			origins:    []string{"https://events.campus.edu"},
			method:     http.MethodGet,
			origin:     "https://evil.example.com",
			wantStatus: http.StatusOK,
		},
		{
			name:        "preflight short-circuits with 204",
			origins:     []string{"*"},
			method:      http.MethodOptions,
			origin:      "http://localhost:3000",
			wantStatus:  http.StatusNoContent,
			wantAllowed: "http://localhost:3000",
		},
		{
			name:       "same-origin request without Origin header passes through",
			origins:    []string{"*"},
			method:     http.MethodGet,
			wantStatus: http.StatusOK,
		},
		{
			name:        "trailing slash in config is trimmed",
			origins:     []string{"https://events.campus.edu/"},
			method:      http.MethodGet,
			origin:      "https://events.campus.edu",
			wantStatus:  http.StatusOK,
			wantAllowed: "https://events.campus.edu",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := CORS(tt.origins, next)
			req := httptest.NewRequest(tt.method, "/events", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantAllowed, rr.Header().Get("Access-Control-Allow-Origin"))
			if tt.method == http.MethodOptions && tt.wantAllowed != "" {
				assert.Equal(t, corsAllowMethods, rr.Header().Get("Access-Control-Allow-Methods"))
			}
		})
	}
}
