package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCORSHandler(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name          string
		allowed       []string
		origin        string
		expectedAllow string
	}{
		{
			name:          "wildcard allows any origin",
			allowed:       []string{"*"},
			origin:        "http://localhost:5173",
			expectedAllow: "*",
		},
		{
			name:          "listed origin is echoed",
			allowed:       []string{"http://localhost:5173"},
			origin:        "http://localhost:5173",
			expectedAllow: "http://localhost:5173",
		},
		{
			name:          "unlisted origin gets no header",
			allowed:       []string{"http://localhost:5173"},
			origin:        "http://evil.example",
			expectedAllow: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := CORSHandler(tt.allowed)(next)

			req := httptest.NewRequest(http.MethodGet, "/api/airports/india", nil)
			req.Header.Set("Origin", tt.origin)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedAllow, rr.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestCORSHandler_Preflight(t *testing.T) {
	handler := CORSHandler([]string{"*"})(http.NotFoundHandler())

	req := httptest.NewRequest(http.MethodOptions, "/api/flights/book", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}
