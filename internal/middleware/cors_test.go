package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		origins    []string
		method     string
		origin     string
		preflight  bool
		wantStatus int
		wantAllow  string
	}{
		{"listed origin", []string{"https://app.example.com"}, http.MethodPost, "https://app.example.com", false, http.StatusOK, "https://app.example.com"},
		{"unlisted origin", []string{"https://app.example.com"}, http.MethodPost, "https://evil.example", false, http.StatusOK, ""},
		{"wildcard", []string{"*"}, http.MethodGet, "https://anyone.example", false, http.StatusOK, "*"},
		{"no origin header", []string{"*"}, http.MethodGet, "", false, http.StatusOK, ""},
		{"preflight allowed", []string{"*"}, http.MethodOptions, "https://anyone.example", true, http.StatusNoContent, "*"},
		{"preflight rejected", []string{"https://app.example.com"}, http.MethodOptions, "https://evil.example", true, http.StatusNoContent, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/api/leads", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.preflight {
				req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			}
			rr := httptest.NewRecorder()
			CORS(tt.origins)(next).ServeHTTP(rr, req)

			if rr.Code != tt.wantStatus {
				t.Errorf("status: got %d, want %d", rr.Code, tt.wantStatus)
			}
			if got := rr.Header().Get("Access-Control-Allow-Origin"); got != tt.wantAllow {
				t.Errorf("Allow-Origin: got %q, want %q", got, tt.wantAllow)
			}
			if tt.preflight && tt.wantAllow != "" && rr.Header().Get("Access-Control-Allow-Methods") == "" {
				t.Error("preflight should advertise allowed methods")
			}
		})
	}
}
