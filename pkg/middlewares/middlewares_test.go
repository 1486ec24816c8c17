package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jake-scott/switchbot-unlock/internal/pkg/logging"
	"github.com/jake-scott/switchbot-unlock/pkg/middlewares"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok"))
})

func TestCorrelation(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"absent", "", ""},
		{"valid", "abc-123_def", "abc-123_def"},
		{"too short", "ab", "<Bad_Correlation_Id>"},
		{"bad characters", "abc;rm -rf", "<Bad_Correlation_Id>"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("X-Correlation-ID", tc.header)
			}
			rec := httptest.NewRecorder()

			middlewares.NewCorrelation("X-Correlation-ID", okHandler).ServeHTTP(rec, req)

			if got := rec.Header().Get("X-Correlation-ID"); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestRecovery_PanicBecomes500(t *testing.T) {
	panicky := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	rec := httptest.NewRecorder()

	middlewares.NewRecovery(panicky).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}

func TestLogging_TxnID(t *testing.T) {
	var seen string
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = logging.TxnID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	})
	rec := httptest.NewRecorder()

	middlewares.NewLogging(true, h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if seen == "" {
		t.Fatal("expected a transaction ID in the request context")
	}
	if got := rec.Header().Get(middlewares.TxnIDHeader); got != seen {
		t.Errorf("expected %s=%q, got %q", middlewares.TxnIDHeader, seen, got)
	}
	if rec.Code != http.StatusTeapot {
		t.Errorf("expected status to pass through, got %d", rec.Code)
	}
}

func TestCors_Preflight(t *testing.T) {
	h := middlewares.NewCors(middlewares.NewCorsOptions([]string{"https://door.example"}), okHandler)

	req := httptest.NewRequest(http.MethodOptions, "/open", nil)
	req.Header.Set("Origin", "https://door.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://door.example" {
		t.Errorf("expected allowed origin, got %q", got)
	}
}

func TestCors_OtherOriginRefused(t *testing.T) {
	h := middlewares.NewCors(middlewares.NewCorsOptions([]string{"https://door.example"}), okHandler)

	req := httptest.NewRequest(http.MethodPost, "/open", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("expected no allowed origin, got %q", got)
	}
}
