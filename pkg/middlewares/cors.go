package middlewares

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/jake-scott/switchbot-unlock/internal/pkg/logging"
)

type CorsMw struct {
	h http.Handler
}

// NewCorsOptions allows browser clients served from origins to POST JSON
func NewCorsOptions(origins []string) cors.Options {
	return cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type", "X-Correlation-ID"},
		ExposedHeaders: []string{"X-Txn-ID", "X-Correlation-ID"},
	}
}

func NewCorsMw(opts cors.Options) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return NewCors(opts, next)
	}
}

// Called once for each middleware chain
//
func NewCors(opts cors.Options, next http.Handler) *CorsMw {
	c := cors.New(opts)

	return &CorsMw{
		h: c.Handler(next),
	}
}

// Must run before the routes are matched, so that preflight OPTIONS
// requests are answered
//
func (mw *CorsMw) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	if origin := r.Header.Get("Origin"); origin != "" {
		logging.Logger(r.Context()).Debugf("cross-origin %s request from %s", r.Method, origin)
	}

	mw.h.ServeHTTP(rw, r)
}
