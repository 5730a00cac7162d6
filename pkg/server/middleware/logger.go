package middleware

import (
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// Logger attaches a request-scoped logger to the context and logs completion
// with the response status and duration. Handlers retrieve the logger via
// zerolog.Ctx, so everything they log carries the request fields.
func Logger(logger *zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			reqLogger := logger.With().
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Str("remote_ip", req.RemoteAddr).
				Logger()

			ww := chimiddleware.NewWrapResponseWriter(w, req.ProtoMajor)
			start := time.Now()

			ctx := reqLogger.WithContext(req.Context())
			next.ServeHTTP(ww, req.WithContext(ctx))

			reqLogger.Info().
				Int("status", ww.Status()).
				Dur("duration", time.Since(start)).
				Msg("request completed")
		})
	}
}
