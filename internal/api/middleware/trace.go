package middleware

import (
	"log/slog"
	"net/http"

	"github.com/Rizz-Vii/studio-sub011/internal/api/shared"
	"github.com/Rizz-Vii/studio-sub011/internal/platform/logger"
)

// Trace returns middleware that assigns each request a trace ID, echoes it
// in the X-Trace-ID response header, and stores a logger tagged with it in
// the request context. An inbound X-Trace-ID header is reused when well formed.
// It should be applied early in the chain so that every later handler sees
// the trace ID.
func Trace(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.WithTraceID(r.Context(), r.Header.Get(shared.TraceIDHeader))
			traceID := shared.GetTraceID(ctx)

			log := base.With(slog.String("trace_id", traceID))
			ctx = logger.WithLogger(ctx, log)

			w.Header().Set(shared.TraceIDHeader, traceID)

			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
