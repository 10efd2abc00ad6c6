package middleware

import (
	"net/http"
	"time"

	"pet-haven/internal/platform/logger"
)

type responseWriter struct {
	http.ResponseWriter
	status int
	size   int
}

func (w *responseWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

// RequestLogging loguea método, ruta, status, tamaño y duración de cada
// request, y deja el logger en el contexto para los handlers.
func RequestLogging(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			lw := &responseWriter{ResponseWriter: w}
			ctx := log.WithContext(r.Context())
			next.ServeHTTP(lw, r.WithContext(ctx))

			status := lw.status
			if status == 0 {
				status = http.StatusOK
			}

			log.Info().
				Str("method", r.Method).
				Str("uri", r.RequestURI).
				Int("status", status).
				Int("size", lw.size).
				Dur("duration", time.Since(start)).
				Send()
		})
	}
}
