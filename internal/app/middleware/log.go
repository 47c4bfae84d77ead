package middleware

import (
	"github.com/justinas/alice"
	"github.com/rs/zerolog/hlog"
	"ledger/internal/app/logger"
	"net/http"
	"time"
)

// Log attaches the logger and a request id to every request and writes the access log
func Log(l logger.Logger) alice.Chain {
	return alice.New(
		hlog.NewHandler(l.Logger),
		hlog.RequestIDHandler("request_id", "X-Request-Id"),
		hlog.MethodHandler("method"),
		hlog.URLHandler("url"),
		hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
			hlog.FromRequest(r).Info().
				Int("status", status).
				Int("size", size).
				Dur("duration", duration).
				Msg("Request served")
		}),
	)
}
