package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/2beens/mesotracker/internal/auth"
	"github.com/2beens/mesotracker/internal/telemetry/metrics"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
)

// PanicRecovery turns a handler panic into a 500, counts it and reports it to sentry
// (a no-op when sentry is not initialized).
func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(respWriter http.ResponseWriter, req *http.Request) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				userID, _ := auth.UserIDFromContext(req.Context())
				log.WithFields(log.Fields{
					"route":   routeName(req),
					"method":  req.Method,
					"user_id": userID,
				}).Errorf("http: panic serving %s: %v\n%s", req.URL.Path, r, debug.Stack())

				if metricsManager != nil {
					metricsManager.CounterHandleRequestPanic.Inc()
				}
				sentry.CurrentHub().Clone().Recover(r)

				http.Error(respWriter, "internal error", http.StatusInternalServerError)
			}()

			// handler call
			next.ServeHTTP(respWriter, req)
		})
	}
}
