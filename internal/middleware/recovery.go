package middleware

import (
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/2beens/wellnessbuddy/internal/telemetry/metrics"
	"github.com/2beens/wellnessbuddy/pkg"

	log "github.com/sirupsen/logrus"
)

const apiPathPrefix = "/api/"

// PanicRecovery turns a panicking page handler into a 500, so one broken
// view never takes the whole dashboard down. JSON endpoints get a JSON error.
func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(respWriter http.ResponseWriter, req *http.Request) {
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(log.Fields{
						"route":  routeName(req),
						"method": req.Method,
						"path":   req.URL.Path,
					}).Errorf("panic serving dashboard request: %v\n%s", r, debug.Stack())
					if metricsManager != nil {
						metricsManager.CounterHandleRequestPanic.Inc()
					}

					if strings.HasPrefix(req.URL.Path, apiPathPrefix) {
						pkg.WriteResponse(respWriter, pkg.ContentType.JSON, `{"error":"internal server error"}`, http.StatusInternalServerError)
						return
					}
					http.Error(respWriter, "failed to serve page", http.StatusInternalServerError)
				}
			}()

			// handler call
			next.ServeHTTP(respWriter, req)
		})
	}
}
