package middleware

import (
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"
)

// maxDrainBytes bounds how much of an unread body is discarded; anything
// larger is just closed and the connection is not reused. Dashboard forms
// are a few hundred bytes.
const maxDrainBytes = 256 << 10

// DrainAndCloseRequest drains what the form handler left unread from the
// request body and closes it, keeping the connection reusable.
func DrainAndCloseRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			if r.Body == nil {
				return
			}

			drained, _ := io.CopyN(io.Discard, r.Body, maxDrainBytes)
			if drained == maxDrainBytes {
				log.Debugf("route [%s]: request body over %d bytes left unread", routeName(r), maxDrainBytes)
			}
			_ = r.Body.Close()
		})
	}
}
