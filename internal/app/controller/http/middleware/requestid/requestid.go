package requestid

import (
	"net/http"

	"github.com/google/uuid"
)

const headerName = `X-Request-Id`

// RequestIDMiddleware tags every request with an identifier so log
// records of a single request can be correlated. An id supplied by the
// caller is kept.
func RequestIDMiddleware(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(headerName)
		if len(requestID) == 0 {
			requestID = uuid.NewString()
		}

		w.Header().Set(headerName, requestID)

		h.ServeHTTP(w, r)
	})
}
