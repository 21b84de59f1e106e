package api

import (
	"net/http"
	"time"
)

// TimeoutMiddleware bounds how long a request may run. http.TimeoutHandler
// wraps the ResponseWriter so a handler still running after the deadline
// cannot race the timeout response; its late writes are swallowed.
func TimeoutMiddleware(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.TimeoutHandler(next, timeout, `{"error": "Request timeout", "message": "The request took too long to process"}`)
	}
}
