package httpadapter

import (
	"net/http"
	"strconv"

	"github.com/felixge/httpsnoop"
	"github.com/google/uuid"
)

const headerRequestID = "X-Request-ID"

// instrument tags each request with an id, then records status and latency
// per matched route pattern.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(headerRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(headerRequestID, requestID)

		start := s.clock.Now()
		m := httpsnoop.CaptureMetrics(next, w, r)
		elapsed := s.clock.Since(start)

		// ServeMux stores the matched pattern on the request it was given.
		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}

		s.metrics.HTTPRequests.WithLabelValues(route, strconv.Itoa(m.Code)).Inc()
		s.metrics.HTTPDuration.WithLabelValues(route).Observe(elapsed.Seconds())

		s.logger.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"route", route,
			"status", m.Code,
			"duration", elapsed,
			"request_id", requestID,
		)
	})
}
