package middleware

import (
	"net/http"
	"notely/pkg/metrics"
	"strconv"
	"time"
)

type MetricsMiddleware struct{}

func NewMetricsMiddleware() *MetricsMiddleware {
	return &MetricsMiddleware{}
}

// Metrics records count and latency of the requests served by next under
// the given route label.
func (m *MetricsMiddleware) Metrics(route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := newStatusRecorder(w)

		next.ServeHTTP(rec, r)

		metrics.RecordHTTPRequest(route, r.Method, strconv.Itoa(rec.statusCode), time.Since(start).Seconds())
	}
}
