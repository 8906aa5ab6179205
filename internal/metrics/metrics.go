package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	InteractionsServed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "slashkit_interactions_total",
		Help: "Total number of webhook requests served, by HTTP status",
	}, []string{"status"})

	AuthFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slashkit_auth_failures_total",
		Help: "Total number of requests rejected by signature verification",
	})
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Middleware counts served requests by status code.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)

		InteractionsServed.WithLabelValues(strconv.Itoa(recorder.status)).Inc()
		if recorder.status == http.StatusUnauthorized {
			AuthFailures.Inc()
		}
	})
}
