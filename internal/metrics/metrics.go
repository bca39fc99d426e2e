package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "clubhub_http_requests_total", Help: "Total HTTP requests by method and status"},
		[]string{"method", "status"},
	)
	StoreWrites = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "clubhub_store_writes_total", Help: "Total collection writes"},
	)
	StoreWriteFailures = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "clubhub_store_write_failures_total", Help: "Total collection writes that did not persist"},
	)
	Logins = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "clubhub_logins_total", Help: "Total successful logins"},
	)
)

func Register() {
	prometheus.MustRegister(HTTPRequests, StoreWrites, StoreWriteFailures, Logins)
}
