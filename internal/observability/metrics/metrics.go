package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"service", "method", "path", "status"},
	)

	HTTPRequestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "path"},
	)

	SubmissionsCreatedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "submissions_created_total",
			Help: "Total number of trade-in submissions created.",
		},
		[]string{"kind"},
	)

	StatusUpdatesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "submission_status_updates_total",
			Help: "Total number of submission status transitions.",
		},
		[]string{"kind", "status"},
	)

	RejectionNoticesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rejection_notices_total",
			Help: "Total number of auto-generated rejection notices, by outcome.",
		},
		[]string{"result"},
	)

	MessagesPostedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "messages_posted_total",
			Help: "Total number of messages written to the log.",
		},
		[]string{"sender"},
	)

	LoginsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_logins_total",
			Help: "Total number of login attempts.",
		},
		[]string{"result"},
	)
)

func MustRegister(serviceName string) {
	HTTPRequestsTotal = HTTPRequestsTotal.MustCurryWith(prometheus.Labels{"service": serviceName})
	HTTPRequestDurationSeconds = HTTPRequestDurationSeconds.MustCurryWith(prometheus.Labels{"service": serviceName}).(*prometheus.HistogramVec)

	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDurationSeconds,
		SubmissionsCreatedTotal,
		StatusUpdatesTotal,
		RejectionNoticesTotal,
		MessagesPostedTotal,
		LoginsTotal,
	)
}
