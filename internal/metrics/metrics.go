package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymdash_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gymdash_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	SummariesComputedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymdash_dashboard_summaries_total",
			Help: "Total number of dashboard summaries computed",
		},
	)

	SummaryFieldsDegradedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymdash_dashboard_degraded_fields_total",
			Help: "Summary fields that fell back to a safe default after a query failure",
		},
		[]string{"field"},
	)

	SummaryCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymdash_summary_cache_total",
			Help: "Dashboard summary cache lookups",
		},
		[]string{"result"},
	)

	TenantAccessDeniedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymdash_tenant_access_denied_total",
			Help: "Requests rejected by the tenant access guard",
		},
	)

	VisitCheckInsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymdash_visit_checkins_total",
			Help: "Total number of visit check-ins and check-outs",
		},
		[]string{"event"},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordSummary() {
	SummariesComputedTotal.Inc()
}

func RecordDegradedField(field string) {
	SummaryFieldsDegradedTotal.WithLabelValues(field).Inc()
}

func RecordCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	SummaryCacheTotal.WithLabelValues(result).Inc()
}

func RecordTenantAccessDenied() {
	TenantAccessDeniedTotal.Inc()
}

func RecordVisitEvent(event string) {
	VisitCheckInsTotal.WithLabelValues(event).Inc()
}
