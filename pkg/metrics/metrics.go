package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ProxyRelayed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "wordgrid", Name: "proxy_relayed_total", Help: "Number of proxy requests relayed, by route and upstream status."},
		[]string{"route", "status"},
	)
	ProxyFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "wordgrid", Name: "proxy_failed_total", Help: "Number of proxy requests that collapsed to the generic failure response, by route and failure kind."},
		[]string{"route", "kind"},
	)
	ProxyDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Namespace: "wordgrid", Name: "proxy_relay_duration_seconds", Help: "Upstream round-trip duration per proxy route.", Buckets: prometheus.DefBuckets},
		[]string{"route"},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "wordgrid", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "wordgrid", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(ProxyRelayed)
	reg.MustRegister(ProxyFailed)
	reg.MustRegister(ProxyDuration)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
}
