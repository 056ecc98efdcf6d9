package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	BadgesAwarded = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "peve_badges_awarded_total", Help: "Total badges awarded"},
		[]string{"badge"},
	)
	BadgeCheckFailures = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "peve_badge_check_failures_total", Help: "Total badge checks that ended in an error"},
	)
	BadgeCheckDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "peve_badge_check_duration_seconds",
			Help:    "Duration of badge checks by triggering action",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"action"},
	)
	CompatibilityChecks = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "peve_compatibility_checks_total", Help: "Total compatibility checks by label"},
		[]string{"label"},
	)
)

// Register adds all collectors to the given registerer.
func Register(reg prometheus.Registerer) {
	reg.MustRegister(BadgesAwarded, BadgeCheckFailures, BadgeCheckDuration, CompatibilityChecks)
}
