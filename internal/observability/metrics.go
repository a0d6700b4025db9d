package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	signupCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activity_directory",
		Subsystem: "roster",
		Name:      "signups_total",
		Help:      "Number of successful signups per activity.",
	}, []string{"activity"})
	duplicateSignupCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activity_directory",
		Subsystem: "roster",
		Name:      "duplicate_signups_total",
		Help:      "Number of signups that were no-ops because the email was already registered.",
	}, []string{"activity"})
	removalCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activity_directory",
		Subsystem: "roster",
		Name:      "removals_total",
		Help:      "Number of participants removed per activity.",
	}, []string{"activity"})
	rosterSizeGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "activity_directory",
		Subsystem: "roster",
		Name:      "size",
		Help:      "Current roster length per activity.",
	}, []string{"activity"})
)

func init() {
	prometheus.MustRegister(signupCounter, duplicateSignupCounter, removalCounter, rosterSizeGauge)
}

// RecordSignup counts a roster-growing signup for one activity.
func RecordSignup(activity string) {
	signupCounter.WithLabelValues(activity).Inc()
}

// RecordDuplicateSignup counts a signup that found the email already registered.
func RecordDuplicateSignup(activity string) {
	duplicateSignupCounter.WithLabelValues(activity).Inc()
}

// RecordRemoval counts a participant removal for one activity.
func RecordRemoval(activity string) {
	removalCounter.WithLabelValues(activity).Inc()
}

// SetRosterSize updates the roster length gauge for one activity.
func SetRosterSize(activity string, size int) {
	rosterSizeGauge.WithLabelValues(activity).Set(float64(size))
}
