package monitor

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RoutingDecisions counts policy engine outcomes by domain and decision
var RoutingDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "portal",
	Name:      "routing_decisions_total",
	Help:      "Routing decisions emitted by the gate, by domain class and decision kind",
}, []string{"domain", "decision"})

// MembershipLookupFailures counts transient membership store failures.
// The gate fails closed on these, so a rising counter means members are
// being locked out.
var MembershipLookupFailures = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "portal",
	Name:      "membership_lookup_failures_total",
	Help:      "Membership lookups that failed for reasons other than not-found",
})

// ApplicationsSubmitted counts intake outcomes
var ApplicationsSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "portal",
	Name:      "applications_submitted_total",
	Help:      "Application intake outcomes",
}, []string{"outcome"})

// WaitlistJoins counts waitlist outcomes including idempotent duplicates
var WaitlistJoins = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "portal",
	Name:      "waitlist_joins_total",
	Help:      "Waitlist signup outcomes",
}, []string{"outcome"})

// EmailFailures counts best-effort email sends that errored
var EmailFailures = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "portal",
	Name:      "email_failures_total",
	Help:      "Best-effort transactional emails that failed to send",
}, []string{"kind"})

// Handler exposes the prometheus metrics endpoint
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
