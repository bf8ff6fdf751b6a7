package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	VotesCast = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "residence_votes_cast_total",
		Help: "Vote casts by kind and outcome",
	}, []string{"kind", "outcome", "reason"})

	VoteRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "residence_vote_requests_total",
		Help: "Vote requests by outcome",
	}, []string{"outcome", "reason"})

	IssuesReported = promauto.NewCounter(prometheus.CounterOpts{
		Name: "residence_issues_reported_total",
		Help: "Issues created",
	})

	IssueTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "residence_issue_transitions_total",
		Help: "Issue status transitions by target status",
	}, []string{"to"})

	NotificationsEmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "residence_notifications_emitted_total",
		Help: "Notifications created by title",
	}, []string{"title"})

	NotificationsRetired = promauto.NewCounter(prometheus.CounterOpts{
		Name: "residence_notifications_retired_total",
		Help: "Notifications deleted because their issue resolved",
	})

	AISuggestions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "residence_ai_suggestions_total",
		Help: "AI suggestion attempts by result",
	}, []string{"result"})

	AISuggestionLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "residence_ai_suggestion_latency_seconds",
		Help:    "Latency of AI suggestion calls",
		Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20},
	})

	RateLimited = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "residence_rate_limited_total",
		Help: "Requests rejected by the rate limiter",
	}, []string{"route"})

	WebsocketClients = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "residence_ws_clients",
		Help: "Connected notification websocket clients",
	})
)

// Handler exposes the default registry.
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
