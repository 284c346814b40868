package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application collectors.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cogni",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "cogni",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "route"},
	)

	scoreSubmissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cogni",
			Subsystem: "scores",
			Name:      "submissions_total",
			Help:      "Score submissions by game type and outcome.",
		},
		[]string{"game_type", "outcome"},
	)

	sessionScores = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "cogni",
			Subsystem: "scores",
			Name:      "session_score",
			Help:      "Distribution of computed session scores.",
			Buckets:   prometheus.LinearBuckets(0, 20, 10),
		},
		[]string{"game_type"},
	)

	sessionTrials = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "cogni",
			Subsystem: "scores",
			Name:      "session_trials",
			Help:      "Number of trials per submitted session.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
		},
		[]string{"game_type"},
	)
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		httpRequests,
		httpDuration,
		scoreSubmissions,
		sessionScores,
		sessionTrials,
	)
}

// Middleware records request counts and latencies per matched route.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}
		route := c.Route().Path
		method := c.Method()

		httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler serves the registry in the Prometheus exposition format.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(Registry, promhttp.HandlerOpts{}))
}

// RecordSubmission counts a score submission. Score and trial count are
// only observed for accepted sessions.
func RecordSubmission(gameType, outcome string, score float64, trials int) {
	scoreSubmissions.WithLabelValues(gameType, outcome).Inc()
	if outcome == OutcomeAccepted {
		sessionScores.WithLabelValues(gameType).Observe(score)
		sessionTrials.WithLabelValues(gameType).Observe(float64(trials))
	}
}

const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)
