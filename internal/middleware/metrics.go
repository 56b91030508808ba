package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fitlink_redis_errors_total",
		Help: "Total number of Redis errors by command",
	}, []string{"command"})

	// FriendRequestOutcomes counts friend request operations by outcome
	// (sent, accepted, rejected, cancelled, conflict).
	FriendRequestOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fitlink_friend_request_outcomes_total",
		Help: "Total friend request operations by outcome",
	}, []string{"outcome"})

	// SearchFallbacks counts user searches that fell through ranked
	// full-text matching to the substring fallback.
	SearchFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fitlink_search_fallbacks_total",
		Help: "Total user searches answered by the substring fallback",
	})

	// ReportGenerations counts generated health report workbooks.
	ReportGenerations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fitlink_health_reports_total",
		Help: "Total generated health report workbooks",
	})
)

// InitMetrics creates the fiberprometheus middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware wraps the fiberprometheus middleware as a Fiber handler.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
