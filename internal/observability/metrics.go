package observability

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// AuthAttempts counts authentication outcomes by operation and result.
// Operations: register, login, reset_password, session. Results: accepted,
// rejected.
var AuthAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "ripple_auth_attempts_total",
	Help: "Authentication attempts by operation and result.",
}, []string{"operation", "result"})

// GuardRejections counts ownership-guard rejections by resource type.
var GuardRejections = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "ripple_guard_rejections_total",
	Help: "Requests rejected by the ownership guard, by resource.",
}, []string{"resource"})

// RedisErrors counts failed Redis commands by command name.
var RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "ripple_redis_errors_total",
	Help: "Failed Redis commands by command name.",
}, []string{"command"})

// InitMetrics builds the Fiber prometheus middleware for HTTP-level metrics.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}
