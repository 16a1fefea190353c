package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Hirosolo/traindiary-new-frontend-sub000/internal/telemetry/metrics"
	"github.com/Hirosolo/traindiary-new-frontend-sub000/pkg"

	"github.com/go-redis/redis_rate/v9"
	log "github.com/sirupsen/logrus"
)

type RequestRateLimiter interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

func RateLimit(
	rateLimiter RequestRateLimiter,
	routerName string,
	allowedPerMin int,
	metricsManager *metrics.Manager,
) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res, err := rateLimiter.Allow(
				r.Context(),
				routerName,
				redis_rate.PerMinute(allowedPerMin),
			)
			if err != nil {
				log.Errorf("rate limit [%s]: %s", routerName, err)
				pkg.WriteError(w, http.StatusInternalServerError, "rate limit internal error")
				return
			}

			if res.Allowed > 0 {
				next.ServeHTTP(w, r)
				return
			}

			if metricsManager != nil {
				metricsManager.CounterRateLimitedRequests.Inc()
			}
			pkg.WriteError(
				w,
				http.StatusTooManyRequests,
				fmt.Sprintf("retry after %.0f seconds", res.RetryAfter.Seconds()),
			)
		})
	}
}
