package middleware

import (
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fitlogapp/fitlog-backend/pkg/clientip"
)

const (
	// rateLimitWindow is the fixed counting window per client IP.
	rateLimitWindow = 60 * time.Second
	// rateLimitMaxRequests is the number of requests allowed per window.
	rateLimitMaxRequests = 60
	rateLimitKeyPrefix   = "ratelimit:"
)

// RateLimit limits each client IP to rateLimitMaxRequests per window using a
// Redis counter. If Redis is unreachable the request is allowed (fail open).
func RateLimit(client *redis.Client) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := rateLimitKeyPrefix + clientip.RealClientIP(r)

			count, err := client.Incr(r.Context(), key).Result()
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			if count == 1 {
				client.Expire(r.Context(), key, rateLimitWindow)
			}

			if count > rateLimitMaxRequests {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				w.Write([]byte(`{"error":"Too many requests, slow down"}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
