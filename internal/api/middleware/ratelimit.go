package middleware

import (
	"net/http"

	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
)

// RateLimit middleware ограничения частоты запросов на весь сервис.
// При превышении лимита возвращает 429 Too Many Requests.
func RateLimit(requestsPerSecond float64, burst int) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(rate.Limit(requestsPerSecond), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				handlers.RespondJSON(w, http.StatusTooManyRequests,
					handlers.ErrorResponse{Error: "превышен лимит запросов"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
