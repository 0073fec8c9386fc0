package infrastructure

import (
	"sync"

	"golang.org/x/time/rate"
)

// UserRateLimiter throttles the generation endpoints per user. Limiters are
// kept in memory; the map only ever holds users seen by this process.
type UserRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

// NewUserRateLimiter allows perMinute requests per user with the given burst.
func NewUserRateLimiter(perMinute, burst int) *UserRateLimiter {
	return &UserRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(float64(perMinute) / 60.0),
		burst:    burst,
	}
}

func (l *UserRateLimiter) Allow(userID string) bool {
	l.mu.Lock()
	limiter, ok := l.limiters[userID]
	if !ok {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters[userID] = limiter
	}
	l.mu.Unlock()
	return limiter.Allow()
}
