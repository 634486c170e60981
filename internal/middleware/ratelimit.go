package middleware

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter — пер-пользовательское ограничение на мутации (создание и
// правка статей). Читающие маршруты не ограничиваем.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*userLimiter
	r        rate.Limit
	burst    int
	stopCh   chan struct{}
}

type userLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

func NewRateLimiter(r rate.Limit, burst int) *RateLimiter {
	rl := &RateLimiter{
		limiters: make(map[string]*userLimiter),
		r:        r,
		burst:    burst,
		stopCh:   make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

func (rl *RateLimiter) Stop() { close(rl.stopCh) }

// Middleware должен стоять ПОСЛЕ JWTAuth — ключом служит user_id.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := UserIDFromCtx(r.Context())
		if !ok {
			http.Error(w, "Отсутствует access token", http.StatusUnauthorized)
			return
		}

		if !rl.get(userID).Allow() {
			http.Error(w, "Слишком много запросов", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) get(userID string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	ul, ok := rl.limiters[userID]
	if !ok {
		ul = &userLimiter{limiter: rate.NewLimiter(rl.r, rl.burst)}
		rl.limiters[userID] = ul
	}
	ul.lastAccess = time.Now()
	return ul.limiter
}

func (rl *RateLimiter) cleanupLoop() {
	t := time.NewTicker(5 * time.Minute)
	defer t.Stop()
	for {
		select {
		case <-rl.stopCh:
			return
		case <-t.C:
			rl.mu.Lock()
			for id, ul := range rl.limiters {
				if time.Since(ul.lastAccess) > 10*time.Minute {
					delete(rl.limiters, id)
				}
			}
			rl.mu.Unlock()
		}
	}
}
