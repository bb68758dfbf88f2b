package httpview

import (
	"net"
	"net/http"
	"sync"
	"time"

	"marocstar-shop/internal/session"

	"golang.org/x/time/rate"
)

// Strict tier for credential endpoints.
const (
	limitStrict = rate.Limit(2)
	burstStrict = 5
)

// RequireAdmin gates admin views behind token presence. The guard is
// advisory: it only controls which views render, while every admin
// request's real authorization stays with the backend.
func RequireAdmin(sessions *session.Service, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !sessions.Current().IsAuthenticated() {
			http.Redirect(w, r, "/admin/login", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// visitor holds one client's rate limiter and the last time it was seen.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type ipLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
}

func newIPLimiter(limit rate.Limit, burst int) *ipLimiter {
	l := &ipLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		burst:    burst,
	}
	go l.cleanupVisitors()
	return l
}

func (l *ipLimiter) getVisitor(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, exists := l.visitors[key]
	if !exists {
		limiter := rate.NewLimiter(l.limit, l.burst)
		l.visitors[key] = &visitor{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

// cleanupVisitors removes idle entries so the map does not grow without
// bound.
func (l *ipLimiter) cleanupVisitors() {
	for {
		time.Sleep(time.Minute)

		l.mu.Lock()
		for ip, v := range l.visitors {
			if time.Since(v.lastSeen) > 3*time.Minute {
				delete(l.visitors, ip)
			}
		}
		l.mu.Unlock()
	}
}

// LoginRateLimit applies the strict tier per client IP.
func LoginRateLimit() func(http.Handler) http.Handler {
	l := newIPLimiter(limitStrict, burstStrict)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
			if !l.getVisitor(ip).Allow() {
				respondError(w, http.StatusTooManyRequests, "too many attempts, slow down")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
