package ratelimit

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/GlebRadaev/watchearn/pkg/utils"
)

const idleTTL = 10 * time.Minute

type visitor struct {
	mu       sync.Mutex
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Burst is a per-client token bucket guard for individual routes.
type Burst struct {
	visitors sync.Map
	rate     rate.Limit
	burst    int
	done     chan struct{}
	stopOnce sync.Once
}

// NewBurst allows events at r per second with the given burst. Idle clients are evicted
// in the background until Stop is called.
func NewBurst(r rate.Limit, burst int) *Burst {
	b := &Burst{
		rate:  r,
		burst: burst,
		done:  make(chan struct{}),
	}
	go b.cleanup()
	return b
}

// PerMinute builds a limiter allowing n events per minute.
func PerMinute(n int) *Burst {
	return NewBurst(rate.Every(time.Minute/time.Duration(max(n, 1))), max(n, 1))
}

// PerDay builds a limiter allowing n events per day.
func PerDay(n int) *Burst {
	return NewBurst(rate.Every(24*time.Hour/time.Duration(max(n, 1))), max(n, 1))
}

func (b *Burst) Allow(key string) bool {
	v, _ := b.visitors.LoadOrStore(key, &visitor{limiter: rate.NewLimiter(b.rate, b.burst)})
	vis := v.(*visitor)
	vis.mu.Lock()
	vis.lastSeen = time.Now()
	vis.mu.Unlock()
	return vis.limiter.Allow()
}

func (b *Burst) cleanup() {
	ticker := time.NewTicker(idleTTL)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			b.visitors.Range(func(key, value any) bool {
				v := value.(*visitor)
				v.mu.Lock()
				idle := time.Since(v.lastSeen) > idleTTL
				v.mu.Unlock()
				if idle {
					b.visitors.Delete(key)
				}
				return true
			})
		case <-b.done:
			return
		}
	}
}

func (b *Burst) Stop() {
	b.stopOnce.Do(func() { close(b.done) })
}

// Middleware rejects requests over the limit with 429. Run it after middleware.RealIP.
func (b *Burst) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !b.Allow(ClientIP(r)) {
			utils.RespondWithError(w, http.StatusTooManyRequests, "Too many requests, please wait before trying again")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ClientIP strips the port from RemoteAddr.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
