// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/taibuivan/canon/internal/platform/constants"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// visitorTable keeps one token bucket per client address.
type visitorTable struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
}

func newVisitorTable(rps float64, burst int) *visitorTable {
	return &visitorTable{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(rps),
		burst:    burst,
	}
}

// reserve reports whether ip may proceed at now and, if not, how long it
// should wait before retrying.
func (table *visitorTable) reserve(ip string, now time.Time) (bool, time.Duration) {
	table.mu.Lock()
	defer table.mu.Unlock()

	entry, ok := table.visitors[ip]
	if !ok {
		entry = &visitor{limiter: rate.NewLimiter(table.limit, table.burst)}
		table.visitors[ip] = entry
	}
	entry.lastSeen = now

	if entry.limiter.AllowN(now, 1) {
		return true, 0
	}

	wait := time.Second
	if table.limit > 0 {
		wait = time.Duration(float64(time.Second) / float64(table.limit))
	}
	return false, wait
}

// sweep forgets clients idle for longer than ttl and returns how many went.
func (table *visitorTable) sweep(now time.Time, ttl time.Duration) int {
	table.mu.Lock()
	defer table.mu.Unlock()

	removed := 0
	for ip, entry := range table.visitors {
		if now.Sub(entry.lastSeen) > ttl {
			delete(table.visitors, ip)
			removed++
		}
	}
	return removed
}

// RateLimit applies a per-IP token bucket of rps requests per second with the
// given burst. Rejected requests get 429 and a Retry-After header. Idle
// clients are swept until ctx is cancelled.
func RateLimit(ctx context.Context, rps float64, burst int) func(http.Handler) http.Handler {
	table := newVisitorTable(rps, burst)

	go func() {
		ticker := time.NewTicker(constants.RateLimitCleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case now := <-ticker.C:
				table.sweep(now, constants.RateLimitClientTTL)
			case <-ctx.Done():
				return
			}
		}
	}()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			allowed, wait := table.reserve(RealIP(request), time.Now())
			if !allowed {
				seconds := int(math.Ceil(wait.Seconds()))
				writer.Header().Set("Retry-After", strconv.Itoa(max(seconds, 1)))
				writeError(writer, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests, slow down")
				return
			}
			next.ServeHTTP(writer, request)
		})
	}
}
