package middleware

import (
	"context"
	"fmt"
	"math"
	"net"
	"net/http"
	"net/netip"
	"strconv"
	"strings"
	"sync"
	"time"

	h "rsvp/internal/delivery/http/helpers"

	"golang.org/x/time/rate"
)

// MsgTooManyRequests is the detail returned when a client is rate limited.
const MsgTooManyRequests = "Muitas tentativas. Aguarde um momento e tente novamente."

// RateLimiter keeps one token bucket per client key and forgets keys idle
// for longer than idleTTL.
type RateLimiter struct {
	mu      sync.Mutex
	entries map[string]*limiterEntry
	rps     rate.Limit
	burst   int
	idleTTL time.Duration
	now     func() time.Time
	trusted []netip.Prefix
}

type limiterEntry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter returns a limiter allowing rps requests per second per
// client with the given burst.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	return &RateLimiter{
		entries: make(map[string]*limiterEntry),
		rps:     rate.Limit(rps),
		burst:   burst,
		idleTTL: 15 * time.Minute,
		now:     time.Now,
	}
}

// Allow reports whether key may make a request now. When it may not, it also
// returns how long until the next token is available.
func (l *RateLimiter) Allow(key string) (bool, time.Duration) {
	now := l.now()

	l.mu.Lock()
	ent, ok := l.entries[key]
	if !ok {
		ent = &limiterEntry{lim: rate.NewLimiter(l.rps, l.burst)}
		l.entries[key] = ent
	}
	ent.lastSeen = now
	l.mu.Unlock()

	res := ent.lim.ReserveN(now, 1)
	if !res.OK() {
		return false, time.Second
	}
	if delay := res.DelayFrom(now); delay > 0 {
		res.CancelAt(now)
		return false, delay
	}
	return true, 0
}

// TrustProxies lists the reverse proxies whose X-Forwarded-For header is
// believed. Entries are addresses or CIDR prefixes. Without any, clients are
// keyed by their socket address only.
func (l *RateLimiter) TrustProxies(proxies []string) error {
	prefixes := make([]netip.Prefix, 0, len(proxies))
	for _, p := range proxies {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if strings.Contains(p, "/") {
			pfx, err := netip.ParsePrefix(p)
			if err != nil {
				return fmt.Errorf("trusted proxy %q: %w", p, err)
			}
			prefixes = append(prefixes, pfx.Masked())
			continue
		}
		addr, err := netip.ParseAddr(p)
		if err != nil {
			return fmt.Errorf("trusted proxy %q: %w", p, err)
		}
		addr = addr.Unmap()
		prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}
	l.trusted = prefixes
	return nil
}

// Cleanup drops keys that have been idle for longer than the idle TTL.
func (l *RateLimiter) Cleanup() {
	cutoff := l.now().Add(-l.idleTTL)

	l.mu.Lock()
	defer l.mu.Unlock()
	for k, ent := range l.entries {
		if ent.lastSeen.Before(cutoff) {
			delete(l.entries, k)
		}
	}
}

// StartJanitor runs Cleanup every interval until ctx is cancelled.
func (l *RateLimiter) StartJanitor(ctx context.Context, every time.Duration) {
	if every <= 0 {
		return
	}
	t := time.NewTicker(every)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				l.Cleanup()
			}
		}
	}()
}

// Limit wraps next so that clients over the limit get 429 with a Retry-After header.
func (l *RateLimiter) Limit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ok, retry := l.Allow(ClientIP(r, l.trusted))
		if !ok {
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(retry.Seconds()))))
			h.WriteJSONError(w, http.StatusTooManyRequests, h.ErrCodeTooManyRequests, MsgTooManyRequests)
			return
		}
		next(w, r)
	}
}

// ClientIP returns the host part of RemoteAddr. When that peer is a trusted
// proxy, X-Forwarded-For is walked from the right and the first hop that is
// not itself trusted is returned instead.
func ClientIP(r *http.Request, trusted []netip.Prefix) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if len(trusted) == 0 || !isTrusted(host, trusted) {
		return host
	}
	hops := strings.Split(strings.Join(r.Header.Values("X-Forwarded-For"), ","), ",")
	for i := len(hops) - 1; i >= 0; i-- {
		hop := strings.TrimSpace(hops[i])
		if hop == "" {
			continue
		}
		if !isTrusted(hop, trusted) {
			return hop
		}
	}
	return host
}

func isTrusted(ip string, trusted []netip.Prefix) bool {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, p := range trusted {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}
