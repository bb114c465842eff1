// Package ratelimit: IPRateLimiter: browse endpoint'leri için IP bazlı
// fixed-window rate limiting.
//
// Tasarım:
//   - Her IP için bir bucket: pencere başlangıcı + istek sayısı.
//   - Pencere içinde maxRequests aşılırsa istek reddedilir (429).
//   - Pencere dolunca sayaç sıfırlanır.
//   - Arka plan goroutine'i süresi dolmuş bucket'ları temizler.
//
// In-memory: tek instance deploy için yeterli, Redis gerekmez.
// pkg/ratelimit hiçbir proje içi pakete bağımlı değildir (leaf dependency).
package ratelimit

import (
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"strings"
	"sync"
	"time"
)

type bucket struct {
	count       int
	windowStart time.Time
}

// IPRateLimiter, IP bazlı rate limiter.
//
//	limiter := NewIPRateLimiter(120, time.Minute)
//	defer limiter.Close()
//	if !limiter.Allow(ip) { return 429 }
type IPRateLimiter struct {
	mu          sync.Mutex
	buckets     map[string]*bucket
	maxRequests int
	window      time.Duration
	now         func() time.Time
	stopCleanup chan struct{}
	closeOnce   sync.Once
}

// NewIPRateLimiter, limiter oluşturur ve temizleme goroutine'ini başlatır.
// maxRequests <= 0 ise limiter her isteğe izin verir.
func NewIPRateLimiter(maxRequests int, window time.Duration) *IPRateLimiter {
	rl := &IPRateLimiter{
		buckets:     make(map[string]*bucket),
		maxRequests: maxRequests,
		window:      window,
		now:         time.Now,
		stopCleanup: make(chan struct{}),
	}

	go rl.cleanupLoop()

	return rl
}

// Allow, IP'nin bu istekte limiti aşıp aşmadığını kontrol eder ve sayacı artırır.
func (rl *IPRateLimiter) Allow(ip string) bool {
	if rl.maxRequests <= 0 {
		return true
	}

	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, exists := rl.buckets[ip]
	if !exists || now.Sub(b.windowStart) >= rl.window {
		rl.buckets[ip] = &bucket{count: 1, windowStart: now}
		return true
	}

	b.count++
	return b.count <= rl.maxRequests
}

// RetryAfterSeconds, IP'nin pencere sıfırlanana kadar beklemesi gereken
// süre (saniye). Retry-After header değeri olarak kullanılır.
func (rl *IPRateLimiter) RetryAfterSeconds(ip string) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, exists := rl.buckets[ip]
	if !exists {
		return 0
	}

	remaining := rl.window - rl.now().Sub(b.windowStart)
	if remaining <= 0 {
		return 0
	}
	return int(remaining.Seconds()) + 1 // yukarı yuvarla
}

// Close, temizleme goroutine'ini durdurur. Birden fazla çağrı güvenlidir.
func (rl *IPRateLimiter) Close() {
	rl.closeOnce.Do(func() { close(rl.stopCleanup) })
}

func (rl *IPRateLimiter) cleanupLoop() {
	ticker := time.NewTicker(60 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup()
		case <-rl.stopCleanup:
			return
		}
	}
}

func (rl *IPRateLimiter) cleanup() {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	for ip, b := range rl.buckets {
		if now.Sub(b.windowStart) >= rl.window {
			delete(rl.buckets, ip)
		}
	}
}

// TrustedProxies, X-Forwarded-For / X-Real-IP header'larına güvenilen
// reverse proxy adresleri (tek IP veya CIDR). Boş liste = header'lara asla güvenme.
type TrustedProxies []netip.Prefix

// ParseTrustedProxies, "10.0.0.1", "10.0.0.0/8" gibi girdileri parse eder.
func ParseTrustedProxies(entries []string) (TrustedProxies, error) {
	proxies := make(TrustedProxies, 0, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		if strings.Contains(entry, "/") {
			prefix, err := netip.ParsePrefix(entry)
			if err != nil {
				return nil, fmt.Errorf("invalid trusted proxy %q: %w", entry, err)
			}
			proxies = append(proxies, prefix.Masked())
			continue
		}

		addr, err := netip.ParseAddr(entry)
		if err != nil {
			return nil, fmt.Errorf("invalid trusted proxy %q: %w", entry, err)
		}
		addr = addr.Unmap()
		proxies = append(proxies, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return proxies, nil
}

// Contains, ip'nin güvenilen bir proxy olup olmadığını söyler.
func (p TrustedProxies) Contains(ip string) bool {
	addr, err := netip.ParseAddr(strings.TrimSpace(ip))
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, prefix := range p {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}

// ExtractIP, HTTP request'ten client IP adresini çıkarır.
//
// Forwarding header'ları sadece bağlantı güvenilen bir proxy'den geliyorsa
// okunur, aksi halde client header'ı değiştirerek limiti atlatabilirdi.
// X-Forwarded-For sağdan sola yürünür: güvenilen proxy olmayan ilk hop client'tır.
func ExtractIP(r *http.Request, trusted TrustedProxies) string {
	remote := remoteHost(r)
	if !trusted.Contains(remote) {
		return remote
	}

	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		hops := strings.Split(xff, ",")
		for i := len(hops) - 1; i >= 0; i-- {
			hop := strings.TrimSpace(hops[i])
			if hop == "" {
				continue
			}
			if !trusted.Contains(hop) {
				return hop
			}
		}
	}

	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}

	return remote
}

func remoteHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
