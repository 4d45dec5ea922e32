package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/Foodgram_Go/internal/logger"
	"github.com/osse101/Foodgram_Go/internal/metrics"
)

// AuthMiddleware rejects requests without the shared X-API-Key, except on PublicPaths
func AuthMiddleware(apiKey string, trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, path := range PublicPaths {
				if strings.HasPrefix(r.URL.Path, path) {
					next.ServeHTTP(w, r)
					return
				}
			}

			providedKey := r.Header.Get(HeaderAPIKey)

			if subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) != 1 {
				ip := extractIP(r, trustedProxies)
				detector.RecordFailedAuth(ip)

				log := logger.FromContext(r.Context())
				log.Warn(LogMsgAuthFailed,
					"remote_addr", r.RemoteAddr,
					"path", r.URL.Path,
					"has_key", providedKey != "",
					"ip", ip)

				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminKeyMiddleware guards catalog administration with a second key sent in
// X-Admin-Key. An empty adminKey disables the routes entirely.
func AdminKeyMiddleware(adminKey string, trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			providedKey := r.Header.Get(HeaderAdminKey)
			if adminKey == "" || subtle.ConstantTimeCompare([]byte(providedKey), []byte(adminKey)) != 1 {
				ip := extractIP(r, trustedProxies)
				detector.RecordFailedAuth(ip)
				logger.FromContext(r.Context()).Warn(LogMsgAdminAuthFailed,
					"path", r.URL.Path,
					"has_key", providedKey != "",
					"admin_enabled", adminKey != "",
					"ip", ip)

				http.Error(w, ErrMsgForbidden, http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// clientWindow counts events for one client IP within a fixed window
type clientWindow struct {
	start time.Time
	count int
}

// SuspiciousActivityDetector counts failed API keys and requests per client
// IP over fixed windows. Tracked clients are bounded and forgotten after a
// quiet window.
type SuspiciousActivityDetector struct {
	mu         sync.Mutex
	failedAuth *expirable.LRU[string, clientWindow]
	requests   *expirable.LRU[string, clientWindow]
	now        func() time.Time
}

func NewSuspiciousActivityDetector() *SuspiciousActivityDetector {
	return &SuspiciousActivityDetector{
		failedAuth: expirable.NewLRU[string, clientWindow](DetectorMaxTrackedClients, nil, DetectorWindow),
		requests:   expirable.NewLRU[string, clientWindow](DetectorMaxTrackedClients, nil, DetectorWindow),
		now:        time.Now,
	}
}

// bump increments ip's counter in set, starting a new window once the old one has passed.
// Caller must hold the mutex.
func (s *SuspiciousActivityDetector) bump(set *expirable.LRU[string, clientWindow], ip string) int {
	now := s.now()
	w, ok := set.Get(ip)
	if !ok || now.Sub(w.start) > DetectorWindow {
		w = clientWindow{start: now}
	}
	w.count++
	set.Add(ip, w)
	return w.count
}

// RecordFailedAuth records a rejected API key
func (s *SuspiciousActivityDetector) RecordFailedAuth(ip string) {
	s.mu.Lock()
	count := s.bump(s.failedAuth, ip)
	s.mu.Unlock()

	metrics.SecurityEvents.WithLabelValues(metrics.SecurityEventAuthFailed).Inc()
	if count >= FailedAuthAlertAfter {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", count)
	}
}

// RecordRequest records a request and reports whether ip is still under the rate limit
func (s *SuspiciousActivityDetector) RecordRequest(ip string) bool {
	s.mu.Lock()
	count := s.bump(s.requests, ip)
	s.mu.Unlock()

	if count <= MaxRequestsPerWindow {
		return true
	}
	metrics.SecurityEvents.WithLabelValues(metrics.SecurityEventRateLimited).Inc()
	if count%HighRateLogEveryRequest == 0 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", count)
	}
	return false
}

// requestCount returns the current window's request count for ip
func (s *SuspiciousActivityDetector) requestCount(ip string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, _ := s.requests.Peek(ip)
	return w.count
}

// SecurityLoggingMiddleware rejects clients over MaxRequestsPerWindow with 429
func SecurityLoggingMiddleware(trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := extractIP(r, trustedProxies)
			if !detector.RecordRequest(ip) {
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// extractIP gets the client IP address from request.
// It only trusts X-Forwarded-For if the request comes from a trusted proxy.
func extractIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	if slices.Contains(trustedProxies, remoteIP) {
		forwarded := r.Header.Get(HeaderForwardedFor)
		if forwarded != "" {
			// rightmost hop is the one our proxy saw
			ips := strings.Split(forwarded, ",")
			return strings.TrimSpace(ips[len(ips)-1])
		}
	}

	return remoteIP
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(HeaderContentType, HeaderValueNoSniff)
			w.Header().Set(HeaderFrameOptions, HeaderValueSameOrigin)
			w.Header().Set(HeaderXSSProtection, HeaderValueXSSBlock)
			w.Header().Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)

			next.ServeHTTP(w, r)
		})
	}
}
