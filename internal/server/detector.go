package server

import (
	"log/slog"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// SuspiciousActivityDetector counts failed logins and requests per IP.
// Counters live in size-bounded caches and expire after a window without
// activity.
type SuspiciousActivityDetector struct {
	mu               sync.Mutex
	failedAuthByIP   *expirable.LRU[string, int]
	requestCountByIP *expirable.LRU[string, int]
}

// NewSuspiciousActivityDetector creates a detector with the default window
func NewSuspiciousActivityDetector() *SuspiciousActivityDetector {
	return NewSuspiciousActivityDetectorWithWindow(DetectorMaxTrackedIPs, DetectorWindow)
}

// NewSuspiciousActivityDetectorWithWindow tracks at most maxIPs addresses per counter
func NewSuspiciousActivityDetectorWithWindow(maxIPs int, window time.Duration) *SuspiciousActivityDetector {
	return &SuspiciousActivityDetector{
		failedAuthByIP:   expirable.NewLRU[string, int](maxIPs, nil, window),
		requestCountByIP: expirable.NewLRU[string, int](maxIPs, nil, window),
	}
}

// RecordFailedAuth counts a rejected API key and alerts past FailedAuthAlertCount
func (s *SuspiciousActivityDetector) RecordFailedAuth(ip string) {
	if count := s.increment(s.failedAuthByIP, ip); count >= FailedAuthAlertCount {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", count)
	}
}

// RecordRequest counts a request and reports false once ip is over the limit
func (s *SuspiciousActivityDetector) RecordRequest(ip string) bool {
	count := s.increment(s.requestCountByIP, ip)
	if count <= MaxRequestsPerWindow {
		return true
	}
	if count%HighRateLogEveryNth == 0 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", count)
	}
	return false
}

// FailedAuthCount returns the failed attempts currently tracked for ip
func (s *SuspiciousActivityDetector) FailedAuthCount(ip string) int {
	count, _ := s.failedAuthByIP.Peek(ip)
	return count
}

// RequestCount returns the requests currently tracked for ip
func (s *SuspiciousActivityDetector) RequestCount(ip string) int {
	count, _ := s.requestCountByIP.Peek(ip)
	return count
}

// increment serializes the read-add-write so concurrent requests from one IP are all counted
func (s *SuspiciousActivityDetector) increment(counts *expirable.LRU[string, int], ip string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count, _ := counts.Get(ip)
	count++
	counts.Add(ip, count)
	return count
}
