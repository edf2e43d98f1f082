package server

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	apiKey := "secret-key"

	tests := []struct {
		name           string
		providedKey    string
		path           string
		expectedStatus int
		countsFailure  bool
	}{
		{"Valid API Key", apiKey, "/api/v1/items", http.StatusOK, false},
		{"Invalid API Key", "wrong-key", "/api/v1/items", http.StatusUnauthorized, true},
		{"Missing API Key", "", "/api/v1/players/1", http.StatusUnauthorized, true},
		{"Public Path - Healthz", "", "/healthz", http.StatusOK, false},
		{"Public Path - Metrics", "", "/metrics", http.StatusOK, false},
		{"Public Path - Swagger", "", "/swagger/index.html", http.StatusOK, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detector := NewSuspiciousActivityDetector()
			middleware := AuthMiddleware(apiKey, ProxySet{}, detector)

			req := httptest.NewRequest("GET", tt.path, nil)
			req.RemoteAddr = "10.0.0.9:5555"
			if tt.providedKey != "" {
				req.Header.Set(HeaderAPIKey, tt.providedKey)
			}
			rec := httptest.NewRecorder()

			handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusUnauthorized {
				assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
			}
			if tt.countsFailure {
				assert.Equal(t, 1, detector.FailedAuthCount("10.0.0.9"))
			} else {
				assert.Zero(t, detector.FailedAuthCount("10.0.0.9"))
			}
		})
	}
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		trusted    []string
		want       string
	}{
		{"direct connection", "203.0.113.5:4000", "", nil, "203.0.113.5"},
		{"forwarded header ignored from untrusted peer", "203.0.113.5:4000", "198.51.100.1", nil, "203.0.113.5"},
		{"trusted proxy uses rightmost hop", "10.0.0.1:4000", "1.1.1.1, 198.51.100.7", []string{"10.0.0.1"}, "198.51.100.7"},
		{"trusted proxy without header", "10.0.0.1:4000", "", []string{"10.0.0.1"}, "10.0.0.1"},
		{"trusted proxy by CIDR", "172.16.4.2:4000", "198.51.100.9", []string{"172.16.0.0/12"}, "198.51.100.9"},
		{"peer outside CIDR", "172.32.0.1:4000", "198.51.100.9", []string{"172.16.0.0/12"}, "172.32.0.1"},
		{"ipv6 proxy", "[::1]:4000", "198.51.100.3", []string{"::1"}, "198.51.100.3"},
		{"unparsable remote addr", "garbage", "", nil, "garbage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwarded)
			}
			assert.Equal(t, tt.want, extractIP(req, ParseTrustedProxies(tt.trusted)))
		})
	}
}

func TestParseTrustedProxies(t *testing.T) {
	set := ParseTrustedProxies([]string{" 10.0.0.1 ", "192.168.0.0/16", "not-an-ip", ""})

	assert.True(t, set.Contains("10.0.0.1"))
	assert.False(t, set.Contains("10.0.0.2"))
	assert.True(t, set.Contains("192.168.44.7"))
	assert.True(t, set.Contains("::ffff:192.168.1.1"), "IPv4-mapped addresses match their IPv4 prefix")
	assert.False(t, set.Contains("garbage"))
	assert.False(t, ProxySet{}.Contains("10.0.0.1"))
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	handler := RequestSizeLimitMiddleware(8)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var tooLarge *http.MaxBytesError
		if _, err := io.ReadAll(r.Body); errors.As(err, &tooLarge) {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"count": 123456789}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
