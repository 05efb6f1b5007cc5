package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/2beens/gymplan/internal/telemetry/metrics"

	"github.com/go-redis/redis_rate/v9"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

type testRequestRateLimiter struct {
	// key to limit map
	Limits map[string]int
	err    error
}

func (l *testRequestRateLimiter) Allow(_ context.Context, key string, _ redis_rate.Limit) (*redis_rate.Result, error) {
	if l.err != nil {
		return nil, l.err
	}

	res := &redis_rate.Result{}
	foundLimit, ok := l.Limits[key]
	if !ok || foundLimit == 0 {
		return res, nil
	}

	res.Allowed = foundLimit
	l.Limits[key]--

	return res, nil
}

func TestRateLimit(t *testing.T) {
	limiter := &testRequestRateLimiter{
		Limits: map[string]int{
			"gymplan:83.12.53.65": 1,
		},
	}
	metricsManager := metrics.NewTestManager()

	calls := 0
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { calls++ })
	handler := RateLimit(limiter, "gymplan", 10, metricsManager)(next)

	req := httptest.NewRequest("GET", "/gymplan/schedule", nil)
	req.Header.Set("X-Real-Ip", "83.12.53.65")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)

	// next time fails
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusTooEarly, rr.Code)
	assert.True(t, strings.HasPrefix(rr.Body.String(), "retry after"))

	assert.Equal(t, 1, calls)
	assert.Equal(t, float64(1), testutil.ToFloat64(metricsManager.CounterRateLimitedRequests))
}

func TestRateLimit_LimiterError(t *testing.T) {
	limiter := &testRequestRateLimiter{err: errors.New("redis down")}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("must not be called")
	})
	handler := RateLimit(limiter, "gymplan", 10, nil)(next)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/gymplan/schedule", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
