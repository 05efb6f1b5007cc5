package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterRequests            *prometheus.CounterVec
	CounterHandleRequestPanic  prometheus.Counter
	CounterRateLimitedRequests prometheus.Counter
	CounterUnauthorized        prometheus.Counter
	CounterRecomputes          *prometheus.CounterVec
	CounterScheduleEdits       *prometheus.CounterVec
	CounterRejectedEdits       *prometheus.CounterVec
	CounterCompletedWorkouts   prometheus.Counter
	CounterScheduleCacheHits   *prometheus.CounterVec

	// gauges
	GaugeRequests   prometheus.Gauge
	GaugeLifeSignal prometheus.Gauge

	// histograms
	HistogramRequestDuration    *prometheus.HistogramVec
	HistogramGenerationDuration prometheus.Histogram
}

func NewTestManager() *Manager {
	return NewManager("gymplan", "test_server", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("gymplan", "test_server", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request",
		Help:      "The total number of incoming requests",
	}, []string{"method", "status"})
	counterHandleRequestPanic := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "handle_request_panic",
		Help:      "The total number of serve request panics",
	})
	counterRateLimitedRequests := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "rate_limited_requests",
		Help:      "The total number of rate limited requests",
	})
	counterUnauthorized := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "unauthorized_requests",
		Help:      "The total number of requests rejected by the identity check",
	})
	counterRecomputes := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "schedule_recomputes",
		Help:      "The total number of schedule rebuilds, by trigger",
	}, []string{"trigger"})
	counterScheduleEdits := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "schedule_edits",
		Help:      "The total number of applied schedule edits, by operation",
	}, []string{"op"})
	counterRejectedEdits := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "schedule_rejected_edits",
		Help:      "The total number of rejected schedule edits, by reason",
	}, []string{"op", "reason"})
	counterCompletedWorkouts := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "completed_workouts",
		Help:      "The total number of workouts marked as completed",
	})
	counterScheduleCacheHits := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "schedule_cache_lookups",
		Help:      "Working copy lookups, by result (hit or miss)",
	}, []string{"result"})

	gaugeRequests := factory.NewGauge(prometheus.GaugeOpts{
		Namespace:   namespace,
		Subsystem:   subsystem,
		Name:        "current_requests",
		Help:        "Current number of requests served",
		ConstLabels: nil,
	})
	gaugeLifeSignal := factory.NewGauge(prometheus.GaugeOpts{
		Namespace:   namespace,
		Subsystem:   subsystem,
		Name:        "life_signal",
		Help:        "Shows whether the service is alive",
		ConstLabels: nil,
	})

	histogramRequestDuration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request_duration_seconds",
		Help:      "Histogram of response time for requests in seconds",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"route", "method", "status_code"})

	histogramGenerationDuration := factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "schedule_generation_duration_seconds",
		Help:      "Duration of a full schedule rebuild in seconds",
		Buckets: []float64{
			0.00001, 0.00005, 0.0001, 0.0005, 0.001,
			0.005, 0.01, 0.05, 0.1, 0.5, 1,
		},
	})

	return &Manager{
		CounterRequests:             counterRequests,
		CounterHandleRequestPanic:   counterHandleRequestPanic,
		CounterRateLimitedRequests:  counterRateLimitedRequests,
		CounterUnauthorized:         counterUnauthorized,
		CounterRecomputes:           counterRecomputes,
		CounterScheduleEdits:        counterScheduleEdits,
		CounterRejectedEdits:        counterRejectedEdits,
		CounterCompletedWorkouts:    counterCompletedWorkouts,
		CounterScheduleCacheHits:    counterScheduleCacheHits,
		GaugeRequests:               gaugeRequests,
		GaugeLifeSignal:             gaugeLifeSignal,
		HistogramRequestDuration:    histogramRequestDuration,
		HistogramGenerationDuration: histogramGenerationDuration,
	}
}
