package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	quotesTotal *prometheus.CounterVec
	errorsTotal *prometheus.CounterVec
)

// Init creates the collectors and registers them on reg. Later calls are no-ops.
// Recording before Init is silently dropped.
func Init(reg prometheus.Registerer) {
	registerOnce.Do(func() {
		httpRequests = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		)
		httpDuration = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_ms",
				Help:    "Duration of HTTP requests in ms",
				Buckets: []float64{1, 5, 10, 25, 50, 100, 200, 400, 800},
			},
			[]string{"method", "path"},
		)
		quotesTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vat_quotes_total",
				Help: "Amounts quoted by VAT band and input basis",
			},
			[]string{"band", "basis"},
		)
		errorsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vat_errors_total",
				Help: "Calculator errors by kind",
			},
			[]string{"kind"},
		)

		reg.MustRegister(httpRequests, httpDuration, quotesTotal, errorsTotal)
	})
}

func ObserveHTTP(method, path string, status int, d time.Duration) {
	if httpRequests == nil {
		return
	}
	httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, path).Observe(float64(d.Milliseconds()))
}

func IncQuote(band, basis string) {
	if quotesTotal == nil {
		return
	}
	quotesTotal.WithLabelValues(band, basis).Inc()
}

func IncError(kind string) {
	if errorsTotal == nil {
		return
	}
	errorsTotal.WithLabelValues(kind).Inc()
}
