package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hermes/pkg/logger"
)

var (
	// Tool metrics
	ToolExecutions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hermes_tool_executions_total",
			Help: "Total number of tool executions",
		},
		[]string{"tool", "status"}, // status: success|error
	)

	ToolLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hermes_tool_latency_seconds",
			Help:    "Tool execution latency in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10},
		},
		[]string{"tool"},
	)

	// Upstream metrics
	YahooAPICalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hermes_yahoo_api_calls_total",
			Help: "Total number of Yahoo Finance API calls",
		},
		[]string{"endpoint", "status"}, // status: success|error
	)

	// Indicator metrics
	IndicatorFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hermes_indicator_failures_total",
			Help: "Total number of per-indicator request rejections",
		},
		[]string{"indicator"},
	)
)

// Init registers all metrics with the default registry
func Init() {
	// Tool metrics
	prometheus.MustRegister(ToolExecutions)
	prometheus.MustRegister(ToolLatency)

	// Upstream metrics
	prometheus.MustRegister(YahooAPICalls)

	// Indicator metrics
	prometheus.MustRegister(IndicatorFailures)
}

// Handler returns Prometheus HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// StartServer serves /metrics on its own listener. The MCP transport owns
// stdio, so metrics need a separate port.
func StartServer(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler())

	server := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logger.Infof("Starting metrics server on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Errorf("Metrics server error: %v", err)
		}
	}()
}

// RecordToolExecution records a tool execution
func RecordToolExecution(tool string, latency time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	ToolExecutions.WithLabelValues(tool, status).Inc()
	ToolLatency.WithLabelValues(tool).Observe(latency.Seconds())
}

// RecordYahooAPICall records one upstream Yahoo Finance request
func RecordYahooAPICall(endpoint string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	YahooAPICalls.WithLabelValues(endpoint, status).Inc()
}
