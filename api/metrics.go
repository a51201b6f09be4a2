package api

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bloodlink",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests by route and status code",
	}, []string{"method", "route", "code"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "bloodlink",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by route",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
)

// requestMetrics records a counter and a latency sample per matched route
func requestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		httpRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

func metricsHandler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
