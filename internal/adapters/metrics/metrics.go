// Package metrics exposes the service's Prometheus instrumentation: HTTP
// request counters and latencies, plus the rack occupancy gauges refreshed
// by the storage report job.
package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts handled HTTP requests by route and status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "laundromat_http_requests_total",
		Help: "Total number of handled HTTP requests.",
	},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration observes request latency by route.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "laundromat_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: prometheus.DefBuckets,
	},
		[]string{"method", "route"},
	)

	// RackTotalCapacity reports each rack's configured capacity.
	RackTotalCapacity = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "laundromat_rack_total_capacity",
		Help: "Configured garment capacity per rack.",
	},
		[]string{"rack"},
	)

	// RackUsedCapacity reports each rack's currently consumed capacity.
	RackUsedCapacity = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "laundromat_rack_used_capacity",
		Help: "Currently consumed garment capacity per rack.",
	},
		[]string{"rack"},
	)

	// RackActiveAllocations reports the number of active pickup numbers per rack.
	RackActiveAllocations = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "laundromat_rack_active_allocations",
		Help: "Active pickup number allocations per rack.",
	},
		[]string{"rack"},
	)

	// RackStaleAllocations reports allocations held by cancelled, damaged, or
	// lost orders that still occupy rack space.
	RackStaleAllocations = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "laundromat_rack_stale_allocations",
		Help: "Allocations held by cancelled, damaged, or lost orders per rack.",
	},
		[]string{"rack"},
	)
)

// Middleware returns an Echo middleware recording request counts and
// latencies. The route label uses the matched route pattern, not the raw
// path, to keep cardinality bounded.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			method := c.Request().Method

			status := c.Response().Status
			if err != nil {
				if httpErr, ok := err.(*echo.HTTPError); ok {
					status = httpErr.Code
				}
			}

			HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
			HTTPRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())

			return err
		}
	}
}

// SetRackOccupancy refreshes the occupancy gauges for one rack.
func SetRackOccupancy(rackNumber, totalCapacity, usedCapacity, activeAllocations, staleAllocations int) {
	rack := strconv.Itoa(rackNumber)
	RackTotalCapacity.WithLabelValues(rack).Set(float64(totalCapacity))
	RackUsedCapacity.WithLabelValues(rack).Set(float64(usedCapacity))
	RackActiveAllocations.WithLabelValues(rack).Set(float64(activeAllocations))
	RackStaleAllocations.WithLabelValues(rack).Set(float64(staleAllocations))
}
