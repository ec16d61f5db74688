package router

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "http_requests_total",
	Help: "Number of handled HTTP requests by status, method and route.",
}, []string{"status", "method", "path"})

// countRequests counts requests per route. The route template is used
// instead of the raw path so that IDs do not blow up the cardinality.
func countRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		httpRequestsTotal.WithLabelValues(
			strconv.Itoa(c.Writer.Status()),
			c.Request.Method,
			path,
		).Inc()
	}
}
