package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// EventSink receives analytics events. utils.PosthogClientWrapper implements it.
type EventSink interface {
	IsInitialized() bool
	Enqueue(distinctID string, event string, properties map[string]any)
}

// pathsToSkip contains routes that should not be tracked
var pathsToSkip = map[string]bool{
	"/health":       true,
	"/metrics":      true,
	"/swagger/*any": true,
}

// PosthogMiddleware tracks successful requests as anonymous events named after the
// route, e.g. "POST /api/convert" -> "api_convert_post".
func PosthogMiddleware(sink EventSink) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sink == nil || !sink.IsInitialized() {
			c.Next()
			return
		}

		c.Next()

		route := c.FullPath()
		// Skip 404s, excluded routes and failed requests
		if route == "" || pathsToSkip[route] || len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		eventName := strings.ReplaceAll(strings.Trim(route, "/"), "/", "_")
		if eventName == "" {
			eventName = "index"
		}
		eventName += "_" + strings.ToLower(c.Request.Method)

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}
		if source := c.Writer.Header().Get("X-Rates-Source"); source != "" {
			props["rates_source"] = source
		}

		sink.Enqueue(c.Writer.Header().Get(RequestIDHeader), eventName, props)
	}
}
