package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/finstatements/internal/utils"
	"github.com/gin-gonic/gin"
)

// ReportAnalytics records a "report_generated" event for every successful report request.
// It is a no-op when the analytics client is not configured.
func ReportAnalytics(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if posthogClient == nil || !posthogClient.IsInitialized() {
			c.Next()
			return
		}

		// Process request first
		c.Next()

		// Skip if there was an error processing the request
		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		userID, exists := GetUserIDFromContext(c)
		if !exists {
			return
		}

		// The report kind is the last segment of the matched route, e.g. "balance-sheet".
		route := c.FullPath()
		if route == "" {
			return
		}
		report := route[strings.LastIndex(route, "/")+1:]

		posthogClient.Enqueue(userID, "report_generated", map[string]any{
			"report":      report,
			"company_id":  c.Param("company_id"),
			"format":      c.DefaultQuery("format", "json"),
			"status_code": c.Writer.Status(),
		})
	}
}
