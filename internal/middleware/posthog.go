package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/lifefin_backend/internal/utils"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains paths that should not be tracked by PostHog
var pathsToSkip = map[string]bool{
	"/health": true,
}

// routeEvents names the business events behind the routes product analytics cares about.
// Other routes fall back to an event derived from the route pattern.
var routeEvents = map[string]string{
	"POST /api/v1/transactions":             "transaction_created",
	"POST /api/v1/savings":                  "savings_goal_created",
	"POST /api/v1/savings/:id/deposit":      "savings_deposited",
	"GET /api/v1/score":                     "score_viewed",
	"POST /api/v1/loans":                    "loan_applied",
	"POST /api/v1/loans/:id/disburse":       "loan_disbursed",
	"POST /api/v1/admin/loans/:id/approve":  "loan_approved",
	"POST /api/v1/admin/loans/:id/reject":   "loan_rejected",
	"POST /api/v1/investments":              "investment_bought",
	"POST /api/v1/investments/:id/withdraw": "investment_withdrawn",
	"PUT /api/v1/admin/score-config":        "score_config_updated",
}

// eventNameFor maps a request to its analytics event name.
func eventNameFor(method, fullPath string) string {
	if name, ok := routeEvents[method+" "+fullPath]; ok {
		return name
	}
	// e.g. "/api/v1/loans" -> "get_api_v1_loans"
	path := strings.TrimPrefix(fullPath, "/")
	if path == "" {
		return ""
	}
	return strings.ToLower(method) + "_" + strings.ReplaceAll(path, "/", "_")
}

// PosthogMiddleware creates a Gin middleware handler that tracks API events with PostHog
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if posthogClient == nil || !posthogClient.IsInitialized() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		// Only successful calls become events.
		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		userID, exists := GetUserIDFromContext(c)
		if !exists {
			return
		}

		// Unmatched routes have an empty FullPath.
		eventName := eventNameFor(c.Request.Method, c.FullPath())
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}
		if role, ok := GetUserRoleFromContext(c); ok {
			props["role"] = string(role)
		}
		if len(c.Params) > 0 {
			params := make(map[string]string)
			for _, param := range c.Params {
				params[param.Key] = param.Value
			}
			props["params"] = params
		}

		posthogClient.Enqueue(userID, eventName, props)
	}
}

// PosthogEvent sends a custom event from a handler, e.g. the outcome of an investment withdrawal.
func PosthogEvent(c *gin.Context, posthogClient *utils.PosthogClientWrapper, eventName string, properties map[string]any) {
	if posthogClient == nil || !posthogClient.IsInitialized() {
		return
	}

	userID, exists := GetUserIDFromContext(c)
	if !exists {
		return
	}

	if properties == nil {
		properties = make(map[string]any)
	}
	properties["method"] = c.Request.Method
	properties["path"] = c.Request.URL.Path

	posthogClient.Enqueue(userID, eventName, properties)
}
