package http

import (
	"github.com/gin-gonic/gin"

	"jarvis-assistant/internal/middleware"
)

// RegisterRoutes maps the session API under rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	sessions := rg.Group("/sessions/:session_id", mw.APIKey(), mw.RateLimit())
	{
		sessions.POST("/messages", h.SendMessage)
		sessions.GET("/suggestion", h.Suggestion)
		sessions.GET("/summary", h.Summary)
		sessions.PUT("/preferences", h.SetPreference)
		sessions.POST("/tasks", h.AddTask)
		sessions.DELETE("/tasks/:task_id", h.CompleteTask)
		sessions.DELETE("", h.Reset)
	}
}
