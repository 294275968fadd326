package http

import (
	"github.com/gin-gonic/gin"

	"day-planner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.Auth(), mw.RateLimit())
	{
		tasks.POST("", h.Create)
		tasks.GET("/:id", h.Detail)
		tasks.PATCH("/:id", h.Update)
		tasks.DELETE("/:id", h.Delete)
	}

	days := rg.Group("/days", mw.Auth(), mw.RateLimit())
	{
		days.GET("/today", h.Today)
		days.GET("/:dayKey", h.DayView)
	}
}
