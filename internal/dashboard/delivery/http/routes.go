package http

import (
	"github.com/gin-gonic/gin"

	"task-dashboard/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Mutations go
// through the rate limiter.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.GET("", h.View)
	rg.GET("/search", h.Search)

	rg.POST("/add-dialog", h.OpenAdd)
	rg.DELETE("/add-dialog", h.CloseAdd)

	tasks := rg.Group("/tasks")
	{
		tasks.POST("", mw.RateLimit(), h.Add)
		tasks.DELETE("/:id", mw.RateLimit(), h.Delete)
		tasks.POST("/:id/edit", h.OpenEdit)
	}

	rg.PUT("/edit", mw.RateLimit(), h.Update)
	rg.DELETE("/edit", h.CancelEdit)

	rg.POST("/theme/toggle", mw.RateLimit(), h.ToggleTheme)
	rg.DELETE("/notifications/:kind", h.DismissNotification)
}
