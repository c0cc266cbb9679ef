package http

import (
	"github.com/gin-gonic/gin"

	"task-dashboard/internal/dashboard"
	pkgLog "task-dashboard/pkg/log"
)

// Handler is the public interface for the dashboard HTTP delivery layer.
type Handler interface {
	View(c *gin.Context)
	Search(c *gin.Context)
	OpenAdd(c *gin.Context)
	CloseAdd(c *gin.Context)
	Add(c *gin.Context)
	Delete(c *gin.Context)
	OpenEdit(c *gin.Context)
	CancelEdit(c *gin.Context)
	Update(c *gin.Context)
	ToggleTheme(c *gin.Context)
	DismissNotification(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc dashboard.UseCase
}

// New creates a new HTTP handler for the dashboard domain.
func New(l pkgLog.Logger, uc dashboard.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
