package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	dashboardHTTP "task-dashboard/internal/dashboard/delivery/http"
)

// setupDashboardDomain registers /api/v1/dashboard. The use case is built by
// the caller because the terminal UI and the server share its construction.
func (srv HTTPServer) setupDashboardDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := dashboardHTTP.New(srv.l, srv.dashboardUC)
	dashboardHTTP.RegisterRoutes(api.Group("/dashboard"), h, srv.mw)

	srv.l.Infof(ctx, "Dashboard domain registered")
	return nil
}
