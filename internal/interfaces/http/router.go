package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	DashboardUC DashboardStatsProvider
	ReportUC    DashboardReportExporter
	JWTSecret   string
	JWTIssuer   string
	Logger      *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	v1 := app.Group("/api/v1")

	// Dashboard (protegido: Bearer Token + rol)
	dashboard := v1.Group("/dashboard",
		AuthMiddleware(deps.JWTSecret, deps.JWTIssuer),
		RequireRole(entity.DashboardRoles...),
	)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.ReportUC, deps.Logger)
	dashboard.Get("/stats", dashboardHandler.GetStats)
	dashboard.Get("/stats/pdf", dashboardHandler.ExportPDF)
}
