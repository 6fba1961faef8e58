package http

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/pkg/logger"
)

// DashboardStatsProvider lo implementa *analytics.DashboardUseCase.
type DashboardStatsProvider interface {
	GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error)
}

// DashboardReportExporter lo implementa *analytics.ReportUseCase.
type DashboardReportExporter interface {
	ExportPDF(ctx context.Context) ([]byte, string, error)
}

// DashboardHandler maneja los endpoints del dashboard de ventas.
type DashboardHandler struct {
	stats  DashboardStatsProvider
	report DashboardReportExporter
	log    *logger.Logger
}

// NewDashboardHandler construye el handler. report puede ser nil (sin exportación PDF).
func NewDashboardHandler(stats DashboardStatsProvider, report DashboardReportExporter, log *logger.Logger) *DashboardHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &DashboardHandler{stats: stats, report: report, log: log}
}

// GetStats godoc
// @Summary      Estadísticas del dashboard
// @Description  KPIs de ingresos y ventas (histórico y variación mensual), órdenes activas, total de productos, tendencia de 6 meses y top 5 productos.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.stats.GetStats(c.UserContext())
	if err != nil {
		return h.internalError(c, err, "no se pudieron calcular las estadísticas")
	}
	return c.JSON(stats)
}

// ExportPDF godoc
// @Summary      Exportar dashboard a PDF
// @Tags         dashboard
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/dashboard/stats/pdf [get]
func (h *DashboardHandler) ExportPDF(c *fiber.Ctx) error {
	if h.report == nil {
		return c.Status(fiber.StatusNotImplemented).JSON(dto.ErrorResponse{Code: "NOT_IMPLEMENTED", Message: "exportación PDF no configurada"})
	}
	pdfBytes, filename, err := h.report.ExportPDF(c.UserContext())
	if err != nil {
		return h.internalError(c, err, "no se pudo generar el reporte")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdfBytes)
}

// internalError registra el error real y responde 500 sin detalles de infraestructura.
func (h *DashboardHandler) internalError(c *fiber.Ctx, err error, msg string) error {
	h.log.Error().Err(err).
		Str("request_id", GetRequestID(c)).
		Str("path", c.Path()).
		Msg("dashboard")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: msg})
}
