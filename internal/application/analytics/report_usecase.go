package analytics

import (
	"context"
	"fmt"
)

// ReportUseCase exporta el snapshot del dashboard a PDF.
type ReportUseCase struct {
	dashboard *DashboardUseCase
	generator DashboardPDFGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(dashboard *DashboardUseCase, generator DashboardPDFGenerator) *ReportUseCase {
	return &ReportUseCase{dashboard: dashboard, generator: generator}
}

// ExportPDF calcula el snapshot y lo renderiza.
// Devuelve los bytes del PDF y un nombre de archivo del tipo dashboard_2025-03-15.pdf.
func (uc *ReportUseCase) ExportPDF(ctx context.Context) (pdfBytes []byte, filename string, err error) {
	stats, err := uc.dashboard.GetStats(ctx)
	if err != nil {
		return nil, "", err
	}
	generatedAt := uc.dashboard.Now()
	pdfBytes, err = uc.generator.GenerateDashboardPDF(ctx, stats, generatedAt)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generar PDF: %w", err)
	}
	return pdfBytes, fmt.Sprintf("dashboard_%s.pdf", generatedAt.Format("2006-01-02")), nil
}
