package analytics

import (
	"context"
	"time"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

// SnapshotReader ejecuta fn con un repositorio atado a una única transacción de
// solo lectura, de modo que todas las lecturas de un cálculo ven el mismo estado.
type SnapshotReader interface {
	ReadSnapshot(ctx context.Context, fn func(repo repository.DashboardRepository) error) error
}

// DashboardPDFGenerator genera la representación en PDF del dashboard.
type DashboardPDFGenerator interface {
	GenerateDashboardPDF(ctx context.Context, stats *dto.DashboardStatsDTO, generatedAt time.Time) ([]byte, error)
}
