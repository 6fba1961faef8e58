package repository

import (
	"context"
	"time"

	"github.com/jhoicas/pos-api/internal/domain/entity"
)

// SalesFilter acota la lectura de ventas pagadas.
type SalesFilter struct {
	// CreatedFrom si no es nil, devuelve solo ventas con created_at >= CreatedFrom,
	// ordenadas por fecha ascendente. Si es nil se devuelven todas, ordenadas por ID.
	CreatedFrom *time.Time
}

// DashboardRepository define las lecturas que necesita el dashboard.
// Las implementaciones son read-only.
type DashboardRepository interface {
	// ListPaidSales devuelve las ventas en estado PAID con sus líneas cargadas.
	ListPaidSales(ctx context.Context, filter SalesFilter) ([]entity.Sale, error)

	// CountActiveOrders cuenta las órdenes en estado ISSUED.
	CountActiveOrders(ctx context.Context) (int64, error)

	// CountProducts cuenta todos los productos del catálogo.
	CountProducts(ctx context.Context) (int64, error)
}
