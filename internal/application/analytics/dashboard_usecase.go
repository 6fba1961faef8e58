// Package analytics contiene los casos de uso del dashboard de ventas:
// snapshot de KPIs y su exportación a PDF.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
	"github.com/jhoicas/pos-api/internal/domain/sales"
)

// DashboardUseCase construye el snapshot del dashboard.
//
// Fuente de datos: SnapshotReader (consultas read-only en una sola transacción).
// No guarda estado entre llamadas; cada invocación recalcula todo.
type DashboardUseCase struct {
	reader SnapshotReader
	loc    *time.Location
	now    func() time.Time
}

// NewDashboardUseCase construye el caso de uso. loc es la zona horaria de
// referencia para los cortes de mes; nil usa time.Local.
func NewDashboardUseCase(reader SnapshotReader, loc *time.Location) *DashboardUseCase {
	if loc == nil {
		loc = time.Local
	}
	return &DashboardUseCase{reader: reader, loc: loc, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *DashboardUseCase) WithClock(now func() time.Time) *DashboardUseCase {
	uc.now = now
	return uc
}

// Now devuelve el instante actual en la zona horaria de referencia.
func (uc *DashboardUseCase) Now() time.Time {
	return uc.now().In(uc.loc)
}

// rawSnapshot datos leídos en la transacción, antes de agregar.
type rawSnapshot struct {
	paidSales     []entity.Sale // todas las ventas PAID, por ID
	recentSales   []entity.Sale // ventas PAID desde TrendStart, por fecha
	activeOrders  int64
	totalProducts int64
}

// GetStats construye el DashboardStatsDTO.
//
// Lecturas (secuenciales: una transacción pgx no admite consultas concurrentes):
//  1. ListPaidSales()            → ingresos/ventas históricos y del mes + ranking
//  2. ListPaidSales(desde −180d) → serie mensual de ingresos
//  3. CountActiveOrders()        → órdenes activas
//  4. CountProducts()            → total de productos
//
// Sin datos devuelve KPIs en cero y listas vacías. Un fallo de persistencia se
// devuelve envuelto (errors.Is sigue funcionando).
func (uc *DashboardUseCase) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	w := sales.WindowsAt(uc.Now())

	var raw rawSnapshot
	err := uc.reader.ReadSnapshot(ctx, func(repo repository.DashboardRepository) error {
		var err error
		if raw.paidSales, err = repo.ListPaidSales(ctx, repository.SalesFilter{}); err != nil {
			return fmt.Errorf("ventas pagadas: %w", err)
		}
		trendStart := w.TrendStart
		if raw.recentSales, err = repo.ListPaidSales(ctx, repository.SalesFilter{CreatedFrom: &trendStart}); err != nil {
			return fmt.Errorf("ventas recientes: %w", err)
		}
		if raw.activeOrders, err = repo.CountActiveOrders(ctx); err != nil {
			return fmt.Errorf("órdenes activas: %w", err)
		}
		if raw.totalProducts, err = repo.CountProducts(ctx); err != nil {
			return fmt.Errorf("total de productos: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}

	return buildStats(raw, w), nil
}

// buildStats agrega los datos leídos. Los montos se convierten a float64 solo aquí.
func buildStats(raw rawSnapshot, w sales.Windows) *dto.DashboardStatsDTO {
	totals := sales.AggregatePeriods(raw.paidSales, w)

	trend := sales.EarningsTrend(raw.recentSales, w)
	earnings := make([]dto.ChartDataPointDTO, 0, len(trend))
	for _, p := range trend {
		earnings = append(earnings, dto.ChartDataPointDTO{Label: p.Label, Value: p.Value.InexactFloat64()})
	}

	ranked := sales.TopProducts(raw.paidSales, sales.TopProductsLimit)
	top := make([]dto.ProductStatDTO, 0, len(ranked))
	for _, p := range ranked {
		top = append(top, dto.ProductStatDTO{
			Barcode:      p.Barcode,
			Description:  p.Description,
			QuantitySold: p.QuantitySold,
			Revenue:      p.Revenue.InexactFloat64(),
		})
	}

	return &dto.DashboardStatsDTO{
		TotalRevenue: dto.RevenueKPIDTO{
			Value:  totals.AllTime.Revenue.InexactFloat64(),
			Change: sales.PercentChange(totals.ThisMonth.Revenue, totals.LastMonth.Revenue).InexactFloat64(),
		},
		TotalSales: dto.CountKPIDTO{
			Value:  totals.AllTime.Count,
			Change: sales.CountChange(totals.ThisMonth.Count, totals.LastMonth.Count).InexactFloat64(),
		},
		// Sin comparación histórica: change queda en 0.
		ActiveOrders:  dto.CountKPIDTO{Value: raw.activeOrders},
		TotalProducts: dto.CountKPIDTO{Value: raw.totalProducts},
		EarningsTrend: earnings,
		TopProducts:   top,
	}
}
