package analytics_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-api/internal/application/analytics"
	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/domain/entity"
)

var fixedNow = time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

func at(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
	return &t
}

func sale(id int64, status string, created *time.Time, discount string, lines ...entity.SaleLine) entity.Sale {
	return entity.Sale{
		ID:           id,
		Status:       status,
		DiscountRate: decimal.RequireFromString(discount),
		CreatedAt:    created,
		Lines:        lines,
	}
}

func ln(barcode, desc, price string, qty int, discount string) entity.SaleLine {
	return entity.SaleLine{
		ProductBarcode:     barcode,
		ProductDescription: desc,
		PricePerUnit:       decimal.RequireFromString(price),
		Quantity:           qty,
		DiscountRate:       decimal.RequireFromString(discount),
	}
}

func newUseCase(repo *memRepo) (*analytics.DashboardUseCase, *memReader) {
	reader := &memReader{repo: repo}
	uc := analytics.NewDashboardUseCase(reader, time.UTC).WithClock(func() time.Time { return fixedNow })
	return uc, reader
}

func sampleRepo() *memRepo {
	return &memRepo{
		orders:   4,
		products: 12,
		sales: []entity.Sale{
			// Mes en curso: 17.1 + 50
			sale(1, entity.SaleStatusPaid, at(2025, time.March, 2), "0.05", ln("111", "Café", "10", 2, "0.1")),
			sale(2, entity.SaleStatusPaid, at(2025, time.March, 10), "0", ln("222", "Té", "5", 10, "0")),
			// Mes anterior: 40
			sale(3, entity.SaleStatusPaid, at(2025, time.February, 20), "0", ln("111", "Café", "10", 4, "0")),
			// Fuera de la ventana de 180 días
			sale(4, entity.SaleStatusPaid, at(2024, time.May, 1), "0", ln("333", "Azúcar", "1", 1, "0")),
			// Sin fecha
			sale(5, entity.SaleStatusPaid, nil, "0", ln("333", "Azúcar", "2", 3, "0")),
			// No pagada
			sale(6, entity.SaleStatusOpen, at(2025, time.March, 11), "0", ln("444", "Leche", "1", 99, "0")),
		},
	}
}

func TestGetStats_SnapshotCompleto(t *testing.T) {
	repo := sampleRepo()
	uc, reader := newUseCase(repo)

	stats, err := uc.GetStats(context.Background())
	require.NoError(t, err)

	// 17.1 + 50 + 40 + 1 + 6
	assert.InDelta(t, 114.1, stats.TotalRevenue.Value, 1e-9)
	// (67.1 − 40) / 40 × 100 = 67.75 → 67.8
	assert.Equal(t, 67.8, stats.TotalRevenue.Change)
	assert.Equal(t, int64(5), stats.TotalSales.Value)
	// 2 ventas este mes vs 1 el anterior
	assert.Equal(t, 100.0, stats.TotalSales.Change)

	assert.Equal(t, dto.CountKPIDTO{Value: 4, Change: 0}, stats.ActiveOrders)
	assert.Equal(t, dto.CountKPIDTO{Value: 12, Change: 0}, stats.TotalProducts)

	require.Len(t, stats.EarningsTrend, 2)
	assert.Equal(t, dto.ChartDataPointDTO{Label: "Feb 2025", Value: 40}, stats.EarningsTrend[0])
	assert.Equal(t, "Mar 2025", stats.EarningsTrend[1].Label)
	assert.InDelta(t, 67.1, stats.EarningsTrend[1].Value, 1e-9)

	require.Len(t, stats.TopProducts, 3)
	assert.Equal(t, "222", stats.TopProducts[0].Barcode)
	assert.Equal(t, int64(10), stats.TopProducts[0].QuantitySold)
	assert.Equal(t, "111", stats.TopProducts[1].Barcode)
	assert.Equal(t, "Café", stats.TopProducts[1].Description)
	assert.Equal(t, int64(6), stats.TopProducts[1].QuantitySold)
	// 10×2×0.9 + 10×4 = 58 (sin descuento de venta)
	assert.Equal(t, 58.0, stats.TopProducts[1].Revenue)
	assert.Equal(t, "333", stats.TopProducts[2].Barcode)

	assert.Equal(t, 1, reader.snapshots, "todas las lecturas deben ir en una sola transacción")
	assert.Equal(t, 2, repo.calls)
}

func TestGetStats_SinDatos(t *testing.T) {
	uc, _ := newUseCase(&memRepo{})

	stats, err := uc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Zero(t, stats.TotalRevenue.Value)
	assert.Zero(t, stats.TotalRevenue.Change)
	assert.Zero(t, stats.TotalSales.Value)

	body, err := json.Marshal(stats)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"earnings_trend":[]`)
	assert.Contains(t, string(body), `"top_products":[]`)
}

func TestGetStats_Idempotente(t *testing.T) {
	uc, _ := newUseCase(sampleRepo())

	first, err := uc.GetStats(context.Background())
	require.NoError(t, err)
	second, err := uc.GetStats(context.Background())
	require.NoError(t, err)

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	assert.Equal(t, string(a), string(b))
}

func TestGetStats_PropagaErrorDePersistencia(t *testing.T) {
	dbErr := errors.New("conexión rechazada")
	uc, _ := newUseCase(&memRepo{err: dbErr})

	stats, err := uc.GetStats(context.Background())

	assert.Nil(t, stats)
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
}

func TestNow_UsaZonaDeReferencia(t *testing.T) {
	loc := time.FixedZone("COT", -5*60*60)
	uc := analytics.NewDashboardUseCase(&memReader{repo: &memRepo{}}, loc).
		WithClock(func() time.Time { return fixedNow })

	assert.Equal(t, loc, uc.Now().Location())
	assert.True(t, fixedNow.Equal(uc.Now()))
}
