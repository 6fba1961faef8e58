package main

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-api/internal/domain/entity"
)

var (
	saleStatuses  = []string{entity.SaleStatusPaid, entity.SaleStatusPaid, entity.SaleStatusPaid, entity.SaleStatusPending, entity.SaleStatusOpen}
	orderStatuses = []string{entity.OrderStatusIssued, entity.OrderStatusPaid, entity.OrderStatusCompleted}
	discountSteps = []string{"0", "0", "0", "0.05", "0.1"}
)

// validateCounts rechaza valores que harían fallar el generador.
func validateCounts(nSales, nOrders, days int) error {
	if days <= 0 {
		return fmt.Errorf("-days debe ser mayor que 0 (recibido %d)", days)
	}
	if nSales < 0 || nOrders < 0 {
		return fmt.Errorf("-sales y -orders no pueden ser negativos (recibido %d, %d)", nSales, nOrders)
	}
	return nil
}

// generateSales arma n ventas repartidas en los últimos `days` días antes de now.
// Mayoría PAID; algunas con descuento de venta o de línea.
func generateSales(rng *rand.Rand, products []entity.Product, n, days int, now time.Time) []entity.Sale {
	out := make([]entity.Sale, 0, n)
	for i := 0; i < n; i++ {
		created := now.Add(-time.Duration(rng.IntN(days*24)) * time.Hour)
		sale := entity.Sale{
			Status:       saleStatuses[rng.IntN(len(saleStatuses))],
			DiscountRate: decimal.RequireFromString(discountSteps[rng.IntN(len(discountSteps))]),
			CreatedAt:    &created,
		}
		lines := 1 + rng.IntN(4)
		for j := 0; j < lines; j++ {
			p := products[rng.IntN(len(products))]
			sale.Lines = append(sale.Lines, entity.SaleLine{
				ProductBarcode: p.Barcode,
				PricePerUnit:   p.PricePerUnit,
				Quantity:       1 + rng.IntN(6),
				DiscountRate:   decimal.RequireFromString(discountSteps[rng.IntN(len(discountSteps))]),
			})
		}
		out = append(out, sale)
	}
	return out
}

// generateOrders arma n órdenes con estados mezclados.
func generateOrders(rng *rand.Rand, n int, now time.Time) []entity.Order {
	out := make([]entity.Order, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, entity.Order{
			Status:    orderStatuses[rng.IntN(len(orderStatuses))],
			CreatedAt: now.Add(-time.Duration(rng.IntN(30*24)) * time.Hour),
		})
	}
	return out
}
