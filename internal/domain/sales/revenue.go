// Package sales contiene los servicios de dominio que derivan las métricas
// financieras del dashboard a partir de ventas y sus líneas.
//
// Todas las funciones son puras: reciben entidades ya cargadas y no guardan
// estado entre llamadas. Los montos se calculan con decimal sin redondeo; el
// redondeo queda para la capa de presentación.
package sales

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-api/internal/domain/entity"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// LineNet devuelve el neto de una línea: precio × cantidad × (1 − descuento_línea).
func LineNet(line entity.SaleLine) decimal.Decimal {
	qty := decimal.NewFromInt(int64(line.Quantity))
	return line.PricePerUnit.Mul(qty).Mul(one.Sub(line.DiscountRate))
}

// SaleTotal devuelve el total neto de la venta.
// TotalVenta = Σ LineNet × (1 − descuento_venta)
//
// Los descuentos se componen de forma multiplicativa: el de línea afecta solo
// a su línea y el de venta se aplica una única vez sobre la suma.
// Una venta sin líneas vale 0.
func SaleTotal(sale entity.Sale) decimal.Decimal {
	linesTotal := decimal.Zero
	for _, line := range sale.Lines {
		linesTotal = linesTotal.Add(LineNet(line))
	}
	return linesTotal.Mul(one.Sub(sale.DiscountRate))
}
