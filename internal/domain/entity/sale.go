package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una venta. Solo las ventas PAID cuentan para ingresos y rankings.
const (
	SaleStatusOpen    = "OPEN"
	SaleStatusPending = "PENDING"
	SaleStatusPaid    = "PAID"
)

// Sale cabecera de una venta con sus líneas cargadas.
type Sale struct {
	ID           int64
	Status       string
	DiscountRate decimal.Decimal // fracción en [0,1), se aplica una vez sobre el total de líneas
	CreatedAt    *time.Time      // nil en ventas antiguas sin fecha
	Lines        []SaleLine
}

// IsPaid indica si la venta está pagada.
func (s Sale) IsPaid() bool {
	return s.Status == SaleStatusPaid
}

// SaleLine línea de una venta (tabla sold_products).
type SaleLine struct {
	ID                 int64
	SaleID             int64
	ProductBarcode     string
	ProductDescription string // denormalizado desde products al leer
	PricePerUnit       decimal.Decimal
	Quantity           int
	DiscountRate       decimal.Decimal // fracción en [0,1)
}
