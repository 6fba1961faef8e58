package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. El barcode es único.
// El dashboard solo lo usa para etiquetar el ranking de productos y para el conteo total.
type Product struct {
	ID           int64
	Barcode      string
	Description  string
	PricePerUnit decimal.Decimal
	CreatedAt    time.Time
}
