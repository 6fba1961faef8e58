package sales

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-api/internal/domain/entity"
)

// TopProductsLimit número de productos del widget del dashboard.
const TopProductsLimit = 5

// ProductStat unidades e ingresos acumulados de un producto.
type ProductStat struct {
	Barcode      string
	Description  string
	QuantitySold int64
	Revenue      decimal.Decimal
}

// TopProducts agrupa las líneas de las ventas pagadas por barcode, ordena por
// cantidad vendida descendente y devuelve como máximo limit productos.
//
// El ingreso por producto aplica solo el descuento de línea, no el de venta.
// Es distinto de SaleTotal y se mantiene así por compatibilidad con los
// reportes existentes.
// Los empates conservan el orden de primera aparición en la entrada.
func TopProducts(sales []entity.Sale, limit int) []ProductStat {
	stats := make([]ProductStat, 0)
	index := make(map[string]int)

	for _, sale := range sales {
		if !sale.IsPaid() {
			continue
		}
		for _, line := range sale.Lines {
			i, ok := index[line.ProductBarcode]
			if !ok {
				i = len(stats)
				index[line.ProductBarcode] = i
				stats = append(stats, ProductStat{
					Barcode:     line.ProductBarcode,
					Description: line.ProductDescription,
					Revenue:     decimal.Zero,
				})
			}
			stats[i].QuantitySold += int64(line.Quantity)
			stats[i].Revenue = stats[i].Revenue.Add(LineNet(line))
		}
	}

	sort.SliceStable(stats, func(a, b int) bool {
		return stats[a].QuantitySold > stats[b].QuantitySold
	})
	if limit >= 0 && len(stats) > limit {
		stats = stats[:limit]
	}
	return stats
}
