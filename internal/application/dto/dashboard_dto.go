package dto

// DashboardStatsDTO respuesta de GET /api/v1/dashboard/stats.
// Se construye en cada llamada; no hay caché ni histórico.
type DashboardStatsDTO struct {
	TotalRevenue  RevenueKPIDTO `json:"total_revenue"`  // ingresos históricos; change = mes actual vs anterior
	TotalSales    CountKPIDTO   `json:"total_sales"`    // ventas pagadas históricas; change = mes actual vs anterior
	ActiveOrders  CountKPIDTO   `json:"active_orders"`  // órdenes ISSUED; change siempre 0
	TotalProducts CountKPIDTO   `json:"total_products"` // productos del catálogo; change siempre 0

	EarningsTrend []ChartDataPointDTO `json:"earnings_trend"` // últimos 180 días por mes, solo meses con ventas
	TopProducts   []ProductStatDTO    `json:"top_products"`   // máx. 5, por unidades vendidas
}

// RevenueKPIDTO KPI monetario.
type RevenueKPIDTO struct {
	Value  float64 `json:"value"`
	Change float64 `json:"change"` // variación % con un decimal
}

// CountKPIDTO KPI de conteo.
type CountKPIDTO struct {
	Value  int64   `json:"value"`
	Change float64 `json:"change"`
}

// ChartDataPointDTO punto de la serie de ingresos mensuales.
type ChartDataPointDTO struct {
	Label string  `json:"label"` // ej: "Jan 2025"
	Value float64 `json:"value"`
}

// ProductStatDTO producto del ranking.
type ProductStatDTO struct {
	Barcode      string  `json:"barcode"`
	Description  string  `json:"description"`
	QuantitySold int64   `json:"quantity_sold"`
	Revenue      float64 `json:"revenue"`
}
