package entity

import "time"

// Estados de una orden de compra. ISSUED es el único estado no terminal.
const (
	OrderStatusIssued    = "ISSUED"
	OrderStatusPaid      = "PAID"
	OrderStatusCompleted = "COMPLETED"
)

// Order orden de compra a proveedor. El dashboard solo cuenta las activas.
type Order struct {
	ID        int64
	Status    string
	CreatedAt time.Time
}
