package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// DashboardRepo consultas de solo lectura para el dashboard (usable con pool o tx).
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// paidSalesQuery arma la consulta de ventas PAID con sus líneas.
// LEFT JOIN para no perder ventas sin líneas; la descripción sale de products por barcode.
func paidSalesQuery(filter repository.SalesFilter) (string, []any, error) {
	qb := psql.
		Select(
			"s.id",
			"s.status",
			"s.discount_rate",
			"s.created_at",
			"sp.id",
			"sp.product_barcode",
			"COALESCE(p.description, '')",
			"sp.price_per_unit",
			"sp.quantity",
			"sp.discount_rate",
		).
		From("sales s").
		LeftJoin("sold_products sp ON sp.sale_id = s.id").
		LeftJoin("products p ON p.barcode = sp.product_barcode").
		Where(squirrel.Eq{"s.status": entity.SaleStatusPaid})

	if filter.CreatedFrom != nil {
		qb = qb.
			Where(squirrel.GtOrEq{"s.created_at": *filter.CreatedFrom}).
			OrderBy("s.created_at ASC", "s.id ASC", "sp.id ASC")
	} else {
		qb = qb.OrderBy("s.id ASC", "sp.id ASC")
	}
	return qb.ToSql()
}

// ListPaidSales devuelve las ventas PAID con sus líneas en una sola consulta.
// Las filas llegan agrupadas por venta gracias al ORDER BY.
func (r *DashboardRepo) ListPaidSales(ctx context.Context, filter repository.SalesFilter) ([]entity.Sale, error) {
	query, args, err := paidSalesQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("dashboard.ListPaidSales build: %w", err)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("dashboard.ListPaidSales: %w", err)
	}
	defer rows.Close()

	sales := make([]entity.Sale, 0)
	for rows.Next() {
		var (
			saleID       int64
			status       string
			saleDiscount decimal.Decimal
			createdAt    *time.Time
			lineID       *int64
			barcode      *string
			description  string
			price        decimal.NullDecimal
			quantity     *int32
			lineDiscount decimal.NullDecimal
		)
		if err := rows.Scan(
			&saleID, &status, &saleDiscount, &createdAt,
			&lineID, &barcode, &description, &price, &quantity, &lineDiscount,
		); err != nil {
			return nil, fmt.Errorf("dashboard.ListPaidSales scan: %w", err)
		}

		if n := len(sales); n == 0 || sales[n-1].ID != saleID {
			sales = append(sales, entity.Sale{
				ID:           saleID,
				Status:       status,
				DiscountRate: saleDiscount,
				CreatedAt:    createdAt,
				Lines:        []entity.SaleLine{},
			})
		}
		if lineID == nil {
			continue
		}

		current := &sales[len(sales)-1]
		current.Lines = append(current.Lines, entity.SaleLine{
			ID:                 *lineID,
			SaleID:             saleID,
			ProductBarcode:     deref(barcode),
			ProductDescription: description,
			PricePerUnit:       price.Decimal,
			Quantity:           int(derefInt32(quantity)),
			DiscountRate:       lineDiscount.Decimal,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("dashboard.ListPaidSales rows: %w", err)
	}
	return sales, nil
}

// CountActiveOrders cuenta las órdenes ISSUED.
func (r *DashboardRepo) CountActiveOrders(ctx context.Context) (int64, error) {
	query, args, err := psql.
		Select("COUNT(o.id)").
		From("orders o").
		Where(squirrel.Eq{"o.status": entity.OrderStatusIssued}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("dashboard.CountActiveOrders build: %w", err)
	}

	var count int64
	if err := r.q.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("dashboard.CountActiveOrders: %w", err)
	}
	return count, nil
}

// CountProducts cuenta todos los productos.
func (r *DashboardRepo) CountProducts(ctx context.Context) (int64, error) {
	query, args, err := psql.Select("COUNT(p.id)").From("products p").ToSql()
	if err != nil {
		return 0, fmt.Errorf("dashboard.CountProducts build: %w", err)
	}

	var count int64
	if err := r.q.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("dashboard.CountProducts: %w", err)
	}
	return count, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt32(n *int32) int32 {
	if n == nil {
		return 0
	}
	return *n
}
