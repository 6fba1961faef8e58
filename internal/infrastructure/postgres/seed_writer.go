package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/pos-api/internal/domain/entity"
)

// SeedWriter inserta datos de demostración (cmd/seed y tests de integración).
// No forma parte del camino de lectura del dashboard.
type SeedWriter struct {
	q Querier
}

// NewSeedWriter construye el writer. Pasar pool o tx (Querier).
func NewSeedWriter(q Querier) *SeedWriter {
	return &SeedWriter{q: q}
}

// UpsertProduct inserta el producto o actualiza descripción y precio si el barcode ya existe.
func (w *SeedWriter) UpsertProduct(ctx context.Context, p *entity.Product) error {
	query, args, err := psql.
		Insert("products").
		Columns("barcode", "description", "price_per_unit").
		Values(p.Barcode, p.Description, p.PricePerUnit).
		Suffix("ON CONFLICT (barcode) DO UPDATE SET description = EXCLUDED.description, price_per_unit = EXCLUDED.price_per_unit RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("seed.UpsertProduct build: %w", err)
	}
	if err := w.q.QueryRow(ctx, query, args...).Scan(&p.ID, &p.CreatedAt); err != nil {
		return fmt.Errorf("seed.UpsertProduct: %w", err)
	}
	return nil
}

// InsertSale inserta la cabecera y sus líneas. Asigna IDs a la venta y a cada línea.
func (w *SeedWriter) InsertSale(ctx context.Context, s *entity.Sale) error {
	query, args, err := psql.
		Insert("sales").
		Columns("status", "discount_rate", "created_at").
		Values(s.Status, s.DiscountRate, s.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("seed.InsertSale build: %w", err)
	}
	if err := w.q.QueryRow(ctx, query, args...).Scan(&s.ID); err != nil {
		return fmt.Errorf("seed.InsertSale: %w", err)
	}

	for i := range s.Lines {
		l := &s.Lines[i]
		l.SaleID = s.ID
		query, args, err := psql.
			Insert("sold_products").
			Columns("sale_id", "product_barcode", "price_per_unit", "quantity", "discount_rate").
			Values(l.SaleID, l.ProductBarcode, l.PricePerUnit, l.Quantity, l.DiscountRate).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("seed.InsertSale line build: %w", err)
		}
		if err := w.q.QueryRow(ctx, query, args...).Scan(&l.ID); err != nil {
			return fmt.Errorf("seed.InsertSale line %d: %w", i, err)
		}
	}
	return nil
}

// InsertOrder inserta una orden de compra.
func (w *SeedWriter) InsertOrder(ctx context.Context, o *entity.Order) error {
	query, args, err := psql.
		Insert("orders").
		Columns("status", "created_at").
		Values(o.Status, o.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("seed.InsertOrder build: %w", err)
	}
	if err := w.q.QueryRow(ctx, query, args...).Scan(&o.ID); err != nil {
		return fmt.Errorf("seed.InsertOrder: %w", err)
	}
	return nil
}

// Truncate vacía las tablas del dashboard (seed con -reset).
func (w *SeedWriter) Truncate(ctx context.Context) error {
	if _, err := w.q.Exec(ctx, "TRUNCATE sold_products, sales, orders, products RESTART IDENTITY"); err != nil {
		return fmt.Errorf("seed.Truncate: %w", err)
	}
	return nil
}
