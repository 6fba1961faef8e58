package analytics_test

import (
	"context"
	"sort"

	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

// memRepo implementación en memoria de repository.DashboardRepository.
type memRepo struct {
	sales    []entity.Sale
	orders   int64
	products int64
	err      error
	calls    int
}

func (r *memRepo) ListPaidSales(_ context.Context, filter repository.SalesFilter) ([]entity.Sale, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	out := make([]entity.Sale, 0, len(r.sales))
	for _, s := range r.sales {
		if s.Status != entity.SaleStatusPaid {
			continue
		}
		if filter.CreatedFrom != nil && (s.CreatedAt == nil || s.CreatedAt.Before(*filter.CreatedFrom)) {
			continue
		}
		out = append(out, s)
	}
	if filter.CreatedFrom != nil {
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(*out[j].CreatedAt) })
	}
	return out, nil
}

func (r *memRepo) CountActiveOrders(context.Context) (int64, error) { return r.orders, nil }
func (r *memRepo) CountProducts(context.Context) (int64, error)     { return r.products, nil }

// memReader ejecuta fn directamente con el repo en memoria.
type memReader struct {
	repo      *memRepo
	snapshots int
}

func (m *memReader) ReadSnapshot(_ context.Context, fn func(repo repository.DashboardRepository) error) error {
	m.snapshots++
	return fn(m.repo)
}
