package sales

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-api/internal/domain/entity"
)

// earningsTrendDays ventana móvil de la serie de ingresos (no alineada a meses).
const earningsTrendDays = 180

// monthLabelLayout produce etiquetas del tipo "Jan 2025".
const monthLabelLayout = "Jan 2006"

// Windows límites temporales derivados de "ahora" en la zona horaria de referencia.
type Windows struct {
	Now            time.Time
	ThisMonthStart time.Time // primer instante del mes en curso
	LastMonthStart time.Time // primer instante del mes anterior
	TrendStart     time.Time // Now − 180 días
}

// WindowsAt calcula las ventanas para el instante now. La ubicación de now
// define el calendario local usado para los cortes de mes y las etiquetas.
func WindowsAt(now time.Time) Windows {
	loc := now.Location()
	thisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	// time.Date normaliza el mes 0 a diciembre del año anterior.
	lastMonth := time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, loc)
	return Windows{
		Now:            now,
		ThisMonthStart: thisMonth,
		LastMonthStart: lastMonth,
		TrendStart:     now.AddDate(0, 0, -earningsTrendDays),
	}
}

// InThisMonth indica si t cae en el mes en curso.
func (w Windows) InThisMonth(t time.Time) bool {
	return !t.Before(w.ThisMonthStart)
}

// InLastMonth indica si t cae en el mes anterior (excluyente con el mes en curso).
func (w Windows) InLastMonth(t time.Time) bool {
	return !t.Before(w.LastMonthStart) && t.Before(w.ThisMonthStart)
}

// Bucket acumulado de ingresos y número de ventas de una ventana.
type Bucket struct {
	Revenue decimal.Decimal
	Count   int64
}

func (b *Bucket) add(total decimal.Decimal) {
	b.Revenue = b.Revenue.Add(total)
	b.Count++
}

// PeriodTotals resultado de la agregación por períodos.
type PeriodTotals struct {
	AllTime   Bucket
	ThisMonth Bucket
	LastMonth Bucket
}

// AggregatePeriods recorre las ventas pagadas y acumula el total histórico, el
// del mes en curso y el del mes anterior.
// Las ventas sin fecha de creación suman al histórico pero a ningún mes.
func AggregatePeriods(sales []entity.Sale, w Windows) PeriodTotals {
	totals := PeriodTotals{}
	for _, sale := range sales {
		if !sale.IsPaid() {
			continue
		}
		total := SaleTotal(sale)
		totals.AllTime.add(total)

		if sale.CreatedAt == nil {
			continue
		}
		switch {
		case w.InThisMonth(*sale.CreatedAt):
			totals.ThisMonth.add(total)
		case w.InLastMonth(*sale.CreatedAt):
			totals.LastMonth.add(total)
		}
	}
	return totals
}

// TrendPoint ingresos de un mes calendario, ej: {"Jan 2025", 1520.5}.
type TrendPoint struct {
	Label string
	Value decimal.Decimal
}

// EarningsTrend agrupa por mes-año los ingresos de las ventas pagadas creadas
// desde w.TrendStart. Solo aparecen los meses con al menos una venta (sin
// relleno con ceros). Los puntos salen en el orden en que aparece cada mes en
// la entrada, que el repositorio entrega ordenada por fecha ascendente.
func EarningsTrend(sales []entity.Sale, w Windows) []TrendPoint {
	points := make([]TrendPoint, 0)
	index := make(map[string]int)
	loc := w.Now.Location()

	for _, sale := range sales {
		if !sale.IsPaid() || sale.CreatedAt == nil || sale.CreatedAt.Before(w.TrendStart) {
			continue
		}
		label := sale.CreatedAt.In(loc).Format(monthLabelLayout)
		i, ok := index[label]
		if !ok {
			i = len(points)
			index[label] = i
			points = append(points, TrendPoint{Label: label, Value: decimal.Zero})
		}
		points[i].Value = points[i].Value.Add(SaleTotal(sale))
	}
	return points
}
