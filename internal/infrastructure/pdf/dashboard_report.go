// Package pdf genera el reporte PDF del dashboard de ventas con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la tienda    │  Fecha de generación      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KPIs: Ingresos | Ventas | Órdenes activas | Productos      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Mes | Ingresos                                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Código | Descripción | Unidades | Ingresos          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/pos-api/internal/application/analytics"
	"github.com/jhoicas/pos-api/internal/application/dto"
)

var _ analytics.DashboardPDFGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorGreen   = &props.Color{Red: 20, Green: 130, Blue: 60}
	colorRed     = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa analytics.DashboardPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	title   string
	printer *message.Printer
}

// NewMarotoReportGenerator construye el generador. title va en el encabezado;
// tag define separadores de miles y decimales (language.Spanish → 1.234,50).
func NewMarotoReportGenerator(title string, tag language.Tag) *MarotoReportGenerator {
	return &MarotoReportGenerator{title: title, printer: message.NewPrinter(tag)}
}

// GenerateDashboardPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateDashboardPDF(
	_ context.Context,
	stats *dto.DashboardStatsDTO,
	generatedAt time.Time,
) ([]byte, error) {
	if stats == nil {
		return nil, fmt.Errorf("pdf: snapshot vacío")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Dashboard de ventas", true).
		WithAuthor(g.title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.kpiRow(stats))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("Ingresos por mes (últimos 6 meses)"))
	m.AddRows(tableHeader([]string{"Mes", "Ingresos"}, []int{6, 6}))
	m.AddRows(g.trendRows(stats.EarningsTrend)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(sectionTitle("Productos más vendidos"))
	m.AddRows(tableHeader([]string{"Código", "Descripción", "Unidades", "Ingresos"}, []int{3, 5, 2, 2}))
	m.AddRows(g.topProductRows(stats.TopProducts)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *MarotoReportGenerator) headerRow(generatedAt time.Time) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(g.title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Dashboard de ventas", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04 MST"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// kpiRow: cuatro tarjetas con valor y variación mensual.
func (g *MarotoReportGenerator) kpiRow(stats *dto.DashboardStatsDTO) core.Row {
	card := func(title, value string, change float64, withChange bool) core.Col {
		c := col.New(3).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 12, Top: 6}),
		)
		if withChange {
			c.Add(text.New(g.formatChange(change), props.Text{
				Size: 8, Top: 13, Color: changeColor(change),
			}))
		}
		return c
	}
	return row.New(20).Add(
		card("Ingresos totales", "$"+g.formatMoney(stats.TotalRevenue.Value), stats.TotalRevenue.Change, true),
		card("Ventas", g.printer.Sprintf("%d", stats.TotalSales.Value), stats.TotalSales.Change, true),
		card("Órdenes activas", g.printer.Sprintf("%d", stats.ActiveOrders.Value), 0, false),
		card("Productos", g.printer.Sprintf("%d", stats.TotalProducts.Value), 0, false),
	)
}

func (g *MarotoReportGenerator) trendRows(points []dto.ChartDataPointDTO) []core.Row {
	if len(points) == 0 {
		return []core.Row{emptyRow("Sin ventas en el período")}
	}
	rows := make([]core.Row, 0, len(points))
	for _, p := range points {
		rows = append(rows, row.New(6).Add(
			col.New(6).Add(text.New(p.Label, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(6).Add(text.New("$"+g.formatMoney(p.Value), props.Text{Size: 8, Top: 1, Align: align.Right, Right: 1})),
		))
	}
	return rows
}

func (g *MarotoReportGenerator) topProductRows(products []dto.ProductStatDTO) []core.Row {
	if len(products) == 0 {
		return []core.Row{emptyRow("Sin productos vendidos")}
	}
	rows := make([]core.Row, 0, len(products))
	for _, p := range products {
		rows = append(rows, row.New(6).Add(
			col.New(3).Add(text.New(p.Barcode, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(5).Add(text.New(p.Description, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(g.printer.Sprintf("%d", p.QuantitySold), props.Text{Size: 8, Top: 1, Align: align.Right})),
			col.New(2).Add(text.New("$"+g.formatMoney(p.Revenue), props.Text{Size: 8, Top: 1, Align: align.Right, Right: 1})),
		))
	}
	return rows
}

func sectionTitle(s string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(s, props.Text{Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2}),
	))
}

func tableHeader(labels []string, sizes []int) core.Row {
	cols := make([]core.Col, 0, len(labels))
	for i, l := range labels {
		a := align.Left
		if i == len(labels)-1 {
			a = align.Right
		}
		cols = append(cols, col.New(sizes[i]).Add(text.New(l, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		})))
	}
	return row.New(7).Add(cols...)
}

func emptyRow(msg string) core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New(msg, props.Text{Size: 8, Top: 1, Color: colorGray, Align: align.Center}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatMoney formatea con dos decimales y separadores del idioma del generador.
func (g *MarotoReportGenerator) formatMoney(v float64) string {
	return g.printer.Sprintf("%.2f", v)
}

// formatChange: "+67,8 % vs mes anterior" o "-12,5 % vs mes anterior".
func (g *MarotoReportGenerator) formatChange(v float64) string {
	sign := ""
	if v > 0 {
		sign = "+"
	}
	return sign + g.printer.Sprintf("%.1f", v) + " % vs mes anterior"
}

func changeColor(v float64) *props.Color {
	switch {
	case v > 0:
		return colorGreen
	case v < 0:
		return colorRed
	default:
		return colorGray
	}
}
