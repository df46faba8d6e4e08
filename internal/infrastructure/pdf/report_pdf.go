// Package pdf implementa la exportación del reporte de inventario y ventas
// usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + usuario + fecha de generación              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA VENTAS: Producto | Cant | Total | Fecha               │
//	│  TOTAL VENDIDO                                               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA STOCK: Producto | Cant | Mínimo                       │
//	│  TOTAL UNIDADES                                              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

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

	"github.com/jhoicas/Ventas-api/internal/application/dto"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ReportGenerator genera el PDF del reporte de inventario y ventas.
type ReportGenerator struct{}

// NewReportGenerator construye el generador.
func NewReportGenerator() *ReportGenerator { return &ReportGenerator{} }

// Generate genera el PDF del reporte y devuelve sus bytes.
func (g *ReportGenerator) Generate(report *dto.ReportResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de inventario y ventas", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	// Ventas
	m.AddRows(sectionTitleRow("VENTAS"))
	m.AddRows(salesHeaderRow())
	for _, r := range salesRows(report.Sales) {
		m.AddRows(r)
	}
	m.AddRows(totalRow("Total vendido:", "$"+report.TotalSales.StringFixed(2)))

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Stock
	m.AddRows(sectionTitleRow("EXISTENCIAS"))
	m.AddRows(stockHeaderRow())
	for _, r := range stockRows(report.Stocks) {
		m.AddRows(r)
	}
	m.AddRows(totalRow("Total unidades en stock:", fmt.Sprintf("%d", report.TotalStock)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y usuario + fecha (der).
func headerRow(report *dto.ReportResponse) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("REPORTE DE INVENTARIO Y VENTAS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(5).Add(
			text.New("Usuario: "+report.Username, props.Text{
				Size: 9, Align: align.Right, Top: 2,
			}),
			text.New("Generado: "+report.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2,
		}),
	))
}

func salesHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1,
		}))
	}
	return row.New(6).Add(
		h("Producto", 5, align.Left),
		h("Cantidad", 2, align.Center),
		h("Total", 2, align.Right),
		h("Fecha", 3, align.Right),
	)
}

func salesRows(sales []dto.SaleResponse) []core.Row {
	result := make([]core.Row, 0, len(sales))
	for _, s := range sales {
		result = append(result, row.New(5).Add(
			col.New(5).Add(text.New(s.ProductName, props.Text{Size: 8, Align: align.Left})),
			col.New(2).Add(text.New(fmt.Sprintf("%d", s.Quantity), props.Text{Size: 8, Align: align.Center})),
			col.New(2).Add(text.New("$"+s.TotalPrice.StringFixed(2), props.Text{Size: 8, Align: align.Right})),
			col.New(3).Add(text.New(s.DateSold.Format("02/01/2006"), props.Text{Size: 8, Align: align.Right, Color: colorGray})),
		))
	}
	return result
}

func stockHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1,
		}))
	}
	return row.New(6).Add(
		h("Producto", 6, align.Left),
		h("Cantidad", 3, align.Center),
		h("Mínimo", 3, align.Right),
	)
}

func stockRows(stocks []dto.StockResponse) []core.Row {
	result := make([]core.Row, 0, len(stocks))
	for _, s := range stocks {
		result = append(result, row.New(5).Add(
			col.New(6).Add(text.New(s.ProductName, props.Text{Size: 8, Align: align.Left})),
			col.New(3).Add(text.New(fmt.Sprintf("%d", s.Quantity), props.Text{Size: 8, Align: align.Center})),
			col.New(3).Add(text.New(fmt.Sprintf("%d", s.MinimumQuantity), props.Text{Size: 8, Align: align.Right, Color: colorGray})),
		))
	}
	return result
}

func totalRow(label, value string) core.Row {
	return row.New(8).Add(
		col.New(6),
		col.New(3).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2, Right: 2,
		})),
		col.New(3).Add(text.New(value, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2,
			Color: colorPrimary,
		})),
	)
}
