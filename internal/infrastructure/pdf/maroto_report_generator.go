// Package pdf genera el reporte de resultado mensual en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del negocio │ Mes + rango de fechas          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Concepto | Monto                                     │
//	│    Ingresos / Costo de ventas / Utilidad bruta               │
//	│    Gastos operativos / UTILIDAD NETA                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PIE: fecha de generación                                    │
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
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// amountPrinter agrupa miles con la convención española ($1.250.000,50).
var amountPrinter = message.NewPrinter(language.Spanish)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa reporting.MonthResultPDFGenerator usando
// Maroto v2.
type MarotoReportGenerator struct {
	businessName string
}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator(businessName string) *MarotoReportGenerator {
	return &MarotoReportGenerator{businessName: businessName}
}

// GenerateMonthResultPDF genera el PDF del resultado mensual y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateMonthResultPDF(_ context.Context, result *dto.MonthResultDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Resultado mensual "+result.Label, true).
		WithAuthor(g.businessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.businessName, result))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	m.AddRows(
		conceptRow("Ingresos por ventas", result.Income, false),
		conceptRow("Costo de ventas", result.Cost.Neg(), false),
		conceptRow("Utilidad bruta", result.GrossProfit, true),
		conceptRow("Gastos operativos", result.Expenses.Neg(), false),
	)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(netProfitRow(result.NetProfit))
	m.AddRows(line.NewRow(4))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del negocio (izq) y mes + rango de fechas (der).
func headerRow(businessName string, result *dto.MonthResultDTO) core.Row {
	rango := fmt.Sprintf("%s — %s",
		result.Start.Format("02/01/2006"),
		result.End.Format("02/01/2006"),
	)
	return row.New(18).Add(
		col.New(7).Add(
			text.New(businessName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Estado de resultados", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("RESULTADO MENSUAL", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(result.Label, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New(rango, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera Concepto | Monto.
func tableHeaderRow() core.Row {
	return row.New(8).Add(
		col.New(8).Add(text.New("Concepto", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2, Left: 1,
		})),
		col.New(4).Add(text.New("Monto", props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}

// conceptRow: una línea del estado de resultados. Los montos negativos
// (costos y gastos) van en rojo.
func conceptRow(label string, amount decimal.Decimal, bold bool) core.Row {
	style := fontstyle.Normal
	if bold {
		style = fontstyle.Bold
	}
	amountColor := colorGray
	if amount.IsNegative() {
		amountColor = colorRed
	}
	return row.New(7).Add(
		col.New(8).Add(text.New(label, props.Text{
			Style: style, Size: 9, Top: 1, Left: 1,
		})),
		col.New(4).Add(text.New(formatAmount(amount), props.Text{
			Style: style, Size: 9, Align: align.Right,
			Color: amountColor, Top: 1, Right: 1,
		})),
	)
}

// netProfitRow: utilidad neta resaltada.
func netProfitRow(net decimal.Decimal) core.Row {
	amountColor := colorPrimary
	if net.IsNegative() {
		amountColor = colorRed
	}
	return row.New(10).Add(
		col.New(8).Add(text.New("UTILIDAD NETA", props.Text{
			Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 2, Left: 1,
		})),
		col.New(4).Add(text.New(formatAmount(net), props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: amountColor, Top: 2, Right: 1,
		})),
	)
}

func footerRow() core.Row {
	generado := "Generado el " + time.Now().Format("02/01/2006 15:04")
	return row.New(6).Add(col.New(12).Add(
		text.New(generado, props.Text{Size: 7, Color: colorGray, Top: 1}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatAmount formatea un monto con separador de miles, ej: "$1.250.000,50".
func formatAmount(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return amountPrinter.Sprintf("$%.2f", f)
}
