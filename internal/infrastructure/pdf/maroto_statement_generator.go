// Package pdf implementa el render de la liquidación mensual por proveedor
// usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + GST  │  Mes liquidado + Proveedor        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Categoría | Cant | P.Unit | Importe                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DEVOLUCIONES: Categoría | Cant | Importe                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Piezas / Bruto / Devoluciones / NETO A PAGAR       │
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

	appreports "github.com/tu-usuario/textil-ops/internal/application/reports"
	"github.com/tu-usuario/textil-ops/internal/domain/entity"
	"github.com/tu-usuario/textil-ops/internal/domain/report"
)

var _ appreports.StatementPDFGenerator = (*MarotoStatementGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 79, Green: 70, Blue: 229}
	colorGray    = &props.Color{Red: 100, Green: 116, Blue: 139}
	colorDark    = &props.Color{Red: 30, Green: 41, Blue: 59}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoStatementGenerator implementa reports.StatementPDFGenerator con
// Maroto v2. Los importes se formatean con separador de miles y el símbolo de
// moneda del perfil de empresa.
type MarotoStatementGenerator struct {
	printer *message.Printer
}

// NewMarotoStatementGenerator construye el generador.
func NewMarotoStatementGenerator() *MarotoStatementGenerator {
	return &MarotoStatementGenerator{printer: message.NewPrinter(language.English)}
}

// GenerateStatementPDF genera el PDF de la liquidación y devuelve sus bytes.
func (g *MarotoStatementGenerator) GenerateStatementPDF(
	_ context.Context,
	month time.Time,
	supplierLabel string,
	company *entity.Settings,
	st *report.Statement,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Liquidación mensual", true).
		WithAuthor(company.CompanyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRows(month, supplierLabel, company)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionTitle("Desglose por categoría"))
	m.AddRows(g.breakdownRows(st, company.CurrencySymbol)...)

	if len(st.Returns) > 0 {
		m.AddRows(sectionTitle("Devoluciones"))
		m.AddRows(g.returnRows(st, company.CurrencySymbol)...)
	}

	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.summaryRows(st, company.CurrencySymbol)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("maroto generate: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *MarotoStatementGenerator) headerRows(month time.Time, supplierLabel string, company *entity.Settings) []core.Row {
	gst := ""
	if company.CompanyGST != "" {
		gst = "GST: " + company.CompanyGST
	}
	return []core.Row{
		row.New(14).Add(
			col.New(7).Add(
				text.New(company.CompanyName, props.Text{Size: 16, Style: fontstyle.Bold, Color: colorPrimary}),
				text.New(gst, props.Text{Top: 8, Size: 8, Color: colorGray}),
			),
			col.New(5).Add(
				text.New("Liquidación "+month.Format("January 2006"), props.Text{Size: 11, Style: fontstyle.Bold, Align: align.Right, Color: colorDark}),
				text.New(supplierLabel, props.Text{Top: 6, Size: 9, Align: align.Right, Color: colorGray}),
			),
		),
	}
}

func sectionTitle(title string) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(title, props.Text{Top: 2, Size: 10, Style: fontstyle.Bold, Color: colorDark}),
		),
	)
}

func (g *MarotoStatementGenerator) breakdownRows(st *report.Statement, symbol string) []core.Row {
	rows := []core.Row{
		row.New(6).Add(
			headerCell("Categoría", 5, align.Left),
			headerCell("Cantidad", 2, align.Right),
			headerCell("P. Unit", 2, align.Right),
			headerCell("Importe", 3, align.Right),
		),
	}
	for _, category := range st.Breakdown.Categories() {
		l, _ := st.Breakdown.Line(category)
		rows = append(rows, row.New(5).Add(
			bodyCell(category, 5, align.Left),
			bodyCell(fmt.Sprintf("%d", l.Quantity), 2, align.Right),
			bodyCell(g.money(l.Price, symbol), 2, align.Right),
			bodyCell(g.money(l.Amount, symbol), 3, align.Right),
		))
	}
	if st.Breakdown.Len() == 0 {
		rows = append(rows, row.New(5).Add(
			col.New(12).Add(text.New("Sin movimientos en el mes", props.Text{Size: 8, Color: colorGray})),
		))
	}
	return rows
}

func (g *MarotoStatementGenerator) returnRows(st *report.Statement, symbol string) []core.Row {
	rows := []core.Row{
		row.New(6).Add(
			headerCell("Fecha", 2, align.Left),
			headerCell("Categoría", 5, align.Left),
			headerCell("Cantidad", 2, align.Right),
			headerCell("Importe", 3, align.Right),
		),
	}
	for _, ret := range st.Returns {
		rows = append(rows, row.New(5).Add(
			bodyCell(ret.Date.Format("02/01/2006"), 2, align.Left),
			bodyCell(ret.CategoryName, 5, align.Left),
			bodyCell(fmt.Sprintf("%d", ret.Quantity), 2, align.Right),
			bodyCell(g.money(ret.Amount(), symbol), 3, align.Right),
		))
	}
	return rows
}

func (g *MarotoStatementGenerator) summaryRows(st *report.Statement, symbol string) []core.Row {
	s := st.Summary
	return []core.Row{
		summaryRow("Piezas totales", fmt.Sprintf("%d", s.TotalPieces), false),
		summaryRow("Importe bruto", g.money(s.GrossAmount, symbol), false),
		summaryRow(fmt.Sprintf("Devoluciones (%d uds)", s.TotalReturnsQty), "− "+g.money(s.TotalReturnsAmount, symbol), false),
		summaryRow("NETO A PAGAR", g.money(s.NetPayable, symbol), true),
	}
}

func summaryRow(label, value string, highlight bool) core.Row {
	style := fontstyle.Normal
	color := colorDark
	size := 9.0
	if highlight {
		style = fontstyle.Bold
		color = colorPrimary
		size = 11
	}
	return row.New(6).Add(
		col.New(8).Add(text.New(label, props.Text{Size: size, Style: style, Align: align.Right, Color: colorGray})),
		col.New(4).Add(text.New(value, props.Text{Size: size, Style: style, Align: align.Right, Color: color})),
	)
}

func headerCell(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(
		text.New(label, props.Text{Size: 8, Style: fontstyle.Bold, Align: a, Color: colorGray}),
	)
}

func bodyCell(value string, size int, a align.Type) core.Col {
	return col.New(size).Add(
		text.New(value, props.Text{Size: 8, Align: a, Color: colorDark}),
	)
}

// money formatea un importe con separador de miles y el símbolo de moneda del
// perfil, ej. "₹1,234.50". Solo presentación; los cálculos siguen en decimal.
func (g *MarotoStatementGenerator) money(amount decimal.Decimal, symbol string) string {
	return g.printer.Sprintf("%s%.2f", symbol, amount.InexactFloat64())
}
