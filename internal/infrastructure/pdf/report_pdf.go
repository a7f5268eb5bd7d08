// Package pdf implementa la generación del resumen CRA en PDF para el
// dashboard de lender.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Lender + periodo                                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA CRA: Área | Préstamos LMI | Totales | % LMI          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA INVERSIONES: Proyecto | Monto | Tasa | Plazo         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda de generación                              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
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
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/Vivienda-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 16, Green: 78, Blue: 66}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var usPrinter = message.NewPrinter(language.AmericanEnglish)

// MarotoReportGenerator implementa reporting.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateCRAReportPDF genera el PDF del resumen CRA y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateCRAReportPDF(
	_ context.Context,
	company *entity.Company,
	period string,
	metrics []*entity.CRAMetric,
	investments []*entity.Investment,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("CRA Summary "+period, true).
		WithAuthor(company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(company, period))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionTitle("CRA COMPLIANCE"))
	m.AddRows(craHeaderRow())
	for _, r := range craMetricRows(metrics) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(sectionTitle("INVESTMENTS"))
	m.AddRows(investmentHeaderRow())
	for _, r := range investmentRows(investments) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(period))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(company *entity.Company, period string) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(company.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Community Reinvestment Act — Summary", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("PERIOD", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(period, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
		),
	)
}

func sectionTitle(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
		}),
	))
}

func craHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Assessment Area", 4, align.Left),
		h("LMI Loans", 2, align.Right),
		h("Total Loans", 2, align.Right),
		h("LMI Amount", 2, align.Right),
		h("LMI %", 2, align.Right),
	)
}

func craMetricRows(metrics []*entity.CRAMetric) []core.Row {
	result := make([]core.Row, 0, len(metrics))
	for _, m := range metrics {
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(m.AssessmentArea, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(2).Add(text.New(fmt.Sprintf("%d", m.LMILoans), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
			col.New(2).Add(text.New(fmt.Sprintf("%d", m.TotalLoans), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
			col.New(2).Add(text.New(formatMoney(m.LMIAmount), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
			col.New(2).Add(text.New(lmiShare(m), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return result
}

func investmentHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Project", 4, align.Left),
		h("Amount", 3, align.Right),
		h("Rate", 2, align.Right),
		h("Term", 2, align.Right),
		h("Status", 1, align.Left),
	)
}

func investmentRows(investments []*entity.Investment) []core.Row {
	result := make([]core.Row, 0, len(investments))
	for _, inv := range investments {
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(inv.ProjectID, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(3).Add(text.New(formatMoney(inv.Amount), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
			col.New(2).Add(text.New(inv.Rate.StringFixed(2)+"%", props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
			col.New(2).Add(text.New(fmt.Sprintf("%d mo", inv.TermMonths), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
			col.New(1).Add(text.New(inv.Status, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
		))
	}
	return result
}

func footerRow(period string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Generated for CRA compliance review, period "+period+". "+
				"Figures reflect the data available at generation time.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatMoney formatea un monto en dólares con separador de miles en-US.
func formatMoney(d decimal.Decimal) string {
	return usPrinter.Sprintf("$%d", d.Round(0).IntPart())
}

// lmiShare porcentaje de préstamos LMI sobre el total.
func lmiShare(m *entity.CRAMetric) string {
	if m.TotalLoans == 0 {
		return "—"
	}
	return fmt.Sprintf("%.1f%%", float64(m.LMILoans)/float64(m.TotalLoans)*100)
}
