// Package pdf implementa el reporte PDF del resumen de una ejecución del
// motor de traslados.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + modo  │  Archivo fuente + Fecha           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KPIs: filas | unidades | artículos | OMs                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: desglose por artículo (top N)                       │
//	│  TABLA: desglose por OM                                     │
//	│  TABLA: desglose por tipo de salida / recepción             │
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

	"github.com/rickyyue315/reallocation-api/internal/domain/entity"
	"github.com/rickyyue315/reallocation-api/internal/domain/transfer"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// maxBreakdownRows filas máximas por tabla de desglose; el resto se resume.
const maxBreakdownRows = 15

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa transfer.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateRunReport genera el PDF del resumen y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateRunReport(run *entity.AnalysisRun, summary transfer.Summary) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Resumen de traslados", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(run))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(kpiRow(summary.KPIs))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	sections := []struct {
		title     string
		secondary string
		rows      []transfer.BreakdownRow
	}{
		{"DESGLOSE POR ARTÍCULO", "OMs", summary.ByArticle},
		{"DESGLOSE POR OM", "Artículos", summary.ByOrgUnit},
		{"DESGLOSE POR TIPO DE SALIDA", "Artículos", summary.BySupplyType},
		{"DESGLOSE POR TIPO DE RECEPCIÓN", "Artículos", summary.ByDemandType},
	}
	for _, s := range sections {
		m.AddRows(sectionTitleRow(s.title))
		m.AddRows(breakdownHeaderRow(s.secondary))
		for _, r := range breakdownRows(s.rows) {
			m.AddRows(r)
		}
		m.AddRows(line.NewRow(2))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título + modo (izq) y archivo fuente + fecha (der).
func headerRow(run *entity.AnalysisRun) core.Row {
	fecha := run.CreatedAt.Format("02/01/2006 15:04")

	return row.New(18).Add(
		col.New(7).Add(
			text.New("RESUMEN DE TRASLADOS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Modo: "+run.Mode, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(nonEmpty(run.SourceFile, "—"), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 3,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

// kpiRow: banner de cuatro indicadores.
func kpiRow(k transfer.KPIs) core.Row {
	kpi := func(label string, value int) core.Col {
		return col.New(3).Add(
			text.New(fmt.Sprintf("%d", value), props.Text{
				Style: fontstyle.Bold, Size: 14, Align: align.Center,
				Color: colorPrimary, Top: 1,
			}),
			text.New(label, props.Text{
				Size: 7, Align: align.Center, Top: 9, Color: colorGray,
			}),
		)
	}
	return row.New(16).Add(
		kpi("Recomendaciones", k.Count),
		kpi("Unidades a trasladar", k.TotalTransferQty),
		kpi("Artículos", k.DistinctArticles),
		kpi("OMs involucradas", k.DistinctOrgUnits),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
		}),
	))
}

// breakdownHeaderRow: cabecera de la tabla de desglose.
func breakdownHeaderRow(secondary string) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(
		h("Clave", 5, align.Left),
		h("Unidades", 2, align.Right),
		h("Filas", 2, align.Right),
		h(secondary, 2, align.Right),
		h("%", 1, align.Right),
	)
}

// breakdownRows: una fila por clave, con tope de maxBreakdownRows.
func breakdownRows(data []transfer.BreakdownRow) []core.Row {
	shown := data
	var rest int
	if len(shown) > maxBreakdownRows {
		for _, r := range shown[maxBreakdownRows:] {
			rest += r.TotalQty
		}
		shown = shown[:maxBreakdownRows]
	}

	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{
			Size: 8, Align: a, Top: 0.5, Left: 1, Right: 1,
		}))
	}

	result := make([]core.Row, 0, len(shown)+1)
	for _, r := range shown {
		result = append(result, row.New(5).Add(
			cell(r.Key, 5, align.Left),
			cell(fmt.Sprintf("%d", r.TotalQty), 2, align.Right),
			cell(fmt.Sprintf("%d", r.Count), 2, align.Right),
			cell(fmt.Sprintf("%d", r.DistinctSecondary), 2, align.Right),
			cell(r.SharePct.StringFixed(1), 1, align.Right),
		))
	}
	if rest > 0 {
		result = append(result, row.New(5).Add(
			col.New(5).Add(text.New(
				fmt.Sprintf("… y %d claves más", len(data)-maxBreakdownRows),
				props.Text{Size: 8, Color: colorGray, Top: 0.5, Left: 1},
			)),
			cell(fmt.Sprintf("%d", rest), 2, align.Right),
		))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
