package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/rickyyue315/reallocation-api/internal/domain/entity"
	"github.com/rickyyue315/reallocation-api/internal/domain/transfer"
)

const (
	sheetSuggestions = "Transfer Suggestions"
	sheetSummary     = "Statistical Summary"
)

// ResultExporter serializa recomendaciones y resumen a un libro xlsx con una
// hoja de sugerencias y una de estadísticas.
type ResultExporter struct{}

// NewResultExporter construye el exportador.
func NewResultExporter() *ResultExporter {
	return &ResultExporter{}
}

// Export genera el libro y devuelve sus bytes.
func (e *ResultExporter) Export(recs []entity.Recommendation, summary transfer.Summary) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetSuggestions)

	headers := []string{
		"Article", "Product Desc", "OM", "Transfer Site", "Receive OM",
		"Receive Site", "Transfer Qty", "Original Stock", "After Transfer Stock",
		"Safety Stock", "MOQ", "Transfer Type", "Receive Type", "Notes",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetSuggestions, cell, h)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	f.SetRowStyle(sheetSuggestions, 1, 1, headerStyle)

	for i, r := range recs {
		row := i + 2
		f.SetCellValue(sheetSuggestions, fmt.Sprintf("A%d", row), r.ArticleID)
		f.SetCellValue(sheetSuggestions, fmt.Sprintf("B%d", row), r.Description)
		f.SetCellValue(sheetSuggestions, fmt.Sprintf("C%d", row), r.OrgUnit)
		f.SetCellValue(sheetSuggestions, fmt.Sprintf("D%d", row), r.TransferSite)
		f.SetCellValue(sheetSuggestions, fmt.Sprintf("E%d", row), r.ReceiveOrgUnit)
		f.SetCellValue(sheetSuggestions, fmt.Sprintf("F%d", row), r.ReceiveSite)
		f.SetCellValue(sheetSuggestions, fmt.Sprintf("G%d", row), r.TransferQty)
		f.SetCellValue(sheetSuggestions, fmt.Sprintf("H%d", row), r.OriginalStock)
		f.SetCellValue(sheetSuggestions, fmt.Sprintf("I%d", row), r.AfterTransferStock)
		f.SetCellValue(sheetSuggestions, fmt.Sprintf("J%d", row), r.SafetyStock)
		f.SetCellValue(sheetSuggestions, fmt.Sprintf("K%d", row), r.MOQ)
		f.SetCellValue(sheetSuggestions, fmt.Sprintf("L%d", row), r.SupplySubType.String())
		f.SetCellValue(sheetSuggestions, fmt.Sprintf("M%d", row), r.DemandSubType.String())
		f.SetCellValue(sheetSuggestions, fmt.Sprintf("N%d", row), r.Note)
	}

	f.SetColWidth(sheetSuggestions, "A", "A", 16)
	f.SetColWidth(sheetSuggestions, "B", "B", 32)
	f.SetColWidth(sheetSuggestions, "C", "N", 14)

	e.writeSummarySheet(f, summary, headerStyle)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializar xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

// writeSummarySheet escribe el banner de KPIs y los cuatro desgloses en
// bloques verticales consecutivos.
func (e *ResultExporter) writeSummarySheet(f *excelize.File, summary transfer.Summary, headerStyle int) {
	f.NewSheet(sheetSummary)

	rows := [][]interface{}{
		{"KPI", "Value"},
		{"Recommendations", summary.KPIs.Count},
		{"Total Transfer Qty", summary.KPIs.TotalTransferQty},
		{"Distinct Articles", summary.KPIs.DistinctArticles},
		{"Distinct OMs", summary.KPIs.DistinctOrgUnits},
	}

	blocks := []struct {
		title     string
		secondary string
		data      []transfer.BreakdownRow
	}{
		{"By Article", "OMs", summary.ByArticle},
		{"By OM", "Articles", summary.ByOrgUnit},
		{"By Transfer Type", "Articles", summary.BySupplyType},
		{"By Receive Type", "Articles", summary.ByDemandType},
	}
	for _, b := range blocks {
		rows = append(rows, []interface{}{})
		rows = append(rows, []interface{}{b.title, "Total Qty", "Rows", b.secondary, "Share %"})
		for _, r := range b.data {
			rows = append(rows, []interface{}{r.Key, r.TotalQty, r.Count, r.DistinctSecondary, r.SharePct.String()})
		}
	}

	for i, row := range rows {
		for j, val := range row {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+1)
			f.SetCellValue(sheetSummary, cell, val)
		}
	}
	f.SetRowStyle(sheetSummary, 1, 1, headerStyle)
	f.SetColWidth(sheetSummary, "A", "A", 24)
	f.SetColWidth(sheetSummary, "B", "E", 14)
}
