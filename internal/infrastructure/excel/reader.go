package excel

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/rickyyue315/reallocation-api/internal/domain"
	"github.com/rickyyue315/reallocation-api/internal/domain/entity"
)

// Nombres de columna del snapshot de inventario tal como los exporta el ERP.
const (
	colArticle     = "Article"
	colDescription = "Article Description"
	colDescAlt     = "Product Desc"
	colRPType      = "RP Type"
	colSite        = "Site"
	colOrgUnit     = "OM"
	colMOQ         = "MOQ"
	colNetStock    = "SaSa Net Stock"
	colPending     = "Pending Received"
	colSafety      = "Safety Stock"
	colLastMonth   = "Last Month Sold Qty"
	colMTD         = "MTD Sold Qty"
)

// maxSoldQty tope de ventas; valores mayores se consideran error de captura.
const maxSoldQty = 100000

// SnapshotReader lee snapshots de inventario desde libros xlsx y los
// normaliza a registros del dominio.
type SnapshotReader struct{}

// NewSnapshotReader construye el lector.
func NewSnapshotReader() *SnapshotReader {
	return &SnapshotReader{}
}

// Read abre el libro, toma la primera hoja y devuelve los registros
// normalizados más las notas de normalización (valores ajustados, filas
// excluidas). Columnas obligatorias: Article, Site, RP Type; las demás se
// rellenan con 0 / "" si faltan.
func (p *SnapshotReader) Read(r io.Reader) ([]entity.StockRecord, []string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("abrir xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, domain.ErrEmptySnapshot
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("leer hoja %q: %w", sheets[0], err)
	}
	if len(rows) <= 1 {
		return nil, nil, domain.ErrEmptySnapshot
	}

	header := rows[0]
	colIndex := make(map[string]int, len(header))
	for i, h := range header {
		colIndex[strings.TrimSpace(h)] = i
	}
	for _, required := range []string{colArticle, colSite, colRPType} {
		if _, ok := colIndex[required]; !ok {
			return nil, nil, fmt.Errorf("%w: %s", domain.ErrMissingColumn, required)
		}
	}

	var logs []string
	for _, optional := range []string{colMOQ, colNetStock, colPending, colSafety, colLastMonth, colMTD} {
		if _, ok := colIndex[optional]; !ok {
			logs = append(logs, fmt.Sprintf("columna %q ausente, rellenada con 0", optional))
		}
	}
	if _, ok := colIndex[colOrgUnit]; !ok {
		logs = append(logs, fmt.Sprintf("columna %q ausente, rellenada con cadena vacía", colOrgUnit))
	}

	records := make([]entity.StockRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rowNum := i + 2
		rec, rowLogs, ok := p.parseRow(row, colIndex, rowNum)
		logs = append(logs, rowLogs...)
		if !ok {
			continue
		}
		records = append(records, rec)
	}

	return records, logs, nil
}

func (p *SnapshotReader) parseRow(row []string, colIndex map[string]int, rowNum int) (entity.StockRecord, []string, bool) {
	var logs []string

	getValue := func(field string) string {
		if idx, ok := colIndex[field]; ok && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}
	getInt := func(field string) int {
		val := getValue(field)
		if val == "" {
			return 0
		}
		val = strings.ReplaceAll(val, ",", "")
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			logs = append(logs, fmt.Sprintf("fila %d: valor no numérico %q en %q ajustado a 0", rowNum, val, field))
			return 0
		}
		return int(f)
	}
	clampStock := func(field string) int {
		n := getInt(field)
		if n < 0 {
			logs = append(logs, fmt.Sprintf("fila %d: %q negativo ajustado a 0", rowNum, field))
			return 0
		}
		return n
	}
	clampSold := func(field string) int {
		n := clampStock(field)
		if n > maxSoldQty {
			logs = append(logs, fmt.Sprintf("fila %d: %q mayor a %d ajustado al tope", rowNum, field, maxSoldQty))
			return maxSoldQty
		}
		return n
	}

	article := normalizeArticle(getValue(colArticle))
	site := getValue(colSite)
	if article == "" || site == "" {
		logs = append(logs, fmt.Sprintf("fila %d: Article o Site vacío, fila excluida", rowNum))
		return entity.StockRecord{}, logs, false
	}

	rpType := entity.ReplenishmentType(strings.ToUpper(getValue(colRPType)))
	if !rpType.Valid() {
		logs = append(logs, fmt.Sprintf("fila %d: RP Type desconocido %q, fila excluida", rowNum, getValue(colRPType)))
		return entity.StockRecord{}, logs, false
	}

	lastMonth := clampSold(colLastMonth)
	mtd := clampSold(colMTD)
	sold := lastMonth
	if sold == 0 {
		sold = mtd
	}

	desc := getValue(colDescription)
	if desc == "" {
		desc = getValue(colDescAlt)
	}

	rec := entity.StockRecord{
		ArticleID:         article,
		Description:       desc,
		ReplenishmentType: rpType,
		Site:              site,
		OrgUnit:           getValue(colOrgUnit),
		MOQ:               clampStock(colMOQ),
		NetStock:          clampStock(colNetStock),
		PendingReceived:   clampStock(colPending),
		SafetyStock:       clampStock(colSafety),
		EffectiveSoldQty:  sold,
	}
	return rec, logs, true
}

// normalizeArticle fuerza el código de artículo a 12 dígitos con ceros a la
// izquierda cuando es puramente numérico; de lo contrario solo se recorta.
func normalizeArticle(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return s
		}
	}
	if len(s) >= 12 {
		return s
	}
	return strings.Repeat("0", 12-len(s)) + s
}
