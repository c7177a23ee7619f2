package transfer

import (
	"io"

	"github.com/rickyyue315/reallocation-api/internal/domain/entity"
	"github.com/rickyyue315/reallocation-api/internal/domain/transfer"
)

// SnapshotReader lee un snapshot de inventario desde un archivo xlsx:
// devuelve los registros normalizados más las notas de normalización
// (filas excluidas, valores ajustados).
type SnapshotReader interface {
	Read(r io.Reader) ([]entity.StockRecord, []string, error)
}

// ResultExporter serializa recomendaciones y resumen a un libro xlsx.
type ResultExporter interface {
	Export(recs []entity.Recommendation, summary transfer.Summary) ([]byte, error)
}

// ReportGenerator genera el reporte PDF del resumen de una ejecución.
type ReportGenerator interface {
	GenerateRunReport(run *entity.AnalysisRun, summary transfer.Summary) ([]byte, error)
}
