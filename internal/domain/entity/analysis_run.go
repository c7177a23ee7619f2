package entity

import "time"

// AnalysisRun es el registro histórico de una ejecución del motor de traslados:
// qué archivo se procesó, bajo qué modo y con qué KPIs resultantes.
// El motor en sí no lee este historial; es auditoría de salidas.
type AnalysisRun struct {
	ID                  string
	Mode                string
	SourceFile          string
	RecordCount         int
	RecommendationCount int
	TotalTransferQty    int
	DistinctArticles    int
	DistinctOrgUnits    int
	CreatedBy           string
	CreatedAt           time.Time
}
