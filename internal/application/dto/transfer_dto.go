package dto

import (
	"time"

	"github.com/rickyyue315/reallocation-api/internal/domain/entity"
	"github.com/rickyyue315/reallocation-api/internal/domain/transfer"
)

// RecommendationDTO es una recomendación de traslado lista para serializar:
// los subtipos cerrados del dominio salen como etiquetas estables.
type RecommendationDTO struct {
	ArticleID          string `json:"article_id"`
	Description        string `json:"description"`
	OrgUnit            string `json:"org_unit"`
	ReceiveOrgUnit     string `json:"receive_org_unit"`
	TransferSite       string `json:"transfer_site"`
	ReceiveSite        string `json:"receive_site"`
	TransferQty        int    `json:"transfer_qty"`
	OriginalStock      int    `json:"original_stock"`
	AfterTransferStock int    `json:"after_transfer_stock"`
	SafetyStock        int    `json:"safety_stock"`
	MOQ                int    `json:"moq"`
	SupplySubType      string `json:"supply_sub_type"`
	DemandSubType      string `json:"demand_sub_type"`
	Note               string `json:"note"`
}

// ToRecommendationDTO convierte la entidad de dominio a su DTO.
func ToRecommendationDTO(r entity.Recommendation) RecommendationDTO {
	return RecommendationDTO{
		ArticleID:          r.ArticleID,
		Description:        r.Description,
		OrgUnit:            r.OrgUnit,
		ReceiveOrgUnit:     r.ReceiveOrgUnit,
		TransferSite:       r.TransferSite,
		ReceiveSite:        r.ReceiveSite,
		TransferQty:        r.TransferQty,
		OriginalStock:      r.OriginalStock,
		AfterTransferStock: r.AfterTransferStock,
		SafetyStock:        r.SafetyStock,
		MOQ:                r.MOQ,
		SupplySubType:      r.SupplySubType.String(),
		DemandSubType:      r.DemandSubType.String(),
		Note:               r.Note,
	}
}

// ToRecommendationDTOs convierte el lote completo.
func ToRecommendationDTOs(recs []entity.Recommendation) []RecommendationDTO {
	out := make([]RecommendationDTO, 0, len(recs))
	for _, r := range recs {
		out = append(out, ToRecommendationDTO(r))
	}
	return out
}

// AnalysisResultDTO respuesta de POST /api/transfers/analyze.
type AnalysisResultDTO struct {
	RunID             string              `json:"run_id"`
	Mode              string              `json:"mode"`
	SourceFile        string              `json:"source_file"`
	RecordCount       int                 `json:"record_count"`
	NormalizationLogs []string            `json:"normalization_logs,omitempty"`
	Recommendations   []RecommendationDTO `json:"recommendations"`
	Summary           transfer.Summary    `json:"summary"`
	CreatedAt         time.Time           `json:"created_at"`
}

// EstimateResultDTO respuesta de POST /api/transfers/estimate.
type EstimateResultDTO struct {
	SourceFile  string                   `json:"source_file"`
	RecordCount int                      `json:"record_count"`
	Potentials  []transfer.ModePotential `json:"potentials"`
}

// RunResponse es un elemento del historial de ejecuciones.
type RunResponse struct {
	ID                  string    `json:"id"`
	Mode                string    `json:"mode"`
	SourceFile          string    `json:"source_file"`
	RecordCount         int       `json:"record_count"`
	RecommendationCount int       `json:"recommendation_count"`
	TotalTransferQty    int       `json:"total_transfer_qty"`
	DistinctArticles    int       `json:"distinct_articles"`
	DistinctOrgUnits    int       `json:"distinct_org_units"`
	CreatedBy           string    `json:"created_by"`
	CreatedAt           time.Time `json:"created_at"`
}

// ToRunResponse convierte la entidad de historial a su DTO.
func ToRunResponse(run *entity.AnalysisRun) RunResponse {
	return RunResponse{
		ID:                  run.ID,
		Mode:                run.Mode,
		SourceFile:          run.SourceFile,
		RecordCount:         run.RecordCount,
		RecommendationCount: run.RecommendationCount,
		TotalTransferQty:    run.TotalTransferQty,
		DistinctArticles:    run.DistinctArticles,
		DistinctOrgUnits:    run.DistinctOrgUnits,
		CreatedBy:           run.CreatedBy,
		CreatedAt:           run.CreatedAt,
	}
}

// RunListResponse página del historial de ejecuciones.
type RunListResponse struct {
	Items []RunResponse `json:"items"`
	Page  PageResponse  `json:"page"`
}

// RunDetailResponse es un run con sus recomendaciones y resumen recalculado.
type RunDetailResponse struct {
	Run             RunResponse         `json:"run"`
	Recommendations []RecommendationDTO `json:"recommendations"`
	Summary         transfer.Summary    `json:"summary"`
}
