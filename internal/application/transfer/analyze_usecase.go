package transfer

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rickyyue315/reallocation-api/internal/application/dto"
	"github.com/rickyyue315/reallocation-api/internal/domain"
	"github.com/rickyyue315/reallocation-api/internal/domain/entity"
	"github.com/rickyyue315/reallocation-api/internal/domain/repository"
	"github.com/rickyyue315/reallocation-api/internal/domain/transfer"
)

// AnalyzeUseCase ejecuta el pipeline completo de análisis de traslados:
// lectura del snapshot, clasificación, emparejamiento, agregación y
// registro del run en el historial.
type AnalyzeUseCase struct {
	reader  SnapshotReader
	runRepo repository.RunRepository // nil en modo batch: sin historial
}

// NewAnalyzeUseCase construye el caso de uso. runRepo puede ser nil
// cuando no se quiere persistir historial (CLI).
func NewAnalyzeUseCase(reader SnapshotReader, runRepo repository.RunRepository) *AnalyzeUseCase {
	return &AnalyzeUseCase{reader: reader, runRepo: runRepo}
}

// AnalyzeInputDTO entrada para un análisis: el archivo xlsx, el modo de
// estrategia y el usuario que lo pide.
type AnalyzeInputDTO struct {
	SourceFile string
	Mode       string
	UserID     string
	Data       io.Reader
}

// Analyze corre el motor sobre el snapshot y devuelve recomendaciones,
// resumen y el ID del run persistido. ErrUnknownMode si el modo no
// existe, ErrEmptySnapshot si el archivo no trae filas válidas.
func (uc *AnalyzeUseCase) Analyze(ctx context.Context, input AnalyzeInputDTO) (*dto.AnalysisResultDTO, error) {
	mode, err := transfer.ParseMode(input.Mode)
	if err != nil {
		return nil, err
	}
	records, logs, err := uc.reader.Read(input.Data)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, domain.ErrEmptySnapshot
	}

	supply, demand := transfer.Classify(records, mode)
	recs := transfer.Match(supply, demand, mode)
	summary := transfer.Aggregate(recs)

	run := &entity.AnalysisRun{
		ID:                  uuid.New().String(),
		Mode:                string(mode),
		SourceFile:          input.SourceFile,
		RecordCount:         len(records),
		RecommendationCount: summary.KPIs.Count,
		TotalTransferQty:    summary.KPIs.TotalTransferQty,
		DistinctArticles:    summary.KPIs.DistinctArticles,
		DistinctOrgUnits:    summary.KPIs.DistinctOrgUnits,
		CreatedBy:           input.UserID,
		CreatedAt:           time.Now(),
	}
	if uc.runRepo != nil {
		if err := uc.runRepo.Create(ctx, run, recs); err != nil {
			return nil, err
		}
	}

	return &dto.AnalysisResultDTO{
		RunID:             run.ID,
		Mode:              run.Mode,
		SourceFile:        run.SourceFile,
		RecordCount:       run.RecordCount,
		NormalizationLogs: logs,
		Recommendations:   dto.ToRecommendationDTOs(recs),
		Summary:           summary,
		CreatedAt:         run.CreatedAt,
	}, nil
}
