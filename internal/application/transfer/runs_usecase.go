package transfer

import (
	"context"

	"github.com/rickyyue315/reallocation-api/internal/application/dto"
	"github.com/rickyyue315/reallocation-api/internal/domain"
	"github.com/rickyyue315/reallocation-api/internal/domain/entity"
	"github.com/rickyyue315/reallocation-api/internal/domain/repository"
	"github.com/rickyyue315/reallocation-api/internal/domain/transfer"
)

// RunQueryUseCase consulta el historial de ejecuciones y produce los
// artefactos de salida (xlsx, PDF) de un run persistido.
type RunQueryUseCase struct {
	runRepo  repository.RunRepository
	exporter ResultExporter
	reports  ReportGenerator
}

// NewRunQueryUseCase construye el caso de uso de consultas de historial.
func NewRunQueryUseCase(runRepo repository.RunRepository, exporter ResultExporter, reports ReportGenerator) *RunQueryUseCase {
	return &RunQueryUseCase{runRepo: runRepo, exporter: exporter, reports: reports}
}

// ListRuns devuelve una página del historial, más reciente primero.
func (uc *RunQueryUseCase) ListRuns(ctx context.Context, page dto.PageRequest) (*dto.RunListResponse, error) {
	page.DefaultPage()
	runs, total, err := uc.runRepo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RunResponse, 0, len(runs))
	for _, r := range runs {
		items = append(items, dto.ToRunResponse(r))
	}
	return &dto.RunListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// GetRun devuelve un run con sus recomendaciones y el resumen recalculado.
func (uc *RunQueryUseCase) GetRun(ctx context.Context, id string) (*dto.RunDetailResponse, error) {
	run, recs, err := uc.loadRun(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.RunDetailResponse{
		Run:             dto.ToRunResponse(run),
		Recommendations: dto.ToRecommendationDTOs(recs),
		Summary:         transfer.Aggregate(recs),
	}, nil
}

// ExportRun serializa las recomendaciones de un run a xlsx.
func (uc *RunQueryUseCase) ExportRun(ctx context.Context, id string) ([]byte, error) {
	_, recs, err := uc.loadRun(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.exporter.Export(recs, transfer.Aggregate(recs))
}

// ReportRun genera el PDF del resumen de un run.
func (uc *RunQueryUseCase) ReportRun(ctx context.Context, id string) ([]byte, error) {
	run, recs, err := uc.loadRun(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.reports.GenerateRunReport(run, transfer.Aggregate(recs))
}

func (uc *RunQueryUseCase) loadRun(ctx context.Context, id string) (*entity.AnalysisRun, []entity.Recommendation, error) {
	run, err := uc.runRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if run == nil {
		return nil, nil, domain.ErrNotFound
	}
	recs, err := uc.runRepo.ListRecommendations(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return run, recs, nil
}
