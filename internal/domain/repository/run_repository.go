package repository

import (
	"context"

	"github.com/rickyyue315/reallocation-api/internal/domain/entity"
)

// RunRepository define el puerto de persistencia para el historial de
// ejecuciones del motor (DIP). Guarda la corrida y sus recomendaciones
// en una sola transacción.
type RunRepository interface {
	Create(ctx context.Context, run *entity.AnalysisRun, recs []entity.Recommendation) error
	GetByID(ctx context.Context, id string) (*entity.AnalysisRun, error)
	List(ctx context.Context, limit, offset int) ([]*entity.AnalysisRun, int, error)
	ListRecommendations(ctx context.Context, runID string) ([]entity.Recommendation, error)
}
