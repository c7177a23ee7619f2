package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rickyyue315/reallocation-api/internal/domain/entity"
	"github.com/rickyyue315/reallocation-api/internal/domain/repository"
)

var _ repository.RunRepository = (*RunRepo)(nil)

// RunRepo implementación del puerto RunRepository sobre PostgreSQL.
// Una ejecución vive en analysis_runs; sus recomendaciones en
// transfer_recommendations, insertadas en la misma transacción.
type RunRepo struct {
	pool *pgxpool.Pool
}

// NewRunRepository construye el adaptador de persistencia de historial.
func NewRunRepository(pool *pgxpool.Pool) *RunRepo {
	return &RunRepo{pool: pool}
}

// Create persiste el run y sus recomendaciones atómicamente.
func (r *RunRepo) Create(ctx context.Context, run *entity.AnalysisRun, recs []entity.Recommendation) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO analysis_runs
			(id, mode, source_file, record_count, recommendation_count,
			 total_transfer_qty, distinct_articles, distinct_org_units, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		run.ID, run.Mode, run.SourceFile, run.RecordCount, run.RecommendationCount,
		run.TotalTransferQty, run.DistinctArticles, run.DistinctOrgUnits, run.CreatedBy, run.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for i, rec := range recs {
		_, err = tx.Exec(ctx, `
			INSERT INTO transfer_recommendations
				(run_id, seq, article_id, description, org_unit, receive_org_unit,
				 transfer_site, receive_site, transfer_qty, original_stock,
				 after_transfer_stock, safety_stock, moq, supply_sub_type, demand_sub_type, note)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
			run.ID, i, rec.ArticleID, rec.Description, rec.OrgUnit, rec.ReceiveOrgUnit,
			rec.TransferSite, rec.ReceiveSite, rec.TransferQty, rec.OriginalStock,
			rec.AfterTransferStock, rec.SafetyStock, rec.MOQ,
			int(rec.SupplySubType), int(rec.DemandSubType), rec.Note,
		)
		if err != nil {
			return fmt.Errorf("insert recommendation %d: %w", i, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// GetByID obtiene un run por ID; nil si no existe.
func (r *RunRepo) GetByID(ctx context.Context, id string) (*entity.AnalysisRun, error) {
	query := `
		SELECT id, mode, source_file, record_count, recommendation_count,
		       total_transfer_qty, distinct_articles, distinct_org_units, created_by, created_at
		FROM analysis_runs WHERE id = $1`
	var run entity.AnalysisRun
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&run.ID, &run.Mode, &run.SourceFile, &run.RecordCount, &run.RecommendationCount,
		&run.TotalTransferQty, &run.DistinctArticles, &run.DistinctOrgUnits, &run.CreatedBy, &run.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get run by id: %w", err)
	}
	return &run, nil
}

// List lista runs con paginación, más reciente primero, junto al total.
func (r *RunRepo) List(ctx context.Context, limit, offset int) ([]*entity.AnalysisRun, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM analysis_runs`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count runs: %w", err)
	}

	query := `
		SELECT id, mode, source_file, record_count, recommendation_count,
		       total_transfer_qty, distinct_articles, distinct_org_units, created_by, created_at
		FROM analysis_runs ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var list []*entity.AnalysisRun
	for rows.Next() {
		var run entity.AnalysisRun
		if err := rows.Scan(
			&run.ID, &run.Mode, &run.SourceFile, &run.RecordCount, &run.RecommendationCount,
			&run.TotalTransferQty, &run.DistinctArticles, &run.DistinctOrgUnits, &run.CreatedBy, &run.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan run: %w", err)
		}
		list = append(list, &run)
	}
	return list, total, rows.Err()
}

// ListRecommendations devuelve las recomendaciones de un run en su orden de emisión.
func (r *RunRepo) ListRecommendations(ctx context.Context, runID string) ([]entity.Recommendation, error) {
	query := `
		SELECT article_id, description, org_unit, receive_org_unit,
		       transfer_site, receive_site, transfer_qty, original_stock,
		       after_transfer_stock, safety_stock, moq, supply_sub_type, demand_sub_type, note
		FROM transfer_recommendations WHERE run_id = $1 ORDER BY seq`
	rows, err := r.pool.Query(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("list recommendations: %w", err)
	}
	defer rows.Close()

	var list []entity.Recommendation
	for rows.Next() {
		var rec entity.Recommendation
		var supplyType, demandType int
		if err := rows.Scan(
			&rec.ArticleID, &rec.Description, &rec.OrgUnit, &rec.ReceiveOrgUnit,
			&rec.TransferSite, &rec.ReceiveSite, &rec.TransferQty, &rec.OriginalStock,
			&rec.AfterTransferStock, &rec.SafetyStock, &rec.MOQ, &supplyType, &demandType, &rec.Note,
		); err != nil {
			return nil, fmt.Errorf("scan recommendation: %w", err)
		}
		rec.SupplySubType = entity.SupplySubType(supplyType)
		rec.DemandSubType = entity.DemandSubType(demandType)
		list = append(list, rec)
	}
	return list, rows.Err()
}
