package transfer_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apptransfer "github.com/rickyyue315/reallocation-api/internal/application/transfer"
	"github.com/rickyyue315/reallocation-api/internal/domain"
	"github.com/rickyyue315/reallocation-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de test
// ──────────────────────────────────────────────────────────────────────────────

type stubReader struct {
	records []entity.StockRecord
	logs    []string
	err     error
}

func (s *stubReader) Read(_ io.Reader) ([]entity.StockRecord, []string, error) {
	return s.records, s.logs, s.err
}

type memRunRepo struct {
	runs map[string]*entity.AnalysisRun
	recs map[string][]entity.Recommendation
}

func newMemRunRepo() *memRunRepo {
	return &memRunRepo{
		runs: make(map[string]*entity.AnalysisRun),
		recs: make(map[string][]entity.Recommendation),
	}
}

func (m *memRunRepo) Create(_ context.Context, run *entity.AnalysisRun, recs []entity.Recommendation) error {
	m.runs[run.ID] = run
	m.recs[run.ID] = recs
	return nil
}

func (m *memRunRepo) GetByID(_ context.Context, id string) (*entity.AnalysisRun, error) {
	return m.runs[id], nil
}

func (m *memRunRepo) List(_ context.Context, limit, offset int) ([]*entity.AnalysisRun, int, error) {
	out := make([]*entity.AnalysisRun, 0, len(m.runs))
	for _, r := range m.runs {
		out = append(out, r)
	}
	return out, len(out), nil
}

func (m *memRunRepo) ListRecommendations(_ context.Context, runID string) ([]entity.Recommendation, error) {
	return m.recs[runID], nil
}

func snapshotRecord(site string, net, safety, sold int) entity.StockRecord {
	return entity.StockRecord{
		ArticleID:         "000000000001",
		Description:       "Serum facial 30ml",
		ReplenishmentType: entity.ReplenishmentRF,
		Site:              site,
		OrgUnit:           "OM-01",
		NetStock:          net,
		SafetyStock:       safety,
		EffectiveSoldQty:  sold,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Analyze
// ──────────────────────────────────────────────────────────────────────────────

func TestAnalyze_PipelineCompletoPersisteRun(t *testing.T) {
	reader := &stubReader{
		records: []entity.StockRecord{
			snapshotRecord("S001", 30, 5, 1),
			snapshotRecord("S002", 0, 5, 9),
		},
		logs: []string{"fila 7: stock negativo ajustado a 0"},
	}
	repo := newMemRunRepo()
	uc := apptransfer.NewAnalyzeUseCase(reader, repo)

	out, err := uc.Analyze(context.Background(), apptransfer.AnalyzeInputDTO{
		SourceFile: "snapshot.xlsx",
		Mode:       "conservative",
		UserID:     "user-1",
		Data:       strings.NewReader("ignorado por el stub"),
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "conservative", out.Mode)
	assert.Equal(t, "snapshot.xlsx", out.SourceFile)
	assert.Equal(t, 2, out.RecordCount)
	assert.Equal(t, reader.logs, out.NormalizationLogs)
	require.NotEmpty(t, out.Recommendations, "el excedente de S001 debe cubrir el quiebre de S002")
	assert.Equal(t, len(out.Recommendations), out.Summary.KPIs.Count)

	// El run queda en el historial con los KPIs del resumen
	run := repo.runs[out.RunID]
	require.NotNil(t, run, "el run debe persistirse")
	assert.Equal(t, "user-1", run.CreatedBy)
	assert.Equal(t, out.Summary.KPIs.TotalTransferQty, run.TotalTransferQty)
	assert.Len(t, repo.recs[out.RunID], len(out.Recommendations))
}

func TestAnalyze_ModoVacioUsaConservative(t *testing.T) {
	reader := &stubReader{records: []entity.StockRecord{snapshotRecord("S001", 30, 5, 1)}}
	uc := apptransfer.NewAnalyzeUseCase(reader, newMemRunRepo())

	out, err := uc.Analyze(context.Background(), apptransfer.AnalyzeInputDTO{Mode: ""})
	require.NoError(t, err)
	assert.Equal(t, "conservative", out.Mode)
}

func TestAnalyze_ModoDesconocido(t *testing.T) {
	uc := apptransfer.NewAnalyzeUseCase(&stubReader{}, newMemRunRepo())

	_, err := uc.Analyze(context.Background(), apptransfer.AnalyzeInputDTO{Mode: "aggressive"})
	assert.ErrorIs(t, err, domain.ErrUnknownMode)
}

func TestAnalyze_SnapshotVacio(t *testing.T) {
	uc := apptransfer.NewAnalyzeUseCase(&stubReader{}, newMemRunRepo())

	_, err := uc.Analyze(context.Background(), apptransfer.AnalyzeInputDTO{Mode: "conservative"})
	assert.ErrorIs(t, err, domain.ErrEmptySnapshot)
}

func TestAnalyze_ErrorDeLecturaSePropaga(t *testing.T) {
	readErr := errors.New("xlsx corrupto")
	uc := apptransfer.NewAnalyzeUseCase(&stubReader{err: readErr}, newMemRunRepo())

	_, err := uc.Analyze(context.Background(), apptransfer.AnalyzeInputDTO{Mode: "conservative"})
	assert.ErrorIs(t, err, readErr)
}

func TestAnalyze_SinRepositorioNoPersiste(t *testing.T) {
	reader := &stubReader{records: []entity.StockRecord{snapshotRecord("S001", 30, 5, 1)}}
	uc := apptransfer.NewAnalyzeUseCase(reader, nil)

	out, err := uc.Analyze(context.Background(), apptransfer.AnalyzeInputDTO{Mode: "conservative"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.RunID, "el RunID se genera aunque no haya historial")
}

// ──────────────────────────────────────────────────────────────────────────────
// Estimate
// ──────────────────────────────────────────────────────────────────────────────

func TestEstimate_PotencialPorModo(t *testing.T) {
	reader := &stubReader{
		records: []entity.StockRecord{
			snapshotRecord("S001", 30, 5, 1),
			snapshotRecord("S002", 0, 5, 9),
		},
	}
	uc := apptransfer.NewEstimateUseCase(reader)

	out, err := uc.Estimate(context.Background(), apptransfer.EstimateInputDTO{SourceFile: "snapshot.xlsx"})
	require.NoError(t, err)

	assert.Equal(t, 2, out.RecordCount)
	require.Len(t, out.Potentials, 4, "un potencial por cada modo de estrategia")
	modes := make([]string, 0, len(out.Potentials))
	for _, p := range out.Potentials {
		modes = append(modes, string(p.Mode))
	}
	assert.Contains(t, modes, "conservative")
	assert.Contains(t, modes, "crossgroup")
}

func TestEstimate_SnapshotVacio(t *testing.T) {
	uc := apptransfer.NewEstimateUseCase(&stubReader{})

	_, err := uc.Estimate(context.Background(), apptransfer.EstimateInputDTO{})
	assert.ErrorIs(t, err, domain.ErrEmptySnapshot)
}

// ──────────────────────────────────────────────────────────────────────────────
// RunQuery
// ──────────────────────────────────────────────────────────────────────────────

func TestGetRun_NoExiste(t *testing.T) {
	uc := apptransfer.NewRunQueryUseCase(newMemRunRepo(), nil, nil)

	_, err := uc.GetRun(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetRun_RecalculaResumen(t *testing.T) {
	repo := newMemRunRepo()
	run := &entity.AnalysisRun{ID: "run-1", Mode: "conservative"}
	recs := []entity.Recommendation{
		{
			ArticleID:    "000000000001",
			OrgUnit:      "OM-01",
			TransferSite: "S001", ReceiveSite: "S002",
			TransferQty: 4, OriginalStock: 30, AfterTransferStock: 26,
			SupplySubType: entity.SupplySurplusRelease,
			DemandSubType: entity.DemandEmergency,
		},
	}
	require.NoError(t, repo.Create(context.Background(), run, recs))
	uc := apptransfer.NewRunQueryUseCase(repo, nil, nil)

	out, err := uc.GetRun(context.Background(), "run-1")
	require.NoError(t, err)

	assert.Equal(t, "run-1", out.Run.ID)
	require.Len(t, out.Recommendations, 1)
	assert.Equal(t, 4, out.Summary.KPIs.TotalTransferQty)
	assert.Equal(t, 1, out.Summary.KPIs.DistinctArticles)
}
