package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/rickyyue315/reallocation-api/internal/application/dto"
	apptransfer "github.com/rickyyue315/reallocation-api/internal/application/transfer"
	"github.com/rickyyue315/reallocation-api/internal/domain/entity"
	infraexcel "github.com/rickyyue315/reallocation-api/internal/infrastructure/excel"
	apphttp "github.com/rickyyue315/reallocation-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// memRunRepo historial en memoria para los tests del handler.
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

// buildTransferApp monta el router completo con lector xlsx real y repo en memoria.
func buildTransferApp(repo *memRunRepo) *fiber.App {
	reader := infraexcel.NewSnapshotReader()
	exporter := infraexcel.NewResultExporter()

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AnalyzeUC:  apptransfer.NewAnalyzeUseCase(reader, repo),
		EstimateUC: apptransfer.NewEstimateUseCase(reader),
		RunsUC:     apptransfer.NewRunQueryUseCase(repo, exporter, nil),
		JWTSecret:  testJWTSecret,
	})
	return app
}

// snapshotXLSX arma un snapshot mínimo: un emisor con excedente y un receptor en quiebre.
func snapshotXLSX(t *testing.T) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	rows := [][]interface{}{
		{"Article", "Article Description", "RP Type", "Site", "OM", "MOQ",
			"SaSa Net Stock", "Pending Received", "Safety Stock",
			"Last Month Sold Qty", "MTD Sold Qty"},
		{"123456", "Crema de manos", "RF", "HK001", "OM-01", 2, 30, 0, 5, 1, 0},
		{"123456", "Crema de manos", "RF", "HK002", "OM-01", 2, 0, 0, 5, 9, 0},
	}
	for i, row := range rows {
		for j, val := range row {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, f.SetCellValue("Sheet1", cell, val))
		}
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

// multipartBody arma un cuerpo multipart con el xlsx y el modo opcional.
func multipartBody(t *testing.T, file []byte, mode string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	if file != nil {
		fw, err := w.CreateFormFile("file", "snapshot.xlsx")
		require.NoError(t, err)
		_, err = fw.Write(file)
		require.NoError(t, err)
	}
	if mode != "" {
		require.NoError(t, w.WriteField("mode", mode))
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func doTransferRequest(t *testing.T, app *fiber.App, method, path string, body io.Reader, contentType string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Authorization", tokenForRole(t, "planner"))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/transfers/analyze
// ──────────────────────────────────────────────────────────────────────────────

func TestAnalyze_FlujoCompleto(t *testing.T) {
	repo := newMemRunRepo()
	app := buildTransferApp(repo)

	body, ct := multipartBody(t, snapshotXLSX(t), "conservative")
	resp := doTransferRequest(t, app, http.MethodPost, "/api/transfers/analyze", body, ct)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.AnalysisResultDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "conservative", out.Mode)
	assert.Equal(t, "snapshot.xlsx", out.SourceFile)
	assert.Equal(t, 2, out.RecordCount)
	require.NotEmpty(t, out.Recommendations, "HK001 debe cubrir el quiebre de HK002")
	rec := out.Recommendations[0]
	assert.Equal(t, "000000123456", rec.ArticleID)
	assert.Equal(t, "HK001", rec.TransferSite)
	assert.Equal(t, "HK002", rec.ReceiveSite)

	assert.NotNil(t, repo.runs[out.RunID], "el run queda en el historial")
}

func TestAnalyze_SinArchivo(t *testing.T) {
	app := buildTransferApp(newMemRunRepo())

	body, ct := multipartBody(t, nil, "conservative")
	resp := doTransferRequest(t, app, http.MethodPost, "/api/transfers/analyze", body, ct)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "MISSING_FILE")
}

func TestAnalyze_ModoDesconocido(t *testing.T) {
	app := buildTransferApp(newMemRunRepo())

	body, ct := multipartBody(t, snapshotXLSX(t), "aggressive")
	resp := doTransferRequest(t, app, http.MethodPost, "/api/transfers/analyze", body, ct)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "UNKNOWN_MODE")
}

func TestAnalyze_SinToken(t *testing.T) {
	app := buildTransferApp(newMemRunRepo())

	body, ct := multipartBody(t, snapshotXLSX(t), "")
	req := httptest.NewRequest(http.MethodPost, "/api/transfers/analyze", body)
	req.Header.Set("Content-Type", ct)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/transfers/estimate
// ──────────────────────────────────────────────────────────────────────────────

func TestEstimate_DevuelvePotencialPorModo(t *testing.T) {
	app := buildTransferApp(newMemRunRepo())

	body, ct := multipartBody(t, snapshotXLSX(t), "")
	resp := doTransferRequest(t, app, http.MethodPost, "/api/transfers/estimate", body, ct)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.EstimateResultDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, 2, out.RecordCount)
	assert.Len(t, out.Potentials, 4, "un potencial por modo")
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/transfers/runs
// ──────────────────────────────────────────────────────────────────────────────

func TestGetRun_NoExiste(t *testing.T) {
	app := buildTransferApp(newMemRunRepo())

	resp := doTransferRequest(t, app, http.MethodGet, "/api/transfers/runs/no-existe", nil, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestExportRun_DescargaXLSX(t *testing.T) {
	repo := newMemRunRepo()
	app := buildTransferApp(repo)

	// Sembrar un run vía analyze
	body, ct := multipartBody(t, snapshotXLSX(t), "conservative")
	resp := doTransferRequest(t, app, http.MethodPost, "/api/transfers/analyze", body, ct)
	var out dto.AnalysisResultDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	resp.Body.Close()

	resp = doTransferRequest(t, app, http.MethodGet, "/api/transfers/runs/"+out.RunID+"/export", nil, "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "spreadsheetml")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), out.RunID)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	wb, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err, "la descarga debe ser un xlsx válido")
	defer wb.Close()
	assert.Contains(t, wb.GetSheetList(), "Transfer Suggestions")
}

func TestListRuns_Paginado(t *testing.T) {
	repo := newMemRunRepo()
	app := buildTransferApp(repo)

	body, ct := multipartBody(t, snapshotXLSX(t), "enhanced")
	resp := doTransferRequest(t, app, http.MethodPost, "/api/transfers/analyze", body, ct)
	resp.Body.Close()

	resp = doTransferRequest(t, app, http.MethodGet, "/api/transfers/runs?limit=10", nil, "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.RunListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.Items, 1)
	assert.Equal(t, "enhanced", out.Items[0].Mode)
	assert.Equal(t, 1, out.Page.Total)
}
