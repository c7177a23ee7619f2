package excel_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/rickyyue315/reallocation-api/internal/domain/entity"
	"github.com/rickyyue315/reallocation-api/internal/domain/transfer"
	"github.com/rickyyue315/reallocation-api/internal/infrastructure/excel"
)

func TestExport_DosHojasConDatos(t *testing.T) {
	recs := []entity.Recommendation{
		{
			ArticleID:          "000000000001",
			Description:        "Labial mate",
			OrgUnit:            "OM-01",
			ReceiveOrgUnit:     "OM-01",
			TransferSite:       "HK001",
			ReceiveSite:        "HK002",
			TransferQty:        4,
			OriginalStock:      20,
			AfterTransferStock: 16,
			SafetyStock:        5,
			MOQ:                2,
			SupplySubType:      entity.SupplySurplusRelease,
			DemandSubType:      entity.DemandEmergency,
			Note:               "salida excedente",
		},
	}
	summary := transfer.Aggregate(recs)

	data, err := excel.NewResultExporter().Export(recs, summary)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Transfer Suggestions", "Statistical Summary"}, f.GetSheetList())

	rows, err := f.GetRows("Transfer Suggestions")
	require.NoError(t, err)
	require.Len(t, rows, 2, "header más una recomendación")
	assert.Equal(t, "Article", rows[0][0])
	assert.Equal(t, "000000000001", rows[1][0])
	assert.Equal(t, "HK001", rows[1][3])
	assert.Equal(t, "HK002", rows[1][5])
	assert.Equal(t, "4", rows[1][6])
	assert.Equal(t, "excedente", rows[1][11])
	assert.Equal(t, "urgente", rows[1][12])

	sum, err := f.GetRows("Statistical Summary")
	require.NoError(t, err)
	require.NotEmpty(t, sum)
	assert.Equal(t, []string{"KPI", "Value"}, sum[0][:2])
	assert.Equal(t, "Total Transfer Qty", sum[2][0])
	assert.Equal(t, "4", sum[2][1])
}

func TestExport_SinRecomendaciones(t *testing.T) {
	data, err := excel.NewResultExporter().Export(nil, transfer.Aggregate(nil))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Transfer Suggestions")
	require.NoError(t, err)
	assert.Len(t, rows, 1, "solo el header")
}
