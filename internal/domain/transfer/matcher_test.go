package transfer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rickyyue315/reallocation-api/internal/domain/entity"
	"github.com/rickyyue315/reallocation-api/internal/domain/transfer"
)

// run clasifica y empareja en un paso, como hace el caso de uso.
func run(records []entity.StockRecord, mode transfer.StrategyMode) []entity.Recommendation {
	supply, demand := transfer.Classify(records, mode)
	return transfer.Match(supply, demand, mode)
}

// assertInvariants valida los invariantes de salida sobre todo el resultado.
func assertInvariants(t *testing.T, recs []entity.Recommendation) {
	t.Helper()
	for _, r := range recs {
		assert.Positive(t, r.TransferQty)
		assert.NotEqual(t, 1, r.TransferQty, "un traslado de 1 unidad se ajusta o se cancela")
		assert.LessOrEqual(t, r.TransferQty, r.OriginalStock)
		assert.GreaterOrEqual(t, r.AfterTransferStock, 0)
		assert.NotEqual(t, r.TransferSite, r.ReceiveSite)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenarios de referencia
// ──────────────────────────────────────────────────────────────────────────────

func TestMatch_ExcedenteHaciaSiembraInicial(t *testing.T) {
	// Sitio A con excedente y ventas bajas; sitio B sin stock, sin safety y con
	// la venta más alta del grupo.
	records := []entity.StockRecord{
		record("A", stock(10), safety(5), sold(1)),
		record("B", stock(0), safety(0), sold(5)),
	}

	recs := run(records, transfer.ModeConservative)
	require.Len(t, recs, 1)
	assertInvariants(t, recs)

	r := recs[0]
	assert.Equal(t, "A", r.TransferSite)
	assert.Equal(t, "B", r.ReceiveSite)
	assert.GreaterOrEqual(t, r.TransferQty, 2)
	assert.GreaterOrEqual(t, r.AfterTransferStock, 5, "el emisor nunca perfora su safety stock")
}

func TestMatch_NDSinReceptoresNoGeneraNada(t *testing.T) {
	// Dos líneas ND en sitios distintos y ningún RF: no existe demanda.
	records := []entity.StockRecord{
		record("A", nd(), stock(8)),
		record("B", nd(), stock(0)),
	}

	recs := run(records, transfer.ModeConservative)
	assert.Empty(t, recs)
}

func TestMatch_NDLiquidaExactamenteSuStock(t *testing.T) {
	records := []entity.StockRecord{
		record("A", nd(), stock(8)),
		record("B", stock(0), safety(10), sold(6)),
	}

	recs := run(records, transfer.ModeConservative)
	require.NotEmpty(t, recs)
	assertInvariants(t, recs)

	total := 0
	for _, r := range recs {
		require.Equal(t, "A", r.TransferSite)
		assert.Equal(t, entity.SupplyFullClear, r.SupplySubType)
		total += r.TransferQty
	}
	assert.Equal(t, 8, total, "la liquidación ND vacía la línea por completo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Regla de ajuste de 1 unidad
// ──────────────────────────────────────────────────────────────────────────────

func TestMatch_TrasladoDeUnaUnidadSeSubeADos(t *testing.T) {
	// El receptor necesita 1 unidad; el emisor puede ceder 2 sin perforar safety.
	records := []entity.StockRecord{
		record("A", stock(10), safety(5), sold(1)),
		record("B", stock(2), safety(3), sold(7)), // faltante potencial de 1
	}

	recs := run(records, transfer.ModeConservative)
	require.Len(t, recs, 1)
	assert.Equal(t, 2, recs[0].TransferQty)
	assert.Contains(t, recs[0].Note, "ajustada de 1 a 2")
}

func TestMatch_TrasladoDeUnaUnidadSeCancelaSiNoHayMargen(t *testing.T) {
	// ND con una sola unidad: subir a 2 dejaría stock negativo, se cancela.
	records := []entity.StockRecord{
		record("A", nd(), stock(1)),
		record("B", stock(0), safety(4), sold(2)),
	}

	recs := run(records, transfer.ModeConservative)
	assert.Empty(t, recs)
}

// ──────────────────────────────────────────────────────────────────────────────
// Orden, agrupación y bloqueo de sitios
// ──────────────────────────────────────────────────────────────────────────────

func TestMatch_NoCruzaOMEnModoConservador(t *testing.T) {
	records := []entity.StockRecord{
		record("A", orgUnit("OM-01"), stock(10), safety(2), sold(1)),
		record("B", orgUnit("OM-01"), stock(30), safety(2), sold(9)),
		record("C", orgUnit("OM-02"), stock(0), safety(6), sold(4)),
	}

	recs := run(records, transfer.ModeConservative)
	assert.Empty(t, recs, "sin receptor en la misma OM no hay traslado")
}

func TestMatch_CrossGroupEmparejaPorPrefijoDeSitio(t *testing.T) {
	records := []entity.StockRecord{
		record("HK001", orgUnit("OM-01"), stock(10), safety(2), sold(1)),
		record("HK002", orgUnit("OM-02"), stock(0), safety(6), sold(4)),
		record("MO001", orgUnit("OM-03"), stock(0), safety(6), sold(9)),
	}

	recs := run(records, transfer.ModeCrossGroup)
	require.Len(t, recs, 1)
	assertInvariants(t, recs)

	r := recs[0]
	assert.Equal(t, "HK001", r.TransferSite)
	assert.Equal(t, "HK002", r.ReceiveSite, "MO001 queda fuera del grupo de sitios HK")
	assert.Equal(t, "OM-01", r.OrgUnit)
	assert.Equal(t, "OM-02", r.ReceiveOrgUnit)
}

func TestMatch_BloqueoDeSitiosLimitaUnTrasladoPorArticulo(t *testing.T) {
	// En modo enhanced cada sitio participa una sola vez por artículo aunque al
	// emisor le sobre cantidad para un segundo receptor.
	records := []entity.StockRecord{
		record("A", stock(40), safety(2), moq(1), sold(1)),
		record("B", stock(0), safety(5), sold(9)),
		record("C", stock(0), safety(5), sold(8)),
	}

	recs := run(records, transfer.ModeEnhanced)
	require.Len(t, recs, 1)
	assert.Equal(t, "B", recs[0].ReceiveSite, "se sirve primero al receptor con más venta")
}

func TestMatch_SinBloqueoUnEmisorSirveVariosReceptores(t *testing.T) {
	records := []entity.StockRecord{
		record("A", stock(40), safety(2), sold(1)),
		record("B", stock(0), safety(3), sold(9)),
		record("C", stock(0), safety(3), sold(8)),
	}

	recs := run(records, transfer.ModeConservative)
	require.Len(t, recs, 2)
	assertInvariants(t, recs)
	assert.Equal(t, "B", recs[0].ReceiveSite)
	assert.Equal(t, "C", recs[1].ReceiveSite)
}

func TestMatch_PrioridadNDAntesQueExcedente(t *testing.T) {
	// Un ND y un RF con excedente compiten por el mismo receptor: el ND
	// (prioridad 1) se agota primero.
	records := []entity.StockRecord{
		record("A", stock(40), safety(2), sold(1)),
		record("B", nd(), stock(3)),
		record("C", stock(0), safety(3), sold(9)),
	}

	recs := run(records, transfer.ModeConservative)
	require.NotEmpty(t, recs)
	assert.Equal(t, "B", recs[0].TransferSite)
	assert.Equal(t, entity.SupplyFullClear, recs[0].SupplySubType)
}

// ──────────────────────────────────────────────────────────────────────────────
// Conservación y defensa
// ──────────────────────────────────────────────────────────────────────────────

func TestMatch_ConservacionPorEmisor(t *testing.T) {
	records := []entity.StockRecord{
		record("A", nd(), stock(5)),
		record("B", stock(0), safety(4), sold(9)),
		record("C", stock(0), safety(4), sold(8)),
		record("D", stock(0), safety(4), sold(7)),
	}

	recs := run(records, transfer.ModeConservative)
	assertInvariants(t, recs)

	total := 0
	for _, r := range recs {
		require.Equal(t, "A", r.TransferSite)
		total += r.TransferQty
	}
	assert.LessOrEqual(t, total, 5, "un emisor nunca entrega más que su stock original")
}

func TestMatch_FiltraCandidatosCorruptosSinEmitirlos(t *testing.T) {
	// Candidatos fabricados con cantidades inconsistentes: el filtro final no
	// deja pasar recomendaciones que violen los invariantes.
	supply := []*transfer.SupplyCandidate{{
		Record:          record("A", stock(0)),
		SubType:         entity.SupplyFullClear,
		Priority:        1,
		TransferableQty: 5, // incoherente con CurrentStock = 0
		OriginalStock:   0,
		CurrentStock:    0,
	}}
	demand := []*transfer.DemandCandidate{{
		Record:    record("B"),
		SubType:   entity.DemandEmergency,
		Priority:  1,
		NeededQty: 5,
		TargetQty: 5,
	}}

	recs := transfer.Match(supply, demand, transfer.ModeConservative)
	assert.Empty(t, recs)
}

func TestMatch_ModosSobreElMismoSnapshotNoSeContaminan(t *testing.T) {
	records := []entity.StockRecord{
		record("A", stock(60), pending(20), safety(5), moq(10), sold(1)),
		record("B", stock(0), safety(6), sold(7)),
	}

	conservative := run(records, transfer.ModeConservative)
	enhanced := run(records, transfer.ModeEnhanced)

	totalC, totalE := 0, 0
	for _, r := range conservative {
		totalC += r.TransferQty
	}
	for _, r := range enhanced {
		totalE += r.TransferQty
	}
	assert.GreaterOrEqual(t, totalE, totalC, "enhanced libera al menos tanto como conservador")
}
