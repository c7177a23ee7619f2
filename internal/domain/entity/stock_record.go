package entity

// ReplenishmentType clasifica una línea de surtido: ND (descatalogada, liquidar)
// o RF (reposición activa).
type ReplenishmentType string

const (
	ReplenishmentND ReplenishmentType = "ND"
	ReplenishmentRF ReplenishmentType = "RF"
)

// Valid indica si el tipo de reposición es uno de los valores conocidos.
func (t ReplenishmentType) Valid() bool {
	return t == ReplenishmentND || t == ReplenishmentRF
}

// StockRecord es una observación (artículo, tienda) de un snapshot de planificación.
// Todos los campos de cantidad son enteros no negativos después de la normalización;
// el motor asume ese invariante pero se defiende contra violaciones sin abortar.
type StockRecord struct {
	ArticleID         string            `json:"article_id"`
	Description       string            `json:"description"`
	ReplenishmentType ReplenishmentType `json:"replenishment_type"`
	Site              string            `json:"site"`
	OrgUnit           string            `json:"org_unit"`
	MOQ               int               `json:"moq"`
	NetStock          int               `json:"net_stock"`
	PendingReceived   int               `json:"pending_received"`
	SafetyStock       int               `json:"safety_stock"`
	EffectiveSoldQty  int               `json:"effective_sold_qty"`
}

// AvailablePosition devuelve stock neto más pendiente de recibir, la posición
// contra la que se evalúan los umbrales de excedente y faltante.
func (r StockRecord) AvailablePosition() int {
	return r.NetStock + r.PendingReceived
}
