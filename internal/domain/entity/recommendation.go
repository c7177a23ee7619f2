package entity

// SupplySubType subtipo cerrado de un candidato emisor.
type SupplySubType int

const (
	SupplyFullClear       SupplySubType = iota // liquidación total de línea ND
	SupplySurplusRelease                       // liberación de excedente sobre safety stock
	SupplyEnhancedRelease                      // liberación agresiva sobre piso MOQ+1
)

// String etiqueta estable para export y estadísticas.
func (t SupplySubType) String() string {
	switch t {
	case SupplyFullClear:
		return "liquidacion_nd"
	case SupplySurplusRelease:
		return "excedente"
	case SupplyEnhancedRelease:
		return "excedente_reforzado"
	default:
		return "desconocido"
	}
}

// DemandSubType subtipo cerrado de un candidato receptor.
type DemandSubType int

const (
	DemandEmergency   DemandSubType = iota // quiebre de stock con venta reciente
	DemandPotential                        // faltante potencial del líder de ventas
	DemandZeroFill                         // relleno mínimo de líneas casi a cero (modo zero-fill)
	DemandInitialSeed                      // siembra inicial para líneas sin safety stock
)

// String etiqueta estable para export y estadísticas.
func (t DemandSubType) String() string {
	switch t {
	case DemandEmergency:
		return "urgente"
	case DemandPotential:
		return "faltante_potencial"
	case DemandZeroFill:
		return "relleno_cero"
	case DemandInitialSeed:
		return "siembra_inicial"
	default:
		return "desconocido"
	}
}

// Recommendation es un traslado propuesto entre dos tiendas para un artículo.
// Inmutable una vez emitida por el matcher. Invariantes:
// TransferSite != ReceiveSite, 0 < TransferQty <= OriginalStock,
// AfterTransferStock >= 0.
type Recommendation struct {
	ArticleID          string        `json:"article_id"`
	Description        string        `json:"description"`
	OrgUnit            string        `json:"org_unit"`
	ReceiveOrgUnit     string        `json:"receive_org_unit"` // difiere de OrgUnit solo en modo cross-group
	TransferSite       string        `json:"transfer_site"`
	ReceiveSite        string        `json:"receive_site"`
	TransferQty        int           `json:"transfer_qty"`
	OriginalStock      int           `json:"original_stock"`
	AfterTransferStock int           `json:"after_transfer_stock"`
	SafetyStock        int           `json:"safety_stock"`
	MOQ                int           `json:"moq"`
	SupplySubType      SupplySubType `json:"supply_sub_type"`
	DemandSubType      DemandSubType `json:"demand_sub_type"`
	Note               string        `json:"note"`
}
