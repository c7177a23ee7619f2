package transfer

import (
	"sort"

	"github.com/rickyyue315/reallocation-api/internal/domain/entity"
)

// groupKey delimita el conjunto de pares dentro del cual se calculan las ventas
// máximas y la elegibilidad de emparejamiento. En modo cross-group la OM se
// colapsa y el grupo es el artículo completo.
type groupKey struct {
	article string
	orgUnit string
}

// Classify particiona el snapshot en candidatos emisores y receptores bajo el
// modo indicado. Es una función pura: no muta los registros de entrada y dos
// llamadas sobre el mismo snapshot producen candidatos idénticos.
func Classify(records []entity.StockRecord, mode StrategyMode) ([]*SupplyCandidate, []*DemandCandidate) {
	return classify(records, PolicyFor(mode))
}

func classify(records []entity.StockRecord, policy StrategyPolicy) ([]*SupplyCandidate, []*DemandCandidate) {
	groups := make(map[groupKey][]entity.StockRecord)
	var order []groupKey

	for _, r := range records {
		// Violación de contrato de entrada: se excluye la fila, no se aborta.
		if !r.ReplenishmentType.Valid() || r.ArticleID == "" || r.Site == "" {
			continue
		}
		r = sanitize(r)
		k := groupKey{article: r.ArticleID, orgUnit: r.OrgUnit}
		if policy.CrossGroup {
			k.orgUnit = ""
		}
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], r)
	}

	var supply []*SupplyCandidate
	var demand []*DemandCandidate

	for _, k := range order {
		group := groups[k]

		peak := 0
		for _, r := range group {
			if r.EffectiveSoldQty > peak {
				peak = r.EffectiveSoldQty
			}
		}

		if policy.SortBySales {
			sort.SliceStable(group, func(i, j int) bool {
				return group[i].EffectiveSoldQty < group[j].EffectiveSoldQty
			})
		}

		for _, r := range group {
			// Un registro no puede ser emisor y receptor en la misma pasada:
			// ND solo emite, RF toma el primer veredicto que aplique.
			if s := classifySupply(r, peak, policy); s != nil {
				supply = append(supply, s)
				continue
			}
			if d := classifyDemand(r, peak, policy); d != nil {
				demand = append(demand, d)
			}
		}
	}

	return supply, demand
}

// classifySupply evalúa las reglas de emisión sobre un registro.
func classifySupply(r entity.StockRecord, peak int, policy StrategyPolicy) *SupplyCandidate {
	switch r.ReplenishmentType {
	case entity.ReplenishmentND:
		// Liquidación total: las líneas descatalogadas se vacían sin piso de safety.
		if r.NetStock <= 0 {
			return nil
		}
		return &SupplyCandidate{
			Record:          r,
			SubType:         entity.SupplyFullClear,
			Priority:        priorityFullClear,
			TransferableQty: r.NetStock,
			OriginalStock:   r.NetStock,
			CurrentStock:    r.NetStock,
		}

	case entity.ReplenishmentRF:
		pos := r.AvailablePosition()
		floor := policy.releaseFloor(r)
		if pos <= floor || r.EffectiveSoldQty >= peak {
			return nil
		}
		qty := pos - floor
		if limit := policy.releaseCap(pos); qty > limit {
			qty = limit
		}
		if qty > r.NetStock {
			qty = r.NetStock
		}
		if qty < minTransferQty {
			return nil
		}
		return &SupplyCandidate{
			Record:          r,
			SubType:         policy.ReleaseSubType,
			Priority:        priorityRelease,
			TransferableQty: qty,
			OriginalStock:   r.NetStock,
			CurrentStock:    r.NetStock,
		}
	}
	return nil
}

// classifyDemand evalúa las reglas de recepción, en orden de prioridad.
func classifyDemand(r entity.StockRecord, peak int, policy StrategyPolicy) *DemandCandidate {
	if r.ReplenishmentType != entity.ReplenishmentRF {
		return nil
	}
	pos := r.AvailablePosition()

	// Relleno de ceros (solo modo zero-fill): toda línea RF casi a cero recibe
	// una siembra mínima aunque no tenga historial de ventas.
	if policy.ZeroFill && pos <= 1 {
		target := zeroFillTarget(r)
		if needed := target - pos; needed > 0 {
			return &DemandCandidate{
				Record:    r,
				SubType:   entity.DemandZeroFill,
				Priority:  priorityZeroFill,
				NeededQty: needed,
				TargetQty: target,
			}
		}
		return nil
	}

	// Quiebre con venta reciente: reponer hasta el safety stock completo.
	if r.NetStock == 0 && r.EffectiveSoldQty > 0 && r.SafetyStock > 0 {
		return &DemandCandidate{
			Record:    r,
			SubType:   entity.DemandEmergency,
			Priority:  priorityEmergency,
			NeededQty: r.SafetyStock,
			TargetQty: r.SafetyStock,
		}
	}

	// Siembra inicial: línea recién listada sin señal de safety stock.
	if pos == 0 && r.SafetyStock == 0 {
		seed := r.MOQ
		if seed < 3 {
			seed = 3
		}
		return &DemandCandidate{
			Record:    r,
			SubType:   entity.DemandInitialSeed,
			Priority:  prioritySeed,
			NeededQty: seed,
			TargetQty: seed,
		}
	}

	// Faltante potencial: solo el líder de ventas del grupo repone hasta safety.
	if pos < r.SafetyStock && r.EffectiveSoldQty == peak {
		if needed := r.SafetyStock - pos; needed > 0 {
			return &DemandCandidate{
				Record:    r,
				SubType:   entity.DemandPotential,
				Priority:  priorityPotential,
				NeededQty: needed,
				TargetQty: r.SafetyStock,
			}
		}
	}

	return nil
}

// zeroFillTarget es el objetivo de siembra del modo zero-fill: al menos
// max(MOQ, 3), o la mitad del safety stock si este es mayor.
func zeroFillTarget(r entity.StockRecord) int {
	target := r.MOQ
	if target < 3 {
		target = 3
	}
	if half := (r.SafetyStock + 1) / 2; half > target {
		target = half
	}
	return target
}

// sanitize fuerza el invariante de cantidades no negativas sin abortar la
// ejecución cuando la etapa de normalización externa no lo garantizó.
func sanitize(r entity.StockRecord) entity.StockRecord {
	if r.MOQ < 0 {
		r.MOQ = 0
	}
	if r.NetStock < 0 {
		r.NetStock = 0
	}
	if r.PendingReceived < 0 {
		r.PendingReceived = 0
	}
	if r.SafetyStock < 0 {
		r.SafetyStock = 0
	}
	if r.EffectiveSoldQty < 0 {
		r.EffectiveSoldQty = 0
	}
	return r
}
