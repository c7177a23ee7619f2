package transfer

import (
	"sort"

	"github.com/rickyyue315/reallocation-api/internal/domain/entity"
)

// pairKey ordena los emparejamientos por subtipo: liquidar ND hacia un quiebre
// urgente vale más que liberar excedente hacia un faltante potencial.
type pairKey struct {
	supply entity.SupplySubType
	demand entity.DemandSubType
}

// pairRank es el orden total fijo sobre pares (subtipo emisor, subtipo receptor).
// Pares no mapeados ordenan al final.
var pairRank = map[pairKey]int{
	{entity.SupplyFullClear, entity.DemandZeroFill}:          0,
	{entity.SupplyFullClear, entity.DemandEmergency}:         1,
	{entity.SupplyFullClear, entity.DemandPotential}:         2,
	{entity.SupplyFullClear, entity.DemandInitialSeed}:       3,
	{entity.SupplySurplusRelease, entity.DemandZeroFill}:     4,
	{entity.SupplySurplusRelease, entity.DemandEmergency}:    5,
	{entity.SupplySurplusRelease, entity.DemandPotential}:    6,
	{entity.SupplySurplusRelease, entity.DemandInitialSeed}:  7,
	{entity.SupplyEnhancedRelease, entity.DemandZeroFill}:    8,
	{entity.SupplyEnhancedRelease, entity.DemandEmergency}:   9,
	{entity.SupplyEnhancedRelease, entity.DemandPotential}:   10,
	{entity.SupplyEnhancedRelease, entity.DemandInitialSeed}: 11,
}

const unrankedPair = 1 << 20

func rankOf(s entity.SupplySubType, d entity.DemandSubType) int {
	if r, ok := pairRank[pairKey{s, d}]; ok {
		return r
	}
	return unrankedPair
}

// SiteGroup devuelve la partición por prefijo de un código de tienda: el
// prefijo alfabético inicial ("HK" de "HK012"). Solo se usa en modo cross-group.
func SiteGroup(site string) string {
	i := 0
	for i < len(site) {
		c := site[i]
		if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z') {
			break
		}
		i++
	}
	if i == 0 {
		return site
	}
	return site[:i]
}

// Match empareja emisores con receptores de forma greedy respetando el orden de
// prioridades y muta las cantidades restantes de ambos lados. Los candidatos no
// deben reutilizarse entre llamadas.
func Match(supply []*SupplyCandidate, demand []*DemandCandidate, mode StrategyMode) []entity.Recommendation {
	return match(supply, demand, PolicyFor(mode))
}

func match(supply []*SupplyCandidate, demand []*DemandCandidate, policy StrategyPolicy) []entity.Recommendation {
	sortSupply(supply, policy)
	sortDemand(demand)

	// Sitios ya usados por artículo en las variantes con bloqueo: un sitio no
	// participa dos veces en traslados del mismo artículo en una ejecución.
	locked := make(map[string]map[string]bool)

	var recs []entity.Recommendation

	for _, s := range supply {
		if s.TransferableQty <= 0 {
			continue
		}
		if policy.LockSites && locked[s.Record.ArticleID][s.Record.Site] {
			continue
		}

		receivers := eligibleReceivers(s, demand, policy)

		for _, d := range receivers {
			if s.TransferableQty <= 0 {
				break
			}
			if d.NeededQty <= 0 {
				continue
			}
			if policy.LockSites && locked[s.Record.ArticleID][d.Record.Site] {
				continue
			}

			qty := s.TransferableQty
			if d.NeededQty < qty {
				qty = d.NeededQty
			}

			note := ""
			if qty == 1 {
				// Un traslado de 1 unidad no compensa operativamente: se sube a 2
				// si el emisor puede cederla sin perforar su safety stock, y si no,
				// se cancela.
				if s.CurrentStock >= minTransferQty && s.CurrentStock-minTransferQty >= s.Record.SafetyStock {
					qty = minTransferQty
					note = "cantidad ajustada de 1 a 2"
				} else {
					continue
				}
			}
			if qty > s.CurrentStock {
				qty = s.CurrentStock
			}
			if qty <= 0 {
				continue
			}

			after := s.CurrentStock - qty
			recs = append(recs, entity.Recommendation{
				ArticleID:          s.Record.ArticleID,
				Description:        s.Record.Description,
				OrgUnit:            s.Record.OrgUnit,
				ReceiveOrgUnit:     d.Record.OrgUnit,
				TransferSite:       s.Record.Site,
				ReceiveSite:        d.Record.Site,
				TransferQty:        qty,
				OriginalStock:      s.OriginalStock,
				AfterTransferStock: after,
				SafetyStock:        s.Record.SafetyStock,
				MOQ:                s.Record.MOQ,
				SupplySubType:      s.SubType,
				DemandSubType:      d.SubType,
				Note:               buildNote(s.SubType, note),
			})

			s.CurrentStock = after
			s.TransferableQty -= qty
			if s.TransferableQty < 0 {
				s.TransferableQty = 0
			}
			d.NeededQty -= qty
			if d.NeededQty < 0 {
				d.NeededQty = 0
			}

			if policy.LockSites {
				lockSite(locked, s.Record.ArticleID, s.Record.Site)
				lockSite(locked, s.Record.ArticleID, d.Record.Site)
				// El emisor queda bloqueado para este artículo: pasar al siguiente.
				break
			}
		}
	}

	return filterValid(recs)
}

// sortSupply ordena emisores por prioridad ascendente con desempate por modo:
// el conservador solo por stock descendente; el resto favorece primero a los
// candidatos que ya superan el mínimo económico y luego stock descendente.
func sortSupply(supply []*SupplyCandidate, policy StrategyPolicy) {
	conservative := policy.Mode == ModeConservative
	sort.SliceStable(supply, func(i, j int) bool {
		a, b := supply[i], supply[j]
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		if !conservative {
			ac := a.TransferableQty >= minTransferQty
			bc := b.TransferableQty >= minTransferQty
			if ac != bc {
				return ac
			}
		}
		return a.CurrentStock > b.CurrentStock
	})
}

// sortDemand ordena receptores por prioridad ascendente y, dentro de la banda,
// sirve primero a las tiendas con más venta y mayor necesidad.
func sortDemand(demand []*DemandCandidate) {
	sort.SliceStable(demand, func(i, j int) bool {
		a, b := demand[i], demand[j]
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		if a.Record.EffectiveSoldQty != b.Record.EffectiveSoldQty {
			return a.Record.EffectiveSoldQty > b.Record.EffectiveSoldQty
		}
		return a.NeededQty > b.NeededQty
	})
}

// eligibleReceivers filtra los receptores emparejables con el emisor y los
// ordena por el rango del par de subtipos, conservando el orden de demanda
// dentro de cada rango.
func eligibleReceivers(s *SupplyCandidate, demand []*DemandCandidate, policy StrategyPolicy) []*DemandCandidate {
	var out []*DemandCandidate
	for _, d := range demand {
		if !canPair(s, d, policy) {
			continue
		}
		out = append(out, d)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return rankOf(s.SubType, out[i].SubType) < rankOf(s.SubType, out[j].SubType)
	})
	return out
}

// canPair decide la elegibilidad estática del par (emisor, receptor).
func canPair(s *SupplyCandidate, d *DemandCandidate, policy StrategyPolicy) bool {
	if s.Record.ArticleID != d.Record.ArticleID {
		return false
	}
	if s.Record.Site == d.Record.Site {
		return false
	}
	if policy.CrossGroup {
		return SiteGroup(s.Record.Site) == SiteGroup(d.Record.Site)
	}
	return s.Record.OrgUnit == d.Record.OrgUnit
}

func lockSite(locked map[string]map[string]bool, article, site string) {
	m := locked[article]
	if m == nil {
		m = make(map[string]bool)
		locked[article] = m
	}
	m[site] = true
}

func buildNote(subType entity.SupplySubType, extra string) string {
	note := "salida " + subType.String()
	if extra != "" {
		note += "; " + extra
	}
	return note
}

// filterValid descarta defensivamente cualquier recomendación que viole los
// invariantes de salida. No debería activarse con entradas válidas; una
// inconsistencia clasificador/matcher degrada a menos recomendaciones, nunca
// a un error hacia el usuario.
func filterValid(recs []entity.Recommendation) []entity.Recommendation {
	out := recs[:0]
	for _, r := range recs {
		if r.TransferQty <= 0 || r.TransferQty > r.OriginalStock {
			continue
		}
		if r.AfterTransferStock < 0 || r.TransferSite == r.ReceiveSite {
			continue
		}
		out = append(out, r)
	}
	return out
}
