package transfer

import "github.com/rickyyue315/reallocation-api/internal/domain/entity"

// ModePotential es el volumen previsible de un modo: suma de cantidades
// liberables y de necesidades según el clasificador, sin ejecutar el matching.
type ModePotential struct {
	Mode             StrategyMode `json:"mode"`
	SupplyCandidates int          `json:"supply_candidates"`
	DemandCandidates int          `json:"demand_candidates"`
	PotentialSupply  int          `json:"potential_supply"`
	TotalDemand      int          `json:"total_demand"`
}

// Estimate ejecuta solo el clasificador para cada modo soportado y suma las
// cantidades de ambos lados. Previsualiza el orden de magnitud de una ejecución
// completa; como el clasificador es puro, los modos no se contaminan entre sí.
func Estimate(records []entity.StockRecord) []ModePotential {
	out := make([]ModePotential, 0, len(Modes()))
	for _, mode := range Modes() {
		supply, demand := Classify(records, mode)
		p := ModePotential{
			Mode:             mode,
			SupplyCandidates: len(supply),
			DemandCandidates: len(demand),
		}
		for _, s := range supply {
			p.PotentialSupply += s.TransferableQty
		}
		for _, d := range demand {
			p.TotalDemand += d.NeededQty
		}
		out = append(out, p)
	}
	return out
}
