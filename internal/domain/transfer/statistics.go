package transfer

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/rickyyue315/reallocation-api/internal/domain/entity"
)

// KPIs es el banner de indicadores de una ejecución.
type KPIs struct {
	Count            int `json:"count"`
	TotalTransferQty int `json:"total_transfer_qty"`
	DistinctArticles int `json:"distinct_articles"`
	DistinctOrgUnits int `json:"distinct_org_units"`
}

// BreakdownRow es una fila de desglose agrupada por una clave: suma de unidades,
// número de recomendaciones, conteo distinto de la clave secundaria y
// participación porcentual sobre el total de unidades.
type BreakdownRow struct {
	Key               string          `json:"key"`
	TotalQty          int             `json:"total_qty"`
	Count             int             `json:"count"`
	DistinctSecondary int             `json:"distinct_secondary"`
	SharePct          decimal.Decimal `json:"share_pct"`
}

// Summary agrega el conjunto de recomendaciones en KPIs y desgloses.
type Summary struct {
	KPIs         KPIs           `json:"kpis"`
	ByArticle    []BreakdownRow `json:"by_article"`
	ByOrgUnit    []BreakdownRow `json:"by_org_unit"`
	BySupplyType []BreakdownRow `json:"by_supply_type"`
	ByDemandType []BreakdownRow `json:"by_demand_type"`
}

// Aggregate calcula los KPIs y los cuatro desgloses. Agrupación y suma puras;
// con entrada vacía devuelve estructuras vacías, nunca nil maps intermedios.
func Aggregate(recs []entity.Recommendation) Summary {
	var s Summary

	articles := make(map[string]bool)
	orgUnits := make(map[string]bool)
	for _, r := range recs {
		s.KPIs.Count++
		s.KPIs.TotalTransferQty += r.TransferQty
		articles[r.ArticleID] = true
		orgUnits[r.OrgUnit] = true
	}
	s.KPIs.DistinctArticles = len(articles)
	s.KPIs.DistinctOrgUnits = len(orgUnits)

	s.ByArticle = breakdown(recs, s.KPIs.TotalTransferQty,
		func(r entity.Recommendation) string { return r.ArticleID },
		func(r entity.Recommendation) string { return r.OrgUnit },
	)
	s.ByOrgUnit = breakdown(recs, s.KPIs.TotalTransferQty,
		func(r entity.Recommendation) string { return r.OrgUnit },
		func(r entity.Recommendation) string { return r.ArticleID },
	)
	s.BySupplyType = breakdown(recs, s.KPIs.TotalTransferQty,
		func(r entity.Recommendation) string { return r.SupplySubType.String() },
		func(r entity.Recommendation) string { return r.ArticleID },
	)
	s.ByDemandType = breakdown(recs, s.KPIs.TotalTransferQty,
		func(r entity.Recommendation) string { return r.DemandSubType.String() },
		func(r entity.Recommendation) string { return r.ArticleID },
	)

	return s
}

// breakdown agrupa por keyFn y cuenta distintos de secondaryFn. Las filas salen
// ordenadas por unidades descendentes y clave ascendente para un export estable.
func breakdown(recs []entity.Recommendation, totalQty int,
	keyFn, secondaryFn func(entity.Recommendation) string) []BreakdownRow {

	type acc struct {
		qty       int
		count     int
		secondary map[string]bool
	}
	byKey := make(map[string]*acc)
	for _, r := range recs {
		k := keyFn(r)
		a := byKey[k]
		if a == nil {
			a = &acc{secondary: make(map[string]bool)}
			byKey[k] = a
		}
		a.qty += r.TransferQty
		a.count++
		a.secondary[secondaryFn(r)] = true
	}

	rows := make([]BreakdownRow, 0, len(byKey))
	for k, a := range byKey {
		row := BreakdownRow{
			Key:               k,
			TotalQty:          a.qty,
			Count:             a.count,
			DistinctSecondary: len(a.secondary),
		}
		if totalQty > 0 {
			row.SharePct = decimal.NewFromInt(int64(a.qty)).
				Div(decimal.NewFromInt(int64(totalQty))).
				Mul(decimal.NewFromInt(100)).Round(2)
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TotalQty != rows[j].TotalQty {
			return rows[i].TotalQty > rows[j].TotalQty
		}
		return rows[i].Key < rows[j].Key
	})
	return rows
}
