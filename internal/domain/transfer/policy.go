// Package transfer implementa el núcleo de decisión de reasignación de stock:
// clasificación de candidatos, matching greedy por prioridades, estadísticas y
// estimación de potencial. Es computación pura sobre un snapshot en memoria;
// no hay I/O ni estado compartido entre ejecuciones.
package transfer

import (
	"github.com/shopspring/decimal"

	"github.com/rickyyue315/reallocation-api/internal/domain"
	"github.com/rickyyue315/reallocation-api/internal/domain/entity"
)

// StrategyMode selecciona la variante de estrategia del motor.
type StrategyMode string

const (
	// ModeConservative libera excedente con piso en el safety stock y tope del 20%.
	ModeConservative StrategyMode = "conservative"
	// ModeEnhanced libera con piso MOQ+1 y tope del 50%, más agresivo con stock lento.
	ModeEnhanced StrategyMode = "enhanced"
	// ModeZeroFill garantiza una siembra mínima a toda línea RF casi a cero.
	ModeZeroFill StrategyMode = "zerofill"
	// ModeCrossGroup permite emparejar tiendas de distintas OM dentro del mismo
	// grupo de sitios (prefijo del código de tienda).
	ModeCrossGroup StrategyMode = "crossgroup"
)

// Modes devuelve los modos soportados en orden estable.
func Modes() []StrategyMode {
	return []StrategyMode{ModeConservative, ModeEnhanced, ModeZeroFill, ModeCrossGroup}
}

// ParseMode valida un modo recibido de la capa externa.
func ParseMode(s string) (StrategyMode, error) {
	switch StrategyMode(s) {
	case ModeConservative, ModeEnhanced, ModeZeroFill, ModeCrossGroup:
		return StrategyMode(s), nil
	case "":
		return ModeConservative, nil
	default:
		return "", domain.ErrUnknownMode
	}
}

// StrategyPolicy describe una estrategia como datos: cada modo fija el subtipo
// de liberación, el piso y el tope de la regla de excedente, y los flags de
// comportamiento del clasificador y del matcher. Así las variantes no se
// duplican en funciones casi idénticas.
type StrategyPolicy struct {
	Mode           StrategyMode
	ReleaseSubType entity.SupplySubType
	CapFraction    decimal.Decimal // fracción de (net+pendiente) liberable como máximo
	UseMOQFloor    bool            // piso = MOQ+1 en lugar de safety stock
	SortBySales    bool            // clasificar cada grupo en orden ascendente de ventas
	ZeroFill       bool            // habilita la demanda DemandZeroFill (prioridad 0)
	CrossGroup     bool            // agrupar por artículo y emparejar por grupo de sitios
	LockSites      bool            // bloquear ambos sitios por artículo tras un traslado
}

// PolicyFor devuelve la política del modo. Los modos zero-fill y cross-group
// reutilizan la regla de liberación conservadora como fuente secundaria.
func PolicyFor(mode StrategyMode) StrategyPolicy {
	switch mode {
	case ModeEnhanced:
		return StrategyPolicy{
			Mode:           mode,
			ReleaseSubType: entity.SupplyEnhancedRelease,
			CapFraction:    decimal.NewFromFloat(0.5),
			UseMOQFloor:    true,
			SortBySales:    true,
			LockSites:      true,
		}
	case ModeZeroFill:
		return StrategyPolicy{
			Mode:           mode,
			ReleaseSubType: entity.SupplySurplusRelease,
			CapFraction:    decimal.NewFromFloat(0.2),
			ZeroFill:       true,
			LockSites:      true,
		}
	case ModeCrossGroup:
		return StrategyPolicy{
			Mode:           mode,
			ReleaseSubType: entity.SupplySurplusRelease,
			CapFraction:    decimal.NewFromFloat(0.2),
			CrossGroup:     true,
			LockSites:      true,
		}
	default:
		return StrategyPolicy{
			Mode:           ModeConservative,
			ReleaseSubType: entity.SupplySurplusRelease,
			CapFraction:    decimal.NewFromFloat(0.2),
		}
	}
}

// releaseCap calcula el tope de liberación para una posición dada:
// fracción del modo sobre (net+pendiente), truncada, nunca inferior a 2.
func (p StrategyPolicy) releaseCap(position int) int {
	limit := int(decimal.NewFromInt(int64(position)).Mul(p.CapFraction).IntPart())
	if limit < minTransferQty {
		limit = minTransferQty
	}
	return limit
}

// releaseFloor es la cantidad que el emisor debe retener: safety stock en modo
// conservador, MOQ+1 en modo enhanced. Las líneas ND no tienen piso.
func (p StrategyPolicy) releaseFloor(r entity.StockRecord) int {
	if p.UseMOQFloor {
		return r.MOQ + 1
	}
	return r.SafetyStock
}
