package transfer

import "github.com/rickyyue315/reallocation-api/internal/domain/entity"

// minTransferQty es el tamaño mínimo económico de un traslado; liberaciones o
// traslados por debajo se cancelan en lugar de ejecutarse.
const minTransferQty = 2

// Prioridades de candidatos (1 = más alta; 0 reservada al relleno de ceros).
const (
	priorityZeroFill  = 0
	priorityEmergency = 1
	priorityFullClear = 1
	prioritySeed      = 1
	priorityRelease   = 2
	priorityPotential = 2
)

// SupplyCandidate es el veredicto de clasificación de un registro como emisor.
// TransferableQty y CurrentStock son mutados por el matcher durante una
// ejecución; los candidatos viven solo dentro de esa ejecución.
type SupplyCandidate struct {
	Record          entity.StockRecord
	SubType         entity.SupplySubType
	Priority        int
	TransferableQty int // restante por liberar
	OriginalStock   int // net stock al clasificar, invariante de conservación
	CurrentStock    int // net stock simulado tras los traslados ya emitidos
}

// DemandCandidate es el veredicto de clasificación de un registro como receptor.
type DemandCandidate struct {
	Record    entity.StockRecord
	SubType   entity.DemandSubType
	Priority  int
	NeededQty int // restante por cubrir
	TargetQty int // necesidad total al clasificar
}
