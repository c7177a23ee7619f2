package transfer

import (
	"context"
	"io"

	"github.com/rickyyue315/reallocation-api/internal/application/dto"
	"github.com/rickyyue315/reallocation-api/internal/domain"
	"github.com/rickyyue315/reallocation-api/internal/domain/transfer"
)

// EstimateUseCase calcula el potencial de traslado de cada modo sin
// generar recomendaciones ni tocar el historial.
type EstimateUseCase struct {
	reader SnapshotReader
}

// NewEstimateUseCase construye el caso de uso.
func NewEstimateUseCase(reader SnapshotReader) *EstimateUseCase {
	return &EstimateUseCase{reader: reader}
}

// EstimateInputDTO entrada para una estimación.
type EstimateInputDTO struct {
	SourceFile string
	Data       io.Reader
}

// Estimate devuelve el potencial por modo para el snapshot dado.
func (uc *EstimateUseCase) Estimate(_ context.Context, input EstimateInputDTO) (*dto.EstimateResultDTO, error) {
	records, _, err := uc.reader.Read(input.Data)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, domain.ErrEmptySnapshot
	}
	return &dto.EstimateResultDTO{
		SourceFile:  input.SourceFile,
		RecordCount: len(records),
		Potentials:  transfer.Estimate(records),
	}, nil
}
