package http

import (
	"errors"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"github.com/rickyyue315/reallocation-api/internal/application/dto"
	apptransfer "github.com/rickyyue315/reallocation-api/internal/application/transfer"
	"github.com/rickyyue315/reallocation-api/internal/domain"
)

// TransferHandler maneja las peticiones del motor de traslados (protegido).
type TransferHandler struct {
	analyzeUC  *apptransfer.AnalyzeUseCase
	estimateUC *apptransfer.EstimateUseCase
	runsUC     *apptransfer.RunQueryUseCase
}

// NewTransferHandler construye el handler.
func NewTransferHandler(
	analyzeUC *apptransfer.AnalyzeUseCase,
	estimateUC *apptransfer.EstimateUseCase,
	runsUC *apptransfer.RunQueryUseCase,
) *TransferHandler {
	return &TransferHandler{analyzeUC: analyzeUC, estimateUC: estimateUC, runsUC: runsUC}
}

// Analyze godoc
// @Summary      Analizar snapshot y generar recomendaciones de traslado
// @Description  Sube un snapshot de inventario (.xlsx), corre el motor con el modo indicado y persiste la ejecución en el historial.
// @Tags         transfers
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file    true   "snapshot de inventario (.xlsx)"
// @Param        mode  formData  string  false  "conservative | enhanced | zerofill | crossgroup (default conservative)"
// @Success      200   {object}  dto.AnalysisResultDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/transfers/analyze [post]
func (h *TransferHandler) Analyze(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "se requiere el archivo 'file' (.xlsx)"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo abrir el archivo"})
	}
	defer closeUpload(file)

	out, err := h.analyzeUC.Analyze(c.Context(), apptransfer.AnalyzeInputDTO{
		SourceFile: fileHeader.Filename,
		Mode:       c.FormValue("mode"),
		UserID:     GetUserID(c),
		Data:       file,
	})
	if err != nil {
		return transferError(c, err)
	}
	return c.JSON(out)
}

// Estimate godoc
// @Summary      Estimar el potencial de traslado por modo
// @Description  Corre solo el clasificador sobre el snapshot y devuelve, por cada modo de estrategia, cuántos candidatos y unidades habría.
// @Tags         transfers
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "snapshot de inventario (.xlsx)"
// @Success      200   {object}  dto.EstimateResultDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/transfers/estimate [post]
func (h *TransferHandler) Estimate(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "se requiere el archivo 'file' (.xlsx)"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo abrir el archivo"})
	}
	defer closeUpload(file)

	out, err := h.estimateUC.Estimate(c.Context(), apptransfer.EstimateInputDTO{
		SourceFile: fileHeader.Filename,
		Data:       file,
	})
	if err != nil {
		return transferError(c, err)
	}
	return c.JSON(out)
}

// ListRuns godoc
// @Summary      Historial de ejecuciones
// @Tags         transfers
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "tamaño de página (default 20)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {object}  dto.RunListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/transfers/runs [get]
func (h *TransferHandler) ListRuns(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginación inválida"})
	}
	out, err := h.runsUC.ListRuns(c.Context(), page)
	if err != nil {
		return transferError(c, err)
	}
	return c.JSON(out)
}

// GetRun godoc
// @Summary      Detalle de una ejecución
// @Tags         transfers
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del run"
// @Success      200  {object}  dto.RunDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transfers/runs/{id} [get]
func (h *TransferHandler) GetRun(c *fiber.Ctx) error {
	out, err := h.runsUC.GetRun(c.Context(), c.Params("id"))
	if err != nil {
		return transferError(c, err)
	}
	return c.JSON(out)
}

// ExportRun godoc
// @Summary      Descargar las recomendaciones de un run como xlsx
// @Tags         transfers
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        id  path  string  true  "ID del run"
// @Success      200  {file}  file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transfers/runs/{id}/export [get]
func (h *TransferHandler) ExportRun(c *fiber.Ctx) error {
	id := c.Params("id")
	data, err := h.runsUC.ExportRun(c.Context(), id)
	if err != nil {
		return transferError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="transfers-`+id+`.xlsx"`)
	return c.Send(data)
}

// ReportRun godoc
// @Summary      Descargar el reporte PDF del resumen de un run
// @Tags         transfers
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID del run"
// @Success      200  {file}  file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transfers/runs/{id}/report [get]
func (h *TransferHandler) ReportRun(c *fiber.Ctx) error {
	id := c.Params("id")
	data, err := h.runsUC.ReportRun(c.Context(), id)
	if err != nil {
		return transferError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="transfers-`+id+`.pdf"`)
	return c.Send(data)
}

// transferError mapea errores de dominio a códigos HTTP.
func transferError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrUnknownMode):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_MODE", Message: "modo de estrategia desconocido"})
	case errors.Is(err, domain.ErrMissingColumn):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_COLUMN", Message: err.Error()})
	case errors.Is(err, domain.ErrEmptySnapshot):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "EMPTY_SNAPSHOT", Message: "el archivo no contiene filas válidas"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "run no encontrado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func closeUpload(f multipart.File) {
	_ = f.Close()
}
