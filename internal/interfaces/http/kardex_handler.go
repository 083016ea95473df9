package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/his-bodega/bodega-api/internal/application/dto"
	"github.com/his-bodega/bodega-api/internal/application/inventario"
	"github.com/his-bodega/bodega-api/internal/domain"
)

// KardexHandler maneja el kardex y la disponibilidad por lotes (protegido).
type KardexHandler struct {
	uc *inventario.KardexUseCase
}

// NewKardexHandler construye el handler.
func NewKardexHandler(uc *inventario.KardexUseCase) *KardexHandler {
	return &KardexHandler{uc: uc}
}

// GetKardex godoc
// @Summary      Kardex de un insumo
// @Description  Historial cronológico de entradas y salidas con stock, último
//               precio y valorización derivados del propio historial.
// @Tags         kardex
// @Security     Bearer
// @Produce      json
// @Param        insumo_id  path  int  true  "ID del insumo"
// @Success      200  {object}  dto.KardexResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/kardex/{insumo_id} [get]
func (h *KardexHandler) GetKardex(c *fiber.Ctx) error {
	id, err := c.ParamsInt("insumo_id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "insumo_id numérico requerido"})
	}
	out, err := h.uc.GetKardex(int64(id))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "insumo no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// LotesDisponibles godoc
// @Summary      Lotes disponibles de un insumo (FEFO)
// @Description  Reparte el stock actual entre los lotes de entrada en orden de
//               vencimiento ascendente; los lotes sin vencimiento van al final.
// @Tags         kardex
// @Security     Bearer
// @Produce      json
// @Param        insumo_id  path  int  true  "ID del insumo"
// @Success      200  {array}   dto.LoteDisponibleDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/kardex/{insumo_id}/lotes [get]
func (h *KardexHandler) LotesDisponibles(c *fiber.Ctx) error {
	id, err := c.ParamsInt("insumo_id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "insumo_id numérico requerido"})
	}
	out, err := h.uc.LotesDisponibles(int64(id))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "insumo no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetKardexPDF godoc
// @Summary      Kardex de un insumo en PDF
// @Tags         kardex
// @Security     Bearer
// @Produce      application/pdf
// @Param        insumo_id  path  int  true  "ID del insumo"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/kardex/{insumo_id}/pdf [get]
func (h *KardexHandler) GetKardexPDF(c *fiber.Ctx) error {
	id, err := c.ParamsInt("insumo_id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "insumo_id numérico requerido"})
	}
	doc, nombre, err := h.uc.KardexPDF(int64(id))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "insumo no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="kardex_%s.pdf"`, nombre))
	return c.Send(doc)
}
