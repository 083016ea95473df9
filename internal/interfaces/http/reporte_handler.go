package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/his-bodega/bodega-api/internal/application/dto"
	"github.com/his-bodega/bodega-api/internal/application/reportes"
	"github.com/his-bodega/bodega-api/internal/domain"
)

// ReporteHandler maneja los reportes de inventario (protegido).
type ReporteHandler struct {
	uc *reportes.UseCase
}

// NewReporteHandler construye el handler.
func NewReporteHandler(uc *reportes.UseCase) *ReporteHandler {
	return &ReporteHandler{uc: uc}
}

// ReporteStock godoc
// @Summary      Reporte de estado de stock
// @Description  Todos los insumos con sus alertas vigentes.
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ReporteStockItemDTO
// @Router       /api/reporte-stock [get]
func (h *ReporteHandler) ReporteStock(c *fiber.Ctx) error {
	out, err := h.uc.ReporteStock()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ConsumoPorEspecialidad godoc
// @Summary      Consumo por especialidad
// @Description  Agrega cantidad y costo de las salidas por especialidad e
//               insumo dentro del período. Sin rango, los últimos 30 días.
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Param        fecha_inicio  query  string  false  "YYYY-MM-DD"
// @Param        fecha_fin     query  string  false  "YYYY-MM-DD"
// @Success      200  {object}  dto.ConsumoReporteDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reportes/consumo-por-especialidad [get]
func (h *ReporteHandler) ConsumoPorEspecialidad(c *fiber.Ctx) error {
	out, err := h.uc.ConsumoPorEspecialidad(c.Context(), c.Query("fecha_inicio"), c.Query("fecha_fin"))
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fechas YYYY-MM-DD y rango no invertido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
