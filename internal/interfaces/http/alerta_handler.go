package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/his-bodega/bodega-api/internal/application/alertas"
	"github.com/his-bodega/bodega-api/internal/application/dto"
	"github.com/his-bodega/bodega-api/internal/domain"
)

// AlertaHandler maneja las alertas de stock y vencimiento (protegido).
type AlertaHandler struct {
	uc              *alertas.UseCase
	diasVencimiento int
}

// NewAlertaHandler construye el handler. diasVencimiento es la ventana por
// defecto para /generar-vencimiento cuando la petición no trae ?dias.
func NewAlertaHandler(uc *alertas.UseCase, diasVencimiento int) *AlertaHandler {
	return &AlertaHandler{uc: uc, diasVencimiento: diasVencimiento}
}

// List godoc
// @Summary      Listar alertas vigentes
// @Description  Devuelve solo las alertas que siguen siendo accionables: stock
//               bajo con el insumo aún bajo mínimo y vencimientos no pasados.
// @Tags         alertas
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(100)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}  dto.AlertaResponse
// @Router       /api/alertas [get]
func (h *AlertaHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 0), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.ListarActivas(page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear alerta manual
// @Tags         alertas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAlertaRequest  true  "insumo_id y mensaje"
// @Success      201   {object}  dto.AlertaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/alertas [post]
func (h *AlertaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAlertaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Crear(actorDe(c), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "mensaje requerido y fecha YYYY-MM-DD"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "insumo no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GenerarStockBajo godoc
// @Summary      Generar alertas de stock bajo
// @Description  Crea una alerta por cada insumo bajo su stock mínimo, sin
//               repetir mensajes ya registrados.
// @Tags         alertas
// @Security     Bearer
// @Produce      json
// @Success      201  {array}  dto.AlertaResponse
// @Router       /api/alertas/generar-stock-bajo [post]
func (h *AlertaHandler) GenerarStockBajo(c *fiber.Ctx) error {
	out, err := h.uc.GenerarStockBajo(actorDe(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GenerarVencimiento godoc
// @Summary      Generar alertas de vencimiento próximo
// @Tags         alertas
// @Security     Bearer
// @Produce      json
// @Param        dias  query  int  false  "Ventana en días hacia adelante"  default(30)
// @Success      201   {array}  dto.AlertaResponse
// @Router       /api/alertas/generar-vencimiento [post]
func (h *AlertaHandler) GenerarVencimiento(c *fiber.Ctx) error {
	dias := c.QueryInt("dias", h.diasVencimiento)
	out, err := h.uc.GenerarVencimiento(actorDe(c), dias)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
