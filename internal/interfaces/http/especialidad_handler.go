package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/his-bodega/bodega-api/internal/application/dto"
	"github.com/his-bodega/bodega-api/internal/application/inventario"
	"github.com/his-bodega/bodega-api/internal/domain"
)

// EspecialidadHandler maneja el catálogo de especialidades (protegido; escritura solo admin).
type EspecialidadHandler struct {
	uc *inventario.EspecialidadUseCase
}

// NewEspecialidadHandler construye el handler.
func NewEspecialidadHandler(uc *inventario.EspecialidadUseCase) *EspecialidadHandler {
	return &EspecialidadHandler{uc: uc}
}

// Create godoc
// @Summary      Crear especialidad
// @Tags         especialidades
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEspecialidadRequest  true  "Nombre de la especialidad"
// @Success      201   {object}  dto.EspecialidadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/especialidades [post]
func (h *EspecialidadHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEspecialidadRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Crear(actorDe(c), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre es requerido"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "la especialidad ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar especialidades
// @Tags         especialidades
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(100)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}  dto.EspecialidadResponse
// @Router       /api/especialidades [get]
func (h *EspecialidadHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 0), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.Listar(page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
