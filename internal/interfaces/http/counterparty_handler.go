package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/application/usecase"
	"github.com/jhoicas/Ventas-api/pkg/validator"
)

// CounterpartyHandler maneja las peticiones HTTP para Counterparty (protegido).
type CounterpartyHandler struct {
	uc *usecase.CounterpartyUseCase
}

// NewCounterpartyHandler construye el handler.
func NewCounterpartyHandler(uc *usecase.CounterpartyUseCase) *CounterpartyHandler {
	return &CounterpartyHandler{uc: uc}
}

// Create godoc
// @Summary      Crear contraparte
// @Tags         counterparties
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCounterpartyRequest  true  "Datos de la contraparte"
// @Success      201   {object}  dto.CounterpartyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/counterparties [post]
func (h *CounterpartyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCounterpartyRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validator.FirstError(in); err != nil {
		return badRequest(c, err.Error())
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener contraparte por ID
// @Tags         counterparties
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la contraparte"
// @Success      200  {object}  dto.CounterpartyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/counterparties/{id} [get]
func (h *CounterpartyHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetUserID(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar contrapartes
// @Tags         counterparties
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.CounterpartyListResponse
// @Router       /api/counterparties [get]
func (h *CounterpartyHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.List(GetUserID(c), page.Limit, page.Offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar contraparte
// @Tags         counterparties
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la contraparte"
// @Param        body  body  dto.UpdateCounterpartyRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.CounterpartyResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/counterparties/{id} [put]
func (h *CounterpartyHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCounterpartyRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validator.FirstError(in); err != nil {
		return badRequest(c, err.Error())
	}
	out, err := h.uc.Update(GetUserID(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar contraparte
// @Tags         counterparties
// @Security     Bearer
// @Param        id  path  string  true  "ID de la contraparte"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/counterparties/{id} [delete]
func (h *CounterpartyHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetUserID(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
