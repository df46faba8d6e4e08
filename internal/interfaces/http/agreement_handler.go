package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/application/usecase"
	"github.com/jhoicas/Ventas-api/pkg/validator"
)

// AgreementHandler maneja las peticiones HTTP para Agreement (protegido).
type AgreementHandler struct {
	uc *usecase.AgreementUseCase
}

// NewAgreementHandler construye el handler.
func NewAgreementHandler(uc *usecase.AgreementUseCase) *AgreementHandler {
	return &AgreementHandler{uc: uc}
}

// Create godoc
// @Summary      Crear contrato
// @Tags         agreements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAgreementRequest  true  "Datos del contrato"
// @Success      201   {object}  dto.AgreementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/agreements [post]
func (h *AgreementHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAgreementRequest
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
// @Summary      Obtener contrato por ID
// @Tags         agreements
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del contrato"
// @Success      200  {object}  dto.AgreementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/agreements/{id} [get]
func (h *AgreementHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetUserID(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar contratos
// @Tags         agreements
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.AgreementListResponse
// @Router       /api/agreements [get]
func (h *AgreementHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.List(GetUserID(c), page.Limit, page.Offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar contrato
// @Tags         agreements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del contrato"
// @Param        body  body  dto.UpdateAgreementRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.AgreementResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/agreements/{id} [put]
func (h *AgreementHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAgreementRequest
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
// @Summary      Eliminar contrato
// @Tags         agreements
// @Security     Bearer
// @Param        id  path  string  true  "ID del contrato"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/agreements/{id} [delete]
func (h *AgreementHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetUserID(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
