package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/application/usecase"
	"github.com/jhoicas/Ventas-api/pkg/validator"
)

// ManufacturerHandler maneja las peticiones HTTP para Manufacturer (protegido).
type ManufacturerHandler struct {
	uc *usecase.ManufacturerUseCase
}

// NewManufacturerHandler construye el handler.
func NewManufacturerHandler(uc *usecase.ManufacturerUseCase) *ManufacturerHandler {
	return &ManufacturerHandler{uc: uc}
}

// Create godoc
// @Summary      Crear fabricante
// @Tags         manufacturers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateManufacturerRequest  true  "Datos del fabricante"
// @Success      201   {object}  dto.ManufacturerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/manufacturers [post]
func (h *ManufacturerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateManufacturerRequest
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
// @Summary      Obtener fabricante por ID
// @Tags         manufacturers
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del fabricante"
// @Success      200  {object}  dto.ManufacturerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/manufacturers/{id} [get]
func (h *ManufacturerHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetUserID(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar fabricantes
// @Tags         manufacturers
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.ManufacturerListResponse
// @Router       /api/manufacturers [get]
func (h *ManufacturerHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.List(GetUserID(c), page.Limit, page.Offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar fabricante
// @Tags         manufacturers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del fabricante"
// @Param        body  body  dto.UpdateManufacturerRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ManufacturerResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/manufacturers/{id} [put]
func (h *ManufacturerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateManufacturerRequest
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
// @Summary      Eliminar fabricante
// @Tags         manufacturers
// @Security     Bearer
// @Param        id  path  string  true  "ID del fabricante"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/manufacturers/{id} [delete]
func (h *ManufacturerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetUserID(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
