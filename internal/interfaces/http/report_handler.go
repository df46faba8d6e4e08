package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Ventas-api/internal/application/usecase"
	"github.com/jhoicas/Ventas-api/internal/infrastructure/pdf"
)

// ReportHandler expone el reporte de inventario y ventas en JSON y PDF.
type ReportHandler struct {
	uc  *usecase.ReportUseCase
	gen *pdf.ReportGenerator
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase, gen *pdf.ReportGenerator) *ReportHandler {
	return &ReportHandler{uc: uc, gen: gen}
}

// Get godoc
// @Summary      Reporte de inventario y ventas (JSON)
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ReportResponse
// @Router       /api/reports [get]
func (h *ReportHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Generate(GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetPDF godoc
// @Summary      Reporte de inventario y ventas (PDF)
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reports/pdf [get]
func (h *ReportHandler) GetPDF(c *fiber.Ctx) error {
	report, err := h.uc.Generate(GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	doc, err := h.gen.Generate(report)
	if err != nil {
		return writeError(c, err)
	}
	filename := fmt.Sprintf("reporte-%s.pdf", time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(doc)
}
