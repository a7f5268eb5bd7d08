package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Vivienda-api/internal/application/dto"
	"github.com/jhoicas/Vivienda-api/internal/application/reporting"
	"github.com/jhoicas/Vivienda-api/internal/domain"
)

// ReportingHandler expone el dashboard de lender y sus exports.
type ReportingHandler struct {
	uc *reporting.UseCase
}

// NewReportingHandler construye el handler inyectando el caso de uso.
func NewReportingHandler(uc *reporting.UseCase) *ReportingHandler {
	return &ReportingHandler{uc: uc}
}

// Dashboard godoc
// @Summary      Dashboard de lender (inversiones, métricas CRA, reportes)
// @Description  Si las tablas de lending aún no existen, responde datos de
// @Description  muestra con placeholder=true en lugar de error.
// @Tags         reporting
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.LenderDashboardResponse
// @Router       /api/reporting/dashboard [get]
func (h *ReportingHandler) Dashboard(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.Dashboard(c.Context(), GetCompanyID(c), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// CRAPDF godoc
// @Summary      Generar el resumen CRA del periodo en PDF
// @Tags         reporting
// @Produce      application/pdf
// @Param        period  query  string  true  "Periodo, ej. 2026-Q1"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reporting/cra/pdf [get]
func (h *ReportingHandler) CRAPDF(c *fiber.Ctx) error {
	period := c.Query("period")
	if period == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "period es requerido"})
	}
	out, err := h.uc.GenerateCRAPDF(c.Context(), GetCompanyID(c), period)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "company no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="cra-summary-`+period+`.pdf"`)
	return c.Send(out)
}

// CRAXML godoc
// @Summary      Exportar las métricas CRA del periodo en XML
// @Tags         reporting
// @Produce      application/xml
// @Param        period  query  string  true  "Periodo, ej. 2026-Q1"
// @Success      200  {string}  string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reporting/cra/xml [get]
func (h *ReportingHandler) CRAXML(c *fiber.Ctx) error {
	period := c.Query("period")
	if period == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "period es requerido"})
	}
	out, err := h.uc.ExportCRAXML(c.Context(), GetCompanyID(c), period)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "company no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	return c.Send(out)
}
