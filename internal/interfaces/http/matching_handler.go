package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Vivienda-api/internal/application/dto"
	"github.com/jhoicas/Vivienda-api/internal/application/matchsvc"
	"github.com/jhoicas/Vivienda-api/internal/infrastructure/matching"
)

// MatchingHandler expone los resultados del backend externo de matching.
type MatchingHandler struct {
	svc *matchsvc.Service
}

// NewMatchingHandler construye el handler inyectando el servicio.
func NewMatchingHandler(svc *matchsvc.Service) *MatchingHandler {
	return &MatchingHandler{svc: svc}
}

// Matches godoc
// @Summary      Matches calculados para un solicitante
// @Tags         matching
// @Produce      json
// @Param        applicantId  path  string  true  "ID del solicitante"
// @Success      200  {object}  dto.MatchListResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/matching/applicants/{applicantId} [get]
func (h *MatchingHandler) Matches(c *fiber.Ctx) error {
	applicantID := c.Params("applicantId")
	if applicantID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "applicantId es requerido"})
	}
	out, err := h.svc.Matches(c.Context(), applicantID)
	if err != nil {
		return matchingError(c, err)
	}
	return c.JSON(out)
}

// Eligibility godoc
// @Summary      Elegibilidad AMI de un solicitante frente a un proyecto
// @Tags         matching
// @Produce      json
// @Param        applicantId  path   string  true  "ID del solicitante"
// @Param        project_id   query  string  true  "ID del proyecto"
// @Success      200  {object}  dto.EligibilityResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/matching/eligibility/{applicantId} [get]
func (h *MatchingHandler) Eligibility(c *fiber.Ctx) error {
	applicantID := c.Params("applicantId")
	projectID := c.Query("project_id")
	if applicantID == "" || projectID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "applicantId y project_id son requeridos"})
	}
	out, err := h.svc.Eligibility(c.Context(), applicantID, projectID)
	if err != nil {
		return matchingError(c, err)
	}
	return c.JSON(out)
}

// Heatmap godoc
// @Summary      Heatmap geoespacial de una región ([lng, lat])
// @Tags         matching
// @Produce      json
// @Param        region  query  string  true  "Identificador de región"
// @Success      200     {object}  dto.HeatmapResponse
// @Failure      502     {object}  dto.ErrorResponse
// @Router       /api/analytics/heatmap [get]
func (h *MatchingHandler) Heatmap(c *fiber.Ctx) error {
	region := c.Query("region")
	if region == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "region es requerida"})
	}
	out, err := h.svc.Heatmap(c.Context(), region)
	if err != nil {
		return matchingError(c, err)
	}
	return c.JSON(out)
}

// matchingError traduce los errores del backend externo. Un error tipado del
// backend se reporta como 502 reintentable; el mensaje original se conserva
// para que la UI lo muestre en el toast.
func matchingError(c *fiber.Ctx, err error) error {
	var apiErr *matching.APIError
	if errors.As(err, &apiErr) {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "MATCHING_UPSTREAM", Message: apiErr.Message})
	}
	return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "MATCHING_UNAVAILABLE", Message: err.Error()})
}
