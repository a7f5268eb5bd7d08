package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Vivienda-api/internal/application/dto"
	"github.com/jhoicas/Vivienda-api/internal/application/usecase"
	"github.com/jhoicas/Vivienda-api/internal/domain"
)

// ApplicationHandler maneja el ciclo de vida de las solicitudes de vivienda.
type ApplicationHandler struct {
	uc *usecase.ApplicationUseCase
}

// NewApplicationHandler construye el handler inyectando el caso de uso.
func NewApplicationHandler(uc *usecase.ApplicationUseCase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

// Submit godoc
// @Summary      Enviar solicitud a un proyecto
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubmitApplicationRequest  true  "applicant_id, project_id"
// @Success      201   {object}  dto.ApplicationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/applications [post]
func (h *ApplicationHandler) Submit(c *fiber.Ctx) error {
	var in dto.SubmitApplicationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ApplicantID == "" || in.ProjectID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "applicant_id y project_id son requeridos"})
	}
	out, err := h.uc.Submit(c.Context(), GetCompanyID(c), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Detail godoc
// @Summary      Detalle renderizable de una solicitud
// @Description  Carga resiliente (JOIN con fallback por FK), gate de permisos y
// @Description  view model con defaults. La denegación es 403 ACCESS_DENIED,
// @Description  distinta del 404 NOT_FOUND.
// @Tags         applications
// @Produce      json
// @Param        id   path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.ApplicationDetailResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/applications/{id}/detail [get]
func (h *ApplicationHandler) Detail(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.Detail(c.Context(), GetCaller(c), id)
	if err != nil {
		return applicationError(c, err)
	}
	return c.JSON(out)
}

// Review godoc
// @Summary      Transicionar el estado de una solicitud (reviewer)
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la solicitud"
// @Param        body  body  dto.ReviewApplicationRequest  true  "status destino"
// @Success      200   {object}  dto.ApplicationResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/applications/{id}/review [post]
func (h *ApplicationHandler) Review(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.ReviewApplicationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status es requerido"})
	}
	out, err := h.uc.Review(c.Context(), GetCaller(c), GetUserID(c), id, in)
	if err != nil {
		return applicationError(c, err)
	}
	return c.JSON(out)
}

// Withdraw godoc
// @Summary      Retirar una solicitud
// @Tags         applications
// @Produce      json
// @Param        id   path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.ApplicationResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/applications/{id}/withdraw [post]
func (h *ApplicationHandler) Withdraw(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.Withdraw(c.Context(), GetCaller(c), id)
	if err != nil {
		return applicationError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar solicitudes de la company
// @Tags         applications
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.ApplicationListResponse
// @Router       /api/applications [get]
func (h *ApplicationHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.ListByCompany(GetCompanyID(c), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListByApplicant godoc
// @Summary      Listar solicitudes de un solicitante
// @Tags         applications
// @Produce      json
// @Param        applicantId  path   string  true  "ID del solicitante"
// @Param        limit        query  int     false "Límite"  default(20)
// @Param        offset       query  int     false "Offset"  default(0)
// @Success      200  {object}  dto.ApplicationListResponse
// @Router       /api/applicants/{applicantId}/applications [get]
func (h *ApplicationHandler) ListByApplicant(c *fiber.Ctx) error {
	applicantID := c.Params("applicantId")
	if applicantID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "applicantId es requerido"})
	}
	limit, offset := pageParams(c)
	out, err := h.uc.ListByApplicant(applicantID, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// applicationError mapea los errores de dominio del ciclo de vida.
// ACCESS_DENIED (403) y NOT_FOUND (404) son estados distintos a propósito: el
// caller sabe si el registro existe pero no le pertenece.
func applicationError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "solicitud no encontrada"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "ACCESS_DENIED", Message: "sin permiso para esta solicitud"})
	case errors.Is(err, domain.ErrInvalidTransition):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_TRANSITION", Message: "transición de estado no permitida"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
