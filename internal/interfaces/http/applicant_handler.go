package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Vivienda-api/internal/application/dto"
	"github.com/jhoicas/Vivienda-api/internal/application/usecase"
	"github.com/jhoicas/Vivienda-api/internal/domain"
)

// ApplicantHandler maneja las peticiones HTTP para el recurso Applicant.
type ApplicantHandler struct {
	uc *usecase.ApplicantUseCase
}

// NewApplicantHandler construye el handler inyectando el caso de uso.
func NewApplicantHandler(uc *usecase.ApplicantUseCase) *ApplicantHandler {
	return &ApplicantHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar solicitante
// @Tags         applicants
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateApplicantRequest  true  "Datos del solicitante"
// @Success      201   {object}  dto.ApplicantResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/applicants [post]
func (h *ApplicantHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateApplicantRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.FirstName == "" || in.LastName == "" || in.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "first_name, last_name y email son requeridos"})
	}
	out, err := h.uc.Create(GetCompanyID(c), in)
	if err != nil {
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "solicitante con ese email ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener solicitante por ID
// @Tags         applicants
// @Produce      json
// @Param        id   path  string  true  "ID del solicitante"
// @Success      200  {object}  dto.ApplicantResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/applicants/{id} [get]
func (h *ApplicantHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "solicitante no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar solicitante (parcial)
// @Tags         applicants
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del solicitante"
// @Param        body  body  dto.UpdateApplicantRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ApplicantResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/applicants/{id} [put]
func (h *ApplicantHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateApplicantRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "solicitante no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar solicitantes de la company
// @Tags         applicants
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.ApplicantListResponse
// @Router       /api/applicants [get]
func (h *ApplicantHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.ListByCompany(GetCompanyID(c), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
