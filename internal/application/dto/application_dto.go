package dto

import (
	"time"

	"github.com/jhoicas/Vivienda-api/internal/application/viewmodel"
)

// SubmitApplicationRequest entrada para enviar una solicitud a un proyecto.
type SubmitApplicationRequest struct {
	ApplicantID     string     `json:"applicant_id" validate:"required,uuid"`
	ProjectID       string     `json:"project_id" validate:"required,uuid"`
	AdditionalNotes string     `json:"additional_notes" validate:"omitempty,max=2000"`
	PreferredMoveIn *time.Time `json:"preferred_move_in"`
}

// ReviewApplicationRequest entrada del reviewer para transicionar el estado.
type ReviewApplicationRequest struct {
	Status         string `json:"status" validate:"required,oneof=under_review approved rejected"`
	DeveloperNotes string `json:"developer_notes" validate:"omitempty,max=2000"`
}

// ApplicationResponse salida plana de una application (listados y mutaciones).
type ApplicationResponse struct {
	ID              string     `json:"id"`
	CompanyID       string     `json:"company_id"`
	ApplicantID     string     `json:"applicant_id"`
	ProjectID       string     `json:"project_id"`
	Status          string     `json:"status"`
	SubmittedAt     time.Time  `json:"submitted_at"`
	ReviewedAt      *time.Time `json:"reviewed_at"`
	ReviewedBy      string     `json:"reviewed_by,omitempty"`
	AdditionalNotes string     `json:"additional_notes,omitempty"`
	DeveloperNotes  string     `json:"developer_notes,omitempty"`
	PreferredMoveIn *time.Time `json:"preferred_move_in"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// ApplicationListResponse listado paginado de applications.
type ApplicationListResponse struct {
	Items []ApplicationResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}

// ApplicationDetailResponse detalle renderizable de una application.
// Source indica cómo se armó el read model: "joined" (un solo query) o
// "merged" (resolución relación por relación tras fallar el join).
type ApplicationDetailResponse struct {
	Detail viewmodel.ApplicationView `json:"detail"`
	Source string                    `json:"source"`
}
