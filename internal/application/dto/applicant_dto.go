package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateApplicantRequest entrada para registrar un solicitante.
type CreateApplicantRequest struct {
	FirstName          string          `json:"first_name" validate:"required,max=100"`
	LastName           string          `json:"last_name" validate:"required,max=100"`
	Email              string          `json:"email" validate:"required,email"`
	Phone              string          `json:"phone" validate:"omitempty,max=30"`
	Income             decimal.Decimal `json:"income" validate:"required"`
	HouseholdSize      int             `json:"household_size" validate:"required,min=1"`
	AMIPercent         int             `json:"ami_percent" validate:"omitempty,min=0,max=200"`
	LocationPreference string          `json:"location_preference" validate:"omitempty,max=200"`
}

// UpdateApplicantRequest entrada parcial para actualizar un solicitante.
type UpdateApplicantRequest struct {
	FirstName          *string          `json:"first_name"`
	LastName           *string          `json:"last_name"`
	Email              *string          `json:"email"`
	Phone              *string          `json:"phone"`
	Income             *decimal.Decimal `json:"income"`
	HouseholdSize      *int             `json:"household_size"`
	AMIPercent         *int             `json:"ami_percent"`
	LocationPreference *string          `json:"location_preference"`
}

// ApplicantResponse salida de un solicitante.
type ApplicantResponse struct {
	ID                 string          `json:"id"`
	CompanyID          string          `json:"company_id"`
	FirstName          string          `json:"first_name"`
	LastName           string          `json:"last_name"`
	Email              string          `json:"email"`
	Phone              string          `json:"phone"`
	Income             decimal.Decimal `json:"income"`
	HouseholdSize      int             `json:"household_size"`
	AMIPercent         int             `json:"ami_percent"`
	LocationPreference string          `json:"location_preference"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// ApplicantListResponse listado paginado de solicitantes.
type ApplicantListResponse struct {
	Items []ApplicantResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
