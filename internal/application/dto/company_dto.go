package dto

import "time"

// CreateCompanyRequest entrada para crear una company (tenant).
type CreateCompanyRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=200"`
	Key   string `json:"key" validate:"required,min=3,max=64"`
	Plan  string `json:"plan" validate:"omitempty,oneof=starter growth enterprise"`
	Seats int    `json:"seats" validate:"omitempty,min=1"`
}

// CompanyResponse salida de una company.
type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Key       string    `json:"key"`
	Plan      string    `json:"plan"`
	Seats     int       `json:"seats"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CompanyListResponse listado paginado de companies.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
