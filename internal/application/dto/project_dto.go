package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProjectRequest entrada para crear un proyecto de vivienda.
type CreateProjectRequest struct {
	Name            string          `json:"name" validate:"required,max=200"`
	Address         string          `json:"address" validate:"omitempty,max=300"`
	City            string          `json:"city" validate:"required,max=100"`
	State           string          `json:"state" validate:"required,len=2"`
	Zip             string          `json:"zip" validate:"omitempty,max=10"`
	TotalUnits      int             `json:"total_units" validate:"required,min=1"`
	AffordableUnits int             `json:"affordable_units" validate:"omitempty,min=0"`
	AMILevels       []int32         `json:"ami_levels"`
	MinIncome       decimal.Decimal `json:"min_income"`
	MaxIncome       decimal.Decimal `json:"max_income"`
	Status          string          `json:"status" validate:"omitempty,oneof=planning under_construction leasing completed"`
	Latitude        *float64        `json:"latitude"`
	Longitude       *float64        `json:"longitude"`
	Description     string          `json:"description"`
	Amenities       string          `json:"amenities"`
	PetPolicy       string          `json:"pet_policy"`
	SmokingPolicy   string          `json:"smoking_policy"`
}

// UpdateProjectRequest entrada parcial para actualizar un proyecto.
type UpdateProjectRequest struct {
	Name            *string          `json:"name"`
	Address         *string          `json:"address"`
	City            *string          `json:"city"`
	State           *string          `json:"state"`
	Zip             *string          `json:"zip"`
	TotalUnits      *int             `json:"total_units"`
	AffordableUnits *int             `json:"affordable_units"`
	AMILevels       []int32          `json:"ami_levels"`
	MinIncome       *decimal.Decimal `json:"min_income"`
	MaxIncome       *decimal.Decimal `json:"max_income"`
	Status          *string          `json:"status"`
	Latitude        *float64         `json:"latitude"`
	Longitude       *float64         `json:"longitude"`
	Description     *string          `json:"description"`
	Amenities       *string          `json:"amenities"`
	PetPolicy       *string          `json:"pet_policy"`
	SmokingPolicy   *string          `json:"smoking_policy"`
}

// ProjectResponse salida de un proyecto. Coordinates ya viene en [lng, lat]
// (orden del SDK de mapas); Latitude/Longitude conservan el orden persistido.
type ProjectResponse struct {
	ID              string          `json:"id"`
	CompanyID       string          `json:"company_id"`
	Name            string          `json:"name"`
	Address         string          `json:"address"`
	City            string          `json:"city"`
	State           string          `json:"state"`
	Zip             string          `json:"zip"`
	TotalUnits      int             `json:"total_units"`
	AffordableUnits int             `json:"affordable_units"`
	AMILevels       []int32         `json:"ami_levels"`
	MinIncome       decimal.Decimal `json:"min_income"`
	MaxIncome       decimal.Decimal `json:"max_income"`
	Status          string          `json:"status"`
	Latitude        *float64        `json:"latitude"`
	Longitude       *float64        `json:"longitude"`
	Coordinates     *[2]float64     `json:"coordinates"`
	Description     string          `json:"description"`
	Amenities       string          `json:"amenities"`
	PetPolicy       string          `json:"pet_policy"`
	SmokingPolicy   string          `json:"smoking_policy"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ProjectListResponse listado paginado de proyectos.
type ProjectListResponse struct {
	Items []ProjectResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// ProjectSearchRequest búsqueda geoespacial por bounding box.
type ProjectSearchRequest struct {
	MinLat float64 `query:"min_lat"`
	MaxLat float64 `query:"max_lat"`
	MinLng float64 `query:"min_lng"`
	MaxLng float64 `query:"max_lng"`
	Limit  int     `query:"limit"`
}
