package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un Project.
const (
	ProjectPlanning     = "planning"
	ProjectConstruction = "under_construction"
	ProjectLeasing      = "leasing"
	ProjectCompleted    = "completed"
)

// Project representa un desarrollo de vivienda asequible (pertenece a una Company).
// Latitude/Longitude son punteros: muchos proyectos llegan sin geocodificar.
type Project struct {
	ID              string
	CompanyID       string
	Name            string
	Address         string
	City            string
	State           string
	Zip             string
	TotalUnits      int
	AffordableUnits int
	AMILevels       []int32 // bandas AMI aceptadas (ej. 30, 50, 80)
	MinIncome       decimal.Decimal
	MaxIncome       decimal.Decimal
	Status          string // ver constantes Project*
	Latitude        *float64
	Longitude       *float64
	Description     string
	Amenities       string
	PetPolicy       string
	SmokingPolicy   string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ProjectImage imagen persistida de un proyecto (one-to-many).
type ProjectImage struct {
	ID        string
	ProjectID string
	URL       string
	Caption   string
	SortOrder int
	CreatedAt time.Time
}
