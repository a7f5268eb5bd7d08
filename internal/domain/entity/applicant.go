package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Applicant representa un solicitante de vivienda (pertenece a una Company).
// Un applicant puede tener varias Applications.
type Applicant struct {
	ID                 string
	CompanyID          string
	FirstName          string
	LastName           string
	Email              string
	Phone              string
	Income             decimal.Decimal // ingreso anual del hogar en USD
	HouseholdSize      int
	AMIPercent         int // banda AMI del hogar (ej. 30, 50, 60, 80, 120)
	LocationPreference string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// FullName devuelve nombre y apellido concatenados.
func (a *Applicant) FullName() string {
	if a.FirstName == "" {
		return a.LastName
	}
	if a.LastName == "" {
		return a.FirstName
	}
	return a.FirstName + " " + a.LastName
}
