package entity

import "time"

// Planes SaaS disponibles para una Company.
const (
	PlanStarter    = "starter"
	PlanGrowth     = "growth"
	PlanEnterprise = "enterprise"
)

// Company representa una organización/tenant del sistema: un developer de
// vivienda asequible o una entidad lender (banco sujeto a CRA).
// Applications, Projects y Applicants se scopean por CompanyID.
type Company struct {
	ID        string
	Name      string
	Key       string // clave pública del tenant, se propaga como X-Company-Key
	Plan      string // ver constantes Plan*
	Seats     int
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
