package entity

import "time"

// Estados del ciclo de vida de una Application. Solo estados blandos: una
// application nunca se borra, se marca withdrawn o rejected.
const (
	ApplicationSubmitted   = "submitted"
	ApplicationUnderReview = "under_review"
	ApplicationApproved    = "approved"
	ApplicationRejected    = "rejected"
	ApplicationWithdrawn   = "withdrawn"
)

// Application representa una solicitud de un Applicant a un Project.
// Se crea al enviar el formulario y muta solo por transiciones de estado del reviewer.
type Application struct {
	ID                 string
	CompanyID          string
	ApplicantID        string
	ProjectID          string
	Status             string // ver constantes Application*
	SubmittedAt        time.Time
	ReviewedAt         *time.Time // nil = aún sin revisar
	ReviewedBy         string     // user ID del reviewer; vacío si no aplica
	AdditionalNotes    string
	DeveloperNotes     string
	PreferredMoveIn    *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// validTransitions transiciones permitidas por el reviewer.
var validTransitions = map[string][]string{
	ApplicationSubmitted:   {ApplicationUnderReview, ApplicationWithdrawn},
	ApplicationUnderReview: {ApplicationApproved, ApplicationRejected, ApplicationWithdrawn},
	ApplicationApproved:    {},
	ApplicationRejected:    {},
	ApplicationWithdrawn:   {},
}

// CanTransitionTo indica si el paso de estado actual -> target está permitido.
func (a *Application) CanTransitionTo(target string) bool {
	for _, s := range validTransitions[a.Status] {
		if s == target {
			return true
		}
	}
	return false
}
