// Package viewmodel convierte read models crudos (posiblemente parciales) en
// modelos de presentación completos y con defaults. Es la única frontera donde
// un registro parcial se vuelve presentable: ningún campo opcional pasa de aquí
// sin default documentado, y nada en este paquete hace I/O.
package viewmodel

import (
	"time"

	"github.com/jhoicas/Vivienda-api/internal/domain/entity"
)

// minImages la galería de la UI asume siempre al menos 3 imágenes.
const minImages = 3

// ApplicationView modelo de presentación del detalle de una application.
type ApplicationView struct {
	ID              string        `json:"id"`
	Status          string        `json:"status"`
	SubmittedAt     string        `json:"submitted_at"`
	ReviewedAt      string        `json:"reviewed_at"`
	AdditionalNotes string        `json:"additional_notes"`
	DeveloperNotes  string        `json:"developer_notes"`
	PreferredMoveIn string        `json:"preferred_move_in"`
	Applicant       ApplicantView `json:"applicant"`
	Project         ProjectView   `json:"project"`
	CompanyName     string        `json:"company_name"`
	MatchScore      int           `json:"match_score"` // placeholder de demo, inestable entre renders
}

// ApplicantView sección de solicitante, con defaults si la relación no resolvió.
type ApplicantView struct {
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Income        string `json:"income"`
	HouseholdSize int    `json:"household_size"`
	AMIPercent    string `json:"ami_percent"`
	Location      string `json:"location"`
}

// ProjectView sección de proyecto, con estimados deterministas documentados.
type ProjectView struct {
	Name              string      `json:"name"`
	Address           string      `json:"address"`
	TotalUnits        int         `json:"total_units"`
	AffordableUnits   int         `json:"affordable_units"`
	EstimatedBedrooms int         `json:"estimated_bedrooms"`
	EstimatedRent     string      `json:"estimated_rent"`
	MinIncome         string      `json:"min_income"`
	MaxIncome         string      `json:"max_income"`
	Status            string      `json:"status"`
	Description       string      `json:"description"`
	Coordinates       *[2]float64 `json:"coordinates"` // [lng, lat] para el SDK de mapas; nil si no hay geo
	Images            []string    `json:"images"`      // siempre >= 3 (se rellena con stock)
}

// Transformer función pura de (read model, relaciones) -> view model.
type Transformer struct {
	synth *Synthesizer
}

// NewTransformer construye el transformer. synth aporta los únicos campos
// pseudo-aleatorios (match score, stock photos); todo lo demás es determinista.
func NewTransformer(synth *Synthesizer) *Transformer {
	return &Transformer{synth: synth}
}

// Transform arma el view model del detalle. Nunca lanza pánico por campos
// ausentes: toda relación nil termina en defaults ("Not provided" / "N/A").
func (t *Transformer) Transform(d *entity.ApplicationDetail) ApplicationView {
	view := ApplicationView{
		ID:              d.Application.ID,
		Status:          d.Application.Status,
		SubmittedAt:     formatDate(&d.Application.SubmittedAt),
		ReviewedAt:      formatDate(d.Application.ReviewedAt),
		AdditionalNotes: coalesce(NotProvided, d.Application.AdditionalNotes),
		DeveloperNotes:  coalesce(NotProvided, d.Application.DeveloperNotes),
		PreferredMoveIn: formatDate(d.Application.PreferredMoveIn),
		Applicant:       t.transformApplicant(d.Applicant),
		Project:         t.transformProject(d.Project, d.Images),
		MatchScore:      t.synth.MatchScore(),
	}
	if d.Company != nil {
		view.CompanyName = coalesce(NotProvided, d.Company.Name)
	} else {
		view.CompanyName = NotProvided
	}
	return view
}

func (t *Transformer) transformApplicant(a *entity.Applicant) ApplicantView {
	if a == nil {
		// Relación sin resolver: sección completa en defaults, la página sigue en 200.
		return ApplicantView{
			FullName:   NotProvided,
			Email:      NotProvided,
			Phone:      NotProvided,
			Income:     NotSpecified,
			AMIPercent: NotAvailable,
			Location:   NotProvided,
		}
	}
	return ApplicantView{
		FullName:      coalesce(NotProvided, a.FullName()),
		Email:         coalesce(NotProvided, a.Email),
		Phone:         coalesce(NotProvided, a.Phone),
		Income:        FormatCurrency(a.Income),
		HouseholdSize: a.HouseholdSize,
		AMIPercent:    FormatAMIPercent(a.AMIPercent),
		Location:      coalesce(NotProvided, a.LocationPreference),
	}
}

func (t *Transformer) transformProject(p *entity.Project, images []entity.ProjectImage) ProjectView {
	if p == nil {
		return ProjectView{
			Name:          NotProvided,
			Address:       NotProvided,
			EstimatedRent: NotSpecified,
			MinIncome:     NotSpecified,
			MaxIncome:     NotSpecified,
			Status:        NotAvailable,
			Description:   NotProvided,
			Images:        t.padImages(nil),
		}
	}
	bedrooms := EstimateBedrooms(p.TotalUnits)
	return ProjectView{
		Name:              coalesce(NotProvided, p.Name),
		Address:           formatAddress(p),
		TotalUnits:        p.TotalUnits,
		AffordableUnits:   p.AffordableUnits,
		EstimatedBedrooms: bedrooms,
		EstimatedRent:     FormatCurrency(EstimateRent(p, bedrooms)),
		MinIncome:         FormatCurrency(p.MinIncome),
		MaxIncome:         FormatCurrency(p.MaxIncome),
		Status:            coalesce(NotAvailable, p.Status),
		Description:       coalesce(NotProvided, p.Description),
		Coordinates:       MarkerCoordinates(p),
		Images:            t.padImages(images),
	}
}

// padImages garantiza el invariante de cardinalidad mínima: la lista siempre
// tiene al menos minImages entradas, rellenando con stock photos.
func (t *Transformer) padImages(images []entity.ProjectImage) []string {
	urls := make([]string, 0, minImages)
	for _, img := range images {
		if img.URL != "" {
			urls = append(urls, img.URL)
		}
	}
	for len(urls) < minImages {
		urls = append(urls, t.synth.StockPhoto())
	}
	return urls
}

func formatAddress(p *entity.Project) string {
	if p.Address == "" && p.City == "" {
		return NotProvided
	}
	addr := p.Address
	if p.City != "" {
		if addr != "" {
			addr += ", "
		}
		addr += p.City
	}
	if p.State != "" {
		addr += ", " + p.State
	}
	if p.Zip != "" {
		addr += " " + p.Zip
	}
	return addr
}

func formatDate(ts *time.Time) string {
	if ts == nil || ts.IsZero() {
		return NotProvided
	}
	return ts.Format("Jan 2, 2006")
}
