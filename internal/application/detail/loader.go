// Package detail implementa la carga resiliente del detalle de una application:
// primero un único fetch con JOIN; si falla, un resolver de fallback que arma el
// mismo read model con fetches independientes por FK. El resultado es un tipo
// explícito (joined / merged / not found), nunca control de flujo por excepción:
// toda falla termina en un estado renderizable.
package detail

import (
	"context"

	"github.com/jhoicas/Vivienda-api/internal/domain/entity"
	"github.com/jhoicas/Vivienda-api/internal/domain/repository"
	"github.com/jhoicas/Vivienda-api/pkg/logger"
)

// Outcome resultado de la carga de detalle.
type Outcome int

const (
	// OutcomeJoined el fetch con JOIN funcionó; el fallback nunca se ejecutó.
	OutcomeJoined Outcome = iota
	// OutcomeMerged el JOIN falló y el read model se armó con fetches por FK.
	OutcomeMerged
	// OutcomeNotFound el registro principal no existe (o no pudo recuperarse).
	OutcomeNotFound
)

// String para logging.
func (o Outcome) String() string {
	switch o {
	case OutcomeJoined:
		return "joined"
	case OutcomeMerged:
		return "merged"
	case OutcomeNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Result detalle cargado más el camino por el que se obtuvo.
type Result struct {
	Outcome Outcome
	Detail  *entity.ApplicationDetail
}

// Loader ejecuta el fetch con JOIN y, de ser necesario, el fallback por FK.
type Loader struct {
	apps       repository.ApplicationRepository
	applicants repository.ApplicantRepository
	projects   repository.ProjectRepository
	companies  repository.CompanyRepository
	log        *logger.Logger
}

// NewLoader construye el loader.
func NewLoader(
	apps repository.ApplicationRepository,
	applicants repository.ApplicantRepository,
	projects repository.ProjectRepository,
	companies repository.CompanyRepository,
	log *logger.Logger,
) *Loader {
	return &Loader{apps: apps, applicants: applicants, projects: projects, companies: companies, log: log}
}

// Load carga el detalle de la application indicada.
//
// Camino feliz: una sola consulta con JOIN (sin retry, sin timeout propio).
// Si la consulta falla (drift de esquema, metadata de relaciones rota, RLS)
// se degrada a N+1 fetches: disponibilidad antes que latencia. Una página
// parcial es preferible a un error duro.
func (l *Loader) Load(ctx context.Context, id string) Result {
	joined, err := l.apps.GetDetailByID(ctx, id)
	if err == nil && joined != nil {
		l.attachImages(joined)
		return Result{Outcome: OutcomeJoined, Detail: joined}
	}
	if err != nil {
		l.log.Warn().Err(err).Str("application_id", id).
			Msg("fetch con JOIN falló, degradando a fetches por FK")
	}
	return l.resolveFallback(ctx, id)
}

// resolveFallback arma el read model con fetches independientes.
//
//  1. Re-fetch del registro principal por id. Si falla o no existe → not found.
//  2. Fetch de cada relación por FK, en paralelo. La falla de una relación se
//     loguea y deja la relación en nil; nunca tumba la carga ni cancela a las
//     hermanas.
//  3. Composición del registro merged con la misma forma que el JOIN habría
//     producido (relaciones ausentes en nil, no omitidas).
func (l *Loader) resolveFallback(ctx context.Context, id string) Result {
	primary, err := l.apps.GetByID(id)
	if err != nil {
		l.log.Error().Err(err).Str("application_id", id).Msg("re-fetch del registro principal falló")
		return Result{Outcome: OutcomeNotFound}
	}
	if primary == nil {
		return Result{Outcome: OutcomeNotFound}
	}

	detail := &entity.ApplicationDetail{Application: *primary}

	applicantCh := make(chan *entity.Applicant, 1)
	projectCh := make(chan *entity.Project, 1)
	companyCh := make(chan *entity.Company, 1)

	go func() {
		if primary.ApplicantID == "" {
			applicantCh <- nil
			return
		}
		a, err := l.applicants.GetByID(primary.ApplicantID)
		if err != nil {
			l.log.Warn().Err(err).Str("applicant_id", primary.ApplicantID).
				Msg("relación applicant no resolvió, queda en nil")
			a = nil
		}
		applicantCh <- a
	}()
	go func() {
		if primary.ProjectID == "" {
			projectCh <- nil
			return
		}
		p, err := l.projects.GetByID(primary.ProjectID)
		if err != nil {
			l.log.Warn().Err(err).Str("project_id", primary.ProjectID).
				Msg("relación project no resolvió, queda en nil")
			p = nil
		}
		projectCh <- p
	}()
	go func() {
		if primary.CompanyID == "" {
			companyCh <- nil
			return
		}
		c, err := l.companies.GetByID(primary.CompanyID)
		if err != nil {
			l.log.Warn().Err(err).Str("company_id", primary.CompanyID).
				Msg("relación company no resolvió, queda en nil")
			c = nil
		}
		companyCh <- c
	}()

	detail.Applicant = <-applicantCh
	detail.Project = <-projectCh
	detail.Company = <-companyCh

	l.attachImages(detail)

	// Cero relaciones resueltas sigue siendo un merged válido: la vista de
	// "minimum data" renderiza el dump de campos del registro principal.
	return Result{Outcome: OutcomeMerged, Detail: detail}
}

// attachImages carga las imágenes del proyecto si la relación resolvió.
// Una falla aquí deja la lista vacía; el transformer la rellena con stock photos.
func (l *Loader) attachImages(detail *entity.ApplicationDetail) {
	if detail.Project == nil {
		return
	}
	images, err := l.projects.ListImages(detail.Project.ID)
	if err != nil {
		l.log.Warn().Err(err).Str("project_id", detail.Project.ID).
			Msg("imágenes del proyecto no resolvieron")
		return
	}
	detail.Images = images
}
