package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Vivienda-api/internal/application/detail"
	"github.com/jhoicas/Vivienda-api/internal/application/dto"
	"github.com/jhoicas/Vivienda-api/internal/application/usecase"
	"github.com/jhoicas/Vivienda-api/internal/application/viewmodel"
	"github.com/jhoicas/Vivienda-api/internal/domain"
	"github.com/jhoicas/Vivienda-api/internal/domain/access"
	"github.com/jhoicas/Vivienda-api/internal/domain/entity"
	"github.com/jhoicas/Vivienda-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeAppRepo struct {
	detail  *entity.ApplicationDetail
	created []*entity.Application
	updated []*entity.Application
}

func (f *fakeAppRepo) Create(a *entity.Application) error {
	f.created = append(f.created, a)
	return nil
}
func (f *fakeAppRepo) GetByID(string) (*entity.Application, error) {
	if f.detail == nil {
		return nil, nil
	}
	app := f.detail.Application
	return &app, nil
}
func (f *fakeAppRepo) GetDetailByID(context.Context, string) (*entity.ApplicationDetail, error) {
	return f.detail, nil
}
func (f *fakeAppRepo) Update(a *entity.Application) error {
	f.updated = append(f.updated, a)
	return nil
}
func (f *fakeAppRepo) ListByCompany(string, int, int) ([]*entity.Application, error) {
	return nil, nil
}
func (f *fakeAppRepo) ListByApplicant(string, int, int) ([]*entity.Application, error) {
	return nil, nil
}

type fakeApplicantRepo struct{ applicant *entity.Applicant }

func (f *fakeApplicantRepo) Create(*entity.Applicant) error { return nil }
func (f *fakeApplicantRepo) GetByID(string) (*entity.Applicant, error) {
	return f.applicant, nil
}
func (f *fakeApplicantRepo) GetByEmail(string) (*entity.Applicant, error) { return nil, nil }
func (f *fakeApplicantRepo) Update(*entity.Applicant) error               { return nil }
func (f *fakeApplicantRepo) ListByCompany(string, int, int) ([]*entity.Applicant, error) {
	return nil, nil
}

type fakeProjectRepo struct{ project *entity.Project }

func (f *fakeProjectRepo) Create(*entity.Project) error            { return nil }
func (f *fakeProjectRepo) GetByID(string) (*entity.Project, error) { return f.project, nil }
func (f *fakeProjectRepo) Update(*entity.Project) error            { return nil }
func (f *fakeProjectRepo) ListByCompany(string, int, int) ([]*entity.Project, error) {
	return nil, nil
}
func (f *fakeProjectRepo) ListImages(string) ([]entity.ProjectImage, error) { return nil, nil }
func (f *fakeProjectRepo) SearchByBounds(context.Context, float64, float64, float64, float64, int) ([]*entity.Project, error) {
	return nil, nil
}

type fakeCompanyRepo struct{ company *entity.Company }

func (f *fakeCompanyRepo) Create(*entity.Company) error            { return nil }
func (f *fakeCompanyRepo) GetByID(string) (*entity.Company, error) { return f.company, nil }
func (f *fakeCompanyRepo) GetByKey(string) (*entity.Company, error) {
	return nil, nil
}
func (f *fakeCompanyRepo) List(int, int) ([]*entity.Company, error) { return nil, nil }

type fakeUserRepo struct{ user *entity.User }

func (f *fakeUserRepo) Create(*entity.User) error { return nil }
func (f *fakeUserRepo) GetByID(string) (*entity.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) FindByEmail(string) (*entity.User, error) { return f.user, nil }
func (f *fakeUserRepo) GetByEmailAndCompany(string, string) (*entity.User, error) {
	return nil, nil
}

type fakeNotificationRepo struct{ created []*entity.Notification }

func (f *fakeNotificationRepo) Create(n *entity.Notification) error {
	f.created = append(f.created, n)
	return nil
}
func (f *fakeNotificationRepo) ListByUser(string, int, int) ([]*entity.Notification, error) {
	return nil, nil
}
func (f *fakeNotificationRepo) CountUnread(string) (int, error) { return 0, nil }
func (f *fakeNotificationRepo) MarkRead(string, string) error   { return nil }

type fakeInvalidator struct{ invalidated []string }

func (f *fakeInvalidator) InvalidateApplicant(_ context.Context, id string) error {
	f.invalidated = append(f.invalidated, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

func submittedDetail() *entity.ApplicationDetail {
	return &entity.ApplicationDetail{
		Application: entity.Application{
			ID:          "app-1",
			CompanyID:   "company-1",
			ApplicantID: "applicant-1",
			ProjectID:   "project-1",
			Status:      entity.ApplicationSubmitted,
			SubmittedAt: time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
		},
		Applicant: &entity.Applicant{
			ID: "applicant-1", CompanyID: "company-1",
			FirstName: "Maria", LastName: "Lopez", Email: "maria@example.com",
		},
		Project: &entity.Project{ID: "project-1", CompanyID: "company-1", Name: "Cedar Commons"},
		Company: &entity.Company{ID: "company-1", Name: "Urban Housing LLC"},
	}
}

type env struct {
	uc            *usecase.ApplicationUseCase
	apps          *fakeAppRepo
	notifications *fakeNotificationRepo
	invalidator   *fakeInvalidator
}

func newEnv(d *entity.ApplicationDetail) *env {
	apps := &fakeAppRepo{detail: d}
	var applicant *entity.Applicant
	var project *entity.Project
	var company *entity.Company
	if d != nil {
		applicant, project, company = d.Applicant, d.Project, d.Company
	}
	log := logger.Nop()
	loader := detail.NewLoader(apps,
		&fakeApplicantRepo{applicant: applicant},
		&fakeProjectRepo{project: project},
		&fakeCompanyRepo{company: company},
		log)
	transformer := viewmodel.NewTransformer(viewmodel.NewSynthesizer(42))
	notifications := &fakeNotificationRepo{}
	invalidator := &fakeInvalidator{}
	users := &fakeUserRepo{user: &entity.User{ID: "user-9", Email: "maria@example.com"}}
	uc := usecase.NewApplicationUseCase(apps, users, notifications, loader, transformer, invalidator, log)
	return &env{uc: uc, apps: apps, notifications: notifications, invalidator: invalidator}
}

var developerCaller = access.Caller{Role: entity.RoleDeveloper, CompanyID: "company-1"}

// ──────────────────────────────────────────────────────────────────────────────
// Detail: gate de permisos
// ──────────────────────────────────────────────────────────────────────────────

func TestDetail_DeveloperDeLaCompany(t *testing.T) {
	e := newEnv(submittedDetail())

	out, err := e.uc.Detail(context.Background(), developerCaller, "app-1")
	require.NoError(t, err)
	assert.Equal(t, "joined", out.Source)
	assert.Equal(t, "Maria Lopez", out.Detail.Applicant.FullName)
}

// La denegación es distinguible del not found: domain.ErrForbidden, no ErrNotFound.
func TestDetail_CompanyAjenaEsForbidden(t *testing.T) {
	e := newEnv(submittedDetail())
	caller := access.Caller{Role: entity.RoleDeveloper, CompanyID: "otra-company"}

	_, err := e.uc.Detail(context.Background(), caller, "app-1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestDetail_NoExisteEsNotFound(t *testing.T) {
	e := newEnv(nil)

	_, err := e.uc.Detail(context.Background(), developerCaller, "app-404")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDetail_ApplicantVeSuPropiaSolicitud(t *testing.T) {
	e := newEnv(submittedDetail())
	caller := access.Caller{Role: entity.RoleApplicant, Email: "maria@example.com"}

	out, err := e.uc.Detail(context.Background(), caller, "app-1")
	require.NoError(t, err)
	assert.Equal(t, "Cedar Commons", out.Detail.Project.Name)
}

func TestDetail_ApplicantAjenoEsForbidden(t *testing.T) {
	e := newEnv(submittedDetail())
	caller := access.Caller{Role: entity.RoleApplicant, Email: "otro@example.com"}

	_, err := e.uc.Detail(context.Background(), caller, "app-1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// Submit / Review / Withdraw
// ──────────────────────────────────────────────────────────────────────────────

func TestSubmit_CreaEInvalidaCache(t *testing.T) {
	e := newEnv(nil)

	out, err := e.uc.Submit(context.Background(), "company-1", dto.SubmitApplicationRequest{
		ApplicantID: "applicant-1",
		ProjectID:   "project-1",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ApplicationSubmitted, out.Status)
	require.Len(t, e.apps.created, 1)
	assert.Equal(t, []string{"applicant-1"}, e.invalidator.invalidated)
}

func TestReview_TransicionValida(t *testing.T) {
	e := newEnv(submittedDetail())

	out, err := e.uc.Review(context.Background(), developerCaller, "user-2", "app-1", dto.ReviewApplicationRequest{
		Status:         entity.ApplicationUnderReview,
		DeveloperNotes: "documentos completos",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ApplicationUnderReview, out.Status)
	assert.Equal(t, "user-2", out.ReviewedBy)
	require.NotNil(t, out.ReviewedAt)
	require.Len(t, e.apps.updated, 1)

	// El usuario del solicitante recibe la notificación del cambio
	require.Len(t, e.notifications.created, 1)
	assert.Equal(t, "user-9", e.notifications.created[0].UserID)
	assert.Equal(t, "application_update", e.notifications.created[0].Kind)
}

// submitted -> approved no está permitido: primero under_review.
func TestReview_TransicionInvalida(t *testing.T) {
	e := newEnv(submittedDetail())

	_, err := e.uc.Review(context.Background(), developerCaller, "user-2", "app-1", dto.ReviewApplicationRequest{
		Status: entity.ApplicationApproved,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Empty(t, e.apps.updated)
}

func TestReview_ApplicantNoPuedeRevisar(t *testing.T) {
	e := newEnv(submittedDetail())
	caller := access.Caller{Role: entity.RoleApplicant, Email: "maria@example.com"}

	_, err := e.uc.Review(context.Background(), caller, "user-9", "app-1", dto.ReviewApplicationRequest{
		Status: entity.ApplicationUnderReview,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestWithdraw_PorElPropioSolicitante(t *testing.T) {
	e := newEnv(submittedDetail())
	caller := access.Caller{Role: entity.RoleApplicant, Email: "maria@example.com"}

	out, err := e.uc.Withdraw(context.Background(), caller, "app-1")
	require.NoError(t, err)
	assert.Equal(t, entity.ApplicationWithdrawn, out.Status)
	assert.Equal(t, []string{"applicant-1"}, e.invalidator.invalidated)
}

func TestWithdraw_SolicitanteAjenoEsForbidden(t *testing.T) {
	e := newEnv(submittedDetail())
	caller := access.Caller{Role: entity.RoleApplicant, Email: "otro@example.com"}

	_, err := e.uc.Withdraw(context.Background(), caller, "app-1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// Un estado terminal no admite withdraw.
func TestWithdraw_EstadoTerminal(t *testing.T) {
	d := submittedDetail()
	d.Application.Status = entity.ApplicationRejected
	e := newEnv(d)

	_, err := e.uc.Withdraw(context.Background(), developerCaller, "app-1")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}
