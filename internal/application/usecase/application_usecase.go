package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Vivienda-api/internal/application/detail"
	"github.com/jhoicas/Vivienda-api/internal/application/dto"
	"github.com/jhoicas/Vivienda-api/internal/application/viewmodel"
	"github.com/jhoicas/Vivienda-api/internal/domain"
	"github.com/jhoicas/Vivienda-api/internal/domain/access"
	"github.com/jhoicas/Vivienda-api/internal/domain/entity"
	"github.com/jhoicas/Vivienda-api/internal/domain/repository"
	"github.com/jhoicas/Vivienda-api/pkg/logger"
)

// MatchInvalidator invalida el caché de matches de un solicitante tras una
// mutación. Nil-safe desde el caller: si no hay caché configurado se omite.
type MatchInvalidator interface {
	InvalidateApplicant(ctx context.Context, applicantID string) error
}

// ApplicationUseCase casos de uso del ciclo de vida de una solicitud:
// submit, review (transiciones de estado), withdraw y el detalle renderizable.
type ApplicationUseCase struct {
	repo          repository.ApplicationRepository
	userRepo      repository.UserRepository
	notifications repository.NotificationRepository
	loader        *detail.Loader
	transformer   *viewmodel.Transformer
	invalidator   MatchInvalidator
	log           *logger.Logger
}

// NewApplicationUseCase construye el caso de uso. invalidator puede ser nil
// (instalación sin Redis); las notificaciones y la invalidación son best-effort.
func NewApplicationUseCase(
	repo repository.ApplicationRepository,
	userRepo repository.UserRepository,
	notifications repository.NotificationRepository,
	loader *detail.Loader,
	transformer *viewmodel.Transformer,
	invalidator MatchInvalidator,
	log *logger.Logger,
) *ApplicationUseCase {
	return &ApplicationUseCase{
		repo:          repo,
		userRepo:      userRepo,
		notifications: notifications,
		loader:        loader,
		transformer:   transformer,
		invalidator:   invalidator,
		log:           log,
	}
}

// Submit crea una solicitud en estado submitted e invalida el caché de matches
// del solicitante (sus matches pueden cambiar al existir una solicitud activa).
func (uc *ApplicationUseCase) Submit(ctx context.Context, companyID string, in dto.SubmitApplicationRequest) (*dto.ApplicationResponse, error) {
	now := time.Now()
	app := &entity.Application{
		ID:              uuid.New().String(),
		CompanyID:       companyID,
		ApplicantID:     in.ApplicantID,
		ProjectID:       in.ProjectID,
		Status:          entity.ApplicationSubmitted,
		SubmittedAt:     now,
		AdditionalNotes: in.AdditionalNotes,
		PreferredMoveIn: in.PreferredMoveIn,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(app); err != nil {
		return nil, err
	}
	uc.invalidateMatches(ctx, app.ApplicantID)
	return entityToApplicationResponse(app), nil
}

// Review aplica una transición de estado del reviewer. La autorización va por
// el gate (CanEdit); una transición fuera de la máquina de estados devuelve
// domain.ErrInvalidTransition sin tocar la DB.
func (uc *ApplicationUseCase) Review(ctx context.Context, caller access.Caller, reviewerID, id string, in dto.ReviewApplicationRequest) (*dto.ApplicationResponse, error) {
	result := uc.loader.Load(ctx, id)
	if result.Outcome == detail.OutcomeNotFound {
		return nil, domain.ErrNotFound
	}
	if !access.CanEdit(caller, result.Detail) {
		return nil, domain.ErrForbidden
	}
	app := result.Detail.Application
	if !app.CanTransitionTo(in.Status) {
		return nil, domain.ErrInvalidTransition
	}
	now := time.Now()
	app.Status = in.Status
	app.ReviewedAt = &now
	app.ReviewedBy = reviewerID
	if in.DeveloperNotes != "" {
		app.DeveloperNotes = in.DeveloperNotes
	}
	app.UpdatedAt = now
	if err := uc.repo.Update(&app); err != nil {
		return nil, err
	}
	uc.notifyApplicant(result.Detail, app.Status)
	uc.invalidateMatches(ctx, app.ApplicantID)
	return entityToApplicationResponse(&app), nil
}

// Withdraw retira una solicitud. Además de los editores de la company, el
// propio solicitante puede retirar la suya (única mutación que se le permite).
func (uc *ApplicationUseCase) Withdraw(ctx context.Context, caller access.Caller, id string) (*dto.ApplicationResponse, error) {
	result := uc.loader.Load(ctx, id)
	if result.Outcome == detail.OutcomeNotFound {
		return nil, domain.ErrNotFound
	}
	allowed := access.CanEdit(caller, result.Detail)
	if !allowed && caller.Role == entity.RoleApplicant {
		allowed = caller.Email != "" && caller.Email == result.Detail.ApplicantEmail()
	}
	if !allowed {
		return nil, domain.ErrForbidden
	}
	app := result.Detail.Application
	if !app.CanTransitionTo(entity.ApplicationWithdrawn) {
		return nil, domain.ErrInvalidTransition
	}
	app.Status = entity.ApplicationWithdrawn
	app.UpdatedAt = time.Now()
	if err := uc.repo.Update(&app); err != nil {
		return nil, err
	}
	uc.invalidateMatches(ctx, app.ApplicantID)
	return entityToApplicationResponse(&app), nil
}

// Detail carga el detalle renderizable: fetch resiliente, gate de permisos y
// view model con defaults. La denegación llega como domain.ErrForbidden, que
// el handler distingue del not found (403 vs 404).
func (uc *ApplicationUseCase) Detail(ctx context.Context, caller access.Caller, id string) (*dto.ApplicationDetailResponse, error) {
	result := uc.loader.Load(ctx, id)
	if result.Outcome == detail.OutcomeNotFound {
		return nil, domain.ErrNotFound
	}
	if !access.CanView(caller, result.Detail) {
		return nil, domain.ErrForbidden
	}
	view := uc.transformer.Transform(result.Detail)
	return &dto.ApplicationDetailResponse{
		Detail: view,
		Source: result.Outcome.String(),
	}, nil
}

// ListByCompany lista solicitudes de una company con paginación.
func (uc *ApplicationUseCase) ListByCompany(companyID string, limit, offset int) (*dto.ApplicationListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toApplicationList(list, limit, offset), nil
}

// ListByApplicant lista las solicitudes de un solicitante con paginación.
func (uc *ApplicationUseCase) ListByApplicant(applicantID string, limit, offset int) (*dto.ApplicationListResponse, error) {
	list, err := uc.repo.ListByApplicant(applicantID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toApplicationList(list, limit, offset), nil
}

// notifyApplicant notifica al usuario del solicitante el cambio de estado.
// Best-effort: sin usuario asociado o con error de persistencia, solo se loguea.
func (uc *ApplicationUseCase) notifyApplicant(d *entity.ApplicationDetail, status string) {
	email := d.ApplicantEmail()
	if email == "" {
		return
	}
	user, err := uc.userRepo.FindByEmail(email)
	if err != nil || user == nil {
		return
	}
	projectName := ""
	if d.Project != nil {
		projectName = d.Project.Name
	}
	n := &entity.Notification{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Title:     "Tu solicitud cambió de estado",
		Body:      "Estado actual: " + status + ". Proyecto: " + projectName,
		Kind:      "application_update",
		CreatedAt: time.Now(),
	}
	if err := uc.notifications.Create(n); err != nil {
		uc.log.Warn().Err(err).Str("user_id", user.ID).Msg("no se pudo crear la notificación")
	}
}

func (uc *ApplicationUseCase) invalidateMatches(ctx context.Context, applicantID string) {
	if uc.invalidator == nil || applicantID == "" {
		return
	}
	if err := uc.invalidator.InvalidateApplicant(ctx, applicantID); err != nil {
		uc.log.Warn().Err(err).Str("applicant_id", applicantID).Msg("invalidación de caché de matches falló")
	}
}

func toApplicationList(list []*entity.Application, limit, offset int) *dto.ApplicationListResponse {
	items := make([]dto.ApplicationResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *entityToApplicationResponse(a))
	}
	return &dto.ApplicationListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}

func entityToApplicationResponse(a *entity.Application) *dto.ApplicationResponse {
	if a == nil {
		return nil
	}
	return &dto.ApplicationResponse{
		ID:              a.ID,
		CompanyID:       a.CompanyID,
		ApplicantID:     a.ApplicantID,
		ProjectID:       a.ProjectID,
		Status:          a.Status,
		SubmittedAt:     a.SubmittedAt,
		ReviewedAt:      a.ReviewedAt,
		ReviewedBy:      a.ReviewedBy,
		AdditionalNotes: a.AdditionalNotes,
		DeveloperNotes:  a.DeveloperNotes,
		PreferredMoveIn: a.PreferredMoveIn,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}
