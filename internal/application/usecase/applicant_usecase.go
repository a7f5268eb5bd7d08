package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Vivienda-api/internal/application/dto"
	"github.com/jhoicas/Vivienda-api/internal/domain"
	"github.com/jhoicas/Vivienda-api/internal/domain/entity"
	"github.com/jhoicas/Vivienda-api/internal/domain/repository"
)

// ApplicantUseCase aplica reglas de negocio para solicitantes.
type ApplicantUseCase struct {
	repo repository.ApplicantRepository
}

// NewApplicantUseCase construye el caso de uso con el puerto de persistencia.
func NewApplicantUseCase(repo repository.ApplicantRepository) *ApplicantUseCase {
	return &ApplicantUseCase{repo: repo}
}

// Create registra un solicitante en la company indicada.
// Devuelve domain.ErrDuplicate si el email ya está registrado.
func (uc *ApplicantUseCase) Create(companyID string, in dto.CreateApplicantRequest) (*dto.ApplicantResponse, error) {
	existing, _ := uc.repo.GetByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	applicant := &entity.Applicant{
		ID:                 uuid.New().String(),
		CompanyID:          companyID,
		FirstName:          in.FirstName,
		LastName:           in.LastName,
		Email:              in.Email,
		Phone:              in.Phone,
		Income:             in.Income,
		HouseholdSize:      in.HouseholdSize,
		AMIPercent:         in.AMIPercent,
		LocationPreference: in.LocationPreference,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.repo.Create(applicant); err != nil {
		return nil, err
	}
	return entityToApplicantResponse(applicant), nil
}

// GetByID obtiene un solicitante por ID.
func (uc *ApplicantUseCase) GetByID(id string) (*dto.ApplicantResponse, error) {
	applicant, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if applicant == nil {
		return nil, nil
	}
	return entityToApplicantResponse(applicant), nil
}

// Update aplica un parche parcial: solo los campos no-nil se modifican.
func (uc *ApplicantUseCase) Update(id string, in dto.UpdateApplicantRequest) (*dto.ApplicantResponse, error) {
	applicant, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if applicant == nil {
		return nil, domain.ErrNotFound
	}
	if in.FirstName != nil {
		applicant.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		applicant.LastName = *in.LastName
	}
	if in.Email != nil {
		applicant.Email = *in.Email
	}
	if in.Phone != nil {
		applicant.Phone = *in.Phone
	}
	if in.Income != nil {
		applicant.Income = *in.Income
	}
	if in.HouseholdSize != nil {
		applicant.HouseholdSize = *in.HouseholdSize
	}
	if in.AMIPercent != nil {
		applicant.AMIPercent = *in.AMIPercent
	}
	if in.LocationPreference != nil {
		applicant.LocationPreference = *in.LocationPreference
	}
	applicant.UpdatedAt = time.Now()
	if err := uc.repo.Update(applicant); err != nil {
		return nil, err
	}
	return entityToApplicantResponse(applicant), nil
}

// ListByCompany lista solicitantes de una company con paginación.
func (uc *ApplicantUseCase) ListByCompany(companyID string, limit, offset int) (*dto.ApplicantListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ApplicantResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *entityToApplicantResponse(a))
	}
	return &dto.ApplicantListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func entityToApplicantResponse(a *entity.Applicant) *dto.ApplicantResponse {
	if a == nil {
		return nil
	}
	return &dto.ApplicantResponse{
		ID:                 a.ID,
		CompanyID:          a.CompanyID,
		FirstName:          a.FirstName,
		LastName:           a.LastName,
		Email:              a.Email,
		Phone:              a.Phone,
		Income:             a.Income,
		HouseholdSize:      a.HouseholdSize,
		AMIPercent:         a.AMIPercent,
		LocationPreference: a.LocationPreference,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}
