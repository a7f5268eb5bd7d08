package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Vivienda-api/internal/application/dto"
	"github.com/jhoicas/Vivienda-api/internal/application/viewmodel"
	"github.com/jhoicas/Vivienda-api/internal/domain"
	"github.com/jhoicas/Vivienda-api/internal/domain/entity"
	"github.com/jhoicas/Vivienda-api/internal/domain/repository"
)

// ProjectUseCase aplica reglas de negocio para proyectos de vivienda.
type ProjectUseCase struct {
	repo repository.ProjectRepository
}

// NewProjectUseCase construye el caso de uso con el puerto de persistencia.
func NewProjectUseCase(repo repository.ProjectRepository) *ProjectUseCase {
	return &ProjectUseCase{repo: repo}
}

// Create crea un proyecto en la company indicada.
func (uc *ProjectUseCase) Create(companyID string, in dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	now := time.Now()
	status := in.Status
	if status == "" {
		status = entity.ProjectPlanning
	}
	project := &entity.Project{
		ID:              uuid.New().String(),
		CompanyID:       companyID,
		Name:            in.Name,
		Address:         in.Address,
		City:            in.City,
		State:           in.State,
		Zip:             in.Zip,
		TotalUnits:      in.TotalUnits,
		AffordableUnits: in.AffordableUnits,
		AMILevels:       in.AMILevels,
		MinIncome:       in.MinIncome,
		MaxIncome:       in.MaxIncome,
		Status:          status,
		Latitude:        in.Latitude,
		Longitude:       in.Longitude,
		Description:     in.Description,
		Amenities:       in.Amenities,
		PetPolicy:       in.PetPolicy,
		SmokingPolicy:   in.SmokingPolicy,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(project); err != nil {
		return nil, err
	}
	return entityToProjectResponse(project), nil
}

// GetByID obtiene un proyecto por ID.
func (uc *ProjectUseCase) GetByID(id string) (*dto.ProjectResponse, error) {
	project, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, nil
	}
	return entityToProjectResponse(project), nil
}

// Update aplica un parche parcial: solo los campos no-nil se modifican.
func (uc *ProjectUseCase) Update(id string, in dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	project, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		project.Name = *in.Name
	}
	if in.Address != nil {
		project.Address = *in.Address
	}
	if in.City != nil {
		project.City = *in.City
	}
	if in.State != nil {
		project.State = *in.State
	}
	if in.Zip != nil {
		project.Zip = *in.Zip
	}
	if in.TotalUnits != nil {
		project.TotalUnits = *in.TotalUnits
	}
	if in.AffordableUnits != nil {
		project.AffordableUnits = *in.AffordableUnits
	}
	if in.AMILevels != nil {
		project.AMILevels = in.AMILevels
	}
	if in.MinIncome != nil {
		project.MinIncome = *in.MinIncome
	}
	if in.MaxIncome != nil {
		project.MaxIncome = *in.MaxIncome
	}
	if in.Status != nil {
		project.Status = *in.Status
	}
	if in.Latitude != nil {
		project.Latitude = in.Latitude
	}
	if in.Longitude != nil {
		project.Longitude = in.Longitude
	}
	if in.Description != nil {
		project.Description = *in.Description
	}
	if in.Amenities != nil {
		project.Amenities = *in.Amenities
	}
	if in.PetPolicy != nil {
		project.PetPolicy = *in.PetPolicy
	}
	if in.SmokingPolicy != nil {
		project.SmokingPolicy = *in.SmokingPolicy
	}
	project.UpdatedAt = time.Now()
	if err := uc.repo.Update(project); err != nil {
		return nil, err
	}
	return entityToProjectResponse(project), nil
}

// ListByCompany lista proyectos de una company con paginación.
func (uc *ProjectUseCase) ListByCompany(companyID string, limit, offset int) (*dto.ProjectListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProjectResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *entityToProjectResponse(p))
	}
	return &dto.ProjectListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Search búsqueda geoespacial por bounding box. Solo devuelve proyectos
// geocodificados; Coordinates llega listo para el SDK de mapas ([lng, lat]).
func (uc *ProjectUseCase) Search(ctx context.Context, in dto.ProjectSearchRequest) (*dto.ProjectListResponse, error) {
	if in.MinLat > in.MaxLat || in.MinLng > in.MaxLng {
		return nil, domain.ErrInvalidInput
	}
	limit := in.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	list, err := uc.repo.SearchByBounds(ctx, in.MinLat, in.MaxLat, in.MinLng, in.MaxLng, limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProjectResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *entityToProjectResponse(p))
	}
	return &dto.ProjectListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit},
	}, nil
}

func entityToProjectResponse(p *entity.Project) *dto.ProjectResponse {
	if p == nil {
		return nil
	}
	return &dto.ProjectResponse{
		ID:              p.ID,
		CompanyID:       p.CompanyID,
		Name:            p.Name,
		Address:         p.Address,
		City:            p.City,
		State:           p.State,
		Zip:             p.Zip,
		TotalUnits:      p.TotalUnits,
		AffordableUnits: p.AffordableUnits,
		AMILevels:       p.AMILevels,
		MinIncome:       p.MinIncome,
		MaxIncome:       p.MaxIncome,
		Status:          p.Status,
		Latitude:        p.Latitude,
		Longitude:       p.Longitude,
		Coordinates:     viewmodel.MarkerCoordinates(p),
		Description:     p.Description,
		Amenities:       p.Amenities,
		PetPolicy:       p.PetPolicy,
		SmokingPolicy:   p.SmokingPolicy,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
