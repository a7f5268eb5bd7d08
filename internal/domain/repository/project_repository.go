package repository

import (
	"context"

	"github.com/jhoicas/Vivienda-api/internal/domain/entity"
)

// ProjectRepository define el puerto de persistencia para Project y sus imágenes.
type ProjectRepository interface {
	Create(project *entity.Project) error
	GetByID(id string) (*entity.Project, error)
	Update(project *entity.Project) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Project, error)
	ListImages(projectID string) ([]entity.ProjectImage, error)
	// SearchByBounds búsqueda geoespacial por bounding box (proyectos geocodificados).
	SearchByBounds(ctx context.Context, minLat, maxLat, minLng, maxLng float64, limit int) ([]*entity.Project, error)
}
