package repository

import (
	"context"

	"github.com/jhoicas/Vivienda-api/internal/domain/entity"
)

// ApplicationRepository define el puerto de persistencia para Application.
//
// GetDetailByID es el fetch con JOIN (application + applicant + project +
// company en una sola consulta). Puede fallar por drift de esquema o metadata
// de relaciones incompleta en el backend; el loader degrada entonces a fetches
// independientes por FK usando GetByID más los repos de cada relación.
type ApplicationRepository interface {
	Create(app *entity.Application) error
	GetByID(id string) (*entity.Application, error)
	GetDetailByID(ctx context.Context, id string) (*entity.ApplicationDetail, error)
	Update(app *entity.Application) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Application, error)
	ListByApplicant(applicantID string, limit, offset int) ([]*entity.Application, error)
}
