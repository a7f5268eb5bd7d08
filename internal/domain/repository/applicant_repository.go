package repository

import "github.com/jhoicas/Vivienda-api/internal/domain/entity"

// ApplicantRepository define el puerto de persistencia para Applicant.
type ApplicantRepository interface {
	Create(applicant *entity.Applicant) error
	GetByID(id string) (*entity.Applicant, error)
	GetByEmail(email string) (*entity.Applicant, error)
	Update(applicant *entity.Applicant) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Applicant, error)
}
