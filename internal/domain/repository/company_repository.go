package repository

import "github.com/jhoicas/Vivienda-api/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company (DIP).
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	GetByKey(key string) (*entity.Company, error)
	List(limit, offset int) ([]*entity.Company, error)
}
