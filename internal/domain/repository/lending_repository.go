package repository

import (
	"context"

	"github.com/jhoicas/Vivienda-api/internal/domain/entity"
)

// InvestmentRepository puerto read-only para inversiones del lender.
// Las tablas de lending pueden no existir todavía en el backend: las
// implementaciones devuelven domain.ErrTableMissing en ese caso.
type InvestmentRepository interface {
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Investment, error)
}

// CRAMetricRepository puerto read-only para métricas de cumplimiento CRA.
type CRAMetricRepository interface {
	ListByCompany(ctx context.Context, companyID string) ([]*entity.CRAMetric, error)
}

// ReportRepository puerto para reportes del dashboard de lender.
type ReportRepository interface {
	Create(report *entity.Report) error
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Report, error)
}
