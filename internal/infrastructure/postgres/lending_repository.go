package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Vivienda-api/internal/domain"
	"github.com/jhoicas/Vivienda-api/internal/domain/entity"
	"github.com/jhoicas/Vivienda-api/internal/domain/repository"
)

var (
	_ repository.InvestmentRepository = (*InvestmentRepo)(nil)
	_ repository.CRAMetricRepository  = (*CRAMetricRepo)(nil)
	_ repository.ReportRepository     = (*ReportRepo)(nil)
)

// mapLendingErr traduce undefined_table (42P01) a domain.ErrTableMissing.
// Ojo: pgx v5 difiere los errores de ejecución del servidor hasta rows.Err(),
// así que Query puede devolver (rows, nil) aunque la tabla no exista; todo
// error de estas tablas debe pasar por aquí, no solo el de Query.
func mapLendingErr(err error, op string) error {
	if isUndefinedTable(err) {
		return domain.ErrTableMissing
	}
	return fmt.Errorf("%s: %w", op, err)
}

// InvestmentRepo implementación del puerto InvestmentRepository sobre PostgreSQL.
// La tabla investments puede no existir todavía en el backend: en ese caso se
// devuelve domain.ErrTableMissing y el use case degrada a placeholders.
type InvestmentRepo struct {
	q Querier
}

// NewInvestmentRepository construye el adaptador.
func NewInvestmentRepository(q Querier) *InvestmentRepo {
	return &InvestmentRepo{q: q}
}

// ListByCompany lista inversiones del lender con paginación.
func (r *InvestmentRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Investment, error) {
	query := `
		SELECT id, company_id, project_id, amount, rate, term_months, status, funded_at, created_at, updated_at
		FROM investments WHERE company_id = $1 ORDER BY funded_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, mapLendingErr(err, "list investments")
	}
	defer rows.Close()
	var list []*entity.Investment
	for rows.Next() {
		var inv entity.Investment
		if err := rows.Scan(&inv.ID, &inv.CompanyID, &inv.ProjectID, &inv.Amount, &inv.Rate,
			&inv.TermMonths, &inv.Status, &inv.FundedAt, &inv.CreatedAt, &inv.UpdatedAt); err != nil {
			return nil, mapLendingErr(err, "scan investment")
		}
		list = append(list, &inv)
	}
	if err := rows.Err(); err != nil {
		return nil, mapLendingErr(err, "list investments")
	}
	return list, nil
}

// CRAMetricRepo implementación del puerto CRAMetricRepository sobre PostgreSQL.
type CRAMetricRepo struct {
	q Querier
}

// NewCRAMetricRepository construye el adaptador.
func NewCRAMetricRepository(q Querier) *CRAMetricRepo {
	return &CRAMetricRepo{q: q}
}

// ListByCompany lista métricas CRA de la company, más recientes primero.
func (r *CRAMetricRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.CRAMetric, error) {
	query := `
		SELECT id, company_id, period, assessment_area, lmi_loans, total_loans, lmi_amount, total_amount, created_at
		FROM cra_metrics WHERE company_id = $1 ORDER BY period DESC`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, mapLendingErr(err, "list cra metrics")
	}
	defer rows.Close()
	var list []*entity.CRAMetric
	for rows.Next() {
		var m entity.CRAMetric
		if err := rows.Scan(&m.ID, &m.CompanyID, &m.Period, &m.AssessmentArea,
			&m.LMILoans, &m.TotalLoans, &m.LMIAmount, &m.TotalAmount, &m.CreatedAt); err != nil {
			return nil, mapLendingErr(err, "scan cra metric")
		}
		list = append(list, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, mapLendingErr(err, "list cra metrics")
	}
	return list, nil
}

// ReportRepo implementación del puerto ReportRepository sobre PostgreSQL.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// Create persiste un reporte generado.
func (r *ReportRepo) Create(report *entity.Report) error {
	query := `
		INSERT INTO reports (id, company_id, title, kind, period, generated_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		report.ID, report.CompanyID, report.Title, report.Kind, report.Period,
		report.GeneratedAt, report.CreatedAt,
	)
	if err != nil {
		return mapLendingErr(err, "insert report")
	}
	return nil
}

// ListByCompany lista reportes de la company con paginación.
func (r *ReportRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Report, error) {
	query := `
		SELECT id, company_id, title, kind, period, generated_at, created_at
		FROM reports WHERE company_id = $1 ORDER BY generated_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, mapLendingErr(err, "list reports")
	}
	defer rows.Close()
	var list []*entity.Report
	for rows.Next() {
		var rep entity.Report
		if err := rows.Scan(&rep.ID, &rep.CompanyID, &rep.Title, &rep.Kind, &rep.Period,
			&rep.GeneratedAt, &rep.CreatedAt); err != nil {
			return nil, mapLendingErr(err, "scan report")
		}
		list = append(list, &rep)
	}
	if err := rows.Err(); err != nil {
		return nil, mapLendingErr(err, "list reports")
	}
	return list, nil
}
