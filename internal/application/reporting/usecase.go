// Package reporting arma el dashboard de lender (inversiones, métricas CRA y
// reportes) y sus exports a PDF y XML. Las tablas de lending pueden no existir
// todavía en el backend: en ese caso el dashboard degrada a datos placeholder
// claramente marcados en lugar de romper la página.
package reporting

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Vivienda-api/internal/application/dto"
	"github.com/jhoicas/Vivienda-api/internal/domain"
	"github.com/jhoicas/Vivienda-api/internal/domain/entity"
	"github.com/jhoicas/Vivienda-api/internal/domain/repository"
	"github.com/jhoicas/Vivienda-api/pkg/logger"
)

// ReportPDFGenerator puerto de salida para la generación del PDF del resumen CRA.
type ReportPDFGenerator interface {
	GenerateCRAReportPDF(ctx context.Context, company *entity.Company, period string,
		metrics []*entity.CRAMetric, investments []*entity.Investment) ([]byte, error)
}

// CRAExporter puerto de salida para el export XML de métricas CRA.
type CRAExporter interface {
	ExportCRAXML(company *entity.Company, period string, metrics []*entity.CRAMetric) ([]byte, error)
}

// UseCase casos de uso del dashboard de lender.
type UseCase struct {
	investments repository.InvestmentRepository
	metrics     repository.CRAMetricRepository
	reports     repository.ReportRepository
	companies   repository.CompanyRepository
	pdfGen      ReportPDFGenerator
	exporter    CRAExporter
	log         *logger.Logger
}

// NewUseCase construye el caso de uso de reporting.
func NewUseCase(
	investments repository.InvestmentRepository,
	metrics repository.CRAMetricRepository,
	reports repository.ReportRepository,
	companies repository.CompanyRepository,
	pdfGen ReportPDFGenerator,
	exporter CRAExporter,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		investments: investments,
		metrics:     metrics,
		reports:     reports,
		companies:   companies,
		pdfGen:      pdfGen,
		exporter:    exporter,
		log:         log,
	}
}

// Dashboard arma las tres secciones del dashboard de lender. Si alguna tabla
// de lending aún no existe (ErrTableMissing) esa sección se rellena con datos
// de muestra y la respuesta entera se marca Placeholder=true; cualquier otro
// error sí se propaga.
func (uc *UseCase) Dashboard(ctx context.Context, companyID string, limit, offset int) (*dto.LenderDashboardResponse, error) {
	out := &dto.LenderDashboardResponse{}

	investments, err := uc.investments.ListByCompany(ctx, companyID, limit, offset)
	switch {
	case errors.Is(err, domain.ErrTableMissing):
		uc.log.Warn().Str("company_id", companyID).Msg("tabla investments ausente, usando placeholder")
		out.Placeholder = true
		investments = placeholderInvestments(companyID)
	case err != nil:
		return nil, err
	}
	for _, inv := range investments {
		out.Investments = append(out.Investments, dto.InvestmentResponse{
			ID:         inv.ID,
			ProjectID:  inv.ProjectID,
			Amount:     inv.Amount,
			Rate:       inv.Rate,
			TermMonths: inv.TermMonths,
			Status:     inv.Status,
			FundedAt:   inv.FundedAt,
		})
	}

	metrics, err := uc.metrics.ListByCompany(ctx, companyID)
	switch {
	case errors.Is(err, domain.ErrTableMissing):
		uc.log.Warn().Str("company_id", companyID).Msg("tabla cra_metrics ausente, usando placeholder")
		out.Placeholder = true
		metrics = placeholderMetrics(companyID)
	case err != nil:
		return nil, err
	}
	for _, m := range metrics {
		out.CRAMetrics = append(out.CRAMetrics, dto.CRAMetricResponse{
			ID:             m.ID,
			Period:         m.Period,
			AssessmentArea: m.AssessmentArea,
			LMILoans:       m.LMILoans,
			TotalLoans:     m.TotalLoans,
			LMIAmount:      m.LMIAmount,
			TotalAmount:    m.TotalAmount,
		})
	}

	reports, err := uc.reports.ListByCompany(ctx, companyID, limit, offset)
	switch {
	case errors.Is(err, domain.ErrTableMissing):
		uc.log.Warn().Str("company_id", companyID).Msg("tabla reports ausente, usando placeholder")
		out.Placeholder = true
		reports = placeholderReports(companyID)
	case err != nil:
		return nil, err
	}
	for _, r := range reports {
		out.Reports = append(out.Reports, dto.ReportResponse{
			ID:          r.ID,
			Title:       r.Title,
			Kind:        r.Kind,
			Period:      r.Period,
			GeneratedAt: r.GeneratedAt,
		})
	}

	return out, nil
}

// GenerateCRAPDF genera el PDF del resumen CRA del periodo y registra el
// reporte generado (best-effort si la tabla reports no existe).
func (uc *UseCase) GenerateCRAPDF(ctx context.Context, companyID, period string) ([]byte, error) {
	company, metrics, investments, err := uc.loadCRAInputs(ctx, companyID)
	if err != nil {
		return nil, err
	}
	pdfBytes, err := uc.pdfGen.GenerateCRAReportPDF(ctx, company, period, metrics, investments)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	report := &entity.Report{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		Title:       "CRA Summary " + period,
		Kind:        "cra_summary",
		Period:      period,
		GeneratedAt: now,
		CreatedAt:   now,
	}
	if err := uc.reports.Create(report); err != nil {
		uc.log.Warn().Err(err).Str("company_id", companyID).Msg("no se pudo registrar el reporte generado")
	}
	return pdfBytes, nil
}

// ExportCRAXML exporta las métricas CRA del periodo como XML.
func (uc *UseCase) ExportCRAXML(ctx context.Context, companyID, period string) ([]byte, error) {
	company, metrics, _, err := uc.loadCRAInputs(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return uc.exporter.ExportCRAXML(company, period, metrics)
}

// loadCRAInputs carga company + métricas + inversiones para los exports,
// degradando a placeholder si las tablas de lending faltan.
func (uc *UseCase) loadCRAInputs(ctx context.Context, companyID string) (*entity.Company, []*entity.CRAMetric, []*entity.Investment, error) {
	company, err := uc.companies.GetByID(companyID)
	if err != nil {
		return nil, nil, nil, err
	}
	if company == nil {
		return nil, nil, nil, domain.ErrNotFound
	}
	metrics, err := uc.metrics.ListByCompany(ctx, companyID)
	if errors.Is(err, domain.ErrTableMissing) {
		metrics = placeholderMetrics(companyID)
	} else if err != nil {
		return nil, nil, nil, err
	}
	investments, err := uc.investments.ListByCompany(ctx, companyID, 100, 0)
	if errors.Is(err, domain.ErrTableMissing) {
		investments = placeholderInvestments(companyID)
	} else if err != nil {
		return nil, nil, nil, err
	}
	return company, metrics, investments, nil
}

// ── Placeholders ──────────────────────────────────────────────────────────────
// Datos de muestra explícitamente etiquetados como "Sample": nunca deben
// confundirse con registros reales.

func placeholderInvestments(companyID string) []*entity.Investment {
	return []*entity.Investment{
		{
			ID:         "sample-investment-1",
			CompanyID:  companyID,
			ProjectID:  "sample-project-1",
			Amount:     decimal.NewFromInt(2_500_000),
			Rate:       decimal.NewFromFloat(4.25),
			TermMonths: 240,
			Status:     "active",
			FundedAt:   time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:         "sample-investment-2",
			CompanyID:  companyID,
			ProjectID:  "sample-project-2",
			Amount:     decimal.NewFromInt(1_200_000),
			Rate:       decimal.NewFromFloat(3.9),
			TermMonths: 180,
			Status:     "active",
			FundedAt:   time.Date(2025, time.October, 15, 0, 0, 0, 0, time.UTC),
		},
	}
}

func placeholderMetrics(companyID string) []*entity.CRAMetric {
	return []*entity.CRAMetric{
		{
			ID:             "sample-cra-1",
			CompanyID:      companyID,
			Period:         "2026-Q1",
			AssessmentArea: "Sample Assessment Area",
			LMILoans:       42,
			TotalLoans:     120,
			LMIAmount:      decimal.NewFromInt(8_400_000),
			TotalAmount:    decimal.NewFromInt(31_000_000),
		},
	}
}

func placeholderReports(companyID string) []*entity.Report {
	now := time.Now()
	return []*entity.Report{
		{
			ID:          "sample-report-1",
			CompanyID:   companyID,
			Title:       "Sample CRA Summary",
			Kind:        "cra_summary",
			Period:      "2026-Q1",
			GeneratedAt: now,
			CreatedAt:   now,
		},
	}
}
