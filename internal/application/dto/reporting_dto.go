package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvestmentResponse salida de una inversión del lender.
type InvestmentResponse struct {
	ID         string          `json:"id"`
	ProjectID  string          `json:"project_id"`
	Amount     decimal.Decimal `json:"amount"`
	Rate       decimal.Decimal `json:"rate"`
	TermMonths int             `json:"term_months"`
	Status     string          `json:"status"`
	FundedAt   time.Time       `json:"funded_at"`
}

// CRAMetricResponse salida de una métrica CRA por periodo.
type CRAMetricResponse struct {
	ID             string          `json:"id"`
	Period         string          `json:"period"`
	AssessmentArea string          `json:"assessment_area"`
	LMILoans       int             `json:"lmi_loans"`
	TotalLoans     int             `json:"total_loans"`
	LMIAmount      decimal.Decimal `json:"lmi_amount"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
}

// ReportResponse salida de un reporte del dashboard de lender.
type ReportResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Kind        string    `json:"kind"`
	Period      string    `json:"period"`
	GeneratedAt time.Time `json:"generated_at"`
}

// LenderDashboardResponse agrega las tres secciones del dashboard de lender.
// Placeholder=true significa que las tablas de lending aún no existen en esta
// instalación y las listas son datos de muestra, no registros reales.
type LenderDashboardResponse struct {
	Investments []InvestmentResponse `json:"investments"`
	CRAMetrics  []CRAMetricResponse  `json:"cra_metrics"`
	Reports     []ReportResponse     `json:"reports"`
	Placeholder bool                 `json:"placeholder"`
}
