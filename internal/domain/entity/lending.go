package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Investment inversión de un lender en un proyecto de vivienda asequible.
type Investment struct {
	ID         string
	CompanyID  string
	ProjectID  string
	Amount     decimal.Decimal
	Rate       decimal.Decimal // tasa anual en porcentaje
	TermMonths int
	Status     string // active, repaid, defaulted
	FundedAt   time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CRAMetric métrica de cumplimiento CRA (Community Reinvestment Act) por periodo.
type CRAMetric struct {
	ID             string
	CompanyID      string
	Period         string // "2026-Q1"
	AssessmentArea string
	LMILoans       int             // préstamos a hogares low/moderate income
	TotalLoans     int
	LMIAmount      decimal.Decimal
	TotalAmount    decimal.Decimal
	CreatedAt      time.Time
}

// Report reporte generado para el dashboard de lender.
type Report struct {
	ID          string
	CompanyID   string
	Title       string
	Kind        string // cra_summary, investment_summary, pipeline
	Period      string
	GeneratedAt time.Time
	CreatedAt   time.Time
}
