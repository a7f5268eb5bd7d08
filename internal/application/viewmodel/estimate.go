package viewmodel

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Vivienda-api/internal/domain/entity"
)

// EstimateBedrooms estima dormitorios cuando el proyecto no los persiste,
// buckets por tamaño del desarrollo: <50 unidades -> 1, <150 -> 2, resto -> 3.
func EstimateBedrooms(totalUnits int) int {
	switch {
	case totalUnits < 50:
		return 1
	case totalUnits < 150:
		return 2
	default:
		return 3
	}
}

// rentByBedrooms base determinista cuando el proyecto no trae rangos de ingreso.
var rentByBedrooms = map[int]int64{1: 950, 2: 1250, 3: 1600}

// EstimateRent renta mensual estimada, determinista:
//   - con MaxIncome persistido: regla del 30% del ingreso mensual máximo
//   - sin MaxIncome: tabla base por dormitorios estimados
func EstimateRent(p *entity.Project, bedrooms int) decimal.Decimal {
	if !p.MaxIncome.IsZero() {
		// 30% del ingreso máximo, mensualizado
		return p.MaxIncome.Div(decimal.NewFromInt(12)).
			Mul(decimal.NewFromFloat(0.30)).Round(0)
	}
	return decimal.NewFromInt(rentByBedrooms[bedrooms])
}
