package dto

import "github.com/jhoicas/Vivienda-api/internal/domain/entity"

// MatchListResponse matches del backend externo para un solicitante.
// Cached indica si la respuesta salió del cache Redis (TTL 5 minutos).
type MatchListResponse struct {
	Items  []entity.Match `json:"items"`
	Cached bool           `json:"cached"`
}

// EligibilityResponse resultado de elegibilidad applicant/project.
type EligibilityResponse struct {
	Result entity.EligibilityResult `json:"result"`
}

// HeatmapResponse puntos del heatmap ya invertidos a [lng, lat].
type HeatmapResponse struct {
	Region string                `json:"region"`
	Points []entity.HeatmapPoint `json:"points"`
	Cached bool                  `json:"cached"`
}
