package entity

// Match resultado del motor externo de matching (consumido read-only).
// Esta aplicación no valida el score ni las razones: confía en el backend.
type Match struct {
	ID           string         `json:"id"`
	Applicant    MatchApplicant `json:"applicant"`
	Project      MatchProject   `json:"project"`
	Score        int            `json:"score"` // 0-100
	Reasons      []string       `json:"reasons"`
	Status       string         `json:"status"`
	AIConfidence float64        `json:"ai_confidence"`
}

// MatchApplicant resumen del solicitante dentro de un Match.
type MatchApplicant struct {
	ID         string `json:"id"`
	FullName   string `json:"full_name"`
	AMIPercent int    `json:"ami_percent"`
}

// MatchProject resumen del proyecto dentro de un Match.
type MatchProject struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	City string `json:"city"`
}

// EligibilityResult respuesta del endpoint externo /api/v1/eligibility/*.
type EligibilityResult struct {
	Eligible   bool     `json:"eligible"`
	AMIPercent int      `json:"ami_percent"`
	MaxIncome  float64  `json:"max_income"`
	Reasons    []string `json:"reasons"`
}

// HeatmapPoint punto de la analítica geoespacial calculada por el backend externo.
// Llega como [lat, lng] y debe invertirse a [lng, lat] antes de entregarse al SDK de mapas.
type HeatmapPoint struct {
	Coordinates [2]float64 `json:"coordinates"`
	Weight      float64    `json:"weight"`
}
