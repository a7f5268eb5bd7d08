package ports

import (
	"context"

	"github.com/jhoicas/Vivienda-api/internal/domain/entity"
)

// MatchingService define el puerto de salida hacia el backend externo de
// matching/elegibilidad. La aplicación solo conoce este contrato (DIP); el
// adaptador HTTP concreto vive en infrastructure/matching.
type MatchingService interface {
	// MatchesForApplicant lista los matches calculados para un solicitante.
	MatchesForApplicant(ctx context.Context, applicantID string) ([]entity.Match, error)
	// Eligibility evalúa la elegibilidad AMI de un solicitante frente a un proyecto.
	Eligibility(ctx context.Context, applicantID, projectID string) (*entity.EligibilityResult, error)
	// Heatmap trae la analítica geoespacial; los puntos llegan como [lat, lng].
	Heatmap(ctx context.Context, region string) ([]entity.HeatmapPoint, error)
}
