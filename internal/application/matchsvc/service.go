// Package matchsvc orquesta el consumo read-only del backend externo de
// matching: cache-aside con TTL de 5 minutos para matches y heatmap, e
// invalidación manual tras mutaciones de solicitudes. Los scores se entregan
// tal cual llegan; esta capa no los recalcula ni los valida.
package matchsvc

import (
	"context"
	"errors"

	"github.com/jhoicas/Vivienda-api/internal/application/dto"
	"github.com/jhoicas/Vivienda-api/internal/application/ports"
	"github.com/jhoicas/Vivienda-api/internal/application/viewmodel"
	"github.com/jhoicas/Vivienda-api/internal/domain/entity"
	"github.com/jhoicas/Vivienda-api/internal/infrastructure/cache"
	"github.com/jhoicas/Vivienda-api/pkg/logger"
)

// Service fachada de matching con caché. cache puede ser nil: la instalación
// sin Redis degrada a llamadas directas al backend.
type Service struct {
	backend ports.MatchingService
	cache   *cache.Cache
	log     *logger.Logger
}

// NewService construye el servicio.
func NewService(backend ports.MatchingService, c *cache.Cache, log *logger.Logger) *Service {
	return &Service{backend: backend, cache: c, log: log}
}

// Matches devuelve los matches del solicitante, sirviendo del caché dentro de
// la ventana de 5 minutos. Un error de caché nunca tumba la operación: se
// loguea y se va directo al backend.
func (s *Service) Matches(ctx context.Context, applicantID string) (*dto.MatchListResponse, error) {
	key := cache.MatchKey(applicantID)
	if s.cache != nil {
		var cached []entity.Match
		err := s.cache.GetJSON(ctx, key, &cached)
		if err == nil {
			return &dto.MatchListResponse{Items: cached, Cached: true}, nil
		}
		if !errors.Is(err, cache.ErrMiss) {
			s.log.Warn().Err(err).Str("key", key).Msg("lectura de caché de matches falló")
		}
	}
	items, err := s.backend.MatchesForApplicant(ctx, applicantID)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, key, items); err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("escritura de caché de matches falló")
		}
	}
	return &dto.MatchListResponse{Items: items, Cached: false}, nil
}

// Eligibility pasa directo al backend: el resultado depende del par
// applicant/project y no se cachea.
func (s *Service) Eligibility(ctx context.Context, applicantID, projectID string) (*dto.EligibilityResponse, error) {
	result, err := s.backend.Eligibility(ctx, applicantID, projectID)
	if err != nil {
		return nil, err
	}
	return &dto.EligibilityResponse{Result: *result}, nil
}

// Heatmap trae los puntos de la región, invierte cada coordenada de [lat, lng]
// a [lng, lat] (frontera del SDK de mapas) y cachea el resultado YA invertido:
// un hit de caché nunca se invierte dos veces.
func (s *Service) Heatmap(ctx context.Context, region string) (*dto.HeatmapResponse, error) {
	key := cache.HeatmapKey(region)
	if s.cache != nil {
		var cached []entity.HeatmapPoint
		err := s.cache.GetJSON(ctx, key, &cached)
		if err == nil {
			return &dto.HeatmapResponse{Region: region, Points: cached, Cached: true}, nil
		}
		if !errors.Is(err, cache.ErrMiss) {
			s.log.Warn().Err(err).Str("key", key).Msg("lectura de caché de heatmap falló")
		}
	}
	raw, err := s.backend.Heatmap(ctx, region)
	if err != nil {
		return nil, err
	}
	points := viewmodel.HeatmapToLngLat(raw)
	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, key, points); err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("escritura de caché de heatmap falló")
		}
	}
	return &dto.HeatmapResponse{Region: region, Points: points, Cached: false}, nil
}

// InvalidateApplicant borra los matches cacheados del solicitante. Se llama
// tras mutar una solicitud para que el próximo render no sirva datos viejos.
func (s *Service) InvalidateApplicant(ctx context.Context, applicantID string) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Invalidate(ctx, cache.MatchKey(applicantID))
}
