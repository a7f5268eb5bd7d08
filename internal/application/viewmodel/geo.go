package viewmodel

import "github.com/jhoicas/Vivienda-api/internal/domain/entity"

// SwapToLngLat invierte un par [lat, lng] a [lng, lat].
//
// Los datos persistidos y la analítica externa vienen como [latitude, longitude],
// pero el SDK de mapas (y GeoJSON) esperan [longitude, latitude]. El swap vive
// solo en esta frontera; el resto de la aplicación trabaja en [lat, lng].
func SwapToLngLat(latLng [2]float64) [2]float64 {
	return [2]float64{latLng[1], latLng[0]}
}

// MarkerCoordinates coordenadas del proyecto listas para el SDK de mapas
// ([lng, lat]). nil si el proyecto no está geocodificado.
func MarkerCoordinates(p *entity.Project) *[2]float64 {
	if p == nil || p.Latitude == nil || p.Longitude == nil {
		return nil
	}
	c := SwapToLngLat([2]float64{*p.Latitude, *p.Longitude})
	return &c
}

// HeatmapToLngLat convierte los puntos del heatmap externo ([lat, lng]) a la
// forma que consume el SDK de mapas ([lng, lat]). No muta la entrada.
func HeatmapToLngLat(points []entity.HeatmapPoint) []entity.HeatmapPoint {
	out := make([]entity.HeatmapPoint, len(points))
	for i, pt := range points {
		out[i] = entity.HeatmapPoint{
			Coordinates: SwapToLngLat(pt.Coordinates),
			Weight:      pt.Weight,
		}
	}
	return out
}
