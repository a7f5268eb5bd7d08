// Package matching implementa el cliente REST del backend externo de
// matching/elegibilidad. Esta aplicación solo CONSUME esos resultados como JSON
// tipado; el algoritmo de scoring vive del otro lado y no se valida aquí.
package matching

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/jhoicas/Vivienda-api/internal/domain/entity"
)

// companyKeyHeader header propio para propagar el scoping de tenant.
const companyKeyHeader = "X-Company-Key"

// APIError error tipado del backend externo: status HTTP + mensaje del cuerpo
// ({detail} o {message}, según el endpoint).
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("matching API: HTTP %d: %s", e.Status, e.Message)
}

// Client cliente del backend de matching. Sin retry automático: las fallas se
// muestran al usuario como reintentables (toast), no se reintenta en silencio.
type Client struct {
	baseURL    string
	apiToken   string
	companyKey string
	httpClient *http.Client
}

// NewClient construye el cliente. Si baseURL está vacío las llamadas devuelven
// error descriptivo en lugar de panic.
func NewClient(baseURL, apiToken, companyKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiToken:   apiToken,
		companyKey: companyKey,
		httpClient: &http.Client{
			// Timeout de red fijo; no se propaga cancelación propia más allá del ctx.
			Timeout: 15 * time.Second,
		},
	}
}

// errorBody forma del cuerpo de error del backend ({detail} o {message}).
type errorBody struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

// MatchesForApplicant lista los matches calculados para un solicitante.
// GET /api/v1/match?applicant_id=...
func (c *Client) MatchesForApplicant(ctx context.Context, applicantID string) ([]entity.Match, error) {
	q := url.Values{"applicant_id": {applicantID}}
	var out []entity.Match
	if err := c.get(ctx, "/api/v1/match?"+q.Encode(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Eligibility consulta la elegibilidad AMI de un solicitante frente a un proyecto.
// GET /api/v1/eligibility/{applicantID}?project_id=...
func (c *Client) Eligibility(ctx context.Context, applicantID, projectID string) (*entity.EligibilityResult, error) {
	q := url.Values{"project_id": {projectID}}
	var out entity.EligibilityResult
	path := "/api/v1/eligibility/" + url.PathEscape(applicantID) + "?" + q.Encode()
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Heatmap trae la analítica geoespacial calculada en el backend. Los puntos
// llegan como [lat, lng]; el swap a [lng, lat] es responsabilidad del caller
// (frontera del SDK de mapas, no de este cliente).
// GET /api/v1/analytics/heatmap?region=...
func (c *Client) Heatmap(ctx context.Context, region string) ([]entity.HeatmapPoint, error) {
	q := url.Values{"region": {region}}
	var out []entity.HeatmapPoint
	if err := c.get(ctx, "/api/v1/analytics/heatmap?"+q.Encode(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	if c.baseURL == "" {
		return fmt.Errorf("matching: MATCHING_BASE_URL no configurado")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("matching: crear request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiToken)
	req.Header.Set("Accept", "application/json")
	if c.companyKey != "" {
		req.Header.Set(companyKeyHeader, c.companyKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("matching: request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("matching: leer respuesta: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var eb errorBody
		_ = json.Unmarshal(body, &eb)
		msg := eb.Detail
		if msg == "" {
			msg = eb.Message
		}
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("matching: parsear respuesta: %w", err)
	}
	return nil
}
