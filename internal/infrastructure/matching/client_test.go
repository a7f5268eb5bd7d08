package matching_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Vivienda-api/internal/infrastructure/matching"
)

// El cliente envía Bearer token y X-Company-Key, y parsea la lista de matches.
func TestMatchesForApplicant_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/match", r.URL.Path)
		assert.Equal(t, "applicant-1", r.URL.Query().Get("applicant_id"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "company-key-1", r.Header.Get("X-Company-Key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":"m-1","score":87,"reasons":["income fits"],"status":"suggested","ai_confidence":0.92,
			 "applicant":{"id":"applicant-1","full_name":"Ana García","ami_percent":60},
			 "project":{"id":"project-1","name":"Riverside Commons","city":"Oakland"}}
		]`))
	}))
	defer srv.Close()

	client := matching.NewClient(srv.URL, "test-token", "company-key-1")
	matches, err := client.MatchesForApplicant(context.Background(), "applicant-1")

	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, 87, matches[0].Score)
	assert.Equal(t, "Riverside Commons", matches[0].Project.Name)
	assert.Equal(t, []string{"income fits"}, matches[0].Reasons)
}

// Los errores del backend ({detail}) se mapean a APIError tipado.
func TestEligibility_ErrorDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"detail":"applicant income exceeds AMI band"}`))
	}))
	defer srv.Close()

	client := matching.NewClient(srv.URL, "t", "")
	_, err := client.Eligibility(context.Background(), "applicant-1", "project-1")

	var apiErr *matching.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Equal(t, "applicant income exceeds AMI band", apiErr.Message)
}

// {message} también se acepta como cuerpo de error.
func TestHeatmap_ErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"message":"upstream unavailable"}`))
	}))
	defer srv.Close()

	client := matching.NewClient(srv.URL, "t", "")
	_, err := client.Heatmap(context.Background(), "bay-area")

	var apiErr *matching.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "upstream unavailable", apiErr.Message)
}

// El heatmap se entrega tal cual llega ([lat, lng]); el swap es del caller.
func TestHeatmap_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/analytics/heatmap", r.URL.Path)
		assert.Equal(t, "bay-area", r.URL.Query().Get("region"))
		_, _ = w.Write([]byte(`[{"coordinates":[37.8,-122.3],"weight":0.9}]`))
	}))
	defer srv.Close()

	client := matching.NewClient(srv.URL, "t", "")
	points, err := client.Heatmap(context.Background(), "bay-area")

	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, [2]float64{37.8, -122.3}, points[0].Coordinates)
}

// Sin base URL configurada: error descriptivo, nunca panic.
func TestClient_SinBaseURL(t *testing.T) {
	client := matching.NewClient("", "t", "")
	_, err := client.MatchesForApplicant(context.Background(), "a")
	assert.Error(t, err)
}
