package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Vivienda-api/internal/infrastructure/cache"
	"github.com/jhoicas/Vivienda-api/pkg/config"
)

func newTestCache(t *testing.T) (*cache.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c, err := cache.New(context.Background(), config.RedisConfig{Addr: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

type cachedMatches struct {
	Scores []int `json:"scores"`
}

func TestCache_SetGetJSON(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()
	key := cache.MatchKey("applicant-1")

	require.NoError(t, c.SetJSON(ctx, key, cachedMatches{Scores: []int{87, 74}}))

	var out cachedMatches
	require.NoError(t, c.GetJSON(ctx, key, &out))
	assert.Equal(t, []int{87, 74}, out.Scores)
}

func TestCache_MissEnClaveInexistente(t *testing.T) {
	c, _ := newTestCache(t)

	var out cachedMatches
	err := c.GetJSON(context.Background(), cache.MatchKey("nadie"), &out)
	assert.ErrorIs(t, err, cache.ErrMiss)
}

// La ventana de staleness es de 5 minutos: tras avanzar el reloj la clave expira.
func TestCache_TTLCincoMinutos(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()
	key := cache.HeatmapKey("bay-area")

	require.NoError(t, c.SetJSON(ctx, key, cachedMatches{Scores: []int{1}}))

	// Justo antes del TTL la clave sigue viva
	mr.FastForward(cache.TTL - time.Second)
	var out cachedMatches
	require.NoError(t, c.GetJSON(ctx, key, &out))

	// Pasado el TTL, miss
	mr.FastForward(2 * time.Second)
	assert.ErrorIs(t, c.GetJSON(ctx, key, &out), cache.ErrMiss)
}

// Invalidación manual tras una mutación: la clave desaparece de inmediato.
func TestCache_InvalidacionManual(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()
	key := cache.MatchKey("applicant-1")

	require.NoError(t, c.SetJSON(ctx, key, cachedMatches{Scores: []int{87}}))
	require.NoError(t, c.Invalidate(ctx, key))

	var out cachedMatches
	assert.ErrorIs(t, c.GetJSON(ctx, key, &out), cache.ErrMiss)
}
