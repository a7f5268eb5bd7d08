// Package cache implementa la política de caché para matches y heatmap:
// ventana de staleness fija de 5 minutos con invalidación manual tras
// mutaciones. Es una política, no un motor: ninguna evicción más allá del TTL.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/Vivienda-api/pkg/config"
)

// TTL ventana de staleness observada para matches/heatmap.
const TTL = 5 * time.Minute

// ErrMiss la clave no está en caché (o expiró).
var ErrMiss = errors.New("cache miss")

// Cache wrapper sobre go-redis para valores JSON con TTL fijo.
type Cache struct {
	client *redis.Client
}

// New conecta el caché. Devuelve error si el ping falla; el caller decide si
// arranca sin caché (la aplicación se degrada a llamadas directas).
func New(ctx context.Context, cfg config.RedisConfig) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &Cache{client: client}, nil
}

// Close cierra la conexión.
func (c *Cache) Close() error {
	return c.client.Close()
}

// GetJSON lee y deserializa una clave. ErrMiss si no existe.
func (c *Cache) GetJSON(ctx context.Context, key string, out any) error {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrMiss
	}
	if err != nil {
		return fmt.Errorf("cache get %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("cache unmarshal %s: %w", key, err)
	}
	return nil
}

// SetJSON serializa y guarda una clave con el TTL fijo de 5 minutos.
func (c *Cache) SetJSON(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal %s: %w", key, err)
	}
	if err := c.client.Set(ctx, key, raw, TTL).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

// Invalidate borra claves explícitamente (invalidación manual tras mutaciones).
func (c *Cache) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("cache invalidate: %w", err)
	}
	return nil
}

// MatchKey clave de caché para los matches de un solicitante.
func MatchKey(applicantID string) string {
	return "matches:" + applicantID
}

// HeatmapKey clave de caché para el heatmap de una región.
func HeatmapKey(region string) string {
	return "heatmap:" + region
}
