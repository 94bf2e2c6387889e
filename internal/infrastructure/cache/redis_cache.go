package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tu-usuario/pos-minimarket/internal/application/dto"
	"github.com/tu-usuario/pos-minimarket/internal/application/reports"
)

var _ reports.ReportCache = (*RedisReportCache)(nil)

// RedisReportCache cache de reportes respaldado por Redis. Los valores se
// serializan como JSON; la expiración la maneja Redis vía TTL.
type RedisReportCache struct {
	client *redis.Client
}

// NewRedisReportCache conecta a Redis y verifica con un ping.
func NewRedisReportCache(addr, password string, db int) (*RedisReportCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &RedisReportCache{client: client}, nil
}

// Get devuelve el reporte cacheado. (nil, false, nil) en un miss.
func (c *RedisReportCache) Get(ctx context.Context, key string) (*dto.DailySalesReportResponse, bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	var report dto.DailySalesReportResponse
	if err := json.Unmarshal(raw, &report); err != nil {
		// Entrada corrupta: tratarla como miss para que se regenere.
		return nil, false, nil
	}
	return &report, true, nil
}

// Set guarda el reporte con el TTL dado.
func (c *RedisReportCache) Set(ctx context.Context, key string, value *dto.DailySalesReportResponse, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Close cierra la conexión a Redis.
func (c *RedisReportCache) Close() error {
	return c.client.Close()
}
