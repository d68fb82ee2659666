package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// KeyPrefix префикс ключей настроек в Redis
const KeyPrefix = "scheduling:settings:"

// Результаты обращения к кэшу для метрик
const (
	ResultHit   = "hit"
	ResultMiss  = "miss"
	ResultError = "error"
)

// Cache кэш настроек бизнеса в Redis, читающий из репозитория при промахе.
// Ошибки Redis не прерывают запрос: настройки читаются напрямую из репозитория.
type Cache struct {
	client  *redis.Client
	repo    Repository
	ttl     time.Duration
	metrics Metrics
	logger  Logger
}

// New создает кэш поверх репозитория
func New(client *redis.Client, repo Repository, ttl time.Duration, metrics Metrics, logger Logger) *Cache {
	return &Cache{
		client:  client,
		repo:    repo,
		ttl:     ttl,
		metrics: metrics,
		logger:  logger,
	}
}

// Key возвращает ключ настроек бизнеса
func Key(businessID int64) string {
	return fmt.Sprintf("%s%d", KeyPrefix, businessID)
}

// GetByBusiness возвращает настройки из кэша или из репозитория
func (c *Cache) GetByBusiness(ctx context.Context, businessID int64) (*domain.BusinessSettingsRecord, error) {
	key := Key(businessID)

	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var record domain.BusinessSettingsRecord
		if err := json.Unmarshal(raw, &record); err != nil {
			c.logger.Warn("SettingsCache: unreadable entry %s: %v", key, err)
			c.metrics.IncCache(ResultError)
			break
		}
		c.metrics.IncCache(ResultHit)
		return &record, nil

	case errors.Is(err, redis.Nil):
		c.metrics.IncCache(ResultMiss)

	default:
		c.logger.Warn("SettingsCache: redis get %s: %v", key, err)
		c.metrics.IncCache(ResultError)
	}

	record, err := c.repo.GetByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(record)
	if err != nil {
		c.logger.Warn("SettingsCache: marshal settings of business=%d: %v", businessID, err)
		return record, nil
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("SettingsCache: redis set %s: %v", key, err)
	}

	return record, nil
}

// Invalidate удаляет настройки бизнеса из кэша
func (c *Cache) Invalidate(ctx context.Context, businessID int64) error {
	if err := c.client.Del(ctx, Key(businessID)).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", Key(businessID), err)
	}
	return nil
}
