package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// pingTimeout время ожидания ответа Redis при старте
const pingTimeout = 5 * time.Second

// Options параметры подключения к Redis
type Options struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// NewRedis создает клиент Redis и проверяет соединение
func NewRedis(ctx context.Context, opts Options) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", opts.Host, opts.Port),
		Password: opts.Password,
		DB:       opts.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s:%d: %w", opts.Host, opts.Port, err)
	}

	return client, nil
}
