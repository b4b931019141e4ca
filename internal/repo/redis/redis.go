package redis

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Options — параметры подключения к Redis.
type Options struct {
	Addr     string
	Password string
	DB       int
}

// NewClient — клиент Redis с проверкой соединения при старте.
func NewClient(ctx context.Context, opt Options) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:         opt.Addr,
		Password:     opt.Password,
		DB:           opt.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
