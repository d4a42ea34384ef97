// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/click-storm/internal/config"
	"github.com/MKhiriev/click-storm/internal/logger"
	"github.com/redis/go-redis/v9"
)

// redisBackend keeps each document under prefix+name as a plain string key.
type redisBackend struct {
	client *redis.Client
	prefix string
}

// NewRedisBackend returns a [Backend] over an existing client.
func NewRedisBackend(client *redis.Client, prefix string) Backend {
	return &redisBackend{client: client, prefix: prefix}
}

// NewConnectRedis parses cfg.URL and pings the server.
func NewConnectRedis(ctx context.Context, cfg config.Redis, log *logger.Logger) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		log.Err(err).Str("func", "NewConnectRedis").Msg("invalid redis url")
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err = client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewConnectRedis").Msg("error connecting redis (ping)")
		client.Close()
		return nil, fmt.Errorf("error connecting redis: %w", err)
	}
	log.Info().Str("func", "NewConnectRedis").Msg("connected to redis successfully")

	return client, nil
}

func (b *redisBackend) key(name string) string {
	return b.prefix + name
}

func (b *redisBackend) Read(ctx context.Context, name string) ([]byte, error) {
	data, err := b.client.Get(ctx, b.key(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("redis get %q: %w", b.key(name), err)
	}
	return data, nil
}

func (b *redisBackend) Write(ctx context.Context, name string, data []byte) error {
	if err := b.client.Set(ctx, b.key(name), data, 0).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", b.key(name), err)
	}
	return nil
}
