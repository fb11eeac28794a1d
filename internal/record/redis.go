package record

import (
	"adbook/config"
	"adbook/infras/otel"
	"adbook/shared/constant"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type redisStore struct {
	client    *goRedis.Client
	keyPrefix string
	otel      otel.Otel
}

func NewRedisStore(cfg *config.Config, client *goRedis.Client, otl otel.Otel) Store {
	return &redisStore{
		client:    client,
		keyPrefix: cfg.Record.KeyPrefix,
		otel:      otl,
	}
}

func (store *redisStore) Get(ctx context.Context, key string, dest any) (err error) {
	ctx, scope := store.otel.NewScope(ctx, constant.OtelRecordScopeName, constant.OtelRecordScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	fullKey := store.fullKey(key)
	scope.SetAttribute(constant.OtelRecordKeyAttributeKey, fullKey)

	payload, err := store.client.Get(ctx, fullKey).Result()
	if errors.Is(err, goRedis.Nil) {
		return ErrNotFound
	}

	if err != nil {
		log.Error().Err(err).Str("key", fullKey).Msg("failed to read record set")

		return fmt.Errorf("failed to read record set (%s): %w", key, err)
	}

	if err = json.Unmarshal([]byte(payload), dest); err != nil {
		log.Error().Err(err).Str("key", fullKey).Msg("failed to unmarshal record set")

		return fmt.Errorf("failed to unmarshal record set (%s): %w", key, err)
	}

	return nil
}

func (store *redisStore) Set(ctx context.Context, key string, value any) (err error) {
	ctx, scope := store.otel.NewScope(ctx, constant.OtelRecordScopeName, constant.OtelRecordScopeName+".Set")
	defer scope.End()
	defer scope.TraceIfError(err)

	fullKey := store.fullKey(key)
	scope.SetAttribute(constant.OtelRecordKeyAttributeKey, fullKey)

	payload, err := json.Marshal(value)
	if err != nil {
		log.Error().Err(err).Str("key", fullKey).Msg("failed to marshal record set")

		return fmt.Errorf("failed to marshal record set (%s): %w", key, err)
	}

	// Collections live until the next overwrite, never expire.
	if err = store.client.Set(ctx, fullKey, payload, 0).Err(); err != nil {
		log.Error().Err(err).Str("key", fullKey).Msg("failed to write record set")

		return fmt.Errorf("failed to write record set (%s): %w", key, err)
	}

	return nil
}

func (store *redisStore) fullKey(key string) string {
	return store.keyPrefix + ":" + key
}
