package record

//go:generate go run go.uber.org/mock/mockgen -source=./record.go -destination=./mocks/record_mock.go -package=mocks

import (
	"adbook/config"
	"adbook/infras/otel"
	"adbook/infras/postgres"
	"adbook/shared/constant"
	"context"
	"errors"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// ErrNotFound reports that the store holds no collection under a key.
// Callers treat it as an empty collection.
var ErrNotFound = errors.New("record set not found")

// Store persists whole entity collections under string keys. There is no
// incremental write: every Set replaces the serialized collection wholesale,
// last writer wins.
type Store interface {
	// Get deserializes the collection stored under key into dest.
	// Returns ErrNotFound when the key is absent.
	Get(ctx context.Context, key string, dest any) error
	// Set serializes value and replaces whatever the key held before.
	Set(ctx context.Context, key string, value any) error
}

// New selects the configured store backend. Both infra clients are connected
// at startup either way; only the selected one carries record traffic.
func New(cfg *config.Config, redisClient *goRedis.Client, db *postgres.Connection, otl otel.Otel) Store {
	switch cfg.Record.Backend {
	case constant.RecordBackendPostgres:
		log.Info().Msg("Record store backed by Postgres")

		return NewPostgresStore(cfg, db, otl)
	case constant.RecordBackendRedis:
		log.Info().Msg("Record store backed by Redis")

		return NewRedisStore(cfg, redisClient, otl)
	default:
		log.Warn().Str("backend", cfg.Record.Backend).Msg("Unknown record backend, falling back to Redis")

		return NewRedisStore(cfg, redisClient, otl)
	}
}
