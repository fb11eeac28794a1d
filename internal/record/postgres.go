package record

import (
	"adbook/config"
	"adbook/infras/otel"
	"adbook/infras/postgres"
	"adbook/shared/constant"
	"adbook/shared/timezone"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

const (
	queryGetRecordSet = `SELECT payload FROM record_sets WHERE key = $1`
	querySetRecordSet = `INSERT INTO record_sets (key, payload, modified_at)
		VALUES (:key, :payload, :modified_at)
		ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, modified_at = EXCLUDED.modified_at`
)

type postgresStore struct {
	db        *postgres.Connection
	keyPrefix string
	otel      otel.Otel
}

func NewPostgresStore(cfg *config.Config, db *postgres.Connection, otl otel.Otel) Store {
	return &postgresStore{
		db:        db,
		keyPrefix: cfg.Record.KeyPrefix,
		otel:      otl,
	}
}

func (store *postgresStore) Get(ctx context.Context, key string, dest any) (err error) {
	ctx, scope := store.otel.NewScope(ctx, constant.OtelRecordScopeName, constant.OtelRecordScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	fullKey := store.fullKey(key)
	scope.SetAttribute(constant.OtelRecordKeyAttributeKey, fullKey)

	var payload []byte

	err = store.db.Read.GetContext(ctx, &payload, queryGetRecordSet, fullKey)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	if err != nil {
		log.Error().Err(err).Str("key", fullKey).Msg("failed to read record set")

		return fmt.Errorf("failed to read record set (%s): %w", key, err)
	}

	if err = json.Unmarshal(payload, dest); err != nil {
		log.Error().Err(err).Str("key", fullKey).Msg("failed to unmarshal record set")

		return fmt.Errorf("failed to unmarshal record set (%s): %w", key, err)
	}

	return nil
}

func (store *postgresStore) Set(ctx context.Context, key string, value any) (err error) {
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

	args := map[string]any{
		"key":         fullKey,
		"payload":     payload,
		"modified_at": timezone.Now(),
	}

	if _, err = store.db.Write.NamedExecContext(ctx, querySetRecordSet, args); err != nil {
		log.Error().Err(err).Str("key", fullKey).Msg("failed to write record set")

		return fmt.Errorf("failed to write record set (%s): %w", key, err)
	}

	return nil
}

func (store *postgresStore) fullKey(key string) string {
	return store.keyPrefix + ":" + key
}
