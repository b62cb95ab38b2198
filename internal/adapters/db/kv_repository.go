// internal/adapters/db/kv_repository.go
package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ammerola/wardrobe-be/internal/core/ports"
)

const kvTable = "kv_store"

// Querier is the subset of Database used by the repository.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Ping(ctx context.Context) error
}

// KVRepository implements ports.KeyValueStore on a Postgres table.
type KVRepository struct {
	db     Querier
	psql   squirrel.StatementBuilderType
	now    func() time.Time
	logger *slog.Logger
}

var _ ports.KeyValueStore = (*KVRepository)(nil)

// NewKVRepository creates a new key-value repository
func NewKVRepository(db Querier, logger *slog.Logger) *KVRepository {
	return &KVRepository{
		db:     db,
		psql:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		now:    time.Now,
		logger: logger.With(slog.String("repository", "kv_store")),
	}
}

// Get returns the stored value or ports.ErrKeyNotFound.
func (r *KVRepository) Get(ctx context.Context, key string) (string, error) {
	query, args, err := r.psql.
		Select("value").
		From(kvTable).
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build query: %w", err)
	}

	var value string
	if err := r.db.QueryRow(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ports.ErrKeyNotFound
		}
		return "", fmt.Errorf("failed to get key %s: %w", key, err)
	}
	return value, nil
}

// Set upserts the value for key.
func (r *KVRepository) Set(ctx context.Context, key string, value string) error {
	query, args, err := r.psql.
		Insert(kvTable).
		Columns("key", "value", "updated_at").
		Values(key, value, r.now().UTC()).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}

	r.logger.DebugContext(ctx, "key written", slog.String("key", key), slog.Int("bytes", len(value)))
	return nil
}

// Remove deletes key. Removing a missing key is not an error.
func (r *KVRepository) Remove(ctx context.Context, key string) error {
	query, args, err := r.psql.
		Delete(kvTable).
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to remove key %s: %w", key, err)
	}
	return nil
}

func (r *KVRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
