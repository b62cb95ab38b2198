// internal/bootstrap/bootstrap.go
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ammerola/wardrobe-be/internal/adapters/db"
	redis_a "github.com/ammerola/wardrobe-be/internal/adapters/redis_adapter"
	"github.com/ammerola/wardrobe-be/internal/adapters/resilient"
	"github.com/ammerola/wardrobe-be/internal/adapters/storage"
	"github.com/ammerola/wardrobe-be/internal/core/ports"
	"github.com/ammerola/wardrobe-be/internal/core/services"
	"github.com/ammerola/wardrobe-be/internal/pkg/config"
)

// Pinger is a dependency that can report its reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Backend is the opened persistence backend shared by all binaries.
type Backend struct {
	KV      ports.KeyValueStore
	Pingers map[string]Pinger
	closers []func()
}

// Close releases connections in reverse opening order.
func (b *Backend) Close() {
	for i := len(b.closers) - 1; i >= 0; i-- {
		b.closers[i]()
	}
	b.closers = nil
}

// ApplySecrets fills passwords from AWS Secrets Manager when a secret name is configured.
func ApplySecrets(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	if cfg.AWS.SecretName == "" {
		return nil
	}
	sm, err := config.NewAWSSecretsManager(ctx, cfg.AWS.Region, cfg.AWS.SecretName, logger)
	if err != nil {
		return err
	}
	return cfg.ApplySecrets(ctx, sm)
}

// OpenBackend connects to the configured store backend. With the breaker
// enabled the key-value store is wrapped in a circuit breaker.
func OpenBackend(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Backend, error) {
	b := &Backend{Pingers: make(map[string]Pinger)}

	var kv ports.KeyValueStore
	switch cfg.Store.Backend {
	case config.BackendPostgres:
		database, err := openDatabase(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		b.closers = append(b.closers, database.Close)
		b.Pingers["database"] = database
		kv = db.NewKVRepository(database, logger)
	case config.BackendRedis:
		client, err := OpenRedis(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		b.closers = append(b.closers, func() { _ = client.Close() })
		store := redis_a.NewKVStore(client, logger)
		b.Pingers["redis"] = store
		kv = store
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}

	if cfg.Store.BreakerEnabled {
		kv = resilient.NewBreakerStore(kv, resilient.DefaultSettings("store-"+cfg.Store.Backend), logger)
	}
	b.KV = kv

	logger.Info("store backend ready",
		slog.String("backend", cfg.Store.Backend),
		slog.Bool("breaker", cfg.Store.BreakerEnabled))
	return b, nil
}

// OpenRedis creates and pings a Redis client from cfg.Redis.
func OpenRedis(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*redis.Client, error) {
	logger.Info("connecting to Redis",
		slog.String("host", cfg.Redis.Host),
		slog.String("port", cfg.Redis.Port))

	client := redis.NewClient(&redis.Options{
		Addr:            cfg.GetRedisAddr(),
		Password:        cfg.Redis.Password,
		DB:              cfg.Redis.DB,
		MaxRetries:      cfg.Redis.MaxRetries,
		MinRetryBackoff: cfg.Redis.MinRetryBackoff,
		MaxRetryBackoff: cfg.Redis.MaxRetryBackoff,
		DialTimeout:     cfg.Redis.DialTimeout,
		ReadTimeout:     cfg.Redis.ReadTimeout,
		WriteTimeout:    cfg.Redis.WriteTimeout,
		PoolSize:        cfg.Redis.PoolSize,
		MinIdleConns:    cfg.Redis.MinIdleConns,
		PoolTimeout:     cfg.Redis.PoolTimeout,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

func openDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*db.Database, error) {
	logger.Info("connecting to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Name))

	database, err := db.NewDatabase(ctx, &db.Config{
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		User:               cfg.Database.User,
		Password:           cfg.Database.Password,
		Database:           cfg.Database.Name,
		SSLMode:            cfg.Database.SSLMode,
		MaxConnections:     cfg.Database.MaxConnections,
		MinConnections:     cfg.Database.MinConnections,
		MaxConnLifetime:    cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:    cfg.Database.MaxConnIdleTime,
		HealthCheckPeriod:  cfg.Database.HealthCheckPeriod,
		ConnectTimeout:     cfg.Database.ConnectTimeout,
		StatementCacheMode: cfg.Database.StatementCacheMode,
		EnableQueryLogging: cfg.Database.EnableQueryLogging,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if cfg.Database.AutoMigrate {
		err := db.RunMigrationsWithRetry(ctx, &db.MigrationConfig{
			DatabaseURL: cfg.GetDatabaseURL(),
			TableName:   "schema_migrations",
			SchemaName:  "public",
		}, logger, 3)
		if err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}
	return database, nil
}

// NewStore builds the inventory store over kv and loads it within the
// configured load timeout.
func NewStore(ctx context.Context, cfg *config.Config, kv ports.KeyValueStore, logger *slog.Logger) (*services.InventoryStore, error) {
	store := services.NewInventoryStore(kv, services.KeysForPrefix(cfg.Store.KeyPrefix), logger)
	if err := loadWithTimeout(ctx, store, cfg.Store.LoadTimeout); err != nil {
		return store, fmt.Errorf("failed to load inventory: %w", err)
	}
	return store, nil
}

// KeepLoading retries Load with exponential backoff until it succeeds or ctx
// is done. It blocks; run it in a goroutine.
func KeepLoading(ctx context.Context, store ports.InventoryService, timeout time.Duration, logger *slog.Logger) {
	wait := time.Second

	for attempt := 2; ; attempt++ {
		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
		}

		err := loadWithTimeout(ctx, store, timeout)
		if err == nil {
			logger.Info("inventory loaded after retry", slog.Int("attempt", attempt))
			return
		}
		wait = nextBackoff(wait)
		logger.Warn("inventory load failed",
			slog.Int("attempt", attempt),
			slog.Duration("next_wait", wait),
			slog.String("error", err.Error()))
	}
}

const maxLoadBackoff = 30 * time.Second

// nextBackoff doubles wait, capped at maxLoadBackoff.
func nextBackoff(wait time.Duration) time.Duration {
	if wait *= 2; wait > maxLoadBackoff {
		return maxLoadBackoff
	}
	return wait
}

func loadWithTimeout(ctx context.Context, store ports.InventoryService, timeout time.Duration) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return store.Load(ctx)
}

// OpenBackupStorage returns the configured backup transport.
func OpenBackupStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (ports.BackupStorage, error) {
	switch cfg.Backup.Driver {
	case config.BackupDriverS3:
		s3, err := storage.NewS3Storage(ctx, &storage.S3Config{
			Region:          cfg.AWS.Region,
			Bucket:          cfg.AWS.S3Bucket,
			AccessKeyID:     cfg.AWS.AccessKeyID,
			SecretAccessKey: cfg.AWS.SecretAccessKey,
			Endpoint:        cfg.AWS.S3Endpoint,
			UsePathStyle:    cfg.AWS.UsePathStyle,
			CreateBucket:    cfg.IsDevelopment(),
		}, logger)
		if err != nil {
			return nil, err
		}
		return s3, nil
	case config.BackupDriverFilesystem:
		local, err := storage.NewLocalStorage(cfg.Backup.Dir, logger)
		if err != nil {
			return nil, err
		}
		return local, nil
	default:
		return nil, fmt.Errorf("unknown backup driver %q", cfg.Backup.Driver)
	}
}
