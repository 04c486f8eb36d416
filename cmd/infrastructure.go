package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"eats/internal/adapters/out/bus/memory"
	"eats/internal/adapters/out/bus/pgbus"
	"eats/internal/adapters/out/bus/redisbus"
	"eats/internal/adapters/out/journal"
	"eats/internal/adapters/out/postgres"
	"eats/internal/adapters/out/storage"
	"eats/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	BusMemory   = "memory"
	BusRedis    = "redis"
	BusPostgres = "postgres"
)

// Database returns the record store settings.
func (c Config) Database() postgres.Config {
	return postgres.Config{
		Driver:     c.DBDriver,
		Host:       c.DBHost,
		Port:       c.DBPort,
		User:       c.DBUser,
		Password:   c.DBPassword,
		Name:       c.DBName,
		SSLMode:    c.DBSslMode,
		SQLitePath: c.SQLitePath,
	}
}

// Infrastructure holds the external connections of a running process.
type Infrastructure struct {
	DB      *gorm.DB
	Bus     ports.EventBus
	Journal ports.EventJournal
	Storage ports.ObjectStorage

	closers []func() error
}

// OpenInfrastructure connects to everything cfg enables. On failure the
// connections opened so far are closed again.
func OpenInfrastructure(ctx context.Context, cfg Config, logger *slog.Logger) (_ *Infrastructure, err error) {
	infra := &Infrastructure{}
	defer func() {
		if err != nil {
			_ = infra.Close()
		}
	}()

	if infra.DB, err = postgres.Open(cfg.Database()); err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	infra.closers = append(infra.closers, func() error {
		sqlDB, err := infra.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	})

	if err = infra.openBus(ctx, cfg, logger); err != nil {
		return nil, err
	}

	if len(cfg.KafkaBrokers) > 0 {
		j := journal.NewKafkaJournal(journal.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaOrderEventsTopic))
		infra.Journal = j
		infra.closers = append(infra.closers, j.Close)
	}

	if cfg.S3Bucket != "" {
		client, err := storage.NewS3Client(ctx, cfg.S3Region)
		if err != nil {
			return nil, err
		}
		infra.Storage = storage.NewS3Storage(client, cfg.S3Bucket, cfg.S3Region, cfg.S3PublicBaseURL)
	}

	return infra, nil
}

func (i *Infrastructure) openBus(ctx context.Context, cfg Config, logger *slog.Logger) error {
	switch cfg.BusDriver {
	case BusRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		i.closers = append(i.closers, client.Close)
		bus, err := redisbus.NewBus(ctx, client, redisbus.DefaultPrefix, logger)
		if err != nil {
			return fmt.Errorf("open redis bus: %w", err)
		}
		i.Bus = bus
	case BusPostgres:
		bus, err := pgbus.NewBus(i.DB, cfg.Database().DSN(), pgbus.DefaultChannel, logger)
		if err != nil {
			return fmt.Errorf("open postgres bus: %w", err)
		}
		i.Bus = bus
	default:
		i.Bus = memory.NewBus()
	}
	i.closers = append(i.closers, i.Bus.Close)
	return nil
}

// Close releases the connections in reverse order of opening.
func (i *Infrastructure) Close() error {
	var errs []error
	for k := len(i.closers) - 1; k >= 0; k-- {
		if err := i.closers[k](); err != nil {
			errs = append(errs, err)
		}
	}
	i.closers = nil
	return errors.Join(errs...)
}
