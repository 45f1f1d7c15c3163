package db

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/config"
	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/infrastructure/db/model"
)

// Infrastructure bundles the external connections.
type Infrastructure struct {
	DB          *gorm.DB
	RedisClient *redis.Client

	logger *zap.Logger
}

// NewInfrastructure opens the database and Redis connections and runs
// schema migration.
func NewInfrastructure(cfg *config.Config, logger *zap.Logger) (*Infrastructure, error) {
	database, err := NewPostgresDB(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := Migrate(database); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	redisClient, err := NewRedisClient(&cfg.Redis, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}

	return &Infrastructure{
		DB:          database,
		RedisClient: redisClient,
		logger:      logger,
	}, nil
}

// Migrate applies the schema for every model.
func Migrate(database *gorm.DB) error {
	return database.AutoMigrate(
		&model.UserModel{},
		&model.TokenModel{},
		&model.SpellModel{},
	)
}

// Close shuts every connection down.
func (i *Infrastructure) Close() error {
	sqlDB, err := i.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying SQL database: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}

	if err := i.RedisClient.Close(); err != nil {
		return fmt.Errorf("failed to close redis connection: %w", err)
	}

	i.logger.Info("infrastructure connections closed")
	return nil
}
