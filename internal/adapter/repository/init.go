package repository

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	domainrepo "github.com/Yago-Rueda-24/Datos-Dados-backend/internal/domain/repository"
	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/infrastructure/db"
)

// InitRepositories wires every repository implementation and returns the
// collection.
func InitRepositories(database *gorm.DB, redisClient *redis.Client) *domainrepo.Repositories {
	userRepo := NewUserRepository(database)
	tokenRepo := NewTokenRepository(database)
	spellRepo := NewSpellRepository(database)
	cacheRepo := db.NewRedisRepository(redisClient)

	return domainrepo.NewRepositories(
		userRepo,
		tokenRepo,
		spellRepo,
		cacheRepo,
	)
}
