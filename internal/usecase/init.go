package usecase

import (
	"go.uber.org/zap"

	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/domain/repository"
	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/usecase/interfaces"
)

// UseCases bundles every application usecase.
type UseCases struct {
	TokenUseCase interfaces.TokenUseCase
	UserUseCase  interfaces.UserUseCase
	SpellUseCase interfaces.SpellUseCase
}

// NewUseCases wires every usecase instance.
func NewUseCases(repos *repository.Repositories, tokenConfig TokenConfig, logger *zap.Logger) *UseCases {
	useCases := &UseCases{}

	useCases.TokenUseCase = NewTokenUseCase(
		logger,
		tokenConfig,
		repos.Token,
		repos.User,
		repos.Cache,
	)

	useCases.UserUseCase = NewUserUseCase(
		logger,
		repos.User,
		repos.Spell,
		repos.Token,
		useCases.TokenUseCase,
	)

	useCases.SpellUseCase = NewSpellUseCase(
		logger,
		repos.Spell,
		repos.User,
	)

	return useCases
}
