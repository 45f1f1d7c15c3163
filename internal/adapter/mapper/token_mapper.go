package mapper

import (
	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/domain/entity"
	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/infrastructure/db/model"
)

// TokenToModel converts a token entity into its DB model.
func TokenToModel(token *entity.Token) *model.TokenModel {
	if token == nil {
		return nil
	}

	return &model.TokenModel{
		ID:        token.ID,
		TokenID:   token.TokenID,
		UserID:    token.UserID,
		IssuedAt:  token.IssuedAt,
		ExpiresAt: token.ExpiresAt,
		Expired:   token.Expired,
		Revoked:   token.Revoked,
	}
}

// TokenFromModel converts a DB model into a token entity.
func TokenFromModel(m *model.TokenModel) *entity.Token {
	if m == nil {
		return nil
	}

	return &entity.Token{
		ID:        m.ID,
		TokenID:   m.TokenID,
		UserID:    m.UserID,
		IssuedAt:  m.IssuedAt,
		ExpiresAt: m.ExpiresAt,
		Expired:   m.Expired,
		Revoked:   m.Revoked,
	}
}

// TokensFromModels converts a slice of DB models into token entities.
func TokensFromModels(models []model.TokenModel) []*entity.Token {
	tokens := make([]*entity.Token, len(models))
	for i := range models {
		tokens[i] = TokenFromModel(&models[i])
	}
	return tokens
}
