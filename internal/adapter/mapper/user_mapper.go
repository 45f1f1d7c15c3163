package mapper

import (
	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/domain/entity"
	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/infrastructure/db/model"
)

// UserToModel converts a user entity into its DB model.
func UserToModel(user *entity.User) *model.UserModel {
	if user == nil {
		return nil
	}

	return &model.UserModel{
		ID:         user.ID,
		Username:   user.Username,
		SignupDate: user.SignupDate,
	}
}

// UserFromModel converts a DB model into a user entity.
func UserFromModel(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:         m.ID,
		Username:   m.Username,
		SignupDate: m.SignupDate,
	}
}
