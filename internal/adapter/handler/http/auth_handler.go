package http

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/domain/entity"
	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/infrastructure/http/middleware"
	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/usecase/dto"
	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/usecase/interfaces"
	pkgerrors "github.com/Yago-Rueda-24/Datos-Dados-backend/pkg/errors"
)

// AuthHandler exposes signup, login and session management endpoints.
type AuthHandler struct {
	logger       *zap.Logger
	userUseCase  interfaces.UserUseCase
	tokenUseCase interfaces.TokenUseCase
	validate     *validator.Validate
}

// NewAuthHandler creates the auth handler.
func NewAuthHandler(logger *zap.Logger, userUC interfaces.UserUseCase, tokenUC interfaces.TokenUseCase) *AuthHandler {
	return &AuthHandler{
		logger:       logger,
		userUseCase:  userUC,
		tokenUseCase: tokenUC,
		validate:     validator.New(),
	}
}

// Signup creates a new account.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req dto.SignupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid username"})
	}

	user, err := h.userUseCase.Signup(c.Request().Context(), req.Username)
	if err != nil {
		return pkgerrors.ToHTTPError(err)
	}

	return c.JSON(http.StatusCreated, dto.UserResponse{
		ID:         user.ID,
		Username:   user.Username,
		SignupDate: user.SignupDate,
	})
}

// Login issues a session token for the account.
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid username"})
	}

	token, err := h.userUseCase.Login(c.Request().Context(), req.Username)
	if err != nil {
		return pkgerrors.ToHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.SessionResponse{Token: token})
}

// Logout revokes the presented session token. Runs behind the session
// middleware, so the token has already been validated.
func (h *AuthHandler) Logout(c echo.Context) error {
	token := c.Get(middleware.TokenKey).(string)

	if err := h.userUseCase.Logout(c.Request().Context(), token); err != nil {
		return pkgerrors.ToHTTPError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "logged out"})
}

// LogoutEverywhere revokes every live session of the authenticated user.
func (h *AuthHandler) LogoutEverywhere(c echo.Context) error {
	user := c.Get(middleware.UserKey).(*entity.User)

	if err := h.userUseCase.LogoutEverywhere(c.Request().Context(), user.ID); err != nil {
		return pkgerrors.ToHTTPError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "logged out everywhere"})
}

// DeleteAccount removes the authenticated user's account.
func (h *AuthHandler) DeleteAccount(c echo.Context) error {
	user := c.Get(middleware.UserKey).(*entity.User)

	if err := h.userUseCase.DeleteAccount(c.Request().Context(), user.ID); err != nil {
		return pkgerrors.ToHTTPError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "account deleted"})
}
