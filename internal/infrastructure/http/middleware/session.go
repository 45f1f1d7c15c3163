package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/usecase/interfaces"
	pkgerrors "github.com/Yago-Rueda-24/Datos-Dados-backend/pkg/errors"
)

// Context keys for the authenticated session.
const (
	UserIDKey = "user_id"
	UserKey   = "user"
	TokenKey  = "session_token"
)

// SessionMiddleware guards routes with the token lifecycle manager: it
// extracts the opaque token, validates and renews it, and resolves the
// owning user. Rejections are uniform 401s that never reveal whether the
// token was absent, expired or revoked; store failures surface as 5xx.
type SessionMiddleware struct {
	tokenUseCase interfaces.TokenUseCase
	logger       *zap.Logger
}

// NewSessionMiddleware creates the session middleware.
func NewSessionMiddleware(tokenUseCase interfaces.TokenUseCase, logger *zap.Logger) *SessionMiddleware {
	return &SessionMiddleware{
		tokenUseCase: tokenUseCase,
		logger:       logger,
	}
}

// extractToken reads the token from the `token` query parameter, falling
// back to a bearer Authorization header.
func extractToken(c echo.Context) string {
	if token := c.QueryParam("token"); token != "" {
		return token
	}

	authHeader := c.Request().Header.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return ""
}

// Handle returns the echo middleware function.
func (m *SessionMiddleware) Handle() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractToken(c)
			if token == "" {
				return c.JSON(http.StatusBadRequest, echo.Map{
					"message": "missing session token",
				})
			}

			ctx := c.Request().Context()

			accepted, err := m.tokenUseCase.ValidateAndRenew(ctx, token)
			if err != nil {
				m.logger.Error("session validation failed",
					zap.String("path", c.Request().URL.Path),
					zap.Error(err),
				)
				return pkgerrors.ToHTTPError(err)
			}
			if !accepted {
				m.logger.Info("session rejected",
					zap.String("ip", c.RealIP()),
					zap.String("path", c.Request().URL.Path),
				)
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"message": "session invalid or expired",
				})
			}

			user, err := m.tokenUseCase.GetUser(ctx, token)
			if err != nil {
				m.logger.Error("session user resolution failed", zap.Error(err))
				return pkgerrors.ToHTTPError(err)
			}
			if user == nil {
				// Validated a moment ago but gone now: treat like any
				// other rejection.
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"message": "session invalid or expired",
				})
			}

			c.Set(UserIDKey, user.ID)
			c.Set(UserKey, user)
			c.Set(TokenKey, token)

			return next(c)
		}
	}
}
