package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	handlers "github.com/Yago-Rueda-24/Datos-Dados-backend/internal/adapter/handler/http"
	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/config"
	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/infrastructure/http/middleware"
	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/usecase"
	"github.com/Yago-Rueda-24/Datos-Dados-backend/pkg/logger"
)

type Server struct {
	config   *config.Config
	logger   *zap.Logger
	echo     *echo.Echo
	useCases *usecase.UseCases
}

func NewServer(cfg *config.Config, log *zap.Logger, useCases *usecase.UseCases) *Server {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(logger.NewEchoRequestLogger(log))
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE},
	}))

	return &Server{
		config:   cfg,
		logger:   log,
		echo:     e,
		useCases: useCases,
	}
}

func (s *Server) Start() error {
	s.setupRoutes()

	addr := fmt.Sprintf(":%s", s.config.Server.Port)
	s.logger.Info("starting HTTP server", zap.String("address", addr))

	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) setupRoutes() {
	// Health check
	s.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "healthy",
			"service": s.config.Service.Name,
		})
	})

	// Handlers
	authHandler := handlers.NewAuthHandler(s.logger, s.useCases.UserUseCase, s.useCases.TokenUseCase)
	spellHandler := handlers.NewSpellHandler(s.logger, s.useCases.SpellUseCase)

	session := middleware.NewSessionMiddleware(s.useCases.TokenUseCase, s.logger)

	// Public routes
	s.echo.POST("/signup", authHandler.Signup)
	s.echo.POST("/login", authHandler.Login)

	// Session-guarded routes
	protected := s.echo.Group("", session.Handle())

	protected.POST("/logout", authHandler.Logout)
	protected.POST("/logout-all", authHandler.LogoutEverywhere)
	protected.DELETE("/user", authHandler.DeleteAccount)

	spells := protected.Group("/spell")
	spells.POST("", spellHandler.CreateSpell)
	spells.PUT("", spellHandler.ModifySpell)
	spells.DELETE("/:id", spellHandler.DeleteSpell)
	spells.GET("/list", spellHandler.ListSpells)
	spells.GET("/public", spellHandler.ListPublicSpells)
	spells.GET("/wotspells", spellHandler.ListOfficialSpells)
	spells.GET("/:id", spellHandler.GetSpell)
}
