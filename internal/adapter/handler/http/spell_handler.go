package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/domain/entity"
	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/infrastructure/http/middleware"
	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/usecase/dto"
	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/usecase/interfaces"
	pkgerrors "github.com/Yago-Rueda-24/Datos-Dados-backend/pkg/errors"
)

// SpellHandler exposes spell management endpoints. Every route runs behind
// the session middleware.
type SpellHandler struct {
	logger       *zap.Logger
	spellUseCase interfaces.SpellUseCase
}

// NewSpellHandler creates the spell handler.
func NewSpellHandler(logger *zap.Logger, spellUC interfaces.SpellUseCase) *SpellHandler {
	return &SpellHandler{
		logger:       logger,
		spellUseCase: spellUC,
	}
}

func sessionUser(c echo.Context) *entity.User {
	return c.Get(middleware.UserKey).(*entity.User)
}

// CreateSpell stores a new spell owned by the authenticated user.
func (h *SpellHandler) CreateSpell(c echo.Context) error {
	var req dto.SpellDTO
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}

	created, err := h.spellUseCase.CreateSpell(c.Request().Context(), sessionUser(c), &req)
	if err != nil {
		return pkgerrors.ToHTTPError(err)
	}

	return c.JSON(http.StatusCreated, created)
}

// ModifySpell updates an existing spell owned by the authenticated user.
func (h *SpellHandler) ModifySpell(c echo.Context) error {
	var req dto.SpellDTO
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}

	updated, err := h.spellUseCase.ModifySpell(c.Request().Context(), sessionUser(c), &req)
	if err != nil {
		return pkgerrors.ToHTTPError(err)
	}

	return c.JSON(http.StatusOK, updated)
}

// DeleteSpell removes a spell owned by the authenticated user.
func (h *SpellHandler) DeleteSpell(c echo.Context) error {
	spellID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid spell id"})
	}

	if err := h.spellUseCase.DeleteSpell(c.Request().Context(), sessionUser(c), uint(spellID)); err != nil {
		return pkgerrors.ToHTTPError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "spell deleted"})
}

// GetSpell returns a single spell by id.
func (h *SpellHandler) GetSpell(c echo.Context) error {
	spellID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid spell id"})
	}

	spell, err := h.spellUseCase.GetSpell(c.Request().Context(), uint(spellID))
	if err != nil {
		return pkgerrors.ToHTTPError(err)
	}

	return c.JSON(http.StatusOK, spell)
}

// ListSpells returns the authenticated user's spells, optionally filtered
// by a name prefix.
func (h *SpellHandler) ListSpells(c echo.Context) error {
	spells, err := h.spellUseCase.ListSpells(c.Request().Context(), sessionUser(c), c.QueryParam("search"))
	if err != nil {
		return pkgerrors.ToHTTPError(err)
	}

	return c.JSON(http.StatusOK, spells)
}

// ListPublicSpells returns publicly visible spells.
func (h *SpellHandler) ListPublicSpells(c echo.Context) error {
	spells, err := h.spellUseCase.ListPublicSpells(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return pkgerrors.ToHTTPError(err)
	}

	return c.JSON(http.StatusOK, spells)
}

// ListOfficialSpells returns the official SRD spells.
func (h *SpellHandler) ListOfficialSpells(c echo.Context) error {
	spells, err := h.spellUseCase.ListOfficialSpells(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return pkgerrors.ToHTTPError(err)
	}

	return c.JSON(http.StatusOK, spells)
}
