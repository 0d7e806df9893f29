package handler

import (
	"log/slog"
	"net/http"

	"matchday/internal/delivery/http/response"
	"matchday/internal/domain/entity"
	"matchday/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FavoritesHandler holds dependencies for favorites-related handlers.
type FavoritesHandler struct {
	uc     usecase.FavoritesUsecase
	logger *slog.Logger
}

// NewFavoritesHandler is the constructor for FavoritesHandler, injected by Fx.
func NewFavoritesHandler(uc usecase.FavoritesUsecase, logger *slog.Logger) *FavoritesHandler {
	return &FavoritesHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns the favorites collection in insertion order.
func (h *FavoritesHandler) List(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.List(), "")
}

// Add inserts a favorite. Duplicate identities are accepted and ignored.
func (h *FavoritesHandler) Add(c echo.Context) error {
	var favorite entity.Favorite
	if err := c.Bind(&favorite); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid favorite payload")
	}

	if err := h.uc.Add(c.Request().Context(), favorite); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, h.uc.List(), "Favorite added")
}

// Remove deletes every favorite matching the identity in the path.
func (h *FavoritesHandler) Remove(c echo.Context) error {
	kind := entity.FavoriteKind(c.Param("kind"))
	switch kind {
	case entity.FavoriteTeam, entity.FavoritePlayer, entity.FavoriteEvent:
	default:
		return response.BadRequest(c, "INVALID_INPUT", "Unknown favorite kind")
	}

	h.uc.Remove(c.Request().Context(), kind, c.Param("id"))

	return response.Success(c, http.StatusOK, h.uc.List(), "Favorite removed")
}

// Clear empties the favorites collection.
func (h *FavoritesHandler) Clear(c echo.Context) error {
	h.uc.Clear(c.Request().Context())

	return response.Success(c, http.StatusOK, []entity.Favorite{}, "Favorites cleared")
}

// Contains reports whether an identity is favorited.
func (h *FavoritesHandler) Contains(c echo.Context) error {
	kind := entity.FavoriteKind(c.Param("kind"))

	return response.Success(c, http.StatusOK, map[string]bool{
		"favorite": h.uc.IsFavorite(kind, c.Param("id")),
	}, "")
}
