package handler

import (
	"log/slog"
	"net/http"

	"matchday/internal/delivery/http/response"
	"matchday/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for sports catalog handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// SearchTeams searches teams by the q query parameter.
func (h *CatalogHandler) SearchTeams(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Query parameter q is required")
	}

	teams, err := h.uc.SearchTeams(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, teams, "")
}

// LeagueTeams lists all teams of the league named by the l query parameter.
func (h *CatalogHandler) LeagueTeams(c echo.Context) error {
	league := c.QueryParam("l")
	if league == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Query parameter l is required")
	}

	teams, err := h.uc.LeagueTeams(c.Request().Context(), league)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, teams, "")
}

// TeamDetails looks up a team by path ID.
func (h *CatalogHandler) TeamDetails(c echo.Context) error {
	team, err := h.uc.TeamDetails(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, team, "")
}

// TeamPlayers lists the squad of the team in the path.
func (h *CatalogHandler) TeamPlayers(c echo.Context) error {
	players, err := h.uc.TeamPlayers(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, players, "")
}

// SearchPlayers searches players by the q query parameter.
func (h *CatalogHandler) SearchPlayers(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Query parameter q is required")
	}

	players, err := h.uc.SearchPlayers(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, players, "")
}

// PlayerDetails looks up a player by path ID.
func (h *CatalogHandler) PlayerDetails(c echo.Context) error {
	player, err := h.uc.PlayerDetails(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, player, "")
}

// SearchEvents searches events by the q query parameter.
func (h *CatalogHandler) SearchEvents(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Query parameter q is required")
	}

	events, err := h.uc.SearchEvents(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, events, "")
}

// EventDetails looks up an event by path ID.
func (h *CatalogHandler) EventDetails(c echo.Context) error {
	event, err := h.uc.EventDetails(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, event, "")
}

// LastLeagueEvents lists the most recent completed events of a league.
func (h *CatalogHandler) LastLeagueEvents(c echo.Context) error {
	events, err := h.uc.LastLeagueEvents(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, events, "")
}

// NextLeagueEvents lists the upcoming events of a league.
func (h *CatalogHandler) NextLeagueEvents(c echo.Context) error {
	events, err := h.uc.NextLeagueEvents(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, events, "")
}

// EventsByDate lists events on the date in the d query parameter,
// optionally filtered by sport (s) and league (l).
func (h *CatalogHandler) EventsByDate(c echo.Context) error {
	date := c.QueryParam("d")
	if date == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Query parameter d is required")
	}

	events, err := h.uc.EventsByDate(c.Request().Context(), date, c.QueryParam("s"), c.QueryParam("l"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, events, "")
}

// SeasonEvents lists all events of a league season (s query parameter).
func (h *CatalogHandler) SeasonEvents(c echo.Context) error {
	season := c.QueryParam("s")
	if season == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Query parameter s is required")
	}

	events, err := h.uc.SeasonEvents(c.Request().Context(), c.Param("id"), season)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, events, "")
}

// AllLeagues lists every known league.
func (h *CatalogHandler) AllLeagues(c echo.Context) error {
	leagues, err := h.uc.AllLeagues(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, leagues, "")
}

// LeagueDetails looks up a league by path ID.
func (h *CatalogHandler) LeagueDetails(c echo.Context) error {
	league, err := h.uc.LeagueDetails(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, league, "")
}

// LeagueTable retrieves league standings for the season in the s query
// parameter.
func (h *CatalogHandler) LeagueTable(c echo.Context) error {
	season := c.QueryParam("s")
	if season == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Query parameter s is required")
	}

	table, err := h.uc.LeagueTable(c.Request().Context(), c.Param("id"), season)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, table, "")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
