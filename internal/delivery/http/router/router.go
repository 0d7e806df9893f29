// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"matchday/internal/delivery/http/middleware"
	"matchday/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	FavoritesHandler *handler.FavoritesHandler
	CatalogHandler   *handler.CatalogHandler
	LoggerMiddleware *middleware.LoggerMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	auth      *handler.AuthHandler
	favorites *handler.FavoritesHandler
	catalog   *handler.CatalogHandler
	logging   *middleware.LoggerMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		auth:      params.AuthHandler,
		favorites: params.FavoritesHandler,
		catalog:   params.CatalogHandler,
		logging:   params.LoggerMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.logging.Handle)

	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.auth.Register)
		authGroup.POST("/login", r.auth.Login)
		authGroup.POST("/logout", r.auth.Logout)
		authGroup.GET("/session", r.auth.Session)
	}

	favoritesGroup := e.Group("/favorites")
	{
		favoritesGroup.GET("", r.favorites.List)
		favoritesGroup.POST("", r.favorites.Add)
		favoritesGroup.DELETE("", r.favorites.Clear)
		favoritesGroup.GET("/:kind/:id", r.favorites.Contains)
		favoritesGroup.DELETE("/:kind/:id", r.favorites.Remove)
	}

	catalogGroup := e.Group("/catalog")
	{
		catalogGroup.GET("/teams/search", r.catalog.SearchTeams)
		catalogGroup.GET("/teams/by-league", r.catalog.LeagueTeams)
		catalogGroup.GET("/teams/:id", r.catalog.TeamDetails)
		catalogGroup.GET("/teams/:id/players", r.catalog.TeamPlayers)

		catalogGroup.GET("/players/search", r.catalog.SearchPlayers)
		catalogGroup.GET("/players/:id", r.catalog.PlayerDetails)

		catalogGroup.GET("/events/search", r.catalog.SearchEvents)
		catalogGroup.GET("/events/by-date", r.catalog.EventsByDate)
		catalogGroup.GET("/events/:id", r.catalog.EventDetails)

		catalogGroup.GET("/leagues", r.catalog.AllLeagues)
		catalogGroup.GET("/leagues/:id", r.catalog.LeagueDetails)
		catalogGroup.GET("/leagues/:id/events/last", r.catalog.LastLeagueEvents)
		catalogGroup.GET("/leagues/:id/events/next", r.catalog.NextLeagueEvents)
		catalogGroup.GET("/leagues/:id/events/season", r.catalog.SeasonEvents)
		catalogGroup.GET("/leagues/:id/table", r.catalog.LeagueTable)
	}
}
