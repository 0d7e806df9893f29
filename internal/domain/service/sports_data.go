package service

import (
	"context"

	"matchday/internal/domain/entity"
)

// SportsData is the remote sports catalog consumed by the application.
// Implementations wrap a third-party JSON API; lookups return nil (not an
// error) when the upstream knows nothing about the requested ID.
type SportsData interface {
	SearchTeams(ctx context.Context, name string) ([]entity.Team, error)
	LeagueTeams(ctx context.Context, leagueName string) ([]entity.Team, error)
	TeamDetails(ctx context.Context, teamID string) (*entity.Team, error)
	TeamPlayers(ctx context.Context, teamID string) ([]entity.Player, error)

	SearchPlayers(ctx context.Context, name string) ([]entity.Player, error)
	PlayerDetails(ctx context.Context, playerID string) (*entity.Player, error)

	SearchEvents(ctx context.Context, name string) ([]entity.Event, error)
	EventDetails(ctx context.Context, eventID string) (*entity.Event, error)
	LastLeagueEvents(ctx context.Context, leagueID string) ([]entity.Event, error)
	NextLeagueEvents(ctx context.Context, leagueID string) ([]entity.Event, error)
	EventsByDate(ctx context.Context, date, sport, league string) ([]entity.Event, error)
	SeasonEvents(ctx context.Context, leagueID, season string) ([]entity.Event, error)

	AllLeagues(ctx context.Context) ([]entity.League, error)
	LeagueDetails(ctx context.Context, leagueID string) (*entity.League, error)
	LeagueTable(ctx context.Context, leagueID, season string) ([]entity.TableEntry, error)
}
