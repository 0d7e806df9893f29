package impl

import (
	"context"
	"log/slog"

	"matchday/internal/domain/entity"
	domainerrors "matchday/internal/domain/errors"
	"matchday/internal/domain/service"
	"matchday/internal/usecase"

	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface as a thin layer
// over the remote sports data client: upstream failures are logged and
// mapped to domain errors, unknown IDs to not-found.
type catalogService struct {
	sports service.SportsData
	logger *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	Sports service.SportsData
	Logger *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		sports: params.Sports,
		logger: params.Logger,
	}
}

// upstream wraps an upstream failure into the domain taxonomy.
func (srv *catalogService) upstream(op string, err error) error {
	srv.logger.Error("Sports data request failed", slog.String("op", op), slog.Any("error", err))

	return domainerrors.ErrUpstreamUnavailable.WrapMessage(op)
}

func (srv *catalogService) SearchTeams(ctx context.Context, name string) ([]entity.Team, error) {
	teams, err := srv.sports.SearchTeams(ctx, name)
	if err != nil {
		return nil, srv.upstream("search teams", err)
	}

	return teams, nil
}

func (srv *catalogService) LeagueTeams(ctx context.Context, leagueName string) ([]entity.Team, error) {
	teams, err := srv.sports.LeagueTeams(ctx, leagueName)
	if err != nil {
		return nil, srv.upstream("league teams", err)
	}

	return teams, nil
}

func (srv *catalogService) TeamDetails(ctx context.Context, teamID string) (*entity.Team, error) {
	team, err := srv.sports.TeamDetails(ctx, teamID)
	if err != nil {
		return nil, srv.upstream("team details", err)
	}
	if team == nil {
		return nil, domainerrors.ErrNotFound.WrapMessage("unknown team")
	}

	return team, nil
}

func (srv *catalogService) TeamPlayers(ctx context.Context, teamID string) ([]entity.Player, error) {
	players, err := srv.sports.TeamPlayers(ctx, teamID)
	if err != nil {
		return nil, srv.upstream("team players", err)
	}

	return players, nil
}

func (srv *catalogService) SearchPlayers(ctx context.Context, name string) ([]entity.Player, error) {
	players, err := srv.sports.SearchPlayers(ctx, name)
	if err != nil {
		return nil, srv.upstream("search players", err)
	}

	return players, nil
}

func (srv *catalogService) PlayerDetails(ctx context.Context, playerID string) (*entity.Player, error) {
	player, err := srv.sports.PlayerDetails(ctx, playerID)
	if err != nil {
		return nil, srv.upstream("player details", err)
	}
	if player == nil {
		return nil, domainerrors.ErrNotFound.WrapMessage("unknown player")
	}

	return player, nil
}

func (srv *catalogService) SearchEvents(ctx context.Context, name string) ([]entity.Event, error) {
	events, err := srv.sports.SearchEvents(ctx, name)
	if err != nil {
		return nil, srv.upstream("search events", err)
	}

	return events, nil
}

func (srv *catalogService) EventDetails(ctx context.Context, eventID string) (*entity.Event, error) {
	event, err := srv.sports.EventDetails(ctx, eventID)
	if err != nil {
		return nil, srv.upstream("event details", err)
	}
	if event == nil {
		return nil, domainerrors.ErrNotFound.WrapMessage("unknown event")
	}

	return event, nil
}

func (srv *catalogService) LastLeagueEvents(ctx context.Context, leagueID string) ([]entity.Event, error) {
	events, err := srv.sports.LastLeagueEvents(ctx, leagueID)
	if err != nil {
		return nil, srv.upstream("last league events", err)
	}

	return events, nil
}

func (srv *catalogService) NextLeagueEvents(ctx context.Context, leagueID string) ([]entity.Event, error) {
	events, err := srv.sports.NextLeagueEvents(ctx, leagueID)
	if err != nil {
		return nil, srv.upstream("next league events", err)
	}

	return events, nil
}

func (srv *catalogService) EventsByDate(ctx context.Context, date, sport, league string) ([]entity.Event, error) {
	events, err := srv.sports.EventsByDate(ctx, date, sport, league)
	if err != nil {
		return nil, srv.upstream("events by date", err)
	}

	return events, nil
}

func (srv *catalogService) SeasonEvents(ctx context.Context, leagueID, season string) ([]entity.Event, error) {
	events, err := srv.sports.SeasonEvents(ctx, leagueID, season)
	if err != nil {
		return nil, srv.upstream("season events", err)
	}

	return events, nil
}

func (srv *catalogService) AllLeagues(ctx context.Context) ([]entity.League, error) {
	leagues, err := srv.sports.AllLeagues(ctx)
	if err != nil {
		return nil, srv.upstream("all leagues", err)
	}

	return leagues, nil
}

func (srv *catalogService) LeagueDetails(ctx context.Context, leagueID string) (*entity.League, error) {
	league, err := srv.sports.LeagueDetails(ctx, leagueID)
	if err != nil {
		return nil, srv.upstream("league details", err)
	}
	if league == nil {
		return nil, domainerrors.ErrNotFound.WrapMessage("unknown league")
	}

	return league, nil
}

func (srv *catalogService) LeagueTable(ctx context.Context, leagueID, season string) ([]entity.TableEntry, error) {
	table, err := srv.sports.LeagueTable(ctx, leagueID, season)
	if err != nil {
		return nil, srv.upstream("league table", err)
	}

	return table, nil
}
