// Package sportsdb wraps TheSportsDB v1 JSON API. The upstream is treated
// as an opaque JSON service: endpoints return an envelope object whose
// array field (and sometimes its name) varies per endpoint, with null
// standing in for "no results".
package sportsdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"matchday/config"
	"matchday/internal/domain/entity"
	"matchday/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

// Client implements service.SportsData against TheSportsDB. Requests are
// rate limited; the free API tier throttles aggressively.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewClient is the constructor for Client.
func NewClient(cfg *config.Config, logger *slog.Logger) service.SportsData {
	sd := cfg.SportsData

	return &Client{
		baseURL:    fmt.Sprintf("%s/%s", sd.BaseURL, sd.APIKey),
		httpClient: &http.Client{Timeout: sd.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(sd.RequestsPerSecond), 1),
		logger:     logger,
	}
}

// envelope is the union of the response shapes the v1 API returns. Only
// one field is populated per endpoint; searchplayers/lookup_all_players
// use the singular "player" key while lookupplayer uses "players", and
// searchevents uses "event" while the rest use "events".
type envelope struct {
	Teams   []entity.Team       `json:"teams"`
	Player  []entity.Player     `json:"player"`
	Players []entity.Player     `json:"players"`
	Events  []entity.Event      `json:"events"`
	Event   []entity.Event      `json:"event"`
	Leagues []entity.League     `json:"leagues"`
	Table   []entity.TableEntry `json:"table"`
}

func (c *Client) get(ctx context.Context, endpoint string, query url.Values) (*envelope, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(err, "rate limiter interrupted")
	}

	u := c.baseURL + "/" + endpoint
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build request for %s", endpoint)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "request to %s failed", endpoint)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		c.logger.Warn("Sports data request rejected",
			slog.String("endpoint", endpoint),
			slog.Int("status", resp.StatusCode))

		return nil, errors.Errorf("%s returned status %d", endpoint, resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s response", endpoint)
	}

	return &env, nil
}

// SearchTeams searches teams by name.
func (c *Client) SearchTeams(ctx context.Context, name string) ([]entity.Team, error) {
	env, err := c.get(ctx, "searchteams.php", url.Values{"t": {name}})
	if err != nil {
		return nil, err
	}

	return env.Teams, nil
}

// LeagueTeams lists all teams in a league by league name.
func (c *Client) LeagueTeams(ctx context.Context, leagueName string) ([]entity.Team, error) {
	env, err := c.get(ctx, "search_all_teams.php", url.Values{"l": {leagueName}})
	if err != nil {
		return nil, err
	}

	return env.Teams, nil
}

// TeamDetails looks up a team by ID. Returns nil when the ID is unknown.
func (c *Client) TeamDetails(ctx context.Context, teamID string) (*entity.Team, error) {
	env, err := c.get(ctx, "lookupteam.php", url.Values{"id": {teamID}})
	if err != nil {
		return nil, err
	}
	if len(env.Teams) == 0 {
		return nil, nil
	}

	return &env.Teams[0], nil
}

// TeamPlayers lists a team's squad.
func (c *Client) TeamPlayers(ctx context.Context, teamID string) ([]entity.Player, error) {
	env, err := c.get(ctx, "lookup_all_players.php", url.Values{"id": {teamID}})
	if err != nil {
		return nil, err
	}

	return env.Player, nil
}

// SearchPlayers searches players by name.
func (c *Client) SearchPlayers(ctx context.Context, name string) ([]entity.Player, error) {
	env, err := c.get(ctx, "searchplayers.php", url.Values{"p": {name}})
	if err != nil {
		return nil, err
	}

	return env.Player, nil
}

// PlayerDetails looks up a player by ID. Returns nil when the ID is unknown.
func (c *Client) PlayerDetails(ctx context.Context, playerID string) (*entity.Player, error) {
	env, err := c.get(ctx, "lookupplayer.php", url.Values{"id": {playerID}})
	if err != nil {
		return nil, err
	}
	if len(env.Players) == 0 {
		return nil, nil
	}

	return &env.Players[0], nil
}

// SearchEvents searches events by name.
func (c *Client) SearchEvents(ctx context.Context, name string) ([]entity.Event, error) {
	env, err := c.get(ctx, "searchevents.php", url.Values{"e": {name}})
	if err != nil {
		return nil, err
	}

	return env.Event, nil
}

// EventDetails looks up an event by ID. Returns nil when the ID is unknown.
func (c *Client) EventDetails(ctx context.Context, eventID string) (*entity.Event, error) {
	env, err := c.get(ctx, "lookupevent.php", url.Values{"id": {eventID}})
	if err != nil {
		return nil, err
	}
	if len(env.Events) == 0 {
		return nil, nil
	}

	return &env.Events[0], nil
}

// LastLeagueEvents lists the most recent completed events in a league.
func (c *Client) LastLeagueEvents(ctx context.Context, leagueID string) ([]entity.Event, error) {
	env, err := c.get(ctx, "eventspastleague.php", url.Values{"id": {leagueID}})
	if err != nil {
		return nil, err
	}

	return env.Events, nil
}

// NextLeagueEvents lists the upcoming events in a league.
func (c *Client) NextLeagueEvents(ctx context.Context, leagueID string) ([]entity.Event, error) {
	env, err := c.get(ctx, "eventsnextleague.php", url.Values{"id": {leagueID}})
	if err != nil {
		return nil, err
	}

	return env.Events, nil
}

// EventsByDate lists events on a given date, optionally filtered by sport
// and league name.
func (c *Client) EventsByDate(ctx context.Context, date, sport, league string) ([]entity.Event, error) {
	query := url.Values{"d": {date}}
	if sport != "" {
		query.Set("s", sport)
	}
	if league != "" {
		query.Set("l", league)
	}

	env, err := c.get(ctx, "eventsday.php", query)
	if err != nil {
		return nil, err
	}

	return env.Events, nil
}

// SeasonEvents lists all events of a league season.
func (c *Client) SeasonEvents(ctx context.Context, leagueID, season string) ([]entity.Event, error) {
	env, err := c.get(ctx, "eventsseason.php", url.Values{"id": {leagueID}, "s": {season}})
	if err != nil {
		return nil, err
	}

	return env.Events, nil
}

// AllLeagues lists every league known to the upstream.
func (c *Client) AllLeagues(ctx context.Context) ([]entity.League, error) {
	env, err := c.get(ctx, "all_leagues.php", nil)
	if err != nil {
		return nil, err
	}

	return env.Leagues, nil
}

// LeagueDetails looks up a league by ID. Returns nil when the ID is unknown.
func (c *Client) LeagueDetails(ctx context.Context, leagueID string) (*entity.League, error) {
	env, err := c.get(ctx, "lookupleague.php", url.Values{"id": {leagueID}})
	if err != nil {
		return nil, err
	}
	if len(env.Leagues) == 0 {
		return nil, nil
	}

	return &env.Leagues[0], nil
}

// LeagueTable retrieves the standings of a league season.
func (c *Client) LeagueTable(ctx context.Context, leagueID, season string) ([]entity.TableEntry, error) {
	env, err := c.get(ctx, "lookuptable.php", url.Values{"l": {leagueID}, "s": {season}})
	if err != nil {
		return nil, err
	}

	return env.Table, nil
}
