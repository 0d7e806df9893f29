package entity

// The catalog entities mirror TheSportsDB's v1 JSON payloads. Field names
// keep the upstream tags so responses decode directly; numeric-looking
// values (scores, years, capacities) arrive as strings from the API and
// are kept as strings.

// Team is a club or franchise as returned by the catalog API.
type Team struct {
	ID              string `json:"idTeam"`
	Name            string `json:"strTeam"`
	Badge           string `json:"strTeamBadge"`
	Banner          string `json:"strTeamBanner,omitempty"`
	Logo            string `json:"strTeamLogo,omitempty"`
	League          string `json:"strLeague"`
	Sport           string `json:"strSport"`
	Description     string `json:"strDescriptionEN,omitempty"`
	Stadium         string `json:"strStadium,omitempty"`
	StadiumLocation string `json:"strStadiumLocation,omitempty"`
	StadiumCapacity string `json:"intStadiumCapacity,omitempty"`
	Website         string `json:"strWebsite,omitempty"`
	FormedYear      string `json:"intFormedYear,omitempty"`
	Country         string `json:"strCountry,omitempty"`
}

// Player is a squad member as returned by the catalog API.
type Player struct {
	ID          string `json:"idPlayer"`
	Name        string `json:"strPlayer"`
	Team        string `json:"strTeam"`
	Sport       string `json:"strSport"`
	Position    string `json:"strPosition,omitempty"`
	Thumb       string `json:"strThumb,omitempty"`
	Cutout      string `json:"strCutout,omitempty"`
	Description string `json:"strDescriptionEN,omitempty"`
	BornDate    string `json:"dateBorn,omitempty"`
	Nationality string `json:"strNationality,omitempty"`
	Height      string `json:"strHeight,omitempty"`
	Weight      string `json:"strWeight,omitempty"`
	Number      string `json:"strNumber,omitempty"`
}

// Event is a fixture or match as returned by the catalog API.
type Event struct {
	ID            string `json:"idEvent"`
	Name          string `json:"strEvent"`
	Sport         string `json:"strSport"`
	LeagueID      string `json:"idLeague"`
	League        string `json:"strLeague"`
	Season        string `json:"strSeason,omitempty"`
	HomeTeam      string `json:"strHomeTeam"`
	AwayTeam      string `json:"strAwayTeam"`
	HomeScore     string `json:"intHomeScore,omitempty"`
	AwayScore     string `json:"intAwayScore,omitempty"`
	Round         string `json:"intRound,omitempty"`
	HomeTeamBadge string `json:"strHomeTeamBadge,omitempty"`
	AwayTeamBadge string `json:"strAwayTeamBadge,omitempty"`
	Thumb         string `json:"strThumb,omitempty"`
	Date          string `json:"dateEvent"`
	Time          string `json:"strTime,omitempty"`
	Timestamp     string `json:"strTimestamp,omitempty"`
	Status        string `json:"strStatus,omitempty"`
	Postponed     string `json:"strPostponed,omitempty"`
	Video         string `json:"strVideo,omitempty"`
}

// League is a competition as returned by the catalog API.
type League struct {
	ID            string `json:"idLeague"`
	Name          string `json:"strLeague"`
	Sport         string `json:"strSport"`
	Alternate     string `json:"strLeagueAlternate,omitempty"`
	CurrentSeason string `json:"strCurrentSeason,omitempty"`
	FormedYear    string `json:"intFormedYear,omitempty"`
	Country       string `json:"strCountry,omitempty"`
	Website       string `json:"strWebsite,omitempty"`
	Description   string `json:"strDescriptionEN,omitempty"`
	Badge         string `json:"strBadge,omitempty"`
	Logo          string `json:"strLogo,omitempty"`
	Trophy        string `json:"strTrophy,omitempty"`
}

// TableEntry is one row of a league standings table.
type TableEntry struct {
	TeamID   string `json:"teamid"`
	Name     string `json:"name"`
	Played   string `json:"played"`
	Win      string `json:"win"`
	Draw     string `json:"draw"`
	Loss     string `json:"loss"`
	GoalsFor string `json:"goalsfor"`
	Total    string `json:"total"`
}

// TeamFavorite builds the favorite projection of a catalog team.
func TeamFavorite(t *Team) Favorite {
	return Favorite{
		Kind:       FavoriteTeam,
		ID:         t.ID,
		Name:       t.Name,
		Badge:      t.Badge,
		League:     t.League,
		FormedYear: t.FormedYear,
	}
}

// PlayerFavorite builds the favorite projection of a catalog player.
func PlayerFavorite(p *Player) Favorite {
	return Favorite{
		Kind:     FavoritePlayer,
		ID:       p.ID,
		Name:     p.Name,
		Thumb:    p.Thumb,
		Team:     p.Team,
		Position: p.Position,
	}
}

// EventFavorite builds the favorite projection of a catalog event.
func EventFavorite(e *Event) Favorite {
	return Favorite{
		Kind:     FavoriteEvent,
		ID:       e.ID,
		Name:     e.Name,
		HomeTeam: e.HomeTeam,
		AwayTeam: e.AwayTeam,
		Date:     e.Date,
		Thumb:    e.Thumb,
	}
}
