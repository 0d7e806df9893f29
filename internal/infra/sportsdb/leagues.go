package sportsdb

// Well-known league IDs for quick reference.
const (
	LeaguePremierLeague       = "4328"
	LeagueLaLiga              = "4335"
	LeagueBundesliga          = "4331"
	LeagueSerieA              = "4332"
	LeagueLigue1              = "4334"
	LeagueNBA                 = "4387"
	LeagueNFL                 = "4391"
	LeagueMLB                 = "4424"
	LeagueNHL                 = "4380"
	LeagueUEFAChampionsLeague = "4480"
)
