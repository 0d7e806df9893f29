package entity

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// FavoriteKind discriminates which identity field of the persisted wire
// shape a Favorite carries. Exactly one of idTeam/idPlayer/idEvent is ever
// populated per record.
type FavoriteKind string

const (
	FavoriteTeam   FavoriteKind = "team"
	FavoritePlayer FavoriteKind = "player"
	FavoriteEvent  FavoriteKind = "event"
)

// ErrUnknownFavoriteKind is returned when a persisted record carries none
// of the recognized identity fields.
var ErrUnknownFavoriteKind = errors.New("favorite record has no recognized identity field")

// Favorite is a favorited team, player or event. The three shapes live in
// one collection, so the kind plus the single identity value is the whole
// identity for dedup and removal; full structural equality is never used.
//
// The JSON form matches the blobs the mobile clients already persisted
// (sparse objects keyed by idTeam/idPlayer/idEvent), so existing
// favorites-collection values rehydrate unchanged.
type Favorite struct {
	Kind FavoriteKind
	ID   string // Value of the active identity field.

	Name string // strTeam, strPlayer or strEvent, depending on Kind.

	// Team fields.
	Badge      string
	League     string
	FormedYear string

	// Player fields.
	Thumb    string
	Team     string // The club the player belongs to.
	Position string

	// Event fields.
	HomeTeam string
	AwayTeam string
	Date     string
}

// Identity reports the kind and identity value used for dedup and removal.
func (f *Favorite) Identity() (FavoriteKind, string) {
	return f.Kind, f.ID
}

// Is reports whether the favorite matches the given identity.
func (f *Favorite) Is(kind FavoriteKind, id string) bool {
	return f.Kind == kind && f.ID == id
}

// wireFavorite is the persisted representation: an untagged object whose
// active identity field decides the shape.
type wireFavorite struct {
	IDTeam       string `json:"idTeam,omitempty"`
	IDPlayer     string `json:"idPlayer,omitempty"`
	IDEvent      string `json:"idEvent,omitempty"`
	StrTeam      string `json:"strTeam,omitempty"`
	StrPlayer    string `json:"strPlayer,omitempty"`
	StrEvent     string `json:"strEvent,omitempty"`
	StrTeamBadge string `json:"strTeamBadge,omitempty"`
	StrThumb     string `json:"strThumb,omitempty"`
	StrLeague    string `json:"strLeague,omitempty"`
	StrPosition  string `json:"strPosition,omitempty"`
	StrHomeTeam  string `json:"strHomeTeam,omitempty"`
	StrAwayTeam  string `json:"strAwayTeam,omitempty"`
	DateEvent    string `json:"dateEvent,omitempty"`
	IntFormed    string `json:"intFormedYear,omitempty"`
}

// MarshalJSON writes the wire shape for the favorite's kind.
func (f Favorite) MarshalJSON() ([]byte, error) {
	w := wireFavorite{}
	switch f.Kind {
	case FavoriteTeam:
		w.IDTeam = f.ID
		w.StrTeam = f.Name
		w.StrTeamBadge = f.Badge
		w.StrLeague = f.League
		w.IntFormed = f.FormedYear
	case FavoritePlayer:
		w.IDPlayer = f.ID
		w.StrPlayer = f.Name
		w.StrThumb = f.Thumb
		w.StrTeam = f.Team
		w.StrPosition = f.Position
	case FavoriteEvent:
		w.IDEvent = f.ID
		w.StrEvent = f.Name
		w.StrHomeTeam = f.HomeTeam
		w.StrAwayTeam = f.AwayTeam
		w.DateEvent = f.Date
		w.StrThumb = f.Thumb
	default:
		return nil, errors.Wrapf(ErrUnknownFavoriteKind, "kind %q", f.Kind)
	}

	return json.Marshal(w)
}

// UnmarshalJSON resolves the record's identity by the first populated
// identity field, in idTeam, idPlayer, idEvent order. Records carrying
// none of the three are rejected.
func (f *Favorite) UnmarshalJSON(data []byte) error {
	var w wireFavorite
	if err := json.Unmarshal(data, &w); err != nil {
		return errors.Wrap(err, "failed to decode favorite record")
	}

	switch {
	case w.IDTeam != "":
		*f = Favorite{
			Kind:       FavoriteTeam,
			ID:         w.IDTeam,
			Name:       w.StrTeam,
			Badge:      w.StrTeamBadge,
			League:     w.StrLeague,
			FormedYear: w.IntFormed,
		}
	case w.IDPlayer != "":
		*f = Favorite{
			Kind:     FavoritePlayer,
			ID:       w.IDPlayer,
			Name:     w.StrPlayer,
			Thumb:    w.StrThumb,
			Team:     w.StrTeam,
			Position: w.StrPosition,
		}
	case w.IDEvent != "":
		*f = Favorite{
			Kind:     FavoriteEvent,
			ID:       w.IDEvent,
			Name:     w.StrEvent,
			HomeTeam: w.StrHomeTeam,
			AwayTeam: w.StrAwayTeam,
			Date:     w.DateEvent,
			Thumb:    w.StrThumb,
		}
	default:
		return ErrUnknownFavoriteKind
	}

	return nil
}
