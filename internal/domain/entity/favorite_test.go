package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavorite_MarshalTeamWireShape(t *testing.T) {
	favorite := Favorite{
		Kind:       FavoriteTeam,
		ID:         "133604",
		Name:       "Man Utd",
		Badge:      "https://example.com/badge.png",
		League:     "English Premier League",
		FormedYear: "1878",
	}

	raw, err := json.Marshal(favorite)
	require.NoError(t, err)

	var wire map[string]string
	require.NoError(t, json.Unmarshal(raw, &wire))

	assert.Equal(t, "133604", wire["idTeam"])
	assert.Equal(t, "Man Utd", wire["strTeam"])
	assert.Equal(t, "https://example.com/badge.png", wire["strTeamBadge"])
	assert.Equal(t, "English Premier League", wire["strLeague"])
	assert.Equal(t, "1878", wire["intFormedYear"])
	assert.NotContains(t, wire, "idPlayer")
	assert.NotContains(t, wire, "idEvent")
}

func TestFavorite_RoundTripAllKinds(t *testing.T) {
	tests := []struct {
		name     string
		favorite Favorite
	}{
		{
			name: "team",
			favorite: Favorite{
				Kind: FavoriteTeam, ID: "133604", Name: "Man Utd",
				Badge: "badge.png", League: "EPL", FormedYear: "1878",
			},
		},
		{
			name: "player",
			favorite: Favorite{
				Kind: FavoritePlayer, ID: "34145937", Name: "Harry Kane",
				Thumb: "thumb.jpg", Team: "Bayern Munich", Position: "Forward",
			},
		},
		{
			name: "event",
			favorite: Favorite{
				Kind: FavoriteEvent, ID: "602129", Name: "Liverpool vs Arsenal",
				HomeTeam: "Liverpool", AwayTeam: "Arsenal", Date: "2026-09-12", Thumb: "thumb.jpg",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := json.Marshal(tt.favorite)
			require.NoError(t, err)

			var decoded Favorite
			require.NoError(t, json.Unmarshal(raw, &decoded))
			assert.Equal(t, tt.favorite, decoded)
		})
	}
}

func TestFavorite_UnmarshalResolvesIdentityByFirstPopulatedField(t *testing.T) {
	// A team record that also carries a strTeam display field must resolve
	// as a team, and a player record carrying a club strTeam must still
	// resolve as a player.
	var favorite Favorite
	require.NoError(t, json.Unmarshal([]byte(`{"idPlayer":"34145937","strPlayer":"Harry Kane","strTeam":"Bayern Munich"}`), &favorite))

	kind, id := favorite.Identity()
	assert.Equal(t, FavoritePlayer, kind)
	assert.Equal(t, "34145937", id)
	assert.Equal(t, "Bayern Munich", favorite.Team)
}

func TestFavorite_UnmarshalRejectsRecordWithoutIdentity(t *testing.T) {
	var favorite Favorite
	err := json.Unmarshal([]byte(`{"strTeam":"Orphan"}`), &favorite)
	assert.ErrorIs(t, err, ErrUnknownFavoriteKind)
}

func TestFavorite_MarshalRejectsUnknownKind(t *testing.T) {
	_, err := json.Marshal(Favorite{Kind: "stadium", ID: "1"})
	assert.Error(t, err)
}

func TestFavorite_Is(t *testing.T) {
	favorite := Favorite{Kind: FavoriteTeam, ID: "133604"}

	assert.True(t, favorite.Is(FavoriteTeam, "133604"))
	assert.False(t, favorite.Is(FavoritePlayer, "133604"))
	assert.False(t, favorite.Is(FavoriteTeam, "133605"))
}
