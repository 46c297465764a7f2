package espn

import (
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/omarshaarawi/statbot/internal/models"
)

type API struct {
	client *Client
}

func NewAPI(client *Client) *API {
	return &API{client: client}
}

// GetTeamRoster fetches a team's roster and flattens the position
// groups (offense, defense, special teams) into a single player list.
func (a *API) GetTeamRoster(teamID int) ([]models.Athlete, error) {
	var rosterResponse models.RosterResponse
	endpoint := fmt.Sprintf("%s/teams/%d/roster", sitePrefix, teamID)

	if err := a.client.Get(endpoint, nil, &rosterResponse); err != nil {
		return nil, fmt.Errorf("fetching roster: %w", err)
	}

	var players []models.Athlete
	for _, group := range rosterResponse.Athletes {
		players = append(players, group.Items...)
	}

	return players, nil
}

// FindPlayerID looks a player up in a fetched roster by display name.
// Matching is case-insensitive but otherwise exact.
func FindPlayerID(playerName string, roster []models.Athlete) (string, bool) {
	for _, player := range roster {
		if strings.EqualFold(player.DisplayName, playerName) {
			return player.ID, true
		}
	}
	return "", false
}

// SuggestPlayer returns the closest roster name to a missed lookup,
// for a "did you mean" hint. No suggestion below the similarity
// threshold.
func SuggestPlayer(playerName string, roster []models.Athlete) (models.Athlete, bool) {
	var bestMatch *models.Athlete
	bestScore := -1.0
	threshold := 0.7

	for i, player := range roster {
		fullName := strings.ToLower(player.DisplayName)
		distance := fuzzy.LevenshteinDistance(strings.ToLower(playerName), fullName)
		maxLen := float64(max(len(playerName), len(fullName)))
		similarity := 1 - float64(distance)/maxLen

		if similarity > threshold && similarity > bestScore {
			bestScore = similarity
			bestMatch = &roster[i]
		}
	}

	if bestMatch == nil {
		return models.Athlete{}, false
	}
	return *bestMatch, true
}
