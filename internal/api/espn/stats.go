package espn

import (
	"fmt"

	"github.com/omarshaarawi/statbot/internal/models"
)

// GetPlayerStats fetches season statistics for a player by ESPN
// athlete ID.
func (a *API) GetPlayerStats(playerID string) (*models.PlayerStatsResponse, error) {
	var statsResponse models.PlayerStatsResponse
	endpoint := fmt.Sprintf("%s/athletes/%s/stats", commonPrefix, playerID)

	if err := a.client.Get(endpoint, nil, &statsResponse); err != nil {
		return nil, fmt.Errorf("fetching player stats: %w", err)
	}

	return &statsResponse, nil
}

// GetTeamStats fetches a team's season statistics. A response without
// a team record is reported as an error rather than an empty result.
func (a *API) GetTeamStats(teamID int) (*models.TeamStats, error) {
	var statsResponse models.TeamStatsResponse
	endpoint := fmt.Sprintf("%s/teams/%d/statistics", sitePrefix, teamID)

	if err := a.client.Get(endpoint, nil, &statsResponse); err != nil {
		return nil, fmt.Errorf("fetching team stats: %w", err)
	}

	if statsResponse.Team == nil {
		return nil, fmt.Errorf("team stats not found for team %d", teamID)
	}

	return statsResponse.Team, nil
}
