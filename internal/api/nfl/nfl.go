package nfl

import (
	"github.com/omarshaarawi/statbot/internal/api/espn"
	"github.com/omarshaarawi/statbot/internal/models"
)

type API struct {
	espnAPI *espn.API
}

func NewAPI(espnAPI *espn.API) *API {
	return &API{espnAPI: espnAPI}
}

func (a *API) TeamID(abbreviation string) (int, bool) {
	return espn.TeamID(abbreviation)
}

func (a *API) GetTeamRoster(teamID int) ([]models.Athlete, error) {
	return a.espnAPI.GetTeamRoster(teamID)
}

func (a *API) FindPlayer(playerName string, roster []models.Athlete) models.PlayerLookup {
	if id, ok := espn.FindPlayerID(playerName, roster); ok {
		return models.PlayerLookup{PlayerID: id, Name: playerName, Found: true}
	}

	lookup := models.PlayerLookup{Name: playerName}
	if suggestion, ok := espn.SuggestPlayer(playerName, roster); ok {
		lookup.Suggestion = suggestion.DisplayName
	}
	return lookup
}

func (a *API) GetPlayerStats(playerID string) (*models.PlayerStatsResponse, error) {
	return a.espnAPI.GetPlayerStats(playerID)
}

func (a *API) GetTeamStats(teamID int) (*models.TeamStats, error) {
	return a.espnAPI.GetTeamStats(teamID)
}

func (a *API) GetRecentGames(teamID int, count int) ([]models.GameRecap, error) {
	return a.espnAPI.GetRecentGames(teamID, count)
}
