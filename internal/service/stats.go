package service

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/omarshaarawi/statbot/internal/api/nfl"
	"github.com/omarshaarawi/statbot/internal/models"
	"github.com/omarshaarawi/statbot/internal/repository/memory"
)

type StatsService struct {
	api  *nfl.API
	repo *memory.Repository
}

func NewStatsService(api *nfl.API, repo *memory.Repository) *StatsService {
	return &StatsService{api: api, repo: repo}
}

func unknownTeamMessage(abbreviation string) string {
	return fmt.Sprintf("🔍 Unknown team '%s'. Use a standard abbreviation like KC, SF, or PHI.", abbreviation)
}

func (s *StatsService) GetTeamRoster(abbreviation string) (string, error) {
	teamID, ok := s.api.TeamID(abbreviation)
	if !ok {
		return unknownTeamMessage(abbreviation), nil
	}

	roster, err := s.api.GetTeamRoster(teamID)
	if err != nil {
		return "", fmt.Errorf("error fetching roster: %w", err)
	}

	byPosition := make(map[string][]models.Athlete)
	for _, player := range roster {
		pos := player.Position.Abbreviation
		if pos == "" {
			pos = "Other"
		}
		byPosition[pos] = append(byPosition[pos], player)
	}

	positions := make([]string, 0, len(byPosition))
	for pos := range byPosition {
		positions = append(positions, pos)
	}
	sort.Strings(positions)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📋 *%s Roster* (%d players)\n\n", strings.ToUpper(abbreviation), len(roster)))
	for _, pos := range positions {
		sb.WriteString(fmt.Sprintf("*%s:*\n", pos))
		for _, player := range byPosition[pos] {
			if player.Jersey != "" {
				sb.WriteString(fmt.Sprintf("  #%s %s\n", player.Jersey, player.DisplayName))
			} else {
				sb.WriteString(fmt.Sprintf("  %s\n", player.DisplayName))
			}
		}
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

func (s *StatsService) GetPlayerStats(abbreviation, playerName string) (string, error) {
	teamID, ok := s.api.TeamID(abbreviation)
	if !ok {
		return unknownTeamMessage(abbreviation), nil
	}

	roster, err := s.api.GetTeamRoster(teamID)
	if err != nil {
		return "", fmt.Errorf("error fetching roster: %w", err)
	}

	lookup := s.api.FindPlayer(playerName, roster)
	if !lookup.Found {
		if lookup.Suggestion != "" {
			return fmt.Sprintf("🔍 No player '%s' on %s. Did you mean *%s*?", playerName, strings.ToUpper(abbreviation), lookup.Suggestion), nil
		}
		return fmt.Sprintf("🔍 No player '%s' on %s.", playerName, strings.ToUpper(abbreviation)), nil
	}

	stats, err := s.api.GetPlayerStats(lookup.PlayerID)
	if err != nil {
		return "", fmt.Errorf("error fetching player stats: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🏈 *%s*\n", playerName))
	sb.WriteString("━━━━━━━━━━━━━━━━\n")

	if len(stats.Categories) == 0 {
		sb.WriteString("No statistics available.")
		return sb.String(), nil
	}

	for _, category := range stats.Categories {
		name := category.DisplayName
		if name == "" {
			name = category.Name
		}
		sb.WriteString(fmt.Sprintf("\n*%s*\n", name))
		for i, label := range category.Labels {
			if i >= len(category.Totals) {
				break
			}
			sb.WriteString(fmt.Sprintf("  %s: %s\n", label, category.Totals[i]))
		}
	}

	return sb.String(), nil
}

func (s *StatsService) GetTeamStats(abbreviation string) (string, error) {
	teamID, ok := s.api.TeamID(abbreviation)
	if !ok {
		return unknownTeamMessage(abbreviation), nil
	}

	stats, err := s.api.GetTeamStats(teamID)
	if err != nil {
		return "", fmt.Errorf("error fetching team stats: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📊 *%s*\n", stats.DisplayName))
	if stats.RecordNote != "" {
		sb.WriteString(fmt.Sprintf("%s\n", stats.RecordNote))
	}
	sb.WriteString("━━━━━━━━━━━━━━━━\n")

	for _, category := range stats.Statistics.Splits.Categories {
		name := category.DisplayName
		if name == "" {
			name = category.Name
		}
		sb.WriteString(fmt.Sprintf("\n*%s*\n", name))
		for _, stat := range category.Stats {
			sb.WriteString(fmt.Sprintf("  %s: %s\n", stat.DisplayName, stat.DisplayValue))
		}
	}

	return sb.String(), nil
}

func (s *StatsService) GetRecentGames(abbreviation string, count int) (string, error) {
	teamID, ok := s.api.TeamID(abbreviation)
	if !ok {
		return unknownTeamMessage(abbreviation), nil
	}

	recaps, err := s.api.GetRecentGames(teamID, count)
	if err != nil {
		return "", fmt.Errorf("error fetching recent games: %w", err)
	}

	if len(recaps) == 0 {
		return fmt.Sprintf("🏈 No completed games found for %s.", strings.ToUpper(abbreviation)), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🏈 *%s - Last %d Game(s)*\n\n", strings.ToUpper(abbreviation), len(recaps)))
	for _, recap := range recaps {
		sb.WriteString(formatRecap(recap))
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

// GetWeeklyRecap builds the scheduled recap for the favorite team. The
// second return is false when the latest final game was already
// announced, so the caller can skip sending.
func (s *StatsService) GetWeeklyRecap(abbreviation string, count int) (string, bool, error) {
	teamID, ok := s.api.TeamID(abbreviation)
	if !ok {
		return "", false, fmt.Errorf("unknown favorite team %q", abbreviation)
	}

	recaps, err := s.api.GetRecentGames(teamID, count)
	if err != nil {
		return "", false, fmt.Errorf("error fetching weekly recap: %w", err)
	}

	if len(recaps) == 0 {
		return "", false, nil
	}

	latest := recaps[0].GameID
	if s.repo.GetLastRecapped(abbreviation) == latest {
		slog.Info("Skipping recap, game already announced", "team", abbreviation, "game", latest)
		return "", false, nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🏈 *%s Weekly Recap*\n\n", strings.ToUpper(abbreviation)))
	for _, recap := range recaps {
		sb.WriteString(formatRecap(recap))
		sb.WriteString("\n")
	}

	s.repo.SaveLastRecapped(abbreviation, latest)
	return sb.String(), true, nil
}

func formatRecap(recap models.GameRecap) string {
	var sb strings.Builder

	if recap.Name != "" {
		sb.WriteString(fmt.Sprintf("*%s*\n", recap.Name))
	} else {
		sb.WriteString(fmt.Sprintf("*Game %s*\n", recap.GameID))
	}
	sb.WriteString(fmt.Sprintf("%s\n", recap.Kickoff.Format("Mon Jan 2, 2006")))

	for _, team := range recap.Boxscore.Teams {
		sb.WriteString(fmt.Sprintf("  *%s*\n", team.Team.DisplayName))
		for _, stat := range team.Statistics {
			label := stat.Label
			if label == "" {
				label = stat.Name
			}
			sb.WriteString(fmt.Sprintf("    %s: %s\n", label, stat.DisplayValue))
		}
	}

	return sb.String()
}
