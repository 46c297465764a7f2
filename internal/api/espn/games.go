package espn

import (
	"fmt"
	"sort"
	"time"

	"github.com/omarshaarawi/statbot/internal/models"
)

// statusFinal is the schedule feed's completion marker. Anything else
// (scheduled, in progress, missing status) is not a completed game.
const statusFinal = "STATUS_FINAL"

// kickoffLayout is the schedule feed's date format: minute precision,
// UTC designator.
const kickoffLayout = "2006-01-02T15:04Z"

// GetSchedule fetches a team's full season schedule.
func (a *API) GetSchedule(teamID int) (*models.ScheduleResponse, error) {
	var scheduleResponse models.ScheduleResponse
	endpoint := fmt.Sprintf("%s/teams/%d/schedule", sitePrefix, teamID)

	if err := a.client.Get(endpoint, nil, &scheduleResponse); err != nil {
		return nil, fmt.Errorf("fetching schedule: %w", err)
	}

	return &scheduleResponse, nil
}

// GetRecentGames returns boxscores for the team's most recently
// completed games, newest first. At most count recaps are returned;
// fewer if the schedule holds fewer completed games. Any fetch failure
// aborts the whole call.
func (a *API) GetRecentGames(teamID int, count int) ([]models.GameRecap, error) {
	schedule, err := a.GetSchedule(teamID)
	if err != nil {
		return nil, err
	}

	var completed []models.GameRecap
	for _, event := range schedule.Events {
		if len(event.Competitions) == 0 {
			continue
		}
		game := event.Competitions[0]
		if game.Status.Type.Name != statusFinal {
			continue
		}

		kickoff, err := time.Parse(kickoffLayout, game.Date)
		if err != nil {
			return nil, fmt.Errorf("parsing game date %q: %w", game.Date, err)
		}

		completed = append(completed, models.GameRecap{
			GameID:  game.ID,
			Name:    event.Name,
			Kickoff: kickoff,
		})
	}

	sort.SliceStable(completed, func(i, j int) bool {
		return completed[i].Kickoff.After(completed[j].Kickoff)
	})

	if count < 0 {
		count = 0
	}
	if count < len(completed) {
		completed = completed[:count]
	}

	for i := range completed {
		var summary models.SummaryResponse
		params := map[string]string{"event": completed[i].GameID}

		if err := a.client.Get(sitePrefix+"/summary", params, &summary); err != nil {
			return nil, fmt.Errorf("fetching summary for game %s: %w", completed[i].GameID, err)
		}

		completed[i].Boxscore = summary.Boxscore
	}

	return completed, nil
}
