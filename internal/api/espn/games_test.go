package espn

import (
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scheduleJSON has three completed games and one upcoming, out of date
// order, plus an event with no status at all.
const scheduleJSON = `{
	"events": [
		{
			"id": "401547401",
			"name": "Chiefs at Raiders",
			"competitions": [
				{"id": "401547401", "date": "2024-01-01T18:00Z", "status": {"type": {"name": "STATUS_FINAL", "completed": true}}}
			]
		},
		{
			"id": "401547404",
			"name": "Bengals at Chiefs",
			"competitions": [
				{"id": "401547404", "date": "2024-01-22T18:00Z", "status": {"type": {"name": "STATUS_SCHEDULED", "completed": false}}}
			]
		},
		{
			"id": "401547403",
			"name": "Chiefs at Chargers",
			"competitions": [
				{"id": "401547403", "date": "2024-01-15T18:00Z", "status": {"type": {"name": "STATUS_FINAL", "completed": true}}}
			]
		},
		{
			"id": "401547402",
			"name": "Dolphins at Chiefs",
			"competitions": [
				{"id": "401547402", "date": "2024-01-08T18:00Z", "status": {"type": {"name": "STATUS_FINAL", "completed": true}}}
			]
		},
		{
			"id": "401547499",
			"name": "Bye placeholder",
			"competitions": [
				{"id": "401547499", "date": "2024-01-29T18:00Z"}
			]
		}
	]
}`

// newGamesAPI serves the fixture schedule for team 12 and a minimal
// summary for every game, counting summary requests.
func newGamesAPI(t *testing.T, summaryCalls *atomic.Int64) *API {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/site/v2/sports/football/nfl/teams/12/schedule", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(scheduleJSON))
	})
	mux.HandleFunc("/site/v2/sports/football/nfl/summary", func(w http.ResponseWriter, r *http.Request) {
		summaryCalls.Add(1)
		gameID := r.URL.Query().Get("event")
		fmt.Fprintf(w, `{
			"boxscore": {
				"teams": [
					{
						"team": {"id": "12", "abbreviation": "KC", "displayName": "Kansas City Chiefs"},
						"statistics": [{"name": "totalYards", "displayValue": "%s", "label": "Total Yards"}]
					}
				]
			}
		}`, gameID)
	})

	return newTestAPI(t, mux)
}

func TestGetRecentGamesOrdering(t *testing.T) {
	var summaryCalls atomic.Int64
	api := newGamesAPI(t, &summaryCalls)

	recaps, err := api.GetRecentGames(12, 2)
	require.NoError(t, err)
	require.Len(t, recaps, 2)

	// Most recent final first; the 2024-01-22 game is not final and
	// must not appear.
	assert.Equal(t, "401547403", recaps[0].GameID)
	assert.Equal(t, "401547402", recaps[1].GameID)
	assert.True(t, recaps[0].Kickoff.After(recaps[1].Kickoff))
	assert.Equal(t, int64(2), summaryCalls.Load())

	// Boxscores belong to their games.
	require.Len(t, recaps[0].Boxscore.Teams, 1)
	assert.Equal(t, "401547403", recaps[0].Boxscore.Teams[0].Statistics[0].DisplayValue)
}

func TestGetRecentGamesZeroCount(t *testing.T) {
	var summaryCalls atomic.Int64
	api := newGamesAPI(t, &summaryCalls)

	recaps, err := api.GetRecentGames(12, 0)
	require.NoError(t, err)
	assert.Empty(t, recaps)
	assert.Equal(t, int64(0), summaryCalls.Load(), "no per-game requests for count 0")
}

func TestGetRecentGamesFewerThanRequested(t *testing.T) {
	var summaryCalls atomic.Int64
	api := newGamesAPI(t, &summaryCalls)

	recaps, err := api.GetRecentGames(12, 10)
	require.NoError(t, err)
	assert.Len(t, recaps, 3, "only three completed games in the schedule")
	assert.Equal(t, int64(3), summaryCalls.Load())
}

func TestGetRecentGamesSummaryError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/site/v2/sports/football/nfl/teams/12/schedule", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(scheduleJSON))
	})
	mux.HandleFunc("/site/v2/sports/football/nfl/summary", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	api := newTestAPI(t, mux)

	recaps, err := api.GetRecentGames(12, 2)
	require.Error(t, err)
	assert.Nil(t, recaps, "no partial results on a mid-loop failure")

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
}

func TestGetRecentGamesScheduleError(t *testing.T) {
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	_, err := api.GetRecentGames(12, 2)
	require.Error(t, err)
}

func TestGetRecentGamesBadDate(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/site/v2/sports/football/nfl/teams/12/schedule", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"events": [
				{
					"id": "1",
					"competitions": [
						{"id": "1", "date": "January 15, 2024", "status": {"type": {"name": "STATUS_FINAL"}}}
					]
				}
			]
		}`))
	})

	api := newTestAPI(t, mux)

	_, err := api.GetRecentGames(12, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing game date")
}
