package models

import "time"

// GameRecap is one completed game selected by the recent-games lookup,
// most recent first when returned in a slice.
type GameRecap struct {
	GameID   string
	Name     string
	Kickoff  time.Time
	Boxscore Boxscore
}

type PlayerLookup struct {
	PlayerID   string
	Name       string
	Found      bool
	Suggestion string
}
