package models

import "encoding/json"

type RosterResponse struct {
	Athletes []PositionGroup `json:"athletes"`
}

// PositionGroup is one of the roster's position buckets
// (offense, defense, specialTeam on the NFL roster endpoint).
type PositionGroup struct {
	Position string    `json:"position"`
	Items    []Athlete `json:"items"`
}

type Athlete struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"displayName"`
	Jersey      string   `json:"jersey"`
	Position    Position `json:"position"`
	Status      Status   `json:"status"`
}

type Position struct {
	Abbreviation string `json:"abbreviation"`
	DisplayName  string `json:"displayName"`
}

type Status struct {
	Name string `json:"name"`
}

type ScheduleResponse struct {
	Events []ScheduleEvent `json:"events"`
}

type ScheduleEvent struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Competitions []Competition `json:"competitions"`
}

type Competition struct {
	ID     string     `json:"id"`
	Date   string     `json:"date"`
	Status GameStatus `json:"status"`
}

type GameStatus struct {
	Type GameStatusType `json:"type"`
}

type GameStatusType struct {
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

type SummaryResponse struct {
	Boxscore Boxscore `json:"boxscore"`
}

// Boxscore keeps the per-team stat lines typed and leaves the player
// breakdowns opaque.
type Boxscore struct {
	Teams   []BoxscoreTeam  `json:"teams"`
	Players json.RawMessage `json:"players"`
}

type BoxscoreTeam struct {
	Team       TeamInfo       `json:"team"`
	Statistics []BoxscoreStat `json:"statistics"`
}

type TeamInfo struct {
	ID           string `json:"id"`
	Abbreviation string `json:"abbreviation"`
	DisplayName  string `json:"displayName"`
}

type BoxscoreStat struct {
	Name         string `json:"name"`
	DisplayValue string `json:"displayValue"`
	Label        string `json:"label"`
}

type TeamStatsResponse struct {
	Team *TeamStats `json:"team"`
}

type TeamStats struct {
	ID          string         `json:"id"`
	DisplayName string         `json:"displayName"`
	RecordNote  string         `json:"standingSummary"`
	Statistics  TeamStatistics `json:"statistics"`
}

type TeamStatistics struct {
	Splits StatSplits `json:"splits"`
}

type StatSplits struct {
	Categories []StatCategory `json:"categories"`
}

type StatCategory struct {
	Name        string      `json:"name"`
	DisplayName string      `json:"displayName"`
	Stats       []StatEntry `json:"stats"`
}

type StatEntry struct {
	Name         string  `json:"name"`
	DisplayName  string  `json:"displayName"`
	Value        float64 `json:"value"`
	DisplayValue string  `json:"displayValue"`
}

type PlayerStatsResponse struct {
	Categories []PlayerStatCategory `json:"categories"`
}

type PlayerStatCategory struct {
	Name        string   `json:"name"`
	DisplayName string   `json:"displayName"`
	Labels      []string `json:"labels"`
	Totals      []string `json:"totals"`
}
