package models

import "time"

// PlayerSeasonRecord is a player's aggregate line for one season.
// Records are immutable once ingested; re-ingestion supersedes them.
type PlayerSeasonRecord struct {
	PlayerID      int64   `json:"player_id"`
	PlayerName    string  `json:"player_name"`
	Season        string  `json:"season"` // e.g. "20252026"
	TeamAbbrev    string  `json:"team_abbrev"`
	GamesPlayed   int     `json:"games_played"`
	Goals         int     `json:"goals"`
	Assists       int     `json:"assists"`
	Points        int     `json:"points"`
	Shots         int     `json:"shots"`
	ExpectedGoals float64 `json:"xg"`
	CorsiForPct   float64 `json:"corsi_for_pct"`
}

// PointsPerGame returns the season scoring rate, 0 for an empty season.
func (r *PlayerSeasonRecord) PointsPerGame() float64 {
	if r.GamesPlayed == 0 {
		return 0
	}
	return float64(r.Points) / float64(r.GamesPlayed)
}

// GameLogEntry is one player's line from one game. Log windows are ordered
// by date descending with ties broken by game ID.
type GameLogEntry struct {
	GameID   int64     `json:"game_id"`
	GameDate time.Time `json:"game_date"`
	Opponent string    `json:"opponent"`
	Home     bool      `json:"home"`
	Goals    int       `json:"goals"`
	Assists  int       `json:"assists"`
	Points   int       `json:"points"`
	Shots    int       `json:"shots"`
	TOI      float64   `json:"toi"` // decimal minutes
}

// HeadToHeadRecord aggregates a player's career meetings with one opponent.
type HeadToHeadRecord struct {
	Opponent string `json:"opponent"`
	Games    int    `json:"games"`
	Points   int    `json:"points"`
}

// PointsPerGame returns the scoring rate across the recorded meetings.
func (r *HeadToHeadRecord) PointsPerGame() float64 {
	if r.Games == 0 {
		return 0
	}
	return float64(r.Points) / float64(r.Games)
}

// VenueSplit aggregates a player's games on one side of the home/away split.
type VenueSplit struct {
	Home   bool `json:"home"`
	Games  int  `json:"games"`
	Points int  `json:"points"`
}

func (v *VenueSplit) PointsPerGame() float64 {
	if v.Games == 0 {
		return 0
	}
	return float64(v.Points) / float64(v.Games)
}

// TeamContext carries a team's season-to-date pace numbers.
type TeamContext struct {
	TeamAbbrev          string  `json:"team_abbrev"`
	Season              string  `json:"season"`
	GamesPlayed         int     `json:"games_played"`
	GoalsForPerGame     float64 `json:"goals_for_per_game"`
	GoalsAgainstPerGame float64 `json:"goals_against_per_game"`
	TotalGoalsPerGame   float64 `json:"total_goals_per_game"`
}

// GoalieContext describes the expected starter for a team on a given date.
// Starter stays nil until a start is announced.
type GoalieContext struct {
	TeamAbbrev    string         `json:"team_abbrev"`
	Starter       *GoalieStarter `json:"starter,omitempty"`
	LeagueSavePct float64        `json:"league_save_pct"`
}

// GoalieStarter is the announced starting goalie and their season numbers.
type GoalieStarter struct {
	PlayerID     int64   `json:"player_id"`
	Name         string  `json:"name"`
	SavePct      float64 `json:"save_pct"`
	GamesStarted int     `json:"games_started"`
}

// ScheduledGame is one game on a slate.
type ScheduledGame struct {
	GameID    int64     `json:"game_id"` // NHL game ID
	Season    string    `json:"season"`
	GameDate  time.Time `json:"game_date"`
	HomeTeam  string    `json:"home_team"`
	AwayTeam  string    `json:"away_team"`
	Venue     string    `json:"venue,omitempty"`
	StartTime time.Time `json:"start_time_utc"`
	GameState string    `json:"game_state"` // FUT, LIVE, FINAL, OFF
}

// RosterEntry is a skater eligible for prediction on a team's roster.
type RosterEntry struct {
	PlayerID   int64  `json:"player_id"`
	Name       string `json:"name"`
	Position   string `json:"position"`
	TeamAbbrev string `json:"team_abbrev"`
}
