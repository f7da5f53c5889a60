package models

import "time"

// ConfidenceTier is a coarse reliability label for a prediction. It is a
// function of sample sizes and consistency only, never of the composite
// score itself.
type ConfidenceTier string

const (
	ConfidenceLow    ConfidenceTier = "low"
	ConfidenceMedium ConfidenceTier = "medium"
	ConfidenceHigh   ConfidenceTier = "high"
)

// Rank orders tiers for sorting: high > medium > low.
func (t ConfidenceTier) Rank() int {
	switch t {
	case ConfidenceHigh:
		return 2
	case ConfidenceMedium:
		return 1
	default:
		return 0
	}
}

// Factor names, in the order they appear on every PredictionResult.
const (
	FactorRecentForm     = "recent_form"
	FactorSeasonBaseline = "season_baseline"
	FactorHeadToHead     = "h2h_history"
	FactorHomeAway       = "home_away"
	FactorGoalieMatchup  = "goalie_matchup"
	FactorTeamPace       = "team_pace"
)

// ScoringFactor is one normalized sub-score of the ensemble. Fallback marks
// that a less-specific statistic was substituted for missing data.
type ScoringFactor struct {
	Name       string  `json:"name"`
	Score      float64 `json:"score"` // always in [0,1]
	Weight     float64 `json:"weight"`
	SampleSize int     `json:"sample_size"`
	Fallback   bool    `json:"fallback"`
}

// PredictionResult is one player's scoring forecast for one game. Composite
// is always recomputable as the weighted sum of Factors.
type PredictionResult struct {
	PlayerID   int64           `json:"player_id"`
	PlayerName string          `json:"player_name"`
	Team       string          `json:"team"`
	Opponent   string          `json:"opponent"`
	GameID     int64           `json:"game_id"`
	IsHome     bool            `json:"is_home"`
	Composite  float64         `json:"composite"`
	Confidence ConfidenceTier  `json:"confidence"`
	Factors    []ScoringFactor `json:"factors"`
	Rank       int             `json:"rank"`
}

// SlatePrediction is the full ranked output for one day's games.
type SlatePrediction struct {
	Date    string             `json:"date"`
	Season  string             `json:"season"`
	Games   []ScheduledGame    `json:"games"`
	Results []PredictionResult `json:"results"`
}

// Pace ratings bucket the expected combined scoring of a matchup.
const (
	PaceHigh    = "high"
	PaceAverage = "average"
	PaceLow     = "low"
)

// MatchupPrediction is the ranked output scoped to a single matchup,
// with game-level pace context.
type MatchupPrediction struct {
	Date               string             `json:"date"`
	Season             string             `json:"season"`
	HomeTeam           string             `json:"home_team"`
	AwayTeam           string             `json:"away_team"`
	GameID             int64              `json:"game_id,omitempty"`
	ExpectedTotalGoals float64            `json:"expected_total_goals"`
	PaceRating         string             `json:"pace_rating"`
	Results            []PredictionResult `json:"results"`
}

// GameDay wraps the schedule response for a date.
type GameDay struct {
	Date  string          `json:"date"`
	Games []ScheduledGame `json:"games"`
	AsOf  time.Time       `json:"as_of"`
}
