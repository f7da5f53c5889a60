package logic

import (
	"github.com/powerplai/prediction-api/internal/config"
	"github.com/powerplai/prediction-api/internal/models"
)

// factorInputs carries every repository read the six calculators consume for
// one player in one game. Optional context (team, opp, goalie) may be nil;
// the corresponding factor degrades to its documented fallback.
type factorInputs struct {
	season *models.PlayerSeasonRecord
	recent []models.GameLogEntry
	h2h    *models.HeadToHeadRecord
	venue  *models.VenueSplit
	team   *models.TeamContext
	opp    *models.TeamContext
	goalie *models.GoalieContext
	isHome bool
}

// engine evaluates the weighted ensemble for one tuning. It holds no mutable
// state; identical inputs produce identical output.
type engine struct {
	cfg config.PredictionConfig
}

// neutralScore stands in for a factor whose signal is entirely absent.
const neutralScore = 0.5

// scoreFactors evaluates all six calculators in their canonical order.
func (e engine) scoreFactors(in factorInputs) []models.ScoringFactor {
	baseline := e.seasonBaseline(in.season)
	return []models.ScoringFactor{
		e.recentForm(in.recent, baseline),
		baseline,
		e.headToHead(in.h2h, baseline),
		e.homeAway(in.venue, baseline),
		e.goalieMatchup(in.goalie),
		e.teamPace(in.team, in.opp),
	}
}

// recentForm scores the last-N window with linearly decaying recency weights
// (most recent game weighted highest). An empty window reverts to the season
// baseline.
func (e engine) recentForm(recent []models.GameLogEntry, baseline models.ScoringFactor) models.ScoringFactor {
	f := models.ScoringFactor{
		Name:       models.FactorRecentForm,
		Weight:     e.cfg.Weights.RecentForm,
		SampleSize: len(recent),
	}
	if len(recent) == 0 {
		f.Score = baseline.Score
		f.Fallback = true
		return f
	}
	var weighted, total float64
	for i, g := range recent {
		w := float64(e.cfg.RecentFormWindow - i)
		if w < 1 {
			w = 1
		}
		weighted += w * float64(g.Points)
		total += w
	}
	f.Score = clamp01(weighted / total / e.cfg.PointsCeiling)
	return f
}

// seasonBaseline scores the full-season points-per-game rate.
func (e engine) seasonBaseline(season *models.PlayerSeasonRecord) models.ScoringFactor {
	f := models.ScoringFactor{
		Name:   models.FactorSeasonBaseline,
		Weight: e.cfg.Weights.SeasonBaseline,
	}
	if season != nil {
		f.SampleSize = season.GamesPlayed
		f.Score = clamp01(season.PointsPerGame() / e.cfg.PointsCeiling)
	}
	return f
}

// headToHead scores career performance against the scheduled opponent,
// reverting to the season baseline below the minimum sample.
func (e engine) headToHead(h2h *models.HeadToHeadRecord, baseline models.ScoringFactor) models.ScoringFactor {
	f := models.ScoringFactor{
		Name:   models.FactorHeadToHead,
		Weight: e.cfg.Weights.HeadToHead,
	}
	if h2h != nil {
		f.SampleSize = h2h.Games
	}
	if h2h == nil || h2h.Games < e.cfg.H2HMinGames {
		f.Score = baseline.Score
		f.Fallback = true
		return f
	}
	f.Score = clamp01(h2h.PointsPerGame() / e.cfg.PointsCeiling)
	return f
}

// homeAway scores the matching side of the venue split, reverting to the
// season baseline below the minimum sample.
func (e engine) homeAway(venue *models.VenueSplit, baseline models.ScoringFactor) models.ScoringFactor {
	f := models.ScoringFactor{
		Name:   models.FactorHomeAway,
		Weight: e.cfg.Weights.HomeAway,
	}
	if venue != nil {
		f.SampleSize = venue.Games
	}
	if venue == nil || venue.Games < e.cfg.VenueMinGames {
		f.Score = baseline.Score
		f.Fallback = true
		return f
	}
	f.Score = clamp01(venue.PointsPerGame() / e.cfg.PointsCeiling)
	return f
}

// goalieMatchup scores the opposing starter's quality: a save% above league
// average lowers the score, below raises it. An unannounced starter is
// neutral.
func (e engine) goalieMatchup(goalie *models.GoalieContext) models.ScoringFactor {
	f := models.ScoringFactor{
		Name:   models.FactorGoalieMatchup,
		Weight: e.cfg.Weights.GoalieMatchup,
	}
	if goalie == nil || goalie.Starter == nil {
		f.Score = neutralScore
		f.Fallback = true
		return f
	}
	leagueAvg := goalie.LeagueSavePct
	if leagueAvg <= 0 {
		leagueAvg = e.cfg.LeagueSavePct
	}
	f.SampleSize = goalie.Starter.GamesStarted
	f.Score = clamp01(1 - (goalie.Starter.SavePct - leagueAvg))
	return f
}

// teamPace scores the expected game environment from the player's team
// offense and the opponent's defense. Missing context is neutral.
func (e engine) teamPace(team, opp *models.TeamContext) models.ScoringFactor {
	f := models.ScoringFactor{
		Name:   models.FactorTeamPace,
		Weight: e.cfg.Weights.TeamPace,
	}
	if team == nil || opp == nil {
		f.Score = neutralScore
		f.Fallback = true
		return f
	}
	f.SampleSize = team.GamesPlayed
	if opp.GamesPlayed < f.SampleSize {
		f.SampleSize = opp.GamesPlayed
	}
	combined := team.GoalsForPerGame + opp.GoalsAgainstPerGame
	f.Score = clamp01(combined / e.cfg.PaceCeiling)
	return f
}

// pointsVariance is the population variance of per-game points across a
// window.
func pointsVariance(entries []models.GameLogEntry) float64 {
	if len(entries) < 2 {
		return 0
	}
	var sum float64
	for _, g := range entries {
		sum += float64(g.Points)
	}
	mean := sum / float64(len(entries))
	var sq float64
	for _, g := range entries {
		d := float64(g.Points) - mean
		sq += d * d
	}
	return sq / float64(len(entries))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
