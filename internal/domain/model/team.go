package model

// TeamStat aggregates one team's completed games for a season.
// Wins+Losses+Ties always equals GamesPlayed.
type TeamStat struct {
	TeamID        string
	GamesPlayed   int
	Wins          int
	Losses        int
	Ties          int
	PointsScored  int
	PointsAllowed int
}

// PointsPerGame returns the scoring rate, or 0 for a team without games.
func (s TeamStat) PointsPerGame() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.PointsScored) / float64(s.GamesPlayed)
}

// PointsAllowedPerGame returns the conceding rate, or 0 for a team without games.
func (s TeamStat) PointsAllowedPerGame() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.PointsAllowed) / float64(s.GamesPlayed)
}

// PointDiff returns points scored minus points allowed.
func (s TeamStat) PointDiff() int {
	return s.PointsScored - s.PointsAllowed
}

// Components holds the normalized sub-scores of a power rating, each in [0,1].
type Components struct {
	WinRate      float64
	Differential float64
	Offense      float64
	Defense      float64
}

// PowerRating is a team's composite strength and its position in the table.
type PowerRating struct {
	TeamID     string
	PowerScore float64
	Rank       int
	Components Components
	Stat       TeamStat
}
