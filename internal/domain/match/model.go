package match

import (
	"fmt"
	"time"
)

const (
	StatusUpcoming  = "upcoming"
	StatusLive      = "live"
	StatusCompleted = "completed"
)

// TeamRef is one side of a scheduled match.
type TeamRef struct {
	Name      string
	ShortName string
}

// Result summarizes a finished match for display and prediction settlement.
type Result struct {
	Winner     string
	Summary    string
	Team1Score string
	Team2Score string
}

// StatLeader names the player leading one statistic, with the count they
// reached. PlayerID stays empty when the scorecard row could not be
// resolved to a stored player.
type StatLeader struct {
	PlayerName string
	Count      int
	PlayerID   string
}

// StatsSnapshot is the denormalized copy of a scorecard's computed stats
// kept on the match row for cheap reads.
type StatsSnapshot struct {
	TotalScore     int
	MostSixes      StatLeader
	MostFours      StatLeader
	MostWickets    StatLeader
	PowerplayScore int
	FiftiesCount   int
}

// Match is a scheduled cricket fixture between two teams.
type Match struct {
	ID                  string
	Team1               TeamRef
	Team2               TeamRef
	MatchDate           time.Time
	Venue               string
	Status              string
	IsTeamSelectionOpen bool
	ScorecardID         string
	Result              Result
	StatsSnapshot       StatsSnapshot
}

func (m Match) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("match id is required")
	}
	if m.Team1.Name == "" || m.Team2.Name == "" {
		return fmt.Errorf("both team names are required")
	}
	if m.MatchDate.IsZero() {
		return fmt.Errorf("match date is required")
	}
	return nil
}

// ImportUpdate is the partial field set the scorecard importer writes back
// onto a match after a successful import.
type ImportUpdate struct {
	ScorecardID         string
	Status              string
	IsTeamSelectionOpen bool
	Result              Result
	StatsSnapshot       StatsSnapshot
}
