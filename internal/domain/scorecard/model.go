package scorecard

import (
	"fmt"
	"time"
)

// MatchInfo holds the header block of a scorecard export. Every field is
// optional; absence means the source did not carry it.
type MatchInfo struct {
	MatchNumber      string
	Series           string
	Venue            string
	Date             *time.Time
	Result           string
	Toss             string
	MatchType        string
	Overs            int
	PlayerOfTheMatch string
}

// BattingPerformance is one batsman's row. PlayerID stays empty until the
// resolver matches the free-text name to a stored player; IsMatched must
// track PlayerID being set.
type BattingPerformance struct {
	PlayerID   string
	PlayerName string
	Runs       int
	Balls      int
	Fours      int
	Sixes      int
	StrikeRate float64
	Dismissal  string
	IsMatched  bool
}

// BowlingPerformance is one bowler's row, same resolution contract as
// BattingPerformance.
type BowlingPerformance struct {
	PlayerID   string
	PlayerName string
	Overs      float64
	Maidens    int
	Runs       int
	Wickets    int
	Economy    float64
	IsMatched  bool
}

type Extras struct {
	Total   int
	Details string
}

type InningsTotal struct {
	Runs    int
	Wickets string
	Overs   string
	RunRate float64
}

// Innings is one team's batting turn as parsed from the export.
type Innings struct {
	BattingTeam   string
	BowlingTeam   string
	Batting       []BattingPerformance
	Bowling       []BowlingPerformance
	Extras        Extras
	Total         InningsTotal
	FallOfWickets []string
	DidNotBat     []string
}

// StatLeader names the player leading one statistic across both innings.
type StatLeader struct {
	PlayerName string
	Count      int
	PlayerID   string
}

// ComputedStats are the derived match-level numbers used by predictions.
// PowerplayScore is not produced by the import pipeline; it is carried as
// a zero placeholder for later enrichment.
type ComputedStats struct {
	TotalMatchScore int
	MostSixes       StatLeader
	MostFours       StatLeader
	MostWickets     StatLeader
	PowerplayScore  int
	FiftiesCount    int
}

// ProcessingStatus tracks the downstream jobs that consume an imported
// scorecard. All flags start false; other services flip them.
type ProcessingStatus struct {
	FantasyPointsCalculated bool
	PredictionsEvaluated    bool
	LeaderboardUpdated      bool
}

// Scorecard is the persisted, resolved record of both innings plus the
// derived statistics. At most one scorecard exists per match.
type Scorecard struct {
	ID                string
	MatchID           string
	ExternalMatchCode string
	MatchInfo         MatchInfo
	FirstInnings      Innings
	SecondInnings     Innings
	ComputedStats     ComputedStats
	ProcessingStatus  ProcessingStatus
	ImportedAt        time.Time
	ImportedBy        string
}

func (s Scorecard) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("scorecard id is required")
	}
	if s.MatchID == "" {
		return fmt.Errorf("scorecard match id is required")
	}
	return nil
}

// ImportResult reports the outcome of one import attempt. Success implies
// a non-empty ScorecardID; failure implies at least one entry in Errors.
type ImportResult struct {
	Success          bool
	MatchFound       bool
	MatchID          string
	PlayersMatched   int
	PlayersUnmatched int
	UnmatchedPlayers []string
	Errors           []string
	ScorecardID      string
}
