package postgres

import (
	"database/sql"
	"time"
)

type matchTableModel struct {
	ID                  int64          `db:"id"`
	PublicID            string         `db:"public_id"`
	Team1Name           string         `db:"team1_name"`
	Team1Short          string         `db:"team1_short"`
	Team2Name           string         `db:"team2_name"`
	Team2Short          string         `db:"team2_short"`
	MatchDate           time.Time      `db:"match_date"`
	Venue               string         `db:"venue"`
	Status              string         `db:"status"`
	IsTeamSelectionOpen bool           `db:"is_team_selection_open"`
	ScorecardID         sql.NullString `db:"scorecard_public_id"`
	Result              []byte         `db:"result"`
	StatsSnapshot       []byte         `db:"stats_snapshot"`
	CreatedAt           time.Time      `db:"created_at"`
	UpdatedAt           time.Time      `db:"updated_at"`
	DeletedAt           *time.Time     `db:"deleted_at"`
}
