package postgres

import "time"

type scorecardTableModel struct {
	ID                int64      `db:"id"`
	PublicID          string     `db:"public_id"`
	MatchID           string     `db:"match_public_id"`
	ExternalMatchCode string     `db:"external_match_code"`
	MatchInfo         []byte     `db:"match_info"`
	FirstInnings      []byte     `db:"first_innings"`
	SecondInnings     []byte     `db:"second_innings"`
	ComputedStats     []byte     `db:"computed_stats"`
	ProcessingStatus  []byte     `db:"processing_status"`
	ImportedAt        time.Time  `db:"imported_at"`
	ImportedBy        string     `db:"imported_by"`
	CreatedAt         time.Time  `db:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at"`
	DeletedAt         *time.Time `db:"deleted_at"`
}

type scorecardInsertModel struct {
	PublicID          string    `db:"public_id"`
	MatchID           string    `db:"match_public_id"`
	ExternalMatchCode string    `db:"external_match_code"`
	MatchInfo         []byte    `db:"match_info"`
	FirstInnings      []byte    `db:"first_innings"`
	SecondInnings     []byte    `db:"second_innings"`
	ComputedStats     []byte    `db:"computed_stats"`
	ProcessingStatus  []byte    `db:"processing_status"`
	ImportedAt        time.Time `db:"imported_at"`
	ImportedBy        string    `db:"imported_by"`
}
