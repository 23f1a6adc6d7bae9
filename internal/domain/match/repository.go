package match

import (
	"context"
	"time"
)

// Repository describes match persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, id string) (Match, bool, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]Match, error)
	// LatestByTeamPairWithoutScorecard returns the most recently dated match
	// between the two short codes (either orientation) that has no scorecard
	// attached yet.
	LatestByTeamPairWithoutScorecard(ctx context.Context, shortA, shortB string) (Match, bool, error)
	ListWithoutScorecard(ctx context.Context) ([]Match, error)
	ApplyImport(ctx context.Context, id string, update ImportUpdate) error
	ClearScorecardRef(ctx context.Context, id string) error
}
