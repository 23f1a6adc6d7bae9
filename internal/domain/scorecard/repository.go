package scorecard

import (
	"context"
	"errors"
)

// ErrDuplicateMatch is returned by Create when a scorecard already exists
// for the same match. Backed by a uniqueness constraint so concurrent
// importers cannot both win.
var ErrDuplicateMatch = errors.New("scorecard already exists for match")

// Repository describes scorecard persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, sc Scorecard) error
	GetByID(ctx context.Context, id string) (Scorecard, bool, error)
	GetByMatchID(ctx context.Context, matchID string) (Scorecard, bool, error)
	// List returns all scorecards, most recently imported first.
	List(ctx context.Context) ([]Scorecard, error)
	Delete(ctx context.Context, id string) error
}
