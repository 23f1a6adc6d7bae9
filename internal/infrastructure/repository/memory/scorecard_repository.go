package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/crickstack/scorecard-api/internal/domain/scorecard"
)

type ScorecardRepository struct {
	mu        sync.RWMutex
	byID      map[string]scorecard.Scorecard
	idByMatch map[string]string
}

func NewScorecardRepository() *ScorecardRepository {
	return &ScorecardRepository{
		byID:      make(map[string]scorecard.Scorecard),
		idByMatch: make(map[string]string),
	}
}

func (r *ScorecardRepository) Create(_ context.Context, sc scorecard.Scorecard) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.idByMatch[sc.MatchID]; exists {
		return scorecard.ErrDuplicateMatch
	}
	r.byID[sc.ID] = sc
	r.idByMatch[sc.MatchID] = sc.ID
	return nil
}

func (r *ScorecardRepository) GetByID(_ context.Context, id string) (scorecard.Scorecard, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[id]
	return item, ok, nil
}

func (r *ScorecardRepository) GetByMatchID(_ context.Context, matchID string) (scorecard.Scorecard, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.idByMatch[matchID]
	if !ok {
		return scorecard.Scorecard{}, false, nil
	}
	item, ok := r.byID[id]
	return item, ok, nil
}

func (r *ScorecardRepository) List(_ context.Context) ([]scorecard.Scorecard, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]scorecard.Scorecard, 0, len(r.byID))
	for _, item := range r.byID {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].ImportedAt.Equal(out[j].ImportedAt) {
			return out[i].ImportedAt.After(out[j].ImportedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *ScorecardRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.byID[id]
	if !ok {
		return nil
	}
	delete(r.byID, id)
	delete(r.idByMatch, item.MatchID)
	return nil
}
