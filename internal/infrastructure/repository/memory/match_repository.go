package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/crickstack/scorecard-api/internal/domain/match"
)

type MatchRepository struct {
	mu      sync.RWMutex
	matches map[string]match.Match
}

func NewMatchRepository(matches []match.Match) *MatchRepository {
	byID := make(map[string]match.Match, len(matches))
	for _, item := range matches {
		byID[item.ID] = item
	}
	return &MatchRepository{matches: byID}
}

func (r *MatchRepository) GetByID(_ context.Context, id string) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.matches[id]
	return item, ok, nil
}

func (r *MatchRepository) ListByDateRange(_ context.Context, from, to time.Time) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0)
	for _, item := range r.matches {
		if item.MatchDate.Before(from) || item.MatchDate.After(to) {
			continue
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].MatchDate.Equal(out[j].MatchDate) {
			return out[i].MatchDate.Before(out[j].MatchDate)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *MatchRepository) LatestByTeamPairWithoutScorecard(_ context.Context, shortA, shortB string) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var best match.Match
	found := false
	for _, item := range r.matches {
		if item.ScorecardID != "" {
			continue
		}
		straight := item.Team1.ShortName == shortA && item.Team2.ShortName == shortB
		reversed := item.Team1.ShortName == shortB && item.Team2.ShortName == shortA
		if !straight && !reversed {
			continue
		}
		if !found || item.MatchDate.After(best.MatchDate) {
			best = item
			found = true
		}
	}
	return best, found, nil
}

func (r *MatchRepository) ListWithoutScorecard(_ context.Context) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0)
	for _, item := range r.matches {
		if item.ScorecardID == "" {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].MatchDate.Equal(out[j].MatchDate) {
			return out[i].MatchDate.After(out[j].MatchDate)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *MatchRepository) ApplyImport(_ context.Context, id string, update match.ImportUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.matches[id]
	if !ok {
		return nil
	}
	item.ScorecardID = update.ScorecardID
	item.Status = update.Status
	item.IsTeamSelectionOpen = update.IsTeamSelectionOpen
	item.Result = update.Result
	item.StatsSnapshot = update.StatsSnapshot
	r.matches[id] = item
	return nil
}

func (r *MatchRepository) ClearScorecardRef(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.matches[id]
	if !ok {
		return nil
	}
	item.ScorecardID = ""
	r.matches[id] = item
	return nil
}
