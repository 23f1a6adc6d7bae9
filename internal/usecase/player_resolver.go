package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/crickstack/scorecard-api/internal/domain/match"
	"github.com/crickstack/scorecard-api/internal/domain/player"
	"github.com/crickstack/scorecard-api/internal/domain/scorecard"
)

// Scoring constants tuned against real noisy exports. Do not adjust them
// without re-running the historical import corpus.
const (
	playerMatchThreshold = 0.6
	exactTierThreshold   = 0.95
	lastNameWeight       = 0.85
	surnameOnlyScore     = 0.8
	surnameInitialScore  = 0.95
)

const (
	MatchTierExact = "exact"
	MatchTierFuzzy = "fuzzy"
)

const defaultResolveWorkers = 4

// PlayerMatch is an accepted resolution of a free-text name to a stored
// player. Confidence is always >= the acceptance threshold.
type PlayerMatch struct {
	Player     player.Player
	Confidence float64
	Tier       string
}

// PlayerResolver resolves the free-text player names on parsed performance
// rows against the stored player pool.
type PlayerResolver struct {
	playerRepo player.Repository
	workers    int
}

func NewPlayerResolver(playerRepo player.Repository) *PlayerResolver {
	return &PlayerResolver{
		playerRepo: playerRepo,
		workers:    defaultResolveWorkers,
	}
}

// Resolve scores every active player (scoped by team when one is given)
// against the input name and returns the best candidate, or false when no
// candidate clears the acceptance threshold. A miss is not an error.
func (r *PlayerResolver) Resolve(ctx context.Context, playerName, teamName string) (PlayerMatch, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerResolver.Resolve")
	defer span.End()

	playerName = strings.TrimSpace(playerName)
	if playerName == "" {
		return PlayerMatch{}, false, nil
	}

	candidates, err := r.playerRepo.ListActive(ctx, match.ShortCode(teamName))
	if err != nil {
		return PlayerMatch{}, false, fmt.Errorf("list active players: %w", err)
	}

	var best player.Player
	bestScore := 0.0
	for _, candidate := range candidates {
		// Strict > keeps the first-encountered candidate on ties.
		if score := scoreCandidate(playerName, candidate); score > bestScore {
			bestScore = score
			best = candidate
		}
	}

	if bestScore < playerMatchThreshold {
		return PlayerMatch{}, false, nil
	}

	tier := MatchTierFuzzy
	if bestScore >= exactTierThreshold {
		tier = MatchTierExact
	}
	return PlayerMatch{Player: best, Confidence: bestScore, Tier: tier}, true, nil
}

// scoreCandidate takes the max of four independent signals. Exports mix
// full names, surnames-only and initials, so no single signal is reliable.
func scoreCandidate(input string, candidate player.Player) float64 {
	score := player.CalculateSimilarity(input, candidate.Name)

	if candidate.ShortName != "" {
		score = max(score, player.CalculateSimilarity(input, candidate.ShortName))
	}

	score = max(score, player.CalculateSimilarity(player.LastName(input), player.LastName(candidate.Name))*lastNameWeight)

	return max(score, namePartsScore(input, candidate.Name))
}

// namePartsScore fires when both names carry at least two tokens and the
// surnames are identical; a shared first initial upgrades the score.
func namePartsScore(input, candidateName string) float64 {
	inputParts := strings.Fields(strings.ToLower(input))
	candidateParts := strings.Fields(strings.ToLower(candidateName))
	if len(inputParts) < 2 || len(candidateParts) < 2 {
		return 0
	}
	if inputParts[len(inputParts)-1] != candidateParts[len(candidateParts)-1] {
		return 0
	}
	if inputParts[0][0] == candidateParts[0][0] {
		return surnameInitialScore
	}
	return surnameOnlyScore
}

type resolveTask struct {
	batting *scorecard.BattingPerformance
	bowling *scorecard.BowlingPerformance
	team    string
	role    string
}

// ResolveScorecard resolves all four performance lists of a parsed
// scorecard, mutating each row's PlayerID/IsMatched. Lookups are read-only
// and independent, so they run on a bounded pool; the returned matched
// count and unmatched descriptions follow the fixed sweep order (first
// innings batting, first bowling, second batting, second bowling).
func (r *PlayerResolver) ResolveScorecard(ctx context.Context, first, second *scorecard.Innings) (int, []string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerResolver.ResolveScorecard")
	defer span.End()

	tasks := make([]resolveTask, 0, len(first.Batting)+len(first.Bowling)+len(second.Batting)+len(second.Bowling))
	for i := range first.Batting {
		tasks = append(tasks, resolveTask{batting: &first.Batting[i], team: first.BattingTeam, role: "batting"})
	}
	for i := range first.Bowling {
		tasks = append(tasks, resolveTask{bowling: &first.Bowling[i], team: first.BowlingTeam, role: "bowling"})
	}
	for i := range second.Batting {
		tasks = append(tasks, resolveTask{batting: &second.Batting[i], team: second.BattingTeam, role: "batting"})
	}
	for i := range second.Bowling {
		tasks = append(tasks, resolveTask{bowling: &second.Bowling[i], team: second.BowlingTeam, role: "bowling"})
	}
	if len(tasks) == 0 {
		return 0, nil, nil
	}

	workers := min(r.workers, len(tasks))
	pool, err := ants.NewPool(workers)
	if err != nil {
		return 0, nil, fmt.Errorf("create resolver pool: %w", err)
	}
	defer pool.Release()

	errs := make([]error, len(tasks))
	var wg sync.WaitGroup
	for idx := range tasks {
		idx := idx
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			errs[idx] = r.resolveTask(ctx, &tasks[idx])
		}); err != nil {
			wg.Done()
			return 0, nil, fmt.Errorf("submit resolve task: %w", err)
		}
	}
	wg.Wait()

	for _, taskErr := range errs {
		if taskErr != nil {
			return 0, nil, taskErr
		}
	}

	matched := 0
	unmatched := make([]string, 0)
	for _, t := range tasks {
		name, isMatched := t.outcome()
		if isMatched {
			matched++
			continue
		}
		unmatched = append(unmatched, fmt.Sprintf("%s (%s - %s)", name, t.team, t.role))
	}
	return matched, unmatched, nil
}

func (r *PlayerResolver) resolveTask(ctx context.Context, t *resolveTask) error {
	name, _ := t.outcome()
	resolved, ok, err := r.Resolve(ctx, name, t.team)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if t.batting != nil {
		t.batting.PlayerID = resolved.Player.ID
		t.batting.IsMatched = true
	}
	if t.bowling != nil {
		t.bowling.PlayerID = resolved.Player.ID
		t.bowling.IsMatched = true
	}
	return nil
}

func (t resolveTask) outcome() (string, bool) {
	if t.batting != nil {
		return t.batting.PlayerName, t.batting.IsMatched
	}
	return t.bowling.PlayerName, t.bowling.IsMatched
}
