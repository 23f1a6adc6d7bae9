package usecase

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/sourcegraph/conc/pool"

	"github.com/crickstack/scorecard-api/internal/domain/match"
	"github.com/crickstack/scorecard-api/internal/domain/scorecard"
	"github.com/crickstack/scorecard-api/internal/platform/id"
	"github.com/crickstack/scorecard-api/internal/platform/logging"
	"github.com/crickstack/scorecard-api/internal/platform/resilience"
)

// Import failure messages surfaced to operators. The wording is part of the
// admin tooling contract; keep it stable.
const (
	msgNoBattingData     = "No batting data found in CSV. Please check the file format."
	msgMatchIDNotFound   = "Provided match ID not found in database."
	msgScorecardExists   = "Scorecard already exists for this match. Delete it first to reimport."
	couldNotFindMatchFmt = "Could not find matching match. Teams: %s vs %s, Date: %s. Please select a match manually."
)

var winnerRegex = regexp.MustCompile(`(?i)^([\w\s]+?)\s+won`)

const listHydrationWorkers = 8

// ScorecardService orchestrates scorecard imports and owns the scorecard
// admin operations. Import runs as a fixed sequence: parse, validate,
// correlate, resolve players, aggregate stats, persist. Parsing and
// resolution problems are reported in the ImportResult, not as Go errors;
// only storage failures surface as errors.
type ScorecardService struct {
	matchRepo     match.Repository
	scorecardRepo scorecard.Repository
	correlator    *MatchCorrelator
	resolver      *PlayerResolver
	idGen         id.Generator
	logger        *logging.Logger

	// Serializes imports per match id; the duplicate guard below is
	// check-then-act and must not race with itself.
	importLocks resilience.KeyedMutex
}

func NewScorecardService(
	matchRepo match.Repository,
	scorecardRepo scorecard.Repository,
	correlator *MatchCorrelator,
	resolver *PlayerResolver,
	idGen id.Generator,
	logger *logging.Logger,
) *ScorecardService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ScorecardService{
		matchRepo:     matchRepo,
		scorecardRepo: scorecardRepo,
		correlator:    correlator,
		resolver:      resolver,
		idGen:         idGen,
		logger:        logger,
	}
}

// ImportScorecard ingests one raw scorecard export. When targetMatchID is
// empty the match is correlated from the parsed date and team names. The
// returned result always explains a failure through Errors; the error
// return is reserved for storage faults.
func (s *ScorecardService) ImportScorecard(ctx context.Context, csvText, targetMatchID, importedBy string) (scorecard.ImportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScorecardService.ImportScorecard")
	defer span.End()

	result := scorecard.ImportResult{
		UnmatchedPlayers: []string{},
		Errors:           []string{},
	}

	rows := scorecard.ParseGrid(csvText)
	info := scorecard.ExtractMatchInfo(rows)
	firstInnings := scorecard.ExtractInnings(rows, scorecard.FirstInningsMarker)
	secondInnings := scorecard.ExtractInnings(rows, scorecard.SecondInningsMarker)

	if len(firstInnings.Batting) == 0 && len(secondInnings.Batting) == 0 {
		result.Errors = append(result.Errors, msgNoBattingData)
		return result, nil
	}

	var target match.Match
	if strings.TrimSpace(targetMatchID) != "" {
		found, ok, err := s.matchRepo.GetByID(ctx, strings.TrimSpace(targetMatchID))
		if err != nil {
			return s.systemFailure(ctx, result, fmt.Errorf("get match by id: %w", err))
		}
		if !ok {
			result.Errors = append(result.Errors, msgMatchIDNotFound)
			return result, nil
		}
		target = found
	} else {
		found, ok, err := s.correlator.Correlate(ctx, info.Date, firstInnings.BattingTeam, secondInnings.BattingTeam)
		if err != nil {
			return s.systemFailure(ctx, result, fmt.Errorf("correlate match: %w", err))
		}
		if !ok {
			result.Errors = append(result.Errors, fmt.Sprintf(
				couldNotFindMatchFmt,
				firstInnings.BattingTeam, secondInnings.BattingTeam, importDateLabel(info.Date),
			))
			return result, nil
		}
		target = found
	}

	result.MatchFound = true
	result.MatchID = target.ID

	s.importLocks.Lock(target.ID)
	defer s.importLocks.Unlock(target.ID)

	if _, exists, err := s.scorecardRepo.GetByMatchID(ctx, target.ID); err != nil {
		return s.systemFailure(ctx, result, fmt.Errorf("check existing scorecard: %w", err))
	} else if exists {
		result.Errors = append(result.Errors, msgScorecardExists)
		return result, nil
	}

	matchedCount, unmatchedPlayers, err := s.resolver.ResolveScorecard(ctx, &firstInnings, &secondInnings)
	if err != nil {
		return s.systemFailure(ctx, result, fmt.Errorf("resolve players: %w", err))
	}
	result.PlayersMatched = matchedCount
	result.PlayersUnmatched = len(unmatchedPlayers)
	if len(unmatchedPlayers) > 0 {
		result.UnmatchedPlayers = unmatchedPlayers
	}

	stats := scorecard.ComputeStats(firstInnings, secondInnings)

	scorecardID, err := s.idGen.NewID()
	if err != nil {
		return s.systemFailure(ctx, result, fmt.Errorf("generate scorecard id: %w", err))
	}

	record := scorecard.Scorecard{
		ID:                scorecardID,
		MatchID:           target.ID,
		ExternalMatchCode: info.MatchNumber,
		MatchInfo:         info,
		FirstInnings:      firstInnings,
		SecondInnings:     secondInnings,
		ComputedStats:     stats,
		ImportedAt:        time.Now().UTC(),
		ImportedBy:        importedBy,
	}

	if err := s.scorecardRepo.Create(ctx, record); err != nil {
		if errors.Is(err, scorecard.ErrDuplicateMatch) {
			result.Errors = append(result.Errors, msgScorecardExists)
			return result, nil
		}
		return s.systemFailure(ctx, result, crerr.Wrap(err, "create scorecard"))
	}

	update := buildImportUpdate(record.ID, target, info, firstInnings, secondInnings, stats)
	if err := s.matchRepo.ApplyImport(ctx, target.ID, update); err != nil {
		err = crerr.Wrapf(err, "update match %s after scorecard create", target.ID)
		// The scorecard was already written; remove it so the failed import
		// leaves no orphan behind.
		if delErr := s.scorecardRepo.Delete(ctx, record.ID); delErr != nil {
			err = crerr.CombineErrors(err, crerr.Wrap(delErr, "compensating scorecard delete"))
		}
		return s.systemFailure(ctx, result, err)
	}

	result.Success = true
	result.ScorecardID = record.ID
	return result, nil
}

// systemFailure logs a storage-level fault, records it on the result and
// propagates it to the caller.
func (s *ScorecardService) systemFailure(ctx context.Context, result scorecard.ImportResult, err error) (scorecard.ImportResult, error) {
	s.logger.ErrorContext(ctx, "scorecard import failed", "error", err)
	result.Success = false
	result.Errors = append(result.Errors, err.Error())
	return result, err
}

func importDateLabel(date *time.Time) string {
	if date == nil {
		return "unknown"
	}
	return date.Format("Mon Jan 02 2006")
}

func buildImportUpdate(
	scorecardID string,
	target match.Match,
	info scorecard.MatchInfo,
	firstInnings, secondInnings scorecard.Innings,
	stats scorecard.ComputedStats,
) match.ImportUpdate {
	firstScore := formatTeamScore(firstInnings.Total)
	secondScore := formatTeamScore(secondInnings.Total)

	// Orient the scores by finding which stored team batted first.
	team1Score, team2Score := secondScore, firstScore
	firstShort := match.ShortCode(firstInnings.BattingTeam)
	if target.Team1.ShortName == firstShort ||
		(firstInnings.BattingTeam != "" &&
			strings.Contains(strings.ToLower(target.Team1.Name), strings.ToLower(firstInnings.BattingTeam))) {
		team1Score, team2Score = firstScore, secondScore
	}

	return match.ImportUpdate{
		ScorecardID:         scorecardID,
		Status:              match.StatusCompleted,
		IsTeamSelectionOpen: false,
		Result: match.Result{
			Winner:     extractWinner(info.Result),
			Summary:    info.Result,
			Team1Score: team1Score,
			Team2Score: team2Score,
		},
		StatsSnapshot: match.StatsSnapshot{
			TotalScore:     stats.TotalMatchScore,
			MostSixes:      match.StatLeader(stats.MostSixes),
			MostFours:      match.StatLeader(stats.MostFours),
			MostWickets:    match.StatLeader(stats.MostWickets),
			PowerplayScore: stats.PowerplayScore,
			FiftiesCount:   stats.FiftiesCount,
		},
	}
}

func formatTeamScore(total scorecard.InningsTotal) string {
	return fmt.Sprintf("%d/%s (%s)", total.Runs, total.Wickets, total.Overs)
}

// extractWinner pulls the leading team name out of a free-text result line
// such as "India won by 5 wickets".
func extractWinner(resultText string) string {
	m := winnerRegex.FindStringSubmatch(resultText)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// ScorecardWithMatch pairs a stored scorecard with a summary of the match
// it belongs to. Match is nil when the back-referenced match is gone.
type ScorecardWithMatch struct {
	Scorecard scorecard.Scorecard
	Match     *match.Match
}

// ListScorecards returns all scorecards, most recently imported first, each
// hydrated with its match. Hydration lookups are independent and run
// concurrently.
func (s *ScorecardService) ListScorecards(ctx context.Context) ([]ScorecardWithMatch, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScorecardService.ListScorecards")
	defer span.End()

	items, err := s.scorecardRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list scorecards: %w", err)
	}

	out := make([]ScorecardWithMatch, len(items))
	hydrators := pool.New().WithContext(ctx).WithMaxGoroutines(listHydrationWorkers)
	for idx := range items {
		idx := idx
		hydrators.Go(func(ctx context.Context) error {
			out[idx].Scorecard = items[idx]
			found, ok, err := s.matchRepo.GetByID(ctx, items[idx].MatchID)
			if err != nil {
				return fmt.Errorf("hydrate match %s: %w", items[idx].MatchID, err)
			}
			if ok {
				out[idx].Match = &found
			}
			return nil
		})
	}
	if err := hydrators.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetScorecardByMatchID returns the scorecard attached to a match.
func (s *ScorecardService) GetScorecardByMatchID(ctx context.Context, matchID string) (scorecard.Scorecard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScorecardService.GetScorecardByMatchID")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return scorecard.Scorecard{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	found, ok, err := s.scorecardRepo.GetByMatchID(ctx, matchID)
	if err != nil {
		return scorecard.Scorecard{}, fmt.Errorf("get scorecard by match: %w", err)
	}
	if !ok {
		return scorecard.Scorecard{}, fmt.Errorf("%w: no scorecard for match %s", ErrNotFound, matchID)
	}
	return found, nil
}

// DeleteScorecard removes a scorecard and clears the back-reference on its
// match, reopening it for reimport.
func (s *ScorecardService) DeleteScorecard(ctx context.Context, scorecardID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScorecardService.DeleteScorecard")
	defer span.End()

	scorecardID = strings.TrimSpace(scorecardID)
	if scorecardID == "" {
		return fmt.Errorf("%w: scorecard id is required", ErrInvalidInput)
	}

	found, ok, err := s.scorecardRepo.GetByID(ctx, scorecardID)
	if err != nil {
		return fmt.Errorf("get scorecard: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: scorecard %s", ErrNotFound, scorecardID)
	}

	s.importLocks.Lock(found.MatchID)
	defer s.importLocks.Unlock(found.MatchID)

	if err := s.matchRepo.ClearScorecardRef(ctx, found.MatchID); err != nil {
		return fmt.Errorf("clear match scorecard ref: %w", err)
	}
	if err := s.scorecardRepo.Delete(ctx, scorecardID); err != nil {
		return fmt.Errorf("delete scorecard: %w", err)
	}

	s.logger.InfoContext(ctx, "scorecard deleted",
		"scorecard_id", scorecardID,
		"match_id", found.MatchID,
	)
	return nil
}

// ListMatchesWithoutScorecard returns matches still waiting for an import.
func (s *ScorecardService) ListMatchesWithoutScorecard(ctx context.Context) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScorecardService.ListMatchesWithoutScorecard")
	defer span.End()

	matches, err := s.matchRepo.ListWithoutScorecard(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches without scorecard: %w", err)
	}
	return matches, nil
}
