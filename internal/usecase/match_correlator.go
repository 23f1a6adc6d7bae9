package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/crickstack/scorecard-api/internal/domain/match"
)

// MatchCorrelator identifies which stored match a parsed scorecard
// describes, using date and team-name evidence.
type MatchCorrelator struct {
	matchRepo match.Repository
}

func NewMatchCorrelator(matchRepo match.Repository) *MatchCorrelator {
	return &MatchCorrelator{matchRepo: matchRepo}
}

// Correlate runs two passes: a same-calendar-day scan where both parsed
// team names must match one of the candidate's four name fields, then a
// team-short-code fallback over matches without a scorecard, latest first.
// The fallback also covers exports whose date line is missing or garbled.
func (c *MatchCorrelator) Correlate(ctx context.Context, date *time.Time, firstBattingTeam, secondBattingTeam string) (match.Match, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchCorrelator.Correlate")
	defer span.End()

	teamNames := make([]string, 0, 2)
	for _, name := range []string{firstBattingTeam, secondBattingTeam} {
		if strings.TrimSpace(name) != "" {
			teamNames = append(teamNames, name)
		}
	}
	// One team alone cannot identify a fixture.
	if len(teamNames) < 2 {
		return match.Match{}, false, nil
	}

	if date != nil {
		dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
		dayEnd := dayStart.Add(24*time.Hour - time.Millisecond)

		candidates, err := c.matchRepo.ListByDateRange(ctx, dayStart, dayEnd)
		if err != nil {
			return match.Match{}, false, fmt.Errorf("list matches by date: %w", err)
		}
		for _, candidate := range candidates {
			if bothTeamsMatch(teamNames, candidate) {
				return candidate, true, nil
			}
		}
	}

	shortA := match.ShortCode(teamNames[0])
	shortB := match.ShortCode(teamNames[1])
	found, ok, err := c.matchRepo.LatestByTeamPairWithoutScorecard(ctx, shortA, shortB)
	if err != nil {
		return match.Match{}, false, fmt.Errorf("find match by team pair: %w", err)
	}
	return found, ok, nil
}

// bothTeamsMatch requires every parsed team name to hit at least one of the
// candidate's four name fields by case-insensitive equality, short-code
// equality, or substring in either direction.
func bothTeamsMatch(teamNames []string, candidate match.Match) bool {
	fields := []string{
		strings.ToLower(candidate.Team1.Name),
		strings.ToLower(candidate.Team1.ShortName),
		strings.ToLower(candidate.Team2.Name),
		strings.ToLower(candidate.Team2.ShortName),
	}

	for _, teamName := range teamNames {
		normalized := strings.ToLower(strings.TrimSpace(teamName))
		short := strings.ToLower(match.ShortCode(teamName))

		matchedAny := false
		for _, field := range fields {
			if field == "" {
				continue
			}
			if field == normalized || field == short ||
				strings.Contains(field, normalized) || strings.Contains(normalized, field) {
				matchedAny = true
				break
			}
		}
		if !matchedAny {
			return false
		}
	}
	return true
}
