package usecase

import (
	"context"
	"testing"

	"github.com/crickstack/scorecard-api/internal/domain/scorecard"
	"github.com/crickstack/scorecard-api/internal/infrastructure/repository/memory"
)

func newSeededResolver() *PlayerResolver {
	return NewPlayerResolver(memory.NewPlayerRepository(memory.SeedPlayers()))
}

func TestPlayerResolver_Resolve_InitialAndSurname(t *testing.T) {
	t.Parallel()

	resolver := newSeededResolver()

	got, ok, err := resolver.Resolve(context.Background(), "V Kohli", "India")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !ok {
		t.Fatal("expected a match for V Kohli")
	}
	if got.Player.Name != "Virat Kohli" {
		t.Fatalf("unexpected player: got=%q", got.Player.Name)
	}
	if got.Confidence < 0.95 {
		t.Fatalf("initial+surname should score at least 0.95, got=%v", got.Confidence)
	}
	if got.Tier != MatchTierExact {
		t.Fatalf("unexpected tier: got=%q want=%q", got.Tier, MatchTierExact)
	}
}

func TestPlayerResolver_Resolve_ExactName(t *testing.T) {
	t.Parallel()

	resolver := newSeededResolver()

	got, ok, err := resolver.Resolve(context.Background(), "Kane Williamson", "NEW ZEALAND")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !ok || got.Player.ID != "nz-02" {
		t.Fatalf("expected nz-02, got ok=%v player=%+v", ok, got.Player)
	}
	if got.Confidence != 1 {
		t.Fatalf("exact name should score 1, got=%v", got.Confidence)
	}
}

func TestPlayerResolver_Resolve_NoCandidateBelowThreshold(t *testing.T) {
	t.Parallel()

	resolver := newSeededResolver()

	_, ok, err := resolver.Resolve(context.Background(), "Zzz Qqq", "India")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if ok {
		t.Fatal("gibberish name must not resolve")
	}
}

func TestPlayerResolver_Resolve_TeamScopeExcludesOtherSquads(t *testing.T) {
	t.Parallel()

	resolver := newSeededResolver()

	// Kohli exists, but only on the IND squad.
	_, ok, err := resolver.Resolve(context.Background(), "Virat Kohli", "New Zealand")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if ok {
		t.Fatal("team scoping must exclude players from other squads")
	}
}

func TestPlayerResolver_Resolve_SkipsInactivePlayers(t *testing.T) {
	t.Parallel()

	resolver := newSeededResolver()

	got, ok, err := resolver.Resolve(context.Background(), "MS Dhoni", "India")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if ok {
		t.Fatalf("inactive player must not resolve, got=%+v", got.Player)
	}
}

func TestPlayerResolver_Resolve_EmptyName(t *testing.T) {
	t.Parallel()

	resolver := newSeededResolver()

	_, ok, err := resolver.Resolve(context.Background(), "  ", "India")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if ok {
		t.Fatal("blank name must not resolve")
	}
}

func TestPlayerResolver_ResolveScorecard(t *testing.T) {
	t.Parallel()

	resolver := newSeededResolver()

	first := scorecard.Innings{
		BattingTeam: "NEW ZEALAND",
		BowlingTeam: "INDIA",
		Batting: []scorecard.BattingPerformance{
			{PlayerName: "Devon Conway", Runs: 45},
			{PlayerName: "Zzz Qqq", Runs: 10},
		},
		Bowling: []scorecard.BowlingPerformance{
			{PlayerName: "J Bumrah", Overs: 4, Wickets: 2},
		},
	}
	second := scorecard.Innings{
		BattingTeam: "INDIA",
		BowlingTeam: "NEW ZEALAND",
		Batting: []scorecard.BattingPerformance{
			{PlayerName: "Virat Kohli", Runs: 78},
		},
		Bowling: []scorecard.BowlingPerformance{
			{PlayerName: "Unknown Bowler", Overs: 4},
		},
	}

	matched, unmatched, err := resolver.ResolveScorecard(context.Background(), &first, &second)
	if err != nil {
		t.Fatalf("resolve scorecard: %v", err)
	}
	if matched != 3 {
		t.Fatalf("unexpected matched count: got=%d want=3", matched)
	}
	if len(unmatched) != 2 {
		t.Fatalf("unexpected unmatched count: got=%d want=2", len(unmatched))
	}
	if unmatched[0] != "Zzz Qqq (NEW ZEALAND - batting)" {
		t.Fatalf("unexpected unmatched entry: got=%q", unmatched[0])
	}
	if unmatched[1] != "Unknown Bowler (NEW ZEALAND - bowling)" {
		t.Fatalf("unmatched entries must follow sweep order, got=%q", unmatched[1])
	}

	if !first.Batting[0].IsMatched || first.Batting[0].PlayerID != "nz-01" {
		t.Fatalf("conway row not resolved: %+v", first.Batting[0])
	}
	if first.Batting[1].IsMatched || first.Batting[1].PlayerID != "" {
		t.Fatalf("unknown batsman must stay unresolved: %+v", first.Batting[1])
	}
	if !first.Bowling[0].IsMatched || first.Bowling[0].PlayerID != "ind-06" {
		t.Fatalf("bumrah row not resolved: %+v", first.Bowling[0])
	}
	if !second.Batting[0].IsMatched || second.Batting[0].PlayerID != "ind-02" {
		t.Fatalf("kohli row not resolved: %+v", second.Batting[0])
	}
}

func TestPlayerResolver_ResolveScorecard_Empty(t *testing.T) {
	t.Parallel()

	resolver := newSeededResolver()

	first := scorecard.Innings{}
	second := scorecard.Innings{}
	matched, unmatched, err := resolver.ResolveScorecard(context.Background(), &first, &second)
	if err != nil {
		t.Fatalf("resolve scorecard: %v", err)
	}
	if matched != 0 || len(unmatched) != 0 {
		t.Fatalf("expected no work, got matched=%d unmatched=%v", matched, unmatched)
	}
}
