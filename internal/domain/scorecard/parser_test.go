package scorecard

import (
	"testing"
	"time"
)

const sampleExport = `=== MATCH INFORMATION ===
Match Number,Match 12
Series,T20 World Cup 2026
Venue,"Eden Gardens, Kolkata"
Date,"28th January, 2026"
Result,India won by 5 wickets
Toss,New Zealand won the toss and elected to bat
Match Type,T20
Overs,20
Player of the Match,Virat Kohli
===============================

=== 1ST INNINGS - NEW ZEALAND BATTING ===
Name,Dismissal,R,B,4s,6s,SR
Devon Conway,c Kohli b Bumrah,45,34,5,1,132.35
Kane Williamson,b Kuldeep,38,30,4,0,126.67
Rachin Ravindra,not out,52,28,3,4,185.71
Mystery Player,run out,ab,12,0,0,0
Extras,"(b 2, lb 4, w 6)",12
TOTAL,6,178,(20 overs),Run Rate: 8.90
Did Not Bat,"Tim Southee, Trent Boult"
Fall of Wickets
,1-34 (Conway 5.2 ov)
,2-89 (Williamson 12.1 ov)
,
=== 1ST INNINGS - INDIA BOWLING ===
Name,O,M,R,W,Econ
Jasprit Bumrah,4,0,28,2,7.00
Kuldeep Yadav,4,0,35,1,8.75
Hardik Pandya,x,0,30,0,7.50
NOTE: DRS was unavailable for this match
=== 2ND INNINGS - INDIA BATTING ===
Name,Dismissal,R,B,4s,6s,SR
Rohit Sharma,c Conway b Boult,21,14,3,1,150.00
Virat Kohli,not out,78,52,8,3,150.00
Extras,"(lb 2, w 5)",7
TOTAL,5,181,(19.3 overs),Run Rate: 9.28
=== 2ND INNINGS - NEW ZEALAND BOWLING ===
Name,O,M,R,W,Econ
Trent Boult,4,0,32,2,8.00
Tim Southee,3.3,0,41,1,11.71
`

func TestParseGrid_QuotedCells(t *testing.T) {
	t.Parallel()

	rows := ParseGrid(`Venue,"Eden Gardens, Kolkata",note`)
	if len(rows) != 1 {
		t.Fatalf("unexpected row count: got=%d want=1", len(rows))
	}
	row := rows[0]
	if len(row) != 3 {
		t.Fatalf("unexpected cell count: got=%d want=3 row=%v", len(row), row)
	}
	if row[1] != "Eden Gardens, Kolkata" {
		t.Fatalf("quoted comma not preserved: got=%q", row[1])
	}
}

func TestParseGrid_BlankLinesProduceRows(t *testing.T) {
	t.Parallel()

	rows := ParseGrid("a,b\n\nc")
	if len(rows) != 3 {
		t.Fatalf("unexpected row count: got=%d want=3", len(rows))
	}
	if len(rows[1]) != 1 || rows[1][0] != "" {
		t.Fatalf("blank line should produce single empty cell, got=%v", rows[1])
	}
}

func TestExtractMatchInfo(t *testing.T) {
	t.Parallel()

	info := ExtractMatchInfo(ParseGrid(sampleExport))

	if info.MatchNumber != "Match 12" {
		t.Fatalf("unexpected match number: got=%q", info.MatchNumber)
	}
	if info.Series != "T20 World Cup 2026" {
		t.Fatalf("unexpected series: got=%q", info.Series)
	}
	if info.Venue != "Eden Gardens, Kolkata" {
		t.Fatalf("unexpected venue: got=%q", info.Venue)
	}
	if info.Result != "India won by 5 wickets" {
		t.Fatalf("unexpected result: got=%q", info.Result)
	}
	if info.Overs != 20 {
		t.Fatalf("unexpected overs: got=%d", info.Overs)
	}
	if info.PlayerOfTheMatch != "Virat Kohli" {
		t.Fatalf("unexpected player of the match: got=%q", info.PlayerOfTheMatch)
	}
	if info.Date == nil {
		t.Fatal("expected parsed date")
	}
	want := time.Date(2026, time.January, 28, 0, 0, 0, 0, time.UTC)
	if !info.Date.Equal(want) {
		t.Fatalf("unexpected date: got=%v want=%v", info.Date, want)
	}
}

func TestExtractMatchInfo_BadOversFallsBack(t *testing.T) {
	t.Parallel()

	rows := ParseGrid("MATCH INFORMATION\nOvers,abc\nUnknown Key,whatever")
	info := ExtractMatchInfo(rows)
	if info.Overs != 20 {
		t.Fatalf("unparseable overs should default to 20, got=%d", info.Overs)
	}
}

func TestParseExportDate(t *testing.T) {
	t.Parallel()

	got := ParseExportDate("1st February, 2026")
	if got == nil {
		t.Fatal("expected parsed date")
	}
	want := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("unexpected date: got=%v want=%v", got, want)
	}

	if ParseExportDate("") != nil {
		t.Fatal("empty input should return nil")
	}
	if ParseExportDate("not a date") != nil {
		t.Fatal("garbage input should return nil")
	}
	// The global ordinal strip mangles month names containing the suffix
	// letters; such inputs fail to parse, same as the export tooling.
	if ParseExportDate("3rd August, 2026") != nil {
		t.Fatal("august dates are unparseable after ordinal stripping")
	}
}

func TestExtractInnings_FirstInnings(t *testing.T) {
	t.Parallel()

	innings := ExtractInnings(ParseGrid(sampleExport), FirstInningsMarker)

	if innings.BattingTeam != "NEW ZEALAND" {
		t.Fatalf("unexpected batting team: got=%q", innings.BattingTeam)
	}
	if innings.BowlingTeam != "INDIA" {
		t.Fatalf("unexpected bowling team: got=%q", innings.BowlingTeam)
	}

	if len(innings.Batting) != 3 {
		t.Fatalf("unexpected batting rows (unparseable runs must be skipped): got=%d want=3", len(innings.Batting))
	}
	first := innings.Batting[0]
	if first.PlayerName != "Devon Conway" || first.Runs != 45 || first.Balls != 34 || first.Fours != 5 || first.Sixes != 1 {
		t.Fatalf("unexpected first batting row: %+v", first)
	}
	if first.Dismissal != "c Kohli b Bumrah" {
		t.Fatalf("unexpected dismissal: got=%q", first.Dismissal)
	}

	if len(innings.Bowling) != 2 {
		t.Fatalf("unexpected bowling rows (bad overs skipped, NOTE terminates): got=%d want=2", len(innings.Bowling))
	}
	if innings.Bowling[0].PlayerName != "Jasprit Bumrah" || innings.Bowling[0].Wickets != 2 {
		t.Fatalf("unexpected first bowling row: %+v", innings.Bowling[0])
	}
	if innings.Bowling[1].Overs != 4 || innings.Bowling[1].Economy != 8.75 {
		t.Fatalf("unexpected second bowling row: %+v", innings.Bowling[1])
	}

	if innings.Extras.Total != 12 || innings.Extras.Details != "(b 2, lb 4, w 6)" {
		t.Fatalf("unexpected extras: %+v", innings.Extras)
	}

	if innings.Total.Runs != 178 || innings.Total.Wickets != "6" {
		t.Fatalf("unexpected total: %+v", innings.Total)
	}
	if innings.Total.RunRate != 8.90 {
		t.Fatalf("unexpected run rate: got=%v", innings.Total.RunRate)
	}

	if len(innings.DidNotBat) != 2 || innings.DidNotBat[0] != "Tim Southee" || innings.DidNotBat[1] != "Trent Boult" {
		t.Fatalf("unexpected did-not-bat list: %v", innings.DidNotBat)
	}

	if len(innings.FallOfWickets) != 2 {
		t.Fatalf("unexpected fall-of-wickets count: got=%d want=2", len(innings.FallOfWickets))
	}
	if innings.FallOfWickets[1] != "2-89 (Williamson 12.1 ov)" {
		t.Fatalf("unexpected fall-of-wickets entry: got=%q", innings.FallOfWickets[1])
	}
}

func TestExtractInnings_SecondInningsDoesNotBleed(t *testing.T) {
	t.Parallel()

	innings := ExtractInnings(ParseGrid(sampleExport), SecondInningsMarker)

	if innings.BattingTeam != "INDIA" {
		t.Fatalf("unexpected batting team: got=%q", innings.BattingTeam)
	}
	if innings.BowlingTeam != "NEW ZEALAND" {
		t.Fatalf("unexpected bowling team: got=%q", innings.BowlingTeam)
	}
	if len(innings.Batting) != 2 {
		t.Fatalf("unexpected batting rows: got=%d want=2", len(innings.Batting))
	}
	for _, b := range innings.Batting {
		if b.PlayerName == "Devon Conway" {
			t.Fatal("first innings batting leaked into second innings")
		}
	}
	if innings.Total.Runs != 181 {
		t.Fatalf("unexpected total runs: got=%d", innings.Total.Runs)
	}
	if len(innings.Bowling) != 2 {
		t.Fatalf("unexpected bowling rows: got=%d want=2", len(innings.Bowling))
	}
}

func TestExtractInnings_MissingMarkerYieldsEmptyInnings(t *testing.T) {
	t.Parallel()

	innings := ExtractInnings(ParseGrid("just,some,cells\nTOTAL,5,180"), FirstInningsMarker)
	if innings.BattingTeam != "" || len(innings.Batting) != 0 || len(innings.Bowling) != 0 {
		t.Fatalf("expected empty innings, got %+v", innings)
	}
}
