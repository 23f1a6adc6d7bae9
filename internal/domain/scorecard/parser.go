package scorecard

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Section markers as they appear in the export. The two innings blocks are
// located by independent scans, so their order in the file does not matter.
const (
	FirstInningsMarker  = "1ST INNINGS"
	SecondInningsMarker = "2ND INNINGS"
)

const matchInfoMarker = "MATCH INFORMATION"

var (
	battingHeaderRegex = regexp.MustCompile(`(?:^|\s)([A-Z][A-Z\s]+?)\s+BATTING`)
	bowlingHeaderRegex = regexp.MustCompile(`(?:^|\s)([A-Z][A-Z\s]+?)\s+BOWLING`)
	ordinalSuffixRegex = regexp.MustCompile(`(?i)(st|nd|rd|th)`)
)

// ParseGrid splits raw export text into rows of trimmed cells. Commas
// inside a pair of double quotes are literal; embedded-quote escaping is
// not supported. Blank and malformed lines still produce a row, so callers
// must tolerate empty cells.
func ParseGrid(raw string) [][]string {
	lines := strings.Split(raw, "\n")
	rows := make([][]string, 0, len(lines))

	for _, line := range lines {
		var cells []string
		var current strings.Builder
		inQuotes := false

		for _, char := range line {
			switch {
			case char == '"':
				inQuotes = !inQuotes
			case char == ',' && !inQuotes:
				cells = append(cells, strings.TrimSpace(current.String()))
				current.Reset()
			default:
				current.WriteRune(char)
			}
		}
		cells = append(cells, strings.TrimSpace(current.String()))
		rows = append(rows, cells)
	}

	return rows
}

// ExtractMatchInfo walks the grid for the MATCH INFORMATION block and maps
// its key/value rows onto MatchInfo. Unrecognized keys are ignored.
func ExtractMatchInfo(rows [][]string) MatchInfo {
	info := MatchInfo{Overs: 20}
	inBlock := false

	for _, row := range rows {
		text := strings.Join(row, " ")

		if strings.Contains(text, matchInfoMarker) {
			inBlock = true
			continue
		}
		if !inBlock {
			continue
		}
		if strings.Contains(text, "===") {
			break
		}
		if len(row) < 2 || row[0] == "" {
			continue
		}

		key := row[0]
		value := row[1]
		switch key {
		case "Match Number":
			info.MatchNumber = value
		case "Series":
			info.Series = value
		case "Venue":
			info.Venue = value
		case "Date":
			info.Date = ParseExportDate(value)
		case "Result":
			info.Result = value
		case "Toss":
			info.Toss = value
		case "Match Type":
			info.MatchType = value
		case "Overs":
			info.Overs = parseIntDefault(value, 20)
		case "Player of the Match":
			info.PlayerOfTheMatch = value
		}
	}

	return info
}

// ParseExportDate parses date strings like "28th January, 2026". Ordinal
// suffixes are stripped globally before parsing. Returns nil when the
// remainder is not a recognizable date.
func ParseExportDate(raw string) *time.Time {
	cleaned := strings.TrimSpace(ordinalSuffixRegex.ReplaceAllString(raw, ""))
	if cleaned == "" {
		return nil
	}
	cleaned = strings.Join(strings.Fields(cleaned), " ")

	layouts := []string{
		"2 January, 2006",
		"2 January 2006",
		"January 2, 2006",
		"January 2 2006",
		"2 Jan, 2006",
		"2 Jan 2006",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, cleaned); err == nil {
			parsed = parsed.UTC()
			return &parsed
		}
	}

	return nil
}

type extractSection int

const (
	sectionNone extractSection = iota
	sectionBatting
	sectionBowling
	sectionFallOfWickets
)

// ExtractInnings scans the full grid for the innings identified by marker
// and collects its batting, bowling, extras, totals, fall-of-wickets and
// did-not-bat data. Scanning stops when the other innings' marker shows up
// so sections cannot bleed into each other. Rows that fail to parse are
// skipped, never fatal: the export format drifts and a bad row must not
// sink the import.
func ExtractInnings(rows [][]string, marker string) Innings {
	innings := Innings{}

	other := SecondInningsMarker
	if marker == SecondInningsMarker {
		other = FirstInningsMarker
	}

	section := sectionNone
	found := false

	for _, row := range rows {
		text := strings.Join(row, " ")

		if strings.Contains(text, marker) && strings.Contains(text, "BATTING") {
			if m := battingHeaderRegex.FindStringSubmatch(text); m != nil {
				innings.BattingTeam = strings.TrimSpace(m[1])
			}
			section = sectionBatting
			found = true
			continue
		}
		if strings.Contains(text, marker) && strings.Contains(text, "BOWLING") {
			if m := bowlingHeaderRegex.FindStringSubmatch(text); m != nil {
				innings.BowlingTeam = strings.TrimSpace(m[1])
			}
			section = sectionBowling
			continue
		}

		if !found {
			continue
		}
		if strings.Contains(text, other) {
			break
		}
		if cell(row, 0) == "Name" {
			continue
		}
		if strings.Contains(text, "===") && section != sectionFallOfWickets {
			continue
		}

		switch section {
		case sectionBatting:
			parseBattingRow(&innings, row, &section)
		case sectionBowling:
			if done := parseBowlingRow(&innings, row); done {
				return innings
			}
		case sectionFallOfWickets:
			if second := cell(row, 1); second != "" {
				innings.FallOfWickets = append(innings.FallOfWickets, second)
			}
			if strings.Contains(text, "===") || cell(row, 1) == "" {
				section = sectionNone
			}
		}
	}

	return innings
}

func parseBattingRow(innings *Innings, row []string, section *extractSection) {
	name := cell(row, 0)

	switch name {
	case "":
		return
	case "Extras":
		innings.Extras = Extras{
			Details: cell(row, 1),
			Total:   parseIntDefault(cell(row, 2), 0),
		}
		return
	case "TOTAL":
		innings.Total = InningsTotal{
			Wickets: cell(row, 1),
			Runs:    parseIntDefault(cell(row, 2), 0),
			Overs:   strings.TrimSpace(strings.ReplaceAll(cell(row, 3), " overs", "")),
			RunRate: parseFloatDefault(strings.TrimSpace(strings.ReplaceAll(cell(row, 4), "Run Rate:", "")), 0),
		}
		return
	case "Did Not Bat":
		innings.DidNotBat = splitNames(cell(row, 1))
		return
	case "Fall of Wickets":
		*section = sectionFallOfWickets
		return
	}

	if len(row) < 3 {
		return
	}

	runs, err := strconv.Atoi(cell(row, 2))
	if err != nil {
		return
	}

	innings.Batting = append(innings.Batting, BattingPerformance{
		PlayerName: name,
		Dismissal:  cell(row, 1),
		Runs:       runs,
		Balls:      parseIntDefault(cell(row, 3), 0),
		Fours:      parseIntDefault(cell(row, 4), 0),
		Sixes:      parseIntDefault(cell(row, 5), 0),
		StrikeRate: parseFloatDefault(cell(row, 6), 0),
	})
}

// parseBowlingRow reports true when the innings' bowling listing has ended
// (a NOTE: footer terminates the whole innings scan).
func parseBowlingRow(innings *Innings, row []string) bool {
	name := cell(row, 0)
	if strings.Contains(name, "NOTE:") {
		return true
	}
	if name == "" || len(row) < 2 {
		return false
	}

	overs, err := strconv.ParseFloat(cell(row, 1), 64)
	if err != nil {
		return false
	}

	innings.Bowling = append(innings.Bowling, BowlingPerformance{
		PlayerName: name,
		Overs:      overs,
		Maidens:    parseIntDefault(cell(row, 2), 0),
		Runs:       parseIntDefault(cell(row, 3), 0),
		Wickets:    parseIntDefault(cell(row, 4), 0),
		Economy:    parseFloatDefault(cell(row, 5), 0),
	})
	return false
}

func splitNames(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func parseIntDefault(value string, fallback int) int {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return parsed
}

func parseFloatDefault(value string, fallback float64) float64 {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return fallback
	}
	return parsed
}
