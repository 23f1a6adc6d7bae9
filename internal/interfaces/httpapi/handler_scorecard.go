package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/valyala/bytebufferpool"

	"github.com/crickstack/scorecard-api/internal/domain/match"
	"github.com/crickstack/scorecard-api/internal/domain/scorecard"
	"github.com/crickstack/scorecard-api/internal/usecase"
)

const defaultImportedBy = "admin"

func (h *Handler) ImportScorecard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ImportScorecard")
	defer span.End()

	// Raw exports run to a few hundred KB; buffer them through a pool
	// instead of allocating per request.
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if _, err := buf.ReadFrom(r.Body); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: read request body: %v", usecase.ErrInvalidInput, err))
		return
	}

	var req importScorecardRequest
	if err := sonic.Unmarshal(buf.Bytes(), &req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	importedBy := strings.TrimSpace(req.ImportedBy)
	if importedBy == "" {
		importedBy = defaultImportedBy
	}

	result, err := h.scorecardService.ImportScorecard(ctx, req.CSVData, req.MatchID, importedBy)
	if err != nil {
		h.logger.ErrorContext(ctx, "import scorecard failed", "match_id", req.MatchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, importResultToDTO(result))
}

func (h *Handler) ListScorecards(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListScorecards")
	defer span.End()

	items, err := h.scorecardService.ListScorecards(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list scorecards failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]scorecardListItemDTO, 0, len(items))
	for _, item := range items {
		out = append(out, scorecardListItemToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetScorecardByMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetScorecardByMatch")
	defer span.End()

	matchID := r.PathValue("matchID")
	sc, err := h.scorecardService.GetScorecardByMatchID(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get scorecard failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, scorecardToDTO(sc))
}

func (h *Handler) DeleteScorecard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteScorecard")
	defer span.End()

	scorecardID := r.PathValue("scorecardID")
	if err := h.scorecardService.DeleteScorecard(ctx, scorecardID); err != nil {
		h.logger.WarnContext(ctx, "delete scorecard failed", "scorecard_id", scorecardID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{"deleted": true, "id": scorecardID})
}

func (h *Handler) ListMatchesWithoutScorecards(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchesWithoutScorecards")
	defer span.End()

	matches, err := h.scorecardService.ListMatchesWithoutScorecard(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list matches without scorecards failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]matchSummaryDTO, 0, len(matches))
	for _, m := range matches {
		out = append(out, matchToSummaryDTO(m))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

type importScorecardRequest struct {
	CSVData    string `json:"csvData" validate:"required"`
	MatchID    string `json:"matchId"`
	ImportedBy string `json:"importedBy" validate:"max=100"`
}

type importResultDTO struct {
	Success          bool     `json:"success"`
	MatchFound       bool     `json:"matchFound"`
	MatchID          string   `json:"matchId,omitempty"`
	PlayersMatched   int      `json:"playersMatched"`
	PlayersUnmatched int      `json:"playersUnmatched"`
	UnmatchedPlayers []string `json:"unmatchedPlayers"`
	Errors           []string `json:"errors"`
	ScorecardID      string   `json:"scorecardId,omitempty"`
}

type teamRefDTO struct {
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
}

type matchSummaryDTO struct {
	ID                  string     `json:"id"`
	Team1               teamRefDTO `json:"team1"`
	Team2               teamRefDTO `json:"team2"`
	MatchDate           string     `json:"matchDate"`
	Venue               string     `json:"venue"`
	Status              string     `json:"status"`
	IsTeamSelectionOpen bool       `json:"isTeamSelectionOpen"`
	ScorecardID         string     `json:"scorecardId,omitempty"`
}

type scorecardListItemDTO struct {
	ID                string           `json:"id"`
	MatchID           string           `json:"matchId"`
	ExternalMatchCode string           `json:"externalMatchCode,omitempty"`
	TotalMatchScore   int              `json:"totalMatchScore"`
	ImportedAt        string           `json:"importedAt"`
	ImportedBy        string           `json:"importedBy"`
	Match             *matchSummaryDTO `json:"match,omitempty"`
}

type matchInfoDTO struct {
	MatchNumber      string `json:"matchNumber,omitempty"`
	Series           string `json:"series,omitempty"`
	Venue            string `json:"venue,omitempty"`
	Date             string `json:"date,omitempty"`
	Result           string `json:"result,omitempty"`
	Toss             string `json:"toss,omitempty"`
	MatchType        string `json:"matchType,omitempty"`
	Overs            int    `json:"overs"`
	PlayerOfTheMatch string `json:"playerOfTheMatch,omitempty"`
}

type battingPerformanceDTO struct {
	PlayerID   string  `json:"playerId,omitempty"`
	PlayerName string  `json:"playerName"`
	Runs       int     `json:"runs"`
	Balls      int     `json:"balls"`
	Fours      int     `json:"fours"`
	Sixes      int     `json:"sixes"`
	StrikeRate float64 `json:"strikeRate"`
	Dismissal  string  `json:"dismissal"`
	IsMatched  bool    `json:"isMatched"`
}

type bowlingPerformanceDTO struct {
	PlayerID   string  `json:"playerId,omitempty"`
	PlayerName string  `json:"playerName"`
	Overs      float64 `json:"overs"`
	Maidens    int     `json:"maidens"`
	Runs       int     `json:"runs"`
	Wickets    int     `json:"wickets"`
	Economy    float64 `json:"economy"`
	IsMatched  bool    `json:"isMatched"`
}

type extrasDTO struct {
	Total   int    `json:"total"`
	Details string `json:"details"`
}

type inningsTotalDTO struct {
	Runs    int     `json:"runs"`
	Wickets string  `json:"wickets"`
	Overs   string  `json:"overs"`
	RunRate float64 `json:"runRate"`
}

type inningsDTO struct {
	BattingTeam   string                  `json:"battingTeam"`
	BowlingTeam   string                  `json:"bowlingTeam"`
	Batting       []battingPerformanceDTO `json:"batting"`
	Bowling       []bowlingPerformanceDTO `json:"bowling"`
	Extras        extrasDTO               `json:"extras"`
	Total         inningsTotalDTO         `json:"total"`
	FallOfWickets []string                `json:"fallOfWickets"`
	DidNotBat     []string                `json:"didNotBat"`
}

type statLeaderDTO struct {
	PlayerName string `json:"playerName"`
	Count      int    `json:"count"`
	PlayerID   string `json:"playerId,omitempty"`
}

type computedStatsDTO struct {
	TotalMatchScore int           `json:"totalMatchScore"`
	MostSixes       statLeaderDTO `json:"mostSixes"`
	MostFours       statLeaderDTO `json:"mostFours"`
	MostWickets     statLeaderDTO `json:"mostWickets"`
	PowerplayScore  int           `json:"powerplayScore"`
	FiftiesCount    int           `json:"fiftiesCount"`
}

type processingStatusDTO struct {
	FantasyPointsCalculated bool `json:"fantasyPointsCalculated"`
	PredictionsEvaluated    bool `json:"predictionsEvaluated"`
	LeaderboardUpdated      bool `json:"leaderboardUpdated"`
}

type scorecardDTO struct {
	ID                string              `json:"id"`
	MatchID           string              `json:"matchId"`
	ExternalMatchCode string              `json:"externalMatchCode,omitempty"`
	MatchInfo         matchInfoDTO        `json:"matchInfo"`
	FirstInnings      inningsDTO          `json:"firstInnings"`
	SecondInnings     inningsDTO          `json:"secondInnings"`
	ComputedStats     computedStatsDTO    `json:"computedStats"`
	ProcessingStatus  processingStatusDTO `json:"processingStatus"`
	ImportedAt        string              `json:"importedAt"`
	ImportedBy        string              `json:"importedBy"`
}

func importResultToDTO(result scorecard.ImportResult) importResultDTO {
	return importResultDTO{
		Success:          result.Success,
		MatchFound:       result.MatchFound,
		MatchID:          result.MatchID,
		PlayersMatched:   result.PlayersMatched,
		PlayersUnmatched: result.PlayersUnmatched,
		UnmatchedPlayers: result.UnmatchedPlayers,
		Errors:           result.Errors,
		ScorecardID:      result.ScorecardID,
	}
}

func matchToSummaryDTO(m match.Match) matchSummaryDTO {
	return matchSummaryDTO{
		ID:                  m.ID,
		Team1:               teamRefDTO{Name: m.Team1.Name, ShortName: m.Team1.ShortName},
		Team2:               teamRefDTO{Name: m.Team2.Name, ShortName: m.Team2.ShortName},
		MatchDate:           m.MatchDate.UTC().Format(time.RFC3339),
		Venue:               m.Venue,
		Status:              m.Status,
		IsTeamSelectionOpen: m.IsTeamSelectionOpen,
		ScorecardID:         m.ScorecardID,
	}
}

func scorecardListItemToDTO(item usecase.ScorecardWithMatch) scorecardListItemDTO {
	out := scorecardListItemDTO{
		ID:                item.Scorecard.ID,
		MatchID:           item.Scorecard.MatchID,
		ExternalMatchCode: item.Scorecard.ExternalMatchCode,
		TotalMatchScore:   item.Scorecard.ComputedStats.TotalMatchScore,
		ImportedAt:        item.Scorecard.ImportedAt.UTC().Format(time.RFC3339),
		ImportedBy:        item.Scorecard.ImportedBy,
	}
	if item.Match != nil {
		summary := matchToSummaryDTO(*item.Match)
		out.Match = &summary
	}
	return out
}

func scorecardToDTO(sc scorecard.Scorecard) scorecardDTO {
	return scorecardDTO{
		ID:                sc.ID,
		MatchID:           sc.MatchID,
		ExternalMatchCode: sc.ExternalMatchCode,
		MatchInfo:         matchInfoToDTO(sc.MatchInfo),
		FirstInnings:      inningsToDTO(sc.FirstInnings),
		SecondInnings:     inningsToDTO(sc.SecondInnings),
		ComputedStats: computedStatsDTO{
			TotalMatchScore: sc.ComputedStats.TotalMatchScore,
			MostSixes:       statLeaderToDTO(sc.ComputedStats.MostSixes),
			MostFours:       statLeaderToDTO(sc.ComputedStats.MostFours),
			MostWickets:     statLeaderToDTO(sc.ComputedStats.MostWickets),
			PowerplayScore:  sc.ComputedStats.PowerplayScore,
			FiftiesCount:    sc.ComputedStats.FiftiesCount,
		},
		ProcessingStatus: processingStatusDTO{
			FantasyPointsCalculated: sc.ProcessingStatus.FantasyPointsCalculated,
			PredictionsEvaluated:    sc.ProcessingStatus.PredictionsEvaluated,
			LeaderboardUpdated:      sc.ProcessingStatus.LeaderboardUpdated,
		},
		ImportedAt: sc.ImportedAt.UTC().Format(time.RFC3339),
		ImportedBy: sc.ImportedBy,
	}
}

func matchInfoToDTO(info scorecard.MatchInfo) matchInfoDTO {
	out := matchInfoDTO{
		MatchNumber:      info.MatchNumber,
		Series:           info.Series,
		Venue:            info.Venue,
		Result:           info.Result,
		Toss:             info.Toss,
		MatchType:        info.MatchType,
		Overs:            info.Overs,
		PlayerOfTheMatch: info.PlayerOfTheMatch,
	}
	if info.Date != nil {
		out.Date = info.Date.UTC().Format(time.RFC3339)
	}
	return out
}

func inningsToDTO(innings scorecard.Innings) inningsDTO {
	batting := make([]battingPerformanceDTO, 0, len(innings.Batting))
	for _, row := range innings.Batting {
		batting = append(batting, battingPerformanceDTO{
			PlayerID:   row.PlayerID,
			PlayerName: row.PlayerName,
			Runs:       row.Runs,
			Balls:      row.Balls,
			Fours:      row.Fours,
			Sixes:      row.Sixes,
			StrikeRate: row.StrikeRate,
			Dismissal:  row.Dismissal,
			IsMatched:  row.IsMatched,
		})
	}

	bowling := make([]bowlingPerformanceDTO, 0, len(innings.Bowling))
	for _, row := range innings.Bowling {
		bowling = append(bowling, bowlingPerformanceDTO{
			PlayerID:   row.PlayerID,
			PlayerName: row.PlayerName,
			Overs:      row.Overs,
			Maidens:    row.Maidens,
			Runs:       row.Runs,
			Wickets:    row.Wickets,
			Economy:    row.Economy,
			IsMatched:  row.IsMatched,
		})
	}

	return inningsDTO{
		BattingTeam:   innings.BattingTeam,
		BowlingTeam:   innings.BowlingTeam,
		Batting:       batting,
		Bowling:       bowling,
		Extras:        extrasDTO{Total: innings.Extras.Total, Details: innings.Extras.Details},
		Total: inningsTotalDTO{
			Runs:    innings.Total.Runs,
			Wickets: innings.Total.Wickets,
			Overs:   innings.Total.Overs,
			RunRate: innings.Total.RunRate,
		},
		FallOfWickets: append([]string(nil), innings.FallOfWickets...),
		DidNotBat:     append([]string(nil), innings.DidNotBat...),
	}
}

func statLeaderToDTO(leader scorecard.StatLeader) statLeaderDTO {
	return statLeaderDTO{
		PlayerName: leader.PlayerName,
		Count:      leader.Count,
		PlayerID:   leader.PlayerID,
	}
}
