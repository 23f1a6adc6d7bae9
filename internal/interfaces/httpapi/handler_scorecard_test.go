package httpapi

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/crickstack/scorecard-api/internal/infrastructure/repository/memory"
	"github.com/crickstack/scorecard-api/internal/platform/id"
	"github.com/crickstack/scorecard-api/internal/platform/logging"
	"github.com/crickstack/scorecard-api/internal/usecase"
)

const testExportCSV = `=== MATCH INFORMATION ===
Date,"28th January, 2026"
Result,India won by 5 wickets
Overs,20
=== 1ST INNINGS - NEW ZEALAND BATTING ===
Devon Conway,c Kohli b Bumrah,45,34,5,1,132.35
Kane Williamson,b Kuldeep,38,30,4,0,126.67
TOTAL,6,178,(20 overs),Run Rate: 8.90
=== 1ST INNINGS - INDIA BOWLING ===
Jasprit Bumrah,4,0,28,2,7.00
=== 2ND INNINGS - INDIA BATTING ===
Virat Kohli,not out,78,52,8,3,150.00
TOTAL,5,181,(19.3 overs),Run Rate: 9.28
=== 2ND INNINGS - NEW ZEALAND BOWLING ===
Trent Boult,4,0,32,2,8.00
`

func newTestRouter() http.Handler {
	matchRepo := memory.NewMatchRepository(memory.SeedMatches())
	service := usecase.NewScorecardService(
		matchRepo,
		memory.NewScorecardRepository(),
		usecase.NewMatchCorrelator(matchRepo),
		usecase.NewPlayerResolver(memory.NewPlayerRepository(memory.SeedPlayers())),
		id.NewRandomGenerator(),
		logging.NewNop(),
	)
	return NewRouter(NewHandler(service, logging.NewNop()), logging.NewNop(), []string{"*"})
}

func postImport(t *testing.T, router http.Handler, payload map[string]any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := sonic.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal request payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/v1/admin/import-scorecard", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestImportScorecardEndpoint(t *testing.T) {
	router := newTestRouter()

	rec := postImport(t, router, map[string]any{"csvData": testExportCSV})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Data importResultDTO `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if !envelope.Data.Success {
		t.Fatalf("import should succeed: %+v", envelope.Data)
	}
	if envelope.Data.MatchID != memory.MatchIDIndNz {
		t.Fatalf("unexpected match id: got=%s", envelope.Data.MatchID)
	}
	if envelope.Data.ScorecardID == "" {
		t.Fatal("expected a scorecard id in the response")
	}

	// The scorecard is now retrievable by match.
	getReq := httptest.NewRequest(http.MethodGet, "/v1/admin/scorecards/"+memory.MatchIDIndNz, nil)
	getRec := httptest.NewRecorder()
	router.ServeHTTP(getRec, getReq)
	if getRec.Code != http.StatusOK {
		t.Fatalf("get scorecard: expected 200, got %d", getRec.Code)
	}

	var scEnvelope struct {
		Data scorecardDTO `json:"data"`
	}
	if err := sonic.Unmarshal(getRec.Body.Bytes(), &scEnvelope); err != nil {
		t.Fatalf("unmarshal scorecard response: %v", err)
	}
	if scEnvelope.Data.FirstInnings.Total.Runs != 178 {
		t.Fatalf("unexpected first innings total: %d", scEnvelope.Data.FirstInnings.Total.Runs)
	}
	if scEnvelope.Data.SecondInnings.Total.Runs != 181 {
		t.Fatalf("unexpected second innings total: %d", scEnvelope.Data.SecondInnings.Total.Runs)
	}
}

func TestImportScorecardEndpoint_InvalidPayload(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/import-scorecard", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("malformed JSON: expected 400, got %d", rec.Code)
	}

	rec = postImport(t, router, map[string]any{"matchId": "whatever"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing csvData: expected 400, got %d", rec.Code)
	}
}

func TestGetScorecardByMatchEndpoint_NotFound(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/scorecards/"+memory.MatchIDEngPak, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for match without scorecard, got %d", rec.Code)
	}
}

func TestDeleteScorecardEndpoint(t *testing.T) {
	router := newTestRouter()

	rec := postImport(t, router, map[string]any{"csvData": testExportCSV})
	var envelope struct {
		Data importResultDTO `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal import response: %v", err)
	}
	if envelope.Data.ScorecardID == "" {
		t.Fatalf("import did not return a scorecard id: %+v", envelope.Data)
	}

	delReq := httptest.NewRequest(http.MethodDelete, "/v1/admin/scorecards/"+envelope.Data.ScorecardID, nil)
	delRec := httptest.NewRecorder()
	router.ServeHTTP(delRec, delReq)
	if delRec.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d: %s", delRec.Code, delRec.Body.String())
	}

	delRec = httptest.NewRecorder()
	router.ServeHTTP(delRec, httptest.NewRequest(http.MethodDelete, "/v1/admin/scorecards/"+envelope.Data.ScorecardID, nil))
	if delRec.Code != http.StatusNotFound {
		t.Fatalf("second delete: expected 404, got %d", delRec.Code)
	}
}

func TestListMatchesWithoutScorecardsEndpoint(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/matches-without-scorecards", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var envelope struct {
		Data []matchSummaryDTO `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(envelope.Data) != 3 {
		t.Fatalf("expected 3 pending matches, got %d", len(envelope.Data))
	}
}

func TestListScorecardsEndpoint(t *testing.T) {
	router := newTestRouter()

	if rec := postImport(t, router, map[string]any{"csvData": testExportCSV}); rec.Code != http.StatusOK {
		t.Fatalf("import: expected 200, got %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/scorecards", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var envelope struct {
		Data []scorecardListItemDTO `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(envelope.Data) != 1 {
		t.Fatalf("expected one scorecard, got %d", len(envelope.Data))
	}
	if envelope.Data[0].Match == nil || envelope.Data[0].Match.ID != memory.MatchIDIndNz {
		t.Fatalf("list item must hydrate its match: %+v", envelope.Data[0].Match)
	}
}

func TestHealthzEndpoint(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
