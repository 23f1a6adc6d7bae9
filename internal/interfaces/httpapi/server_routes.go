package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/admin/import-scorecard", handler.ImportScorecard)
	mux.HandleFunc("GET /v1/admin/scorecards", handler.ListScorecards)
	mux.HandleFunc("GET /v1/admin/scorecards/{matchID}", handler.GetScorecardByMatch)
	mux.HandleFunc("DELETE /v1/admin/scorecards/{scorecardID}", handler.DeleteScorecard)
	mux.HandleFunc("GET /v1/admin/matches-without-scorecards", handler.ListMatchesWithoutScorecards)
}
