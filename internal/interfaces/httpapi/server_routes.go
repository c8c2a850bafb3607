package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerBrowseRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/competitions", handler.ListCompetitions)
	mux.HandleFunc("GET /v1/competitions/{competitionID}", handler.GetCompetition)
	mux.HandleFunc("GET /v1/competitions/{competitionID}/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatch)
	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeam)
}

func registerProxyRoutes(mux *http.ServeMux, proxy http.Handler) {
	if proxy == nil {
		return
	}
	mux.Handle("GET "+ProxyPrefix+"/", proxy)
}
