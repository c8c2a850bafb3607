package app

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/football-center/external/footballdata"
	"github.com/riskibarqy/football-center/internal/config"
	"github.com/riskibarqy/football-center/internal/interfaces/httpapi"
	"github.com/riskibarqy/football-center/internal/platform/logging"
	"github.com/riskibarqy/football-center/internal/presentation"
	"github.com/riskibarqy/football-center/internal/usecase"
)

// NewScreens builds the football-data client and the screen factory on top
// of it. The token is only sent in direct mode; in proxy mode the proxy adds
// it.
func NewScreens(cfg config.Config, logger *logging.Logger) *usecase.Screens {
	token := ""
	if cfg.FootballDataMode == config.ModeDirect {
		token = cfg.FootballDataAPIKey
	}
	client := footballdata.NewClient(footballdata.ClientConfig{
		BaseURL: cfg.FootballDataURL(),
		Token:   token,
		Timeout: cfg.FootballDataTimeout,
		Logger:  logger,
	})

	views := usecase.NewViewBuilder(
		presentation.NewCatalog(cfg.DisplayLocale),
		presentation.NewFormatter(cfg.DisplayLocale, cfg.DisplayTimezone),
	)

	return usecase.NewScreens(
		usecase.NewCompetitionService(client),
		usecase.NewMatchService(client),
		usecase.NewTeamService(client),
		views,
		logger,
	)
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	var proxy http.Handler
	if cfg.ProxyEnabled {
		var err error
		proxy, err = httpapi.NewFootballDataProxy(cfg.FootballDataBaseURL, cfg.FootballDataAPIKey, logger)
		if err != nil {
			return nil, fmt.Errorf("build football-data proxy: %w", err)
		}
	}

	handler := httpapi.NewHandler(NewScreens(cfg, logger), logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, proxy)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
