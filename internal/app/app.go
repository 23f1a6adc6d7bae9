package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/crickstack/scorecard-api/internal/config"
	"github.com/crickstack/scorecard-api/internal/domain/match"
	"github.com/crickstack/scorecard-api/internal/domain/player"
	"github.com/crickstack/scorecard-api/internal/domain/scorecard"
	"github.com/crickstack/scorecard-api/internal/infrastructure/repository/memory"
	"github.com/crickstack/scorecard-api/internal/infrastructure/repository/postgres"
	"github.com/crickstack/scorecard-api/internal/interfaces/httpapi"
	idgen "github.com/crickstack/scorecard-api/internal/platform/id"
	"github.com/crickstack/scorecard-api/internal/platform/logging"
	"github.com/crickstack/scorecard-api/internal/usecase"
)

// App owns the HTTP server and the storage handle behind it.
type App struct {
	cfg    config.Config
	logger *logging.Logger
	server *http.Server
	db     *sqlx.DB
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	var (
		matchRepo     match.Repository
		playerRepo    player.Repository
		scorecardRepo scorecard.Repository
		db            *sqlx.DB
	)

	if cfg.UseMemoryStore() {
		logger.Info("storage configured", "mode", "memory")
		matchRepo = memory.NewMatchRepository(memory.SeedMatches())
		playerRepo = memory.NewPlayerRepository(memory.SeedPlayers())
		scorecardRepo = memory.NewScorecardRepository()
	} else {
		var err error
		db, err = openDB(cfg)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("ping database: %w", err)
		}
		if cfg.DBSeedOnStart {
			if err := postgres.BootstrapSeed(ctx, db); err != nil {
				_ = db.Close()
				return nil, fmt.Errorf("seed database: %w", err)
			}
		}
		logger.Info("storage configured", "mode", "postgres", "database", dbNameFromURL(cfg.DBURL))
		matchRepo = postgres.NewMatchRepository(db)
		playerRepo = postgres.NewPlayerRepository(db)
		scorecardRepo = postgres.NewScorecardRepository(db)
	}

	scorecardSvc := usecase.NewScorecardService(
		matchRepo,
		scorecardRepo,
		usecase.NewMatchCorrelator(matchRepo),
		usecase.NewPlayerResolver(playerRepo),
		idgen.NewRandomGenerator(),
		logger,
	)

	handler := httpapi.NewHandler(scorecardSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if server.Addr == "" {
		if db != nil {
			_ = db.Close()
		}
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return &App{
		cfg:    cfg,
		logger: logger,
		server: server,
		db:     db,
	}, nil
}

func (a *App) Server() *http.Server {
	return a.server
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
