package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/barx10/treningsappen-wife-sub000/internal/aiplan"
	"github.com/barx10/treningsappen-wife-sub000/internal/e2etest"
	"github.com/barx10/treningsappen-wife-sub000/internal/envstruct"
	"github.com/barx10/treningsappen-wife-sub000/internal/errors"
	"github.com/barx10/treningsappen-wife-sub000/internal/flightrecorder"
	"github.com/barx10/treningsappen-wife-sub000/internal/kvstore"
	"github.com/barx10/treningsappen-wife-sub000/internal/logging"
	"github.com/barx10/treningsappen-wife-sub000/internal/sqlite"
	"github.com/barx10/treningsappen-wife-sub000/internal/workout"
)

type application struct {
	logger         *slog.Logger
	sessionManager *scs.SessionManager
	workoutService *workout.Service
	planService    *aiplan.Service
	flightRecorder *flightrecorder.Service
}

type config struct {
	// Addr is the address to listen on. It's possible to choose the address dynamically with localhost:0.
	Addr string `env:"TRENINGSAPP_ADDR" envDefault:"localhost:8080"`
	// SqliteURL is the URL to the SQLite database. You can use ":memory:" for an ethereal in-memory database.
	SqliteURL string `env:"TRENINGSAPP_SQLITE_URL" envDefault:"./treningsappen.sqlite3"`
	// OpenAIAPIKey enables the AI plan endpoints when set. Without it the
	// server still runs; only /api/plan and /api/ai-recommendations degrade.
	OpenAIAPIKey string `env:"TRENINGSAPP_OPENAI_API_KEY" envDefault:""`
	// TracesDirectory is the optional directory where timeout flight recorder traces are written.
	TracesDirectory string `env:"TRENINGSAPP_TRACES_DIR" envDefault:""`
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var (
		cancel context.CancelFunc
		err    error
	)

	ctx, cancel = signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	var cfg config
	if err = envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}

	db, err := sqlite.NewDatabase(ctx, cfg.SqliteURL, logger)
	if err != nil {
		return errors.Wrap(err, "open db", slog.String("url", cfg.SqliteURL))
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "connected to db", slog.String(e2etest.LogDsnKey, cfg.SqliteURL))

	store := kvstore.New(db)
	workoutService := workout.NewService(store, logger)
	if err = workoutService.RefreshBuiltinExercises(ctx); err != nil {
		return errors.Wrap(err, "refresh builtin exercises")
	}

	var planService *aiplan.Service
	if cfg.OpenAIAPIKey != "" {
		planService = aiplan.NewService(cfg.OpenAIAPIKey, store, logger)
	} else {
		logger.LogAttrs(ctx, slog.LevelInfo, "no OpenAI API key configured, AI plan endpoints disabled")
	}

	var recorder *flightrecorder.Service
	if cfg.TracesDirectory != "" {
		if recorder, err = flightrecorder.New(flightrecorder.Config{
			Logger:          logger,
			TracesDirectory: cfg.TracesDirectory,
		}); err != nil {
			return errors.Wrap(err, "new flight recorder")
		}
		if err = recorder.Start(ctx); err != nil {
			return errors.Wrap(err, "start flight recorder")
		}
		defer recorder.Stop(ctx)
	}

	app := application{
		logger:         logger,
		sessionManager: initializeSessionManager(db),
		workoutService: workoutService,
		planService:    planService,
		flightRecorder: recorder,
	}

	if err = app.configureAndStartServer(ctx, cfg.Addr, app.routes()); err != nil {
		return errors.Wrap(err, "start server")
	}
	return nil
}

func initializeSessionManager(dbs *sqlite.Database) *scs.SessionManager {
	sessionManager := scs.New()
	sessionManager.Store = sqlite3store.NewWithCleanupInterval(dbs.ReadWrite, 24*time.Hour) //nolint:mnd // day
	sessionManager.Lifetime = 12 * time.Hour                                                //nolint:mnd // half a day
	sessionManager.Cookie.Persist = true
	sessionManager.Cookie.Secure = true
	sessionManager.Cookie.HttpOnly = true
	sessionManager.Cookie.SameSite = http.SameSiteStrictMode
	return sessionManager
}

func main() {
	ctx := context.Background()
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)
	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failure starting application", errors.SlogError(err))
		os.Exit(1)
	}
}
