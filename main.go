package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/danielhkuo/invoice-entry/cliparse"
	"github.com/danielhkuo/invoice-entry/db"
	"github.com/danielhkuo/invoice-entry/handlers"
	"github.com/danielhkuo/invoice-entry/middleware"
	"github.com/danielhkuo/invoice-entry/router"
	"github.com/danielhkuo/invoice-entry/session"
	"github.com/danielhkuo/invoice-entry/storage"
)

// setupLogging configures the global logger from LOG_FORMAT and LOG_LEVEL.
func setupLogging() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	if os.Getenv("LOG_FORMAT") == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}

	level := zerolog.InfoLevel
	if s := os.Getenv("LOG_LEVEL"); s != "" {
		parsed, err := zerolog.ParseLevel(s)
		if err != nil {
			log.Warn().Str("level", s).Msg("unknown LOG_LEVEL, using info")
		} else {
			level = parsed
		}
	}
	zerolog.SetGlobalLevel(level)
}

func main() {
	setupLogging()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error parsing flags")
	}

	// Open local storage
	dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Str("type", cfg.DatabaseType).Msg("database connection failed")
	}
	defer dbConn.Close()

	if err := db.CreateSchema(dbConn); err != nil {
		log.Fatal().Err(err).Msg("schema creation failed")
	}
	log.Info().Str("type", cfg.DatabaseType).Msg("database schema ready")

	// Restore the session once; it is passed down explicitly from here.
	ctx := context.Background()
	store := storage.NewSQLStore(dbConn)
	sessions := session.NewStore(store)
	current, err := sessions.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read session")
	}
	if current != nil {
		log.Info().Str("username", current.Username).Msg("session restored")
	}

	ws := handlers.NewWorkspace(ctx, sessions, store, cfg, current)
	defer ws.Close()

	mux := router.NewRouter(dbConn, cfg, ws)

	server := http.Server{
		Handler:           middleware.CORS(mux),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctrlc
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown failed")
		}
	}()

	log.Info().Int("port", cfg.Port).Msg("listening")
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error().Err(err).Msg("server closed")
	} else {
		log.Info().Msg("server closed")
	}
}
