package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"flagfall/bootstrap"
	"flagfall/experiments"
	"flagfall/server"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	experiment := flag.String("experiment", "", "run the named experiment batch instead of the server")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "base random seed for experiment runs")
	flag.Parse()

	if *experiment != "" {
		switch *experiment {
		case "strength":
			experiments.RunStrengthExperiment(*seed)
		default:
			log.Fatal().Str("experiment", *experiment).Msg("unknown experiment")
		}
		return
	}

	cfg, err := bootstrap.Setup(".env")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	manager := server.NewManager()
	handler := server.NewHandler(cfg, manager)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	handler.Routes(r)

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		log.Info().Str("port", cfg.ServerPort).Msg("server is running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs

	log.Info().Msg("received shutdown signal")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}
