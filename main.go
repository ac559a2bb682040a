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

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/puzzle-solver/internal/game"
	"github.com/robalobadob/puzzle-solver/internal/gametree"
	"github.com/robalobadob/puzzle-solver/internal/httpserver"
	"github.com/robalobadob/puzzle-solver/internal/words"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if err := words.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}
	dict, common := words.Get().Stats()
	log.Info().Int("dictionary", dict).Int("common", common).Msg("word lists loaded")

	capacity, _ := strconv.Atoi(os.Getenv("HISTORY_CAPACITY"))
	history, closeHistory, err := openHistory(context.Background(), os.Getenv("HISTORY_DB"), capacity)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open solve history")
	}
	defer func() {
		if err := closeHistory(); err != nil {
			log.Warn().Err(err).Msg("close history")
		}
	}()

	solver := game.NewSolver(gametree.NewEngine())
	srv := httpserver.New(httpserver.ConfigFromEnv(), words.Get(), solver, history)
	serve(srv.Handler(), getEnv("PORT", "5175"))
}

// serve runs the HTTP server until SIGINT/SIGTERM, then drains connections.
func serve(h http.Handler, port string) {
	hs := &http.Server{
		Addr:              ":" + port,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	idle := make(chan struct{})
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Info().Msg("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := hs.Shutdown(ctx); err != nil {
			log.Warn().Err(err).Msg("http shutdown")
		}
		close(idle)
	}()

	log.Info().Str("port", port).Msg("starting puzzle-solver")
	if err := hs.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server exited")
	}
	<-idle
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
