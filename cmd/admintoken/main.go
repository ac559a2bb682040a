// Command admintoken prints a bearer token for the /admin history endpoints.
//
//	go run ./cmd/admintoken -sub ops -ttl 24h
//
// The signing secret is read the same way the server reads it, so a .env
// file is honored.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/puzzle-solver/internal/httpserver"
)

func main() {
	sub := flag.String("sub", "admin", "token subject")
	ttl := flag.Duration("ttl", 12*time.Hour, "token lifetime")
	flag.Parse()

	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if os.Getenv("ADMIN_JWT_SECRET") == "" {
		log.Warn().Msg("ADMIN_JWT_SECRET not set, signing with the development secret")
	}
	cfg := httpserver.ConfigFromEnv()
	token, exp, err := httpserver.SignAdminToken(cfg.AdminSecret, *sub, *ttl)
	if err != nil {
		log.Fatal().Err(err).Msg("sign token")
	}
	log.Info().Str("sub", *sub).Time("expires", exp).Msg("token issued")
	fmt.Println(token)
}
