// Command token mints a signed access token for a user id. It is meant for
// local development and smoke tests against a running server.
//
// Usage:
//
//	token --user=alice
//
// Reads the AUTH_* variables from the environment.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/heartmarshall/discussion-backend/internal/auth"
	"github.com/heartmarshall/discussion-backend/internal/config"
)

func main() {
	userID := flag.String("user", "", "user id to put in the token subject")
	flag.Parse()

	if *userID == "" {
		fmt.Fprintln(os.Stderr, "Usage: token --user=<id>")
		os.Exit(1)
	}

	var cfg config.AuthConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("load auth config: %v", err)
	}

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTokenTTL)
	token, err := jwtManager.GenerateAccessToken(*userID)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}

	fmt.Println(token)
}
