// Command token prints a signed API token for POST /api/v1/news.
package main

import (
	"flag"
	"fmt"
	"log"

	"newsroom/config"
	"newsroom/utils"

	"github.com/joho/godotenv"
)

func main() {
	subject := flag.String("sub", "operator", "operator name recorded in the token")
	ttl := flag.Duration("ttl", utils.DefaultTokenTTL, "token lifetime")
	flag.Parse()

	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	token, err := utils.GenerateJWT(cfg.JWTSecret, *subject, *ttl)
	if err != nil {
		log.Fatalf("Failed to sign token: %v", err)
	}
	fmt.Println(token)
}
