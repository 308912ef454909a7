package main

import (
	"github.com/joho/godotenv"

	"github.com/cardnight/ledger/internal/cli"
)

func main() {
	// CARDNIGHT_SERVER may come from a local .env
	_ = godotenv.Load()

	cli.Execute()
}
