package main

import (
	"github.com/joho/godotenv"
)

func main() {
	// Load environment from .env files for local development.
	// Prefer the Rails app .env if present.
	_ = godotenv.Load("../benchmark_ui/.env")
	_ = godotenv.Load(".env")

	configureLogging()
	Execute()
}
