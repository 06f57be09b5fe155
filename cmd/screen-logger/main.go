package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/hirose30/screen-logger/internal/cli"
)

func main() {
	// Load .env if present (ignore error if not found)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
