package main

import (
	"os"

	"github.com/fekuna/omnipos-register/internal/cli"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load() // Load .env file if it exists

	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
