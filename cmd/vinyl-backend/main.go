// Package main is the entry point for the vinyl-backend API server.
package main

import (
	"os"

	"github.com/clareta27/vinyl-backend/cmd/vinyl-backend/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
