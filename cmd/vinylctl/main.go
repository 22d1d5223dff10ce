// Package main is the entry point for the vinylctl CLI client.
package main

import (
	"github.com/clareta27/vinyl-backend/cmd/vinylctl/cmd"
)

func main() {
	cmd.Execute()
}
