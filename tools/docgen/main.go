// Package main generates CLI reference documentation for the vinyl-backend
// server and the vinylctl client.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	server "github.com/clareta27/vinyl-backend/cmd/vinyl-backend/cmd"
	client "github.com/clareta27/vinyl-backend/cmd/vinylctl/cmd"
)

func main() {
	output := flag.String("output", "docs/cli", "output directory for generated markdown")
	flag.Parse()

	trees := map[string]*cobra.Command{
		"vinyl-backend": server.Root(),
		"vinylctl":      client.Root(),
	}

	for name, root := range trees {
		if err := generate(root, filepath.Join(*output, name)); err != nil {
			log.Fatalf("generating %s docs: %v", name, err)
		}
	}

	fmt.Printf("CLI docs generated in %s/\n", *output)
}

func generate(root *cobra.Command, dir string) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	root.DisableAutoGenTag = true
	return doc.GenMarkdownTree(root, dir)
}
