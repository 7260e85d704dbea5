// Package cmd implements the CLI application to manage expense tracking.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/tracker"

	// Load a .env file before the flag defaults below read the environment.
	_ "github.com/joho/godotenv/autoload"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var registryFile = flag.String("registry-file", getEnv("XPT_REGISTRY_FILE", "users.txt"), "Path to the registry file holding all user accounts")
var dataDir = flag.String("data-dir", getEnv("XPT_DATA_DIR", "."), "Directory where per-user report files are written")

// getEnv returns the environment value for key, or fallback when unset.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// loadRegistry loads the account registry from the app registry file.
func loadRegistry() (*tracker.Registry, error) {
	if _, err := os.Stat(*registryFile); errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, registry file does not exist, starting with an empty registry")
	}
	return tracker.LoadRegistry(*registryFile)
}

// saveRegistry persists the account registry to the app registry file.
func saveRegistry(registry *tracker.Registry) error {
	return tracker.SaveRegistry(*registryFile, registry)
}

// printMarkdown renders markdown for the terminal and prints it. It falls
// back to the raw markdown when rendering fails.
func printMarkdown(markdown string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err == nil {
		if out, rerr := r.Render(markdown); rerr == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Println(markdown)
}
