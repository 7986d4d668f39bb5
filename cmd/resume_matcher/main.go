// Package main provides the entry point for the Resume Matcher HTTP API server and CLI.
package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "resume_matcher",
	Short:         "Resume Matcher HTTP API Server",
	Long:          "Resume Matcher ranks a PDF or DOCX résumé against a catalog of job roles using TF-IDF cosine similarity and recommends the next skills to learn.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var configPath string

// flagKeys maps command-line flags to the config keys they override.
var flagKeys = map[string]string{
	"debug":    "log.debug",
	"log-json": "log.json",
	"port":     "port",
	"catalog":  "catalog_path",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML or JSON config file")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("log-json", false, "Write logs as JSON")
}

// loadConfig layers defaults, the config file, environment variables and
// whichever of cmd's flags map to config keys.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	v := config.NewViper()
	for name, key := range flagKeys {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return nil, fmt.Errorf("failed to bind flag --%s: %w", name, err)
		}
	}
	return config.Load(v, configPath)
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
