package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-matcher/internal/catalog"
	"github.com/jonathan/resume-matcher/internal/extraction"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/ranking"
	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match <resume.pdf|resume.docx>",
	Short: "Match a résumé file against the role catalog",
	Long:  "Extracts text from a PDF or DOCX résumé, ranks every catalog role by TF-IDF cosine similarity and prints the best role with the next skills to learn.",
	Args:  cobra.ExactArgs(1),
	RunE:  runMatch,
}

var matchJSON bool

func init() {
	matchCmd.Flags().BoolVar(&matchJSON, "json", false, "Print the API response body as JSON")
	matchCmd.Flags().String("catalog", "", "Path to a role catalog JSON file (default: built-in catalog)")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	path := args[0]
	if !extraction.SupportedExtension(path) {
		return fmt.Errorf("unsupported file type %q: expected .pdf or .docx", filepath.Ext(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read resume file %s: %w", path, err)
	}
	if int64(len(data)) > cfg.MaxUploadBytes {
		return fmt.Errorf("resume file %s is %d bytes, larger than the %d byte limit", path, len(data), cfg.MaxUploadBytes)
	}

	text, err := extraction.Extract(data, filepath.Base(path))
	if err != nil {
		return fmt.Errorf("failed to extract text from %s: %w", path, err)
	}
	if text == "" {
		return fmt.Errorf("no text could be extracted from %s", path)
	}

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("failed to load role catalog: %w", err)
	}

	result, err := ranking.Match(text, cat)
	if err != nil {
		return fmt.Errorf("failed to match resume: %w", err)
	}

	if matchJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result.Response())
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintMatchResult(result)
	return nil
}
