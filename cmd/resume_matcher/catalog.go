package main

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/resume-matcher/internal/catalog"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and validate role catalogs",
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a role catalog JSON file",
	Long:  "Checks a role catalog against schemas/role_catalog.schema.json and the loader rules (unique role names, unique skills per role). Without a path the built-in catalog is checked.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCatalogValidate,
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog roles with their skills in learning order",
	Args:  cobra.NoArgs,
	RunE:  runCatalogList,
}

var catalogListJSON bool

func init() {
	catalogCmd.PersistentFlags().String("catalog", "", "Path to a role catalog JSON file (default: built-in catalog)")
	catalogListCmd.Flags().BoolVar(&catalogListJSON, "json", false, "Print the catalog as JSON")

	catalogCmd.AddCommand(catalogValidateCmd)
	catalogCmd.AddCommand(catalogListCmd)
	rootCmd.AddCommand(catalogCmd)
}

func runCatalogValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	path := cfg.CatalogPath
	if len(args) == 1 {
		path = args[0]
	}

	cat, err := catalog.Load(path)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✅ Validation passed: %s (%d roles)\n", catalogSource(path), cat.Len())
	return nil
}

func runCatalogList(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("failed to load role catalog: %w", err)
	}

	summaries := cat.Summaries()

	if catalogListJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(summaries)
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintRoles(summaries)
	return nil
}
