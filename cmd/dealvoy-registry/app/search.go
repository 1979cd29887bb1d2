package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dealvoy/source-registry-server/internal/service"
	"github.com/dealvoy/source-registry-server/internal/service/inmemory"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Run a one-shot product search across sources",
	Long: `Run a product search across the registered sources from the command line,
without starting the API server. Failing sources are skipped; the output lists
only sources that returned results.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringSlice("sources", nil, "Only query these sources (bypasses the category filter)")
	searchCmd.Flags().StringSlice("categories", nil, "Only query sources in these categories")
	searchCmd.Flags().Int("limit", 0, "Maximum results per source")
	searchCmd.Flags().String("config", "", "Path to configuration file (YAML format)")
	searchCmd.Flags().String("format", "", "Output format (json)")
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	cfg, err := loadConfigFromFlag(cmd)
	if err != nil {
		return err
	}

	reg, err := buildRegistry(cfg)
	if err != nil {
		return err
	}

	svc, err := inmemory.New(reg,
		inmemory.WithDefaultMaxResults(cfg.Search.MaxResultsPerSource),
	)
	if err != nil {
		return fmt.Errorf("failed to create search service: %w", err)
	}

	opts := []service.Option[service.SearchProductsOptions]{
		service.WithQuery(query),
	}
	if sources, _ := cmd.Flags().GetStringSlice("sources"); len(sources) > 0 {
		opts = append(opts, service.WithSources(sources...))
	}
	if categories, _ := cmd.Flags().GetStringSlice("categories"); len(categories) > 0 {
		opts = append(opts, service.WithCategories(categories...))
	}
	if limit, _ := cmd.Flags().GetInt("limit"); limit > 0 {
		opts = append(opts, service.WithMaxResultsPerSource(limit))
	}

	results, err := svc.SearchProducts(context.Background(), opts...)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	format, _ := cmd.Flags().GetString("format")
	if format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Printf("No results for %q\n", query)
		return nil
	}

	fmt.Printf("Results for %q:\n", query)
	for source, records := range results {
		fmt.Printf("  %s: %d records\n", source, len(records))
	}
	return nil
}
