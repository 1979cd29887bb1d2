package app

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/dealvoy/source-registry-server/internal/config"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Inspect the source catalog",
}

var sourcesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered sources",
	RunE:  runSourcesList,
}

func init() {
	sourcesListCmd.Flags().String("category", "", "Only list sources in this category")
	sourcesListCmd.Flags().String("config", "", "Path to configuration file (YAML format)")
	sourcesCmd.AddCommand(sourcesListCmd)
}

// loadConfigFromFlag loads configuration from a command's --config flag
func loadConfigFromFlag(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")

	var opts []config.Option
	if path != "" {
		opts = append(opts, config.WithConfigPath(path))
	}

	cfg, err := config.Load(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func runSourcesList(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfigFromFlag(cmd)
	if err != nil {
		return err
	}

	reg, err := buildRegistry(cfg)
	if err != nil {
		return err
	}

	names := reg.Names()
	if category, _ := cmd.Flags().GetString("category"); category != "" {
		names = reg.SourcesByCategory(category)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Name", "Category", "Provider", "Requests", "Successful", "Description"})

	for _, name := range names {
		info, ok := reg.SourceInfo(name)
		if !ok {
			continue
		}
		err := table.Append([]string{
			info.Name,
			info.Category,
			info.Provider,
			strconv.FormatInt(info.Stats.TotalRequests, 10),
			strconv.FormatInt(info.Stats.SuccessfulRequests, 10),
			info.Description,
		})
		if err != nil {
			return fmt.Errorf("failed to render source row: %w", err)
		}
	}

	return table.Render()
}
