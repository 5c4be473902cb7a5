package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/yungbote/recipegraph-backend/internal/app"
)

func init() {
	configShowCmd.Flags().BoolP("json", "j", false, "Output as JSON")
	configCmd.AddCommand(configShowCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration after merging defaults, file and environment",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		out := redacted(cfg)
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		}
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		return enc.Encode(out)
	},
}

func redacted(cfg app.Config) app.Config {
	if cfg.Neo4j.Password != "" {
		cfg.Neo4j.Password = "[REDACTED]"
	}
	return cfg
}
