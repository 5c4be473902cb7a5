package cmd

import (
	"github.com/spf13/cobra"

	"github.com/yungbote/recipegraph-backend/internal/app"
)

var rootCmd = &cobra.Command{
	Use:           "recipegraph",
	Short:         "Recipe catalog and recommendation service backed by Neo4j",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "path to a YAML config file (overrides CONFIG_PATH)")
	rootCmd.AddCommand(serveCmd, schemaCmd, configCmd)
}

func Execute() error {
	return rootCmd.Execute()
}

func loadConfig(cmd *cobra.Command) (app.Config, error) {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return app.LoadConfigFile(path)
	}
	return app.LoadConfig()
}
