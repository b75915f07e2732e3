package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-slingshot/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default level configuration",
	Long: `Prints the built-in level configuration as YAML.

Save it to ~/.slingshot/configs/slingshot.yaml or ./configs/slingshot.yaml
to override the defaults, or pass it to 'slingshot play --config'.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultSlingshotYAML())
		return err
	},
}
