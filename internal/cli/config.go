package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vitereact-labs/create-vite-react/internal/config"
	"github.com/vitereact-labs/create-vite-react/internal/project"
	"github.com/vitereact-labs/create-vite-react/internal/templates"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: `Read and write settings stored at ~/.create-vite-react/config.yaml.

Keys:
  template     bundled template used without asking (js, ts)
  exclude      comma-separated regular expressions of template paths to skip
  default_dir  project directory offered by the name prompt`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := validateConfigValue(key, value); err != nil {
			return err
		}
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		if key == config.KeyExclude {
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(config.GetStringSlice(key), ","))
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(key))
		return nil
	},
}

func validateConfigValue(key, value string) error {
	switch key {
	case config.KeyTemplate:
		if value == "" {
			return nil
		}
		_, err := templates.Lookup(value)
		return err
	case config.KeyDefaultDir:
		if project.FormatTargetDir(value) == "" {
			return fmt.Errorf("%s must name a directory", config.KeyDefaultDir)
		}
		return nil
	case config.KeyExclude:
		return nil
	default:
		return fmt.Errorf("unknown config key %q (known: %s, %s, %s)",
			key, config.KeyTemplate, config.KeyExclude, config.KeyDefaultDir)
	}
}
