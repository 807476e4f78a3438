package commands

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// configKeys are the settings the config command manages. api_key and token
// are stored but masked when listed.
var configKeys = []string{"api", "account", "email", "api_key", "token", "output"}

// secretKeys are masked in list output.
var secretKeys = map[string]bool{"api_key": true, "token": true}

// NewConfigCommand creates the config command
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Get, set, and list invobox CLI configuration values",
	}

	cmd.AddCommand(newConfigGetCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())
	cmd.AddCommand(newConfigListCommand())

	return cmd
}

func validConfigKey(key string) error {
	for _, known := range configKeys {
		if key == known {
			return nil
		}
	}

	return fmt.Errorf("unknown config key %q (known keys: %s)", key, strings.Join(configKeys, ", "))
}

func newConfigGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get KEY",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validConfigKey(args[0]); err != nil {
				return err
			}

			fmt.Println(viper.GetString(args[0]))

			return nil
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validConfigKey(args[0]); err != nil {
				return err
			}

			viper.Set(args[0], args[1])

			if err := saveConfig(); err != nil {
				return err
			}

			fmt.Printf("Set %s\n", args[0])

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Clear a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validConfigKey(args[0]); err != nil {
				return err
			}

			viper.Set(args[0], "")

			if err := saveConfig(); err != nil {
				return err
			}

			fmt.Printf("Unset %s\n", args[0])

			return nil
		},
	}
}

func newConfigListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configuration values",
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make(map[string]string, len(configKeys))
			for _, key := range configKeys {
				value := viper.GetString(key)
				if value != "" && secretKeys[key] {
					value = "********"
				}

				values[key] = value
			}

			output := viper.GetString("output")
			switch output {
			case "json":
				return renderJSON(values)
			case "yaml":
				return renderYAML(values)
			default:
				keys := make([]string, 0, len(values))
				for key := range values {
					keys = append(keys, key)
				}

				sort.Strings(keys)

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Key", "Value")

				for _, key := range keys {
					_ = table.Append(key, values[key])
				}

				return table.Render()
			}
		},
	}
}
