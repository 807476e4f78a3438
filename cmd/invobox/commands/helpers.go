// Package commands implements the invobox CLI command tree.
package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/invobox-io/invobox-client/pkg/invobox"
	"github.com/invobox-io/invobox-client/pkg/invoboxclient"
)

// CreateClient builds an API client from the effective viper configuration.
func CreateClient() (invobox.Client, error) {
	config := &invobox.Config{
		APIEndpoint: viper.GetString("api"),
		Account:     viper.GetString("account"),
		Email:       viper.GetString("email"),
		APIKey:      viper.GetString("api_key"),
		AccessToken: viper.GetString("token"),
	}

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = &stderrLogger{}
	}

	client, err := invoboxclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// stderrLogger writes transport debug logs to stderr in a flat key=value form.
type stderrLogger struct{}

func (l *stderrLogger) Debug(msg string, fields map[string]interface{}) { l.log("DEBUG", msg, fields) }
func (l *stderrLogger) Info(msg string, fields map[string]interface{})  { l.log("INFO", msg, fields) }
func (l *stderrLogger) Warn(msg string, fields map[string]interface{})  { l.log("WARN", msg, fields) }
func (l *stderrLogger) Error(msg string, fields map[string]interface{}) { l.log("ERROR", msg, fields) }

func (l *stderrLogger) log(level, msg string, fields map[string]interface{}) {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", key, fields[key]))
	}

	fmt.Fprintf(os.Stderr, "[%s] %s %s\n", level, msg, strings.Join(parts, " "))
}

// renderJSON writes v to stdout as indented JSON.
func renderJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	return encoder.Encode(v)
}

// renderYAML writes v to stdout as YAML.
func renderYAML(v interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)

	return encoder.Encode(v)
}

// parseEntityID parses a positional command argument as an entity id.
func parseEntityID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: %q", invobox.ErrIDOutOfRange, arg)
	}

	return id, nil
}

// saveConfig persists the current viper configuration to the config file,
// creating it when no file exists yet.
func saveConfig() error {
	if err := viper.WriteConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("writing config: %w", err)
		}

		if err := viper.SafeWriteConfig(); err != nil {
			return fmt.Errorf("writing new config: %w", err)
		}
	}

	return nil
}
