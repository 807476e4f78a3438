// Package invoboxclient provides the main entry point for creating Invobox API clients
package invoboxclient

import (
	"fmt"
	"strings"

	"github.com/invobox-io/invobox-client/internal/client"
	"github.com/invobox-io/invobox-client/pkg/invobox"
)

// DefaultAPIEndpoint is the hosted Invobox API endpoint used when the config
// does not name one.
const DefaultAPIEndpoint = "https://app.invobox.com"

// New creates a new Invobox API client.
func New(config *invobox.Config) (invobox.Client, error) {
	if config == nil {
		return nil, invobox.ErrConfigRequired
	}

	if config.Account == "" {
		return nil, invobox.ErrAccountRequired
	}

	if config.AccessToken == "" && (config.Email == "" || config.APIKey == "") {
		return nil, invobox.ErrCredentialsRequired
	}

	// Normalize API endpoint
	apiEndpoint := config.APIEndpoint
	if apiEndpoint == "" {
		apiEndpoint = DefaultAPIEndpoint
	}

	apiEndpoint = strings.TrimSuffix(apiEndpoint, "/")
	if !strings.HasPrefix(apiEndpoint, "http://") && !strings.HasPrefix(apiEndpoint, "https://") {
		apiEndpoint = "https://" + apiEndpoint
	}

	config.APIEndpoint = apiEndpoint

	// Use the internal client implementation
	apiClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NewWithAPIKey creates a new client using email and API key authentication
// against the hosted endpoint.
func NewWithAPIKey(account, email, apiKey string) (invobox.Client, error) {
	return New(&invobox.Config{
		Account: account,
		Email:   email,
		APIKey:  apiKey,
	})
}

// NewWithToken creates a new client using a pre-issued access token.
func NewWithToken(account, token string) (invobox.Client, error) {
	return New(&invobox.Config{
		Account:     account,
		AccessToken: token,
	})
}
