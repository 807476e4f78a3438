// Package client implements the invobox.Client interface on top of the shared
// HTTP transport.
package client

import (
	"context"
	"fmt"

	"github.com/invobox-io/invobox-client/internal/auth"
	invoboxhttp "github.com/invobox-io/invobox-client/internal/http"
	"github.com/invobox-io/invobox-client/pkg/invobox"
)

// Client implements the invobox.Client interface.
type Client struct {
	httpClient *invoboxhttp.Client
	account    string

	// Resource clients
	subjects     invobox.SubjectsClient
	invoices     invobox.InvoicesClient
	bankAccounts invobox.BankAccountsClient
}

// createProvider picks the credential provider based on config, following the
// documented precedence: AccessToken first, then Email+APIKey.
func createProvider(config *invobox.Config) auth.Provider {
	if config.AccessToken != "" {
		return auth.NewTokenProvider(config.AccessToken)
	}

	if config.Email != "" && config.APIKey != "" {
		return auth.NewBasicProvider(config.Email, config.APIKey)
	}

	return nil // No authentication
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *invobox.Config) []invoboxhttp.Option {
	var httpOpts []invoboxhttp.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, invoboxhttp.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, invoboxhttp.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, invoboxhttp.WithUserAgent(config.UserAgent))
	}

	if config.RetryMax > 0 {
		httpOpts = append(httpOpts, invoboxhttp.WithRetryConfig(config.RetryMax, config.RetryWaitMin, config.RetryWaitMax))
	}

	return httpOpts
}

// New creates a new Invobox API client.
func New(config *invobox.Config) (*Client, error) {
	if config.APIEndpoint == "" {
		return nil, invobox.ErrAPIEndpointRequired
	}

	if config.Account == "" {
		return nil, invobox.ErrAccountRequired
	}

	httpClient := invoboxhttp.NewClient(config.APIEndpoint, createProvider(config), createHTTPClientOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		account:    config.Account,
	}

	client.initializeResourceClients()

	return client, nil
}

// accountPath builds the account-scoped path for a resource.
func (c *Client) accountPath(resource string) string {
	return fmt.Sprintf("/api/v2/accounts/%s/%s", c.account, resource)
}

// GetAccount implements invobox.Client.GetAccount.
func (c *Client) GetAccount(ctx context.Context) (*invobox.Account, error) {
	account, err := fetchEntity[invobox.Account](ctx, c.httpClient, c.accountPath("account.json"))
	if err != nil {
		return nil, fmt.Errorf("getting account: %w", err)
	}

	return &account, nil
}

// Subjects implements invobox.Client.Subjects.
func (c *Client) Subjects() invobox.SubjectsClient {
	return c.subjects
}

// Invoices implements invobox.Client.Invoices.
func (c *Client) Invoices() invobox.InvoicesClient {
	return c.invoices
}

// BankAccounts implements invobox.Client.BankAccounts.
func (c *Client) BankAccounts() invobox.BankAccountsClient {
	return c.bankAccounts
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.subjects = NewSubjectsClient(c.httpClient, c.account)
	c.invoices = NewInvoicesClient(c.httpClient, c.account)
	c.bankAccounts = NewBankAccountsClient(c.httpClient, c.account)
}

// loggerAdapter adapts invobox.Logger to the transport's Logger.
type loggerAdapter struct {
	logger invobox.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
