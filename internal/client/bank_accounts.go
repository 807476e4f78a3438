package client

import (
	"context"
	"fmt"

	invoboxhttp "github.com/invobox-io/invobox-client/internal/http"
	"github.com/invobox-io/invobox-client/pkg/invobox"
)

// BankAccountsClient implements invobox.BankAccountsClient. The bank accounts
// endpoint is not paginated; the server returns the whole collection at once.
type BankAccountsClient struct {
	httpClient *invoboxhttp.Client
	account    string
}

// NewBankAccountsClient creates a new bank accounts client.
func NewBankAccountsClient(httpClient *invoboxhttp.Client, account string) *BankAccountsClient {
	return &BankAccountsClient{
		httpClient: httpClient,
		account:    account,
	}
}

func (c *BankAccountsClient) basePath() string {
	return fmt.Sprintf("/api/v2/accounts/%s/bank_accounts.json", c.account)
}

// List implements invobox.BankAccountsClient.List.
func (c *BankAccountsClient) List(ctx context.Context, params *invobox.QueryParams) ([]invobox.BankAccount, error) {
	bankAccounts, err := fetchUnpagedEntities[invobox.BankAccount](ctx, c.httpClient, c.basePath(), params)
	if err != nil {
		return nil, fmt.Errorf("listing bank accounts: %w", err)
	}

	return bankAccounts, nil
}
