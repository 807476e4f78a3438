package client

import (
	"context"
	"fmt"

	invoboxhttp "github.com/invobox-io/invobox-client/internal/http"
	"github.com/invobox-io/invobox-client/pkg/invobox"
)

// InvoicesClient implements invobox.InvoicesClient.
type InvoicesClient struct {
	httpClient *invoboxhttp.Client
	account    string
}

// NewInvoicesClient creates a new invoices client.
func NewInvoicesClient(httpClient *invoboxhttp.Client, account string) *InvoicesClient {
	return &InvoicesClient{
		httpClient: httpClient,
		account:    account,
	}
}

func (c *InvoicesClient) basePath() string {
	return fmt.Sprintf("/api/v2/accounts/%s/invoices.json", c.account)
}

func (c *InvoicesClient) entityPath(id int64) string {
	return fmt.Sprintf("/api/v2/accounts/%s/invoices/%d.json", c.account, id)
}

// List implements invobox.InvoicesClient.List.
func (c *InvoicesClient) List(ctx context.Context, page int, params *invobox.QueryParams) ([]invobox.Invoice, error) {
	invoices, err := fetchEntityPage[invobox.Invoice](ctx, c.httpClient, c.basePath(), page, params)
	if err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}

	return invoices, nil
}

// ListAll implements invobox.InvoicesClient.ListAll.
func (c *InvoicesClient) ListAll(ctx context.Context, params *invobox.QueryParams) ([]invobox.Invoice, error) {
	invoices, err := fetchAllEntityPages[invobox.Invoice](ctx, c.httpClient, c.basePath(), params)
	if err != nil {
		return nil, fmt.Errorf("listing all invoices: %w", err)
	}

	return invoices, nil
}

// Get implements invobox.InvoicesClient.Get.
func (c *InvoicesClient) Get(ctx context.Context, id int64) (*invobox.Invoice, error) {
	if id < 1 {
		return nil, fmt.Errorf("getting invoice: %w: got %d", invobox.ErrIDOutOfRange, id)
	}

	invoice, err := fetchEntity[invobox.Invoice](ctx, c.httpClient, c.entityPath(id))
	if err != nil {
		return nil, fmt.Errorf("getting invoice: %w", err)
	}

	return &invoice, nil
}

// Create implements invobox.InvoicesClient.Create.
func (c *InvoicesClient) Create(ctx context.Context, invoice *invobox.Invoice) (int64, error) {
	id, err := createEntity(ctx, c.httpClient, c.basePath(), invoice)
	if err != nil {
		return 0, fmt.Errorf("creating invoice: %w", err)
	}

	return id, nil
}

// Update implements invobox.InvoicesClient.Update.
func (c *InvoicesClient) Update(ctx context.Context, invoice *invobox.Invoice) (*invobox.Invoice, error) {
	if invoice == nil {
		return nil, fmt.Errorf("updating invoice: %w", invobox.ErrEntityRequired)
	}

	if invoice.ID < 1 {
		return nil, fmt.Errorf("updating invoice: %w: got %d", invobox.ErrIDOutOfRange, invoice.ID)
	}

	updated, err := updateEntity(ctx, c.httpClient, c.entityPath(invoice.ID), invoice)
	if err != nil {
		return nil, fmt.Errorf("updating invoice: %w", err)
	}

	return updated, nil
}

// Delete implements invobox.InvoicesClient.Delete.
func (c *InvoicesClient) Delete(ctx context.Context, id int64) error {
	if id < 1 {
		return fmt.Errorf("deleting invoice: %w: got %d", invobox.ErrIDOutOfRange, id)
	}

	if err := deleteEntity(ctx, c.httpClient, c.entityPath(id)); err != nil {
		return fmt.Errorf("deleting invoice: %w", err)
	}

	return nil
}
