package client

import (
	"context"
	"fmt"

	invoboxhttp "github.com/invobox-io/invobox-client/internal/http"
	"github.com/invobox-io/invobox-client/pkg/invobox"
)

// SubjectsClient implements invobox.SubjectsClient.
type SubjectsClient struct {
	httpClient *invoboxhttp.Client
	account    string
}

// NewSubjectsClient creates a new subjects client.
func NewSubjectsClient(httpClient *invoboxhttp.Client, account string) *SubjectsClient {
	return &SubjectsClient{
		httpClient: httpClient,
		account:    account,
	}
}

func (c *SubjectsClient) basePath() string {
	return fmt.Sprintf("/api/v2/accounts/%s/subjects.json", c.account)
}

func (c *SubjectsClient) entityPath(id int64) string {
	return fmt.Sprintf("/api/v2/accounts/%s/subjects/%d.json", c.account, id)
}

// List implements invobox.SubjectsClient.List.
func (c *SubjectsClient) List(ctx context.Context, page int, params *invobox.QueryParams) ([]invobox.Subject, error) {
	subjects, err := fetchEntityPage[invobox.Subject](ctx, c.httpClient, c.basePath(), page, params)
	if err != nil {
		return nil, fmt.Errorf("listing subjects: %w", err)
	}

	return subjects, nil
}

// ListAll implements invobox.SubjectsClient.ListAll.
func (c *SubjectsClient) ListAll(ctx context.Context, params *invobox.QueryParams) ([]invobox.Subject, error) {
	subjects, err := fetchAllEntityPages[invobox.Subject](ctx, c.httpClient, c.basePath(), params)
	if err != nil {
		return nil, fmt.Errorf("listing all subjects: %w", err)
	}

	return subjects, nil
}

// Get implements invobox.SubjectsClient.Get.
func (c *SubjectsClient) Get(ctx context.Context, id int64) (*invobox.Subject, error) {
	if id < 1 {
		return nil, fmt.Errorf("getting subject: %w: got %d", invobox.ErrIDOutOfRange, id)
	}

	subject, err := fetchEntity[invobox.Subject](ctx, c.httpClient, c.entityPath(id))
	if err != nil {
		return nil, fmt.Errorf("getting subject: %w", err)
	}

	return &subject, nil
}

// Create implements invobox.SubjectsClient.Create.
func (c *SubjectsClient) Create(ctx context.Context, subject *invobox.Subject) (int64, error) {
	id, err := createEntity(ctx, c.httpClient, c.basePath(), subject)
	if err != nil {
		return 0, fmt.Errorf("creating subject: %w", err)
	}

	return id, nil
}

// Update implements invobox.SubjectsClient.Update.
func (c *SubjectsClient) Update(ctx context.Context, subject *invobox.Subject) (*invobox.Subject, error) {
	if subject == nil {
		return nil, fmt.Errorf("updating subject: %w", invobox.ErrEntityRequired)
	}

	if subject.ID < 1 {
		return nil, fmt.Errorf("updating subject: %w: got %d", invobox.ErrIDOutOfRange, subject.ID)
	}

	updated, err := updateEntity(ctx, c.httpClient, c.entityPath(subject.ID), subject)
	if err != nil {
		return nil, fmt.Errorf("updating subject: %w", err)
	}

	return updated, nil
}

// Delete implements invobox.SubjectsClient.Delete.
func (c *SubjectsClient) Delete(ctx context.Context, id int64) error {
	if id < 1 {
		return fmt.Errorf("deleting subject: %w: got %d", invobox.ErrIDOutOfRange, id)
	}

	if err := deleteEntity(ctx, c.httpClient, c.entityPath(id)); err != nil {
		return fmt.Errorf("deleting subject: %w", err)
	}

	return nil
}
