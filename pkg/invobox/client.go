package invobox

import (
	"context"
	"time"
)

// ResourceClients provides access to all resource-specific clients.
type ResourceClients interface {
	Subjects() SubjectsClient
	Invoices() InvoicesClient
	BankAccounts() BankAccountsClient
}

// AccountClient provides access to the billing account's own details.
type AccountClient interface {
	GetAccount(ctx context.Context) (*Account, error)
}

type Client interface {
	ResourceClients
	AccountClient
}

// SubjectsClient manages address-book subjects.
type SubjectsClient interface {
	// List fetches one page of subjects. Pages are 1-based; an empty result
	// signals the end of the collection.
	List(ctx context.Context, page int, params *QueryParams) ([]Subject, error)
	// ListAll fetches every page sequentially and returns the concatenation.
	ListAll(ctx context.Context, params *QueryParams) ([]Subject, error)
	Get(ctx context.Context, id int64) (*Subject, error)
	// Create creates a new subject and returns the identifier assigned by the
	// server, extracted from the creation response's Location header.
	Create(ctx context.Context, subject *Subject) (int64, error)
	// Update persists a modified subject (matched by its ID field) and returns
	// the server's representation, which may differ from the submitted one.
	Update(ctx context.Context, subject *Subject) (*Subject, error)
	Delete(ctx context.Context, id int64) error
}

// InvoicesClient manages invoices.
type InvoicesClient interface {
	List(ctx context.Context, page int, params *QueryParams) ([]Invoice, error)
	ListAll(ctx context.Context, params *QueryParams) ([]Invoice, error)
	Get(ctx context.Context, id int64) (*Invoice, error)
	Create(ctx context.Context, invoice *Invoice) (int64, error)
	Update(ctx context.Context, invoice *Invoice) (*Invoice, error)
	Delete(ctx context.Context, id int64) error
}

// BankAccountsClient reads bank accounts. The endpoint is not paginated.
type BankAccountsClient interface {
	List(ctx context.Context, params *QueryParams) ([]BankAccount, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building an invobox.Client.
//
// # Authentication precedence
//
// The following precedence is applied by the concrete client implementation
// (see pkg/invoboxclient and internal/client):
//  1. AccessToken: if set, it is used directly as a static Bearer token.
//  2. Email + APIKey: requests authenticate with HTTP Basic using the account
//     owner's email and API key.
//
// One of the two must be provided.
//
// # Timeouts and retries
//
// Per-request timeouts are controlled via the context passed to client
// methods. The client issues exactly one attempt per call; a failed request
// surfaces immediately as an error. Transparent retries belong to the
// transport and can be enabled explicitly via RetryMax/RetryWaitMin/
// RetryWaitMax if an application wants them.
type Config struct {
	// APIEndpoint: base URL for the Invobox API (e.g.,
	// "https://app.invobox.com"). invoboxclient.New normalizes this value by
	// trimming a trailing slash and adding "https://" if no scheme is present.
	APIEndpoint string

	// Account: the account subdomain (slug) all resource paths are scoped to.
	Account string

	// Authentication options (provide one)
	// Email: account owner's email for HTTP Basic authentication.
	Email string
	// APIKey: API key used with Email.
	APIKey string
	// AccessToken: if set, used directly as a Bearer token.
	AccessToken string

	// Optional configurations
	// RetryMax: maximum number of transport-level retries for transient
	// failures (>=500, 429, connection errors). 0 disables retries, which is
	// the default and matches the API's single-attempt contract.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration
	// Debug: enables verbose HTTP request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent: overrides the default User-Agent header sent by the client.
	UserAgent string
}
