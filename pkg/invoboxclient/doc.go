// Package invoboxclient provides the primary entry point for constructing an
// Invobox API client that implements the invobox.Client interface.
//
// It layers configuration, HTTP transport, and authentication on top of the
// resource interfaces and types defined in the invobox package. Most
// applications should import invoboxclient to build a client, then use the
// returned invobox.Client to access resource-specific clients, for example
// Subjects(), Invoices(), BankAccounts().
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/invobox-io/invobox-client/pkg/invobox"
//	  "github.com/invobox-io/invobox-client/pkg/invoboxclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Email + API key against the hosted endpoint:
//	  cli, err := invoboxclient.NewWithAPIKey("acme", "owner@example.com", "api-key")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with an access token you already have:
//	  cli, err = invoboxclient.New(&invobox.Config{
//	    Account:     "acme",
//	    AccessToken: "eyJhbGciOi...", // bearer token
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Use resource clients via the invobox.Client interface
//	  subjects, err := cli.Subjects().ListAll(ctx, nil)
//	  if err != nil { log.Fatal(err) }
//	  _ = subjects
//	}
//
// The API endpoint defaults to the hosted service; self-hosted installations
// set Config.APIEndpoint, with or without a scheme (https is assumed).
//
// # Helpers
//
// The package also provides convenience constructors NewWithAPIKey and
// NewWithToken that wrap New with the appropriate configuration.
package invoboxclient
