// Package invobox provides types, interfaces, and helpers for working with
// the Invobox invoicing API.
//
// # Overview
//
// The invobox package defines the domain types (Subject, Invoice, BankAccount,
// Account) and the interfaces for resource-oriented clients (SubjectsClient,
// InvoicesClient, BankAccountsClient). A concrete implementation of these
// clients is provided by the invoboxclient package, which wires configuration,
// transport, and authentication. Most consumers should import invoboxclient to
// construct a client and then interact with the resource client interfaces
// exposed here.
//
// Getting a client
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
//	  cli, err := invoboxclient.New(&invobox.Config{
//	    Account: "acme",
//	    Email:   "owner@acme.example",
//	    APIKey:  "...",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Fetch the first page of subjects
//	  subjects, err := cli.Subjects().List(ctx, 1, nil)
//	  if err != nil { log.Fatal(err) }
//	  _ = subjects
//	}
//
// # Queries and pagination
//
// Use QueryParams to express list filters; parameters keep their insertion
// order and timestamps are encoded in round-trip RFC 3339 form:
//
//	params := invobox.NewQueryParams().
//	  WithTime("updated_since", since).
//	  WithString("custom_id", "crm-42")
//
// List endpoints are server-paginated with a fixed page size; an empty page
// marks the end of the collection. The package provides helpers for iterating
// or collecting paginated results:
//
//	it := invobox.NewPaginationIterator(ctx, cli.Invoices(), params)
//	for it.HasNext() {
//	  inv, err := it.Next()
//	  if err != nil { break }
//	  _ = inv
//	}
//
// or fetch everything at once:
//
//	all, err := invobox.FetchAllPages(ctx, cli.Invoices(), params, nil)
//	if err != nil { /* handle error */ }
//	_ = all
//
// Because pages are fetched by separate sequential requests, records created
// or deleted by other actors mid-traversal can be duplicated or missed in the
// combined result. This is a property of the backing API and is deliberately
// not papered over client-side.
//
// # Errors
//
// Non-success responses are represented by ResponseError, carrying the HTTP
// status and the body's detail. Helpers such as IsNotFound, IsUnauthorized,
// and IsUnprocessable make it easy to branch on common cases. Invalid
// arguments (blank paths, nil entities, page or id below 1) are reported with
// sentinel errors before any request is issued.
package invobox
