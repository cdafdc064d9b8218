// Package crm provides types, interfaces, and helpers for working with the
// cloud resource manager v1 API.
//
// # Overview
//
// The crm package defines the domain types (Project, Operation) and the
// interfaces for resource-oriented clients (ProjectsClient,
// OperationsClient). A concrete implementation is provided by the crmclient
// package, which wires configuration, transport, and authentication. Most
// consumers should import crmclient to construct a client and then interact
// with the interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/substrate-io/crm-client/pkg/crm"
//	  "github.com/substrate-io/crm-client/pkg/crmclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := crmclient.New(ctx, &crm.Config{AccessToken: "..."})
//	  if err != nil { log.Fatal(err) }
//
//	  // List the first page of projects
//	  page, err := cli.Projects().List(ctx, crm.NewListProjectsOptions().WithPageSize(50))
//	  if err != nil { log.Fatal(err) }
//	  _ = page
//	}
//
// # Pagination
//
// List fetches a single page; the returned page's Next method yields the
// continuation options derived from the server's nextPageToken. The package
// also provides generic helpers for iterating or collecting token-paginated
// results:
//
//	it := crm.NewPageIterator(ctx, fetch)
//	for it.HasNext() {
//	  project, err := it.Next()
//	  if err != nil { break }
//	  _ = project
//	}
//
// or fetch everything at once with ceilings:
//
//	all, err := cli.Projects().ListAll(ctx, nil, &crm.PageSettings{MaxCalls: 10})
//	if err != nil { /* handle error */ }
//	_ = all
//
// # Handles
//
// Client.Project and Client.Operation construct local handles without a
// network call. A handle stores the identifier plus the last-fetched
// metadata and delegates its methods back to the owning client.
//
// # Errors
//
// API errors are represented by APIError inside a ResponseError envelope.
// Helpers such as IsNotFound, IsPermissionDenied, and IsUnauthenticated make
// it easy to branch on common cases. Validation failures (missing project ID
// or operation name) are plain sentinel errors returned synchronously.
package crm
