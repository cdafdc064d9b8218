package client

import (
	internalhttp "github.com/substrate-io/crm-client/internal/http"
)

// NewTestClient creates a client against the given base URL without
// authentication, for use by tests.
func NewTestClient(baseURL string) *Client {
	httpClient := internalhttp.NewClient(baseURL, nil)

	client := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}

	client.initializeResourceClients()

	return client
}

// NewTestClientWithProjectID creates an unauthenticated test client with a
// default project ID configured.
func NewTestClientWithProjectID(baseURL, projectID string) *Client {
	client := NewTestClient(baseURL)
	client.projectID = projectID

	return client
}
