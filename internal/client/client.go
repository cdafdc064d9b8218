// Package client contains the concrete implementation of the crm.Client
// interface and its per-resource clients.
package client

import (
	"context"

	"github.com/substrate-io/crm-client/internal/auth"
	"github.com/substrate-io/crm-client/internal/constants"
	"github.com/substrate-io/crm-client/internal/http"
	"github.com/substrate-io/crm-client/pkg/crm"
)

// Client implements the crm.Client interface.
type Client struct {
	httpClient   *http.Client
	tokenManager auth.TokenManager
	baseURL      string
	projectID    string
	logger       crm.Logger

	projects   crm.ProjectsClient
	operations crm.OperationsClient
}

// New creates a new resource manager API client. The endpoint in config is
// expected to be normalized already (see crmclient.New).
func New(config *crm.Config) (*Client, error) {
	if config == nil {
		return nil, crm.ErrConfigRequired
	}

	return newClient(config, createTokenManager(config)), nil
}

// NewWithTokenManager creates a client with a caller-supplied token manager.
func NewWithTokenManager(config *crm.Config, tokenManager auth.TokenManager) (*Client, error) {
	if config == nil {
		return nil, crm.ErrConfigRequired
	}

	return newClient(config, tokenManager), nil
}

func newClient(config *crm.Config, tokenManager auth.TokenManager) *Client {
	baseURL := config.APIEndpoint
	if baseURL == "" {
		baseURL = constants.DefaultAPIEndpoint
	}

	httpClient := http.NewClient(baseURL, tokenManager, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient:   httpClient,
		tokenManager: tokenManager,
		baseURL:      baseURL,
		projectID:    config.ProjectID,
		logger:       config.Logger,
	}

	client.initializeResourceClients()

	return client
}

// createTokenManager creates the appropriate token manager for the
// configured credentials; nil means unauthenticated requests.
func createTokenManager(config *crm.Config) auth.TokenManager {
	if config.AccessToken != "" {
		return auth.NewStaticTokenManager(config.AccessToken)
	}

	if config.TokenSource != nil {
		return auth.NewTokenSourceManager(config.TokenSource)
	}

	if config.ClientID != "" && config.ClientSecret != "" {
		return auth.NewClientCredentialsManager(context.Background(), config.ClientID, config.ClientSecret, config.TokenURL)
	}

	return nil // No authentication
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *crm.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.Interceptors != nil {
		httpOpts = append(httpOpts, http.WithInterceptors(config.Interceptors))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// initializeResourceClients initializes the resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.projects = NewProjectsClient(c.httpClient)
	c.operations = NewOperationsClient(c.httpClient)
}

// Projects implements crm.Client.Projects.
func (c *Client) Projects() crm.ProjectsClient {
	return c.projects
}

// Operations implements crm.Client.Operations.
func (c *Client) Operations() crm.OperationsClient {
	return c.operations
}

// Project implements crm.Client.Project. An empty id falls back to the
// configured default project ID; NewProjectHandle rejects the case where
// neither is available.
func (c *Client) Project(id string) (*crm.ProjectHandle, error) {
	if id == "" {
		id = c.projectID
	}

	return crm.NewProjectHandle(c, id)
}

// Operation implements crm.Client.Operation.
func (c *Client) Operation(name string) (*crm.OperationHandle, error) {
	return crm.NewOperationHandle(c, name)
}

// GetTokenManager returns the token manager for this client.
func (c *Client) GetTokenManager() auth.TokenManager {
	return c.tokenManager
}
