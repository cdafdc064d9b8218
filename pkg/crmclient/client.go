package crmclient

import (
	"fmt"
	"strings"

	"golang.org/x/oauth2"

	"github.com/substrate-io/crm-client/internal/client"
	"github.com/substrate-io/crm-client/pkg/crm"
)

// New creates a new resource manager API client.
func New(config *crm.Config) (crm.Client, error) {
	if config == nil {
		return nil, crm.ErrConfigRequired
	}

	// Normalize the API endpoint; an empty endpoint selects the public one.
	if config.APIEndpoint != "" {
		apiEndpoint := strings.TrimSuffix(config.APIEndpoint, "/")
		if !strings.HasPrefix(apiEndpoint, "http://") && !strings.HasPrefix(apiEndpoint, "https://") {
			apiEndpoint = "https://" + apiEndpoint
		}

		config.APIEndpoint = apiEndpoint
	}

	crmClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return crmClient, nil
}

// NewWithToken creates a new client with a static access token.
func NewWithToken(token string) (crm.Client, error) {
	return New(&crm.Config{
		AccessToken: token,
	})
}

// NewWithTokenSource creates a new client backed by an OAuth2 token source.
func NewWithTokenSource(source oauth2.TokenSource) (crm.Client, error) {
	return New(&crm.Config{
		TokenSource: source,
	})
}

// NewWithClientCredentials creates a new client using the OAuth2
// client_credentials grant.
func NewWithClientCredentials(clientID, clientSecret, tokenURL string) (crm.Client, error) {
	return New(&crm.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     tokenURL,
	})
}

// NewWithEndpoint creates an unauthenticated client against a custom
// endpoint. Intended for emulators and tests.
func NewWithEndpoint(endpoint string) (crm.Client, error) {
	return New(&crm.Config{
		APIEndpoint: endpoint,
	})
}
