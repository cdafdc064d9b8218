package crmclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/substrate-io/crm-client/pkg/crm"
	"github.com/substrate-io/crm-client/pkg/crmclient"
)

func TestNew_NilConfig(t *testing.T) {
	t.Parallel()

	client, err := crmclient.New(nil)
	require.ErrorIs(t, err, crm.ErrConfigRequired)
	assert.Nil(t, client)
}

func TestNew_EndpointNormalization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		endpoint string
		expected string
	}{
		{
			name:     "adds https scheme",
			endpoint: "cloudresourcemanager.example.com",
			expected: "https://cloudresourcemanager.example.com",
		},
		{
			name:     "trims trailing slash",
			endpoint: "https://cloudresourcemanager.example.com/",
			expected: "https://cloudresourcemanager.example.com",
		},
		{
			name:     "keeps http scheme",
			endpoint: "http://localhost:8080",
			expected: "http://localhost:8080",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			config := &crm.Config{APIEndpoint: testCase.endpoint}

			_, err := crmclient.New(config)
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, config.APIEndpoint)
		})
	}
}

func TestNewWithEndpoint(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		// Unauthenticated clients send no Authorization header.
		assert.Empty(t, request.Header.Get("Authorization"))

		_ = json.NewEncoder(writer).Encode(crm.Project{ProjectID: "test-project"})
	}))
	defer server.Close()

	client, err := crmclient.NewWithEndpoint(server.URL)
	require.NoError(t, err)

	project, err := client.Projects().Get(context.Background(), "test-project")
	require.NoError(t, err)
	assert.Equal(t, "test-project", project.ProjectID)
}

func TestNewWithToken(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "Bearer test-token", request.Header.Get("Authorization"))

		_ = json.NewEncoder(writer).Encode(crm.Project{ProjectID: "test-project"})
	}))
	defer server.Close()

	client, err := crmclient.New(&crm.Config{
		APIEndpoint: server.URL,
		AccessToken: "test-token",
	})
	require.NoError(t, err)

	_, err = client.Projects().Get(context.Background(), "test-project")
	require.NoError(t, err)
}

func TestNewWithTokenSource(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "Bearer source-token", request.Header.Get("Authorization"))

		_ = json.NewEncoder(writer).Encode(crm.Project{ProjectID: "test-project"})
	}))
	defer server.Close()

	source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "source-token"})

	client, err := crmclient.New(&crm.Config{
		APIEndpoint: server.URL,
		TokenSource: source,
	})
	require.NoError(t, err)

	_, err = client.Projects().Get(context.Background(), "test-project")
	require.NoError(t, err)
}

func TestNewWithClientCredentials(t *testing.T) {
	t.Parallel()

	var apiServer *httptest.Server

	tokenServer := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(writer).Encode(map[string]interface{}{
			"access_token": "granted-token",
			"token_type":   "Bearer",
			"expires_in":   3600,
		})
	}))
	defer tokenServer.Close()

	apiServer = httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "Bearer granted-token", request.Header.Get("Authorization"))

		_ = json.NewEncoder(writer).Encode(crm.Project{ProjectID: "test-project"})
	}))
	defer apiServer.Close()

	client, err := crmclient.New(&crm.Config{
		APIEndpoint:  apiServer.URL,
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		TokenURL:     tokenServer.URL + "/token",
	})
	require.NoError(t, err)

	_, err = client.Projects().Get(context.Background(), "test-project")
	require.NoError(t, err)
}
