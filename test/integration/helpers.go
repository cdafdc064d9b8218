//go:build integration

package integration

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/substrate-io/crm-client/pkg/crm"
	"github.com/substrate-io/crm-client/pkg/crmclient"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	APIEndpoint string
	Token       string
	Verbose     bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		APIEndpoint: os.Getenv("CRM_API_ENDPOINT"),
		Token:       os.Getenv("CRM_TOKEN"),
		Verbose:     os.Getenv("CRM_VERBOSE") == "true",
	}
}

// SkipIfMissingConfig skips the test when required configuration is absent
func (c *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if c.APIEndpoint == "" {
		t.Skip("CRM_API_ENDPOINT not set, skipping integration test")
	}
}

// NewClient builds a client from the test configuration
func (c *TestConfig) NewClient(t *testing.T) crm.Client {
	t.Helper()

	client, err := crmclient.New(&crm.Config{
		APIEndpoint: c.APIEndpoint,
		AccessToken: c.Token,
	})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	return client
}

// GenerateTestName generates a unique name for test resources
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano()%1000000)
}
