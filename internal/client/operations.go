package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/substrate-io/crm-client/internal/constants"
	"github.com/substrate-io/crm-client/internal/http"
	"github.com/substrate-io/crm-client/pkg/crm"
)

// OperationsClient implements crm.OperationsClient.
type OperationsClient struct {
	httpClient   *http.Client
	pollInterval time.Duration
	pollTimeout  time.Duration
}

// NewOperationsClient creates a new operations client.
func NewOperationsClient(httpClient *http.Client) *OperationsClient {
	return &OperationsClient{
		httpClient:   httpClient,
		pollInterval: constants.DefaultPollInterval,
		pollTimeout:  constants.DefaultPollTimeout,
	}
}

// Get implements crm.OperationsClient.Get. The name is the full opaque
// identifier as returned by the API, e.g. "operations/abc123".
func (c *OperationsClient) Get(ctx context.Context, name string) (*crm.Operation, error) {
	if name == "" {
		return nil, crm.ErrOperationNameRequired
	}

	resp, err := c.httpClient.Get(ctx, constants.APIBasePath+"/"+name, nil)
	if err != nil {
		return nil, fmt.Errorf("getting operation: %w", err)
	}

	var operation crm.Operation

	err = json.Unmarshal(resp.Body, &operation)
	if err != nil {
		return nil, fmt.Errorf("parsing operation: %w", err)
	}

	return &operation, nil
}

// PollUntilDone implements crm.OperationsClient.PollUntilDone. It polls the
// operation until done or the poll timeout elapses.
func (c *OperationsClient) PollUntilDone(ctx context.Context, name string) (*crm.Operation, error) {
	pollCtx, cancel := context.WithTimeout(ctx, c.pollTimeout)
	defer cancel()

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	// First check immediately
	operation, err := c.Get(pollCtx, name)
	if err != nil {
		return nil, fmt.Errorf("getting operation status: %w", err)
	}

	if operation.Done {
		return operation, operationError(operation)
	}

	for {
		select {
		case <-pollCtx.Done():
			// Return the last known state on timeout
			return operation, fmt.Errorf("timeout waiting for operation to complete: %w", pollCtx.Err())
		case <-ticker.C:
			operation, err = c.Get(pollCtx, name)
			if err != nil {
				return nil, fmt.Errorf("getting operation status: %w", err)
			}

			if operation.Done {
				return operation, operationError(operation)
			}
		}
	}
}

// operationError converts a finished operation's error payload into a Go
// error, or nil when the operation succeeded.
func operationError(operation *crm.Operation) error {
	if operation.Error == nil {
		return nil
	}

	return fmt.Errorf("%w: %s (code: %d)", crm.ErrOperationFailed, operation.Error.Message, operation.Error.Code)
}
