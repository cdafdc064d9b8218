package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/substrate-io/crm-client/internal/http"
	"github.com/substrate-io/crm-client/pkg/crm"
)

func TestOperationsClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/operations/cp.123", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		operation := crm.Operation{
			Name: "operations/cp.123",
			Done: false,
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(operation)
	}))
	defer server.Close()

	operations := NewOperationsClient(internalhttp.NewClient(server.URL, nil))

	operation, err := operations.Get(context.Background(), "operations/cp.123")
	require.NoError(t, err)
	assert.NotNil(t, operation)
	assert.Equal(t, "operations/cp.123", operation.Name)
	assert.False(t, operation.Done)
}

func TestOperationsClient_Get_EmptyName(t *testing.T) {
	operations := NewOperationsClient(internalhttp.NewClient("http://localhost:0", nil))

	_, err := operations.Get(context.Background(), "")
	require.ErrorIs(t, err, crm.ErrOperationNameRequired)
}

func TestOperationsClient_PollUntilDone_Success(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/operations/cp.123", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		attempts++
		var operation crm.Operation

		// Simulate the operation transitioning from running to done
		if attempts <= 2 {
			operation = crm.Operation{
				Name: "operations/cp.123",
				Done: false,
			}
		} else {
			operation = crm.Operation{
				Name:     "operations/cp.123",
				Done:     true,
				Response: json.RawMessage(`{"projectId":"new-project"}`),
			}
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(operation)
	}))
	defer server.Close()

	operations := NewOperationsClient(internalhttp.NewClient(server.URL, nil))

	// Use a shorter poll interval for testing
	operations.pollInterval = 10 * time.Millisecond

	operation, err := operations.PollUntilDone(context.Background(), "operations/cp.123")
	require.NoError(t, err)
	assert.NotNil(t, operation)
	assert.True(t, operation.Done)
	assert.NotEmpty(t, operation.Response)
	assert.Equal(t, 3, attempts)
}

func TestOperationsClient_PollUntilDone_Failed(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		var operation crm.Operation

		// Simulate the operation transitioning from running to failed
		if attempts <= 1 {
			operation = crm.Operation{
				Name: "operations/cp.123",
				Done: false,
			}
		} else {
			operation = crm.Operation{
				Name: "operations/cp.123",
				Done: true,
				Error: &crm.OperationError{
					Code:    9,
					Message: "project quota exceeded",
				},
			}
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(operation)
	}))
	defer server.Close()

	operations := NewOperationsClient(internalhttp.NewClient(server.URL, nil))

	// Use a shorter poll interval for testing
	operations.pollInterval = 10 * time.Millisecond

	operation, err := operations.PollUntilDone(context.Background(), "operations/cp.123")
	require.Error(t, err)
	require.ErrorIs(t, err, crm.ErrOperationFailed)
	assert.Contains(t, err.Error(), "project quota exceeded")
	assert.NotNil(t, operation)
	assert.True(t, operation.Done)
}

func TestOperationsClient_PollUntilDone_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Always return a running operation
		operation := crm.Operation{
			Name: "operations/cp.123",
			Done: false,
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(operation)
	}))
	defer server.Close()

	operations := NewOperationsClient(internalhttp.NewClient(server.URL, nil))

	// Use a shorter poll interval and timeout for testing
	operations.pollInterval = 10 * time.Millisecond
	operations.pollTimeout = 50 * time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	operation, err := operations.PollUntilDone(ctx, "operations/cp.123")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "context deadline exceeded"),
		"Expected timeout error, got: %v", err)
	if operation != nil {
		assert.False(t, operation.Done)
	}
}
