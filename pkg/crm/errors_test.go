package crm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIError_Error(t *testing.T) {
	err := &APIError{
		Code:    404,
		Message: "Project not found",
		Status:  StatusNotFound,
	}

	assert.Equal(t, "NOT_FOUND: Project not found (code: 404)", err.Error())
}

func TestResponseError_Error(t *testing.T) {
	err := &ResponseError{
		Err: APIError{
			Code:    403,
			Message: "The caller does not have permission",
			Status:  StatusPermissionDenied,
		},
	}

	assert.Equal(t, "PERMISSION_DENIED: The caller does not have permission (code: 403)", err.Error())
}

func TestResponseError_Unwrap(t *testing.T) {
	respErr := &ResponseError{
		Err: APIError{Code: 404, Status: StatusNotFound},
	}

	apiErr := &APIError{}
	require.True(t, errors.As(respErr, &apiErr))
	assert.Equal(t, StatusNotFound, apiErr.Status)
}

func TestStatusHelpers(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		check    func(error) bool
		expected bool
	}{
		{
			name:     "not found APIError",
			err:      &APIError{Code: 404, Status: StatusNotFound},
			check:    IsNotFound,
			expected: true,
		},
		{
			name:     "not found mismatch",
			err:      &APIError{Code: 403, Status: StatusPermissionDenied},
			check:    IsNotFound,
			expected: false,
		},
		{
			name: "not found inside ResponseError",
			err: &ResponseError{
				Err: APIError{Code: 404, Status: StatusNotFound},
			},
			check:    IsNotFound,
			expected: true,
		},
		{
			name:     "not found wrapped",
			err:      fmt.Errorf("getting project: %w", &APIError{Code: 404, Status: StatusNotFound}),
			check:    IsNotFound,
			expected: true,
		},
		{
			name:     "permission denied",
			err:      &APIError{Code: 403, Status: StatusPermissionDenied},
			check:    IsPermissionDenied,
			expected: true,
		},
		{
			name:     "unauthenticated",
			err:      &APIError{Code: 401, Status: StatusUnauthenticated},
			check:    IsUnauthenticated,
			expected: true,
		},
		{
			name:     "already exists",
			err:      &APIError{Code: 409, Status: StatusAlreadyExists},
			check:    IsAlreadyExists,
			expected: true,
		},
		{
			name:     "other error type",
			err:      errors.New("some error"),
			check:    IsNotFound,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			check:    IsNotFound,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.check(tt.err))
		})
	}
}

func TestParseResponseError(t *testing.T) {
	t.Run("valid error envelope", func(t *testing.T) {
		jsonData := `{
			"error": {
				"code": 404,
				"message": "Project not found",
				"status": "NOT_FOUND"
			}
		}`

		errResp, err := ParseResponseError([]byte(jsonData))
		require.NoError(t, err)
		require.NotNil(t, errResp)
		assert.Equal(t, 404, errResp.Err.Code)
		assert.Equal(t, "Project not found", errResp.Err.Message)
		assert.Equal(t, StatusNotFound, errResp.Err.Status)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		jsonData := `{invalid json}`

		errResp, err := ParseResponseError([]byte(jsonData))
		assert.Error(t, err)
		assert.Nil(t, errResp)
	})

	t.Run("empty envelope", func(t *testing.T) {
		jsonData := `{"error": {}}`

		errResp, err := ParseResponseError([]byte(jsonData))
		require.NoError(t, err)
		require.NotNil(t, errResp)
		assert.Equal(t, 0, errResp.Err.Code)
	})
}
