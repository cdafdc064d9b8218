package crm_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/substrate-io/crm-client/pkg/crm"
)

func TestProject_ProjectNumberWireFormat(t *testing.T) {
	t.Parallel()

	// The API encodes 64-bit numbers as JSON strings.
	var project crm.Project

	err := json.Unmarshal([]byte(`{
		"projectNumber": "123456789012",
		"projectId": "my-project",
		"lifecycleState": "ACTIVE"
	}`), &project)
	require.NoError(t, err)
	assert.Equal(t, int64(123456789012), project.ProjectNumber)
	assert.Equal(t, crm.LifecycleStateActive, project.LifecycleState)

	data, err := json.Marshal(project)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"projectNumber":"123456789012"`)
}

func TestProject_ParentDecoding(t *testing.T) {
	t.Parallel()

	var project crm.Project

	err := json.Unmarshal([]byte(`{
		"projectId": "my-project",
		"parent": {"type": "organization", "id": "12345"}
	}`), &project)
	require.NoError(t, err)
	require.NotNil(t, project.Parent)
	assert.Equal(t, crm.ParentTypeOrganization, project.Parent.Type)
	assert.Equal(t, "12345", project.Parent.ID)
}

func TestOperation_Decoding(t *testing.T) {
	t.Parallel()

	var operation crm.Operation

	err := json.Unmarshal([]byte(`{
		"name": "operations/cp.123",
		"done": true,
		"error": {"code": 9, "message": "quota exceeded"},
		"metadata": {"createTime": "2024-01-01T00:00:00Z"}
	}`), &operation)
	require.NoError(t, err)
	assert.Equal(t, "operations/cp.123", operation.Name)
	assert.True(t, operation.Done)
	require.NotNil(t, operation.Error)
	assert.Equal(t, 9, operation.Error.Code)
	assert.NotEmpty(t, operation.Metadata)
}
