package crm

import (
	"encoding/json"
)

// Lifecycle states reported by the API for a project.
const (
	LifecycleStateUnspecified = "LIFECYCLE_STATE_UNSPECIFIED"
	LifecycleStateActive      = "ACTIVE"
	LifecycleStateDeleteReq   = "DELETE_REQUESTED"
	LifecycleStateDeleteDone  = "DELETE_IN_PROGRESS"
)

// Parent types accepted by the API.
const (
	ParentTypeOrganization = "organization"
	ParentTypeFolder       = "folder"
)

// Project represents a single cloud project resource.
type Project struct {
	ProjectNumber  int64             `json:"projectNumber,string,omitempty" yaml:"projectNumber,omitempty"`
	ProjectID      string            `json:"projectId,omitempty"            yaml:"projectId,omitempty"`
	Name           string            `json:"name,omitempty"                 yaml:"name,omitempty"`
	CreateTime     string            `json:"createTime,omitempty"           yaml:"createTime,omitempty"`
	Labels         map[string]string `json:"labels,omitempty"               yaml:"labels,omitempty"`
	LifecycleState string            `json:"lifecycleState,omitempty"       yaml:"lifecycleState,omitempty"`
	Parent         *ResourceID       `json:"parent,omitempty"               yaml:"parent,omitempty"`
}

// ResourceID identifies the parent container of a project.
type ResourceID struct {
	Type string `json:"type" yaml:"type"`
	ID   string `json:"id"   yaml:"id"`
}

// ProjectCreateRequest carries the optional fields for project creation. The
// explicit project ID passed to ProjectsClient.Create always takes precedence
// over the ProjectID field here.
type ProjectCreateRequest struct {
	ProjectNumber  int64             `json:"projectNumber,string,omitempty"`
	ProjectID      string            `json:"projectId,omitempty"`
	Name           string            `json:"name,omitempty"`
	CreateTime     string            `json:"createTime,omitempty"`
	Labels         map[string]string `json:"labels,omitempty"`
	LifecycleState string            `json:"lifecycleState,omitempty"`
	Parent         *ResourceID       `json:"parent,omitempty"`
}

// ProjectUpdateRequest carries the mutable fields for a project update.
type ProjectUpdateRequest struct {
	Name   string            `json:"name,omitempty"`
	Labels map[string]string `json:"labels,omitempty"`
	Parent *ResourceID       `json:"parent,omitempty"`
}

// Operation represents a long-running backend operation. Name is the opaque
// backend-assigned identifier ("operations/..."); Metadata is the last-known
// status payload.
type Operation struct {
	Name     string          `json:"name"               yaml:"name"`
	Metadata json.RawMessage `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	Done     bool            `json:"done,omitempty"     yaml:"done,omitempty"`
	Error    *OperationError `json:"error,omitempty"    yaml:"error,omitempty"`
	Response json.RawMessage `json:"response,omitempty" yaml:"response,omitempty"`
}

// OperationError is the failure detail attached to a finished operation.
type OperationError struct {
	Code    int               `json:"code"              yaml:"code"`
	Message string            `json:"message"           yaml:"message"`
	Details []json.RawMessage `json:"details,omitempty" yaml:"details,omitempty"`
}

// ProjectPage is a single page of list results. NextPageToken is non-empty
// exactly when the server reported more results.
type ProjectPage struct {
	Projects      []Project `json:"projects"                yaml:"projects"`
	NextPageToken string    `json:"nextPageToken,omitempty" yaml:"nextPageToken,omitempty"`

	opts *ListProjectsOptions
}

// SetRequestOptions records the options the page was fetched with so Next can
// derive the continuation. Called by the projects client after each fetch.
func (p *ProjectPage) SetRequestOptions(opts *ListProjectsOptions) {
	p.opts = opts
}

// Next returns the options for fetching the page after this one, or nil when
// the server reported no continuation.
func (p *ProjectPage) Next() *ListProjectsOptions {
	if p.NextPageToken == "" {
		return nil
	}

	next := p.opts.Clone()
	next.PageToken = p.NextPageToken

	return next
}

// ProjectPageResult is one streamed page of projects, or the error that ended
// the stream.
type ProjectPageResult struct {
	Projects []Project
	Err      error
}
