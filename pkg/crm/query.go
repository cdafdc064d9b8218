package crm

import (
	"net/url"
	"strconv"
)

// ListProjectsOptions are the query options for a single projects list call.
// The zero value requests the first page with server defaults.
type ListProjectsOptions struct {
	// Filter restricts results using the API's filter expression syntax,
	// e.g. `labels.env:prod`.
	Filter string

	// PageToken resumes listing from a server-issued continuation token.
	PageToken string

	// PageSize caps the number of results in a single response.
	PageSize int
}

// NewListProjectsOptions creates empty list options.
func NewListProjectsOptions() *ListProjectsOptions {
	return &ListProjectsOptions{}
}

// WithFilter sets the filter expression.
func (o *ListProjectsOptions) WithFilter(filter string) *ListProjectsOptions {
	o.Filter = filter

	return o
}

// WithPageSize sets the per-page result cap.
func (o *ListProjectsOptions) WithPageSize(size int) *ListProjectsOptions {
	o.PageSize = size

	return o
}

// WithPageToken sets the continuation token.
func (o *ListProjectsOptions) WithPageToken(token string) *ListProjectsOptions {
	o.PageToken = token

	return o
}

// Clone returns a copy of the options. A nil receiver yields fresh empty
// options so continuations can always be derived.
func (o *ListProjectsOptions) Clone() *ListProjectsOptions {
	if o == nil {
		return &ListProjectsOptions{}
	}

	clone := *o

	return &clone
}

// ToValues serializes the options as URL query parameters. Zero values are
// omitted.
func (o *ListProjectsOptions) ToValues() url.Values {
	values := url.Values{}

	if o == nil {
		return values
	}

	if o.Filter != "" {
		values.Set("filter", o.Filter)
	}

	if o.PageToken != "" {
		values.Set("pageToken", o.PageToken)
	}

	if o.PageSize > 0 {
		values.Set("pageSize", strconv.Itoa(o.PageSize))
	}

	return values
}
