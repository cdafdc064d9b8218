package crm

import (
	"context"
	"time"

	"golang.org/x/oauth2"
)

// ProjectsClient exposes the project operations of the resource manager API.
type ProjectsClient interface {
	// Create starts asynchronous creation of a project. The explicit
	// projectID always overrides a ProjectID field set in the request. The
	// returned Operation tracks the creation and carries the raw create
	// response as its metadata.
	Create(ctx context.Context, projectID string, request *ProjectCreateRequest) (*Project, *Operation, error)

	// Get fetches a single project by ID.
	Get(ctx context.Context, projectID string) (*Project, error)

	// List fetches one page of projects. The page's Next method yields the
	// continuation options, or nil when the results are exhausted.
	List(ctx context.Context, opts *ListProjectsOptions) (*ProjectPage, error)

	// ListAll fetches pages until the results are exhausted or a settings
	// ceiling is reached, and returns the accumulated projects.
	ListAll(ctx context.Context, opts *ListProjectsOptions, settings *PageSettings) ([]Project, error)

	// Stream fetches pages lazily, delivering them in server order on the
	// returned channel. Cancel the context to stop further fetches.
	Stream(ctx context.Context, opts *ListProjectsOptions, settings *PageSettings) <-chan ProjectPageResult

	// Update replaces the mutable attributes of a project.
	Update(ctx context.Context, projectID string, request *ProjectUpdateRequest) (*Project, error)

	// Delete marks a project for deletion.
	Delete(ctx context.Context, projectID string) error

	// Undelete restores a project that is pending deletion.
	Undelete(ctx context.Context, projectID string) error
}

// OperationsClient exposes the long-running operation endpoints.
type OperationsClient interface {
	// Get fetches the latest state of an operation by its opaque name.
	Get(ctx context.Context, name string) (*Operation, error)

	// PollUntilDone polls the operation until it finishes or the context
	// expires. A finished operation with an error payload is returned
	// together with a non-nil error.
	PollUntilDone(ctx context.Context, name string) (*Operation, error)
}

// Client is the top-level entry point for the resource manager API.
type Client interface {
	Projects() ProjectsClient
	Operations() OperationsClient

	// Project constructs a local handle for the given project ID without a
	// network call. An empty id falls back to the configured default project
	// ID; when neither is available an error is returned.
	Project(id string) (*ProjectHandle, error)

	// Operation constructs a local handle for the given operation name
	// without a network call. An empty name is an error.
	Operation(name string) (*OperationHandle, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a crm.Client.
//
// # Authentication precedence
//
//  1. AccessToken: if set, it is used directly as a static Bearer token.
//  2. TokenSource: an oauth2.TokenSource supplied by the caller (service
//     account flows, workload identity, and the like live outside this
//     library).
//  3. ClientID/ClientSecret: uses the OAuth2 client_credentials grant against
//     TokenURL, requesting the cloud-platform scope.
//  4. No credentials: requests are sent without authentication.
//
// Per-request timeouts should be controlled via the context passed to client
// methods. Retry behavior is tuned via RetryMax/RetryWaitMin/RetryWaitMax and
// executed entirely by the transport layer.
type Config struct {
	// APIEndpoint: base URL for the API. Defaults to the public resource
	// manager endpoint when empty. crmclient.New normalizes this value by
	// trimming a trailing slash and adding "https://" if no scheme is
	// present.
	APIEndpoint string

	// ProjectID: default project identifier used by Client.Project when no
	// explicit ID is given.
	ProjectID string

	// AccessToken: if set, used directly as a Bearer token.
	AccessToken string

	// TokenSource: optional caller-supplied OAuth2 token source. Tokens are
	// requested lazily per call and injected as Bearer headers.
	TokenSource oauth2.TokenSource

	// ClientID / ClientSecret: OAuth2 client credentials.
	ClientID     string
	ClientSecret string

	// TokenURL: OAuth2 token endpoint used with ClientID/ClientSecret.
	TokenURL string

	// RetryMax: maximum number of retries for transient failures (>=500,
	// 429, and connection errors). If 0, a default is used.
	RetryMax int

	// RetryWaitMin / RetryWaitMax: backoff bounds between retries.
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration

	// Debug enables verbose HTTP request/response logging when a Logger is
	// provided.
	Debug bool

	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger

	// UserAgent overrides the default User-Agent header sent by the client.
	UserAgent string

	// Interceptors: optional chain run around every request by the
	// transport. Request interceptors may rewrite headers and body before
	// the request is sent.
	Interceptors *InterceptorChain
}
