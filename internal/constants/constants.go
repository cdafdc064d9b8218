package constants

import "time"

// Version is the library version embedded in the default user agent. Set at
// build time via -ldflags for release builds.
var Version = "dev"

// API endpoint defaults.
const (
	// DefaultAPIEndpoint is the public resource manager endpoint.
	DefaultAPIEndpoint = "https://cloudresourcemanager.googleapis.com"

	// APIBasePath is the versioned path prefix all requests use.
	APIBasePath = "/v1"

	// CloudPlatformScope is the OAuth scope required by the API.
	CloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

	// UserAgentBase prefixes the default User-Agent header.
	UserAgentBase = "crm-client-go"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 3

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Polling intervals for long-running operations.
const (
	// DefaultPollInterval is used when polling operation status.
	DefaultPollInterval = 2 * time.Second

	// DefaultPollTimeout bounds PollUntilDone when the caller's context has
	// no earlier deadline.
	DefaultPollTimeout = 10 * time.Minute
)

// Pagination defaults.
const (
	// StandardPageSize is the default page size used by the CLI.
	StandardPageSize = 50

	// MaxPageSize is the largest page size the API accepts.
	MaxPageSize = 500
)
