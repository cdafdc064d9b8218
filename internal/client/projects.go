package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/substrate-io/crm-client/internal/constants"
	"github.com/substrate-io/crm-client/internal/http"
	"github.com/substrate-io/crm-client/pkg/crm"
)

// ProjectsClient implements crm.ProjectsClient.
type ProjectsClient struct {
	httpClient *http.Client
}

// NewProjectsClient creates a new projects client.
func NewProjectsClient(httpClient *http.Client) *ProjectsClient {
	return &ProjectsClient{
		httpClient: httpClient,
	}
}

// Create implements crm.ProjectsClient.Create. The explicit projectID is
// merged over the request body so it always wins, and the raw create
// response is attached to the returned operation as its metadata.
func (c *ProjectsClient) Create(ctx context.Context, projectID string, request *crm.ProjectCreateRequest) (*crm.Project, *crm.Operation, error) {
	if projectID == "" {
		return nil, nil, crm.ErrProjectIDRequired
	}

	if request == nil {
		request = &crm.ProjectCreateRequest{}
	}

	body := *request
	body.ProjectID = projectID

	resp, err := c.httpClient.Post(ctx, constants.APIBasePath+"/projects", &body)
	if err != nil {
		return nil, nil, fmt.Errorf("creating project: %w", err)
	}

	var created struct {
		ProjectID string `json:"projectId"`
		Name      string `json:"name"`
	}

	err = json.Unmarshal(resp.Body, &created)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing create response: %w", err)
	}

	project := &crm.Project{ProjectID: created.ProjectID}
	operation := &crm.Operation{
		Name:     created.Name,
		Metadata: json.RawMessage(resp.Body),
	}

	return project, operation, nil
}

// Get implements crm.ProjectsClient.Get.
func (c *ProjectsClient) Get(ctx context.Context, projectID string) (*crm.Project, error) {
	if projectID == "" {
		return nil, crm.ErrProjectIDRequired
	}

	resp, err := c.httpClient.Get(ctx, constants.APIBasePath+"/projects/"+projectID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting project: %w", err)
	}

	var project crm.Project

	err = json.Unmarshal(resp.Body, &project)
	if err != nil {
		return nil, fmt.Errorf("parsing project response: %w", err)
	}

	return &project, nil
}

// List implements crm.ProjectsClient.List. One HTTP round trip per call; the
// returned page derives the continuation from the server's nextPageToken.
func (c *ProjectsClient) List(ctx context.Context, opts *crm.ListProjectsOptions) (*crm.ProjectPage, error) {
	resp, err := c.httpClient.Get(ctx, constants.APIBasePath+"/projects", opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	var page crm.ProjectPage

	err = json.Unmarshal(resp.Body, &page)
	if err != nil {
		return nil, fmt.Errorf("parsing projects list response: %w", err)
	}

	page.SetRequestOptions(opts)

	return &page, nil
}

// ListAll implements crm.ProjectsClient.ListAll.
func (c *ProjectsClient) ListAll(ctx context.Context, opts *crm.ListProjectsOptions, settings *crm.PageSettings) ([]crm.Project, error) {
	return crm.FetchAllPages(ctx, c.pageFunc(opts), settings)
}

// Stream implements crm.ProjectsClient.Stream.
func (c *ProjectsClient) Stream(ctx context.Context, opts *crm.ListProjectsOptions, settings *crm.PageSettings) <-chan crm.ProjectPageResult {
	results := make(chan crm.ProjectPageResult)

	go func() {
		defer close(results)

		for page := range crm.StreamPages(ctx, c.pageFunc(opts), settings) {
			select {
			case results <- crm.ProjectPageResult{Projects: page.Items, Err: page.Err}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return results
}

// pageFunc adapts List to the generic token-threading page contract.
func (c *ProjectsClient) pageFunc(opts *crm.ListProjectsOptions) crm.PageFunc[crm.Project] {
	base := opts.Clone()

	return func(ctx context.Context, pageToken string) (*crm.Page[crm.Project], error) {
		pageOpts := base.Clone()
		if pageToken != "" {
			pageOpts.PageToken = pageToken
		}

		page, err := c.List(ctx, pageOpts)
		if err != nil {
			return nil, err
		}

		return &crm.Page[crm.Project]{
			Items:         page.Projects,
			NextPageToken: page.NextPageToken,
		}, nil
	}
}

// Update implements crm.ProjectsClient.Update.
func (c *ProjectsClient) Update(ctx context.Context, projectID string, request *crm.ProjectUpdateRequest) (*crm.Project, error) {
	if projectID == "" {
		return nil, crm.ErrProjectIDRequired
	}

	resp, err := c.httpClient.Put(ctx, constants.APIBasePath+"/projects/"+projectID, request)
	if err != nil {
		return nil, fmt.Errorf("updating project: %w", err)
	}

	var project crm.Project

	err = json.Unmarshal(resp.Body, &project)
	if err != nil {
		return nil, fmt.Errorf("parsing project response: %w", err)
	}

	return &project, nil
}

// Delete implements crm.ProjectsClient.Delete.
func (c *ProjectsClient) Delete(ctx context.Context, projectID string) error {
	if projectID == "" {
		return crm.ErrProjectIDRequired
	}

	_, err := c.httpClient.Delete(ctx, constants.APIBasePath+"/projects/"+projectID)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}

	return nil
}

// Undelete implements crm.ProjectsClient.Undelete.
func (c *ProjectsClient) Undelete(ctx context.Context, projectID string) error {
	if projectID == "" {
		return crm.ErrProjectIDRequired
	}

	_, err := c.httpClient.Post(ctx, constants.APIBasePath+"/projects/"+projectID+":undelete", nil)
	if err != nil {
		return fmt.Errorf("undeleting project: %w", err)
	}

	return nil
}
