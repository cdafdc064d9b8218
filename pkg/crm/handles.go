package crm

import (
	"context"
)

// ProjectHandle is a local reference to a project by ID. The ID is immutable
// once constructed; Metadata holds the last-fetched server record and is
// overwritten (last write wins) on every successful fetch. Construction never
// touches the network.
type ProjectHandle struct {
	client Client

	// ID is the stable project identifier this handle is bound to.
	ID string

	// Metadata is the last-fetched project record, nil until a fetch.
	Metadata *Project
}

// NewProjectHandle binds a handle to a client. An empty id is an error.
func NewProjectHandle(client Client, id string) (*ProjectHandle, error) {
	if id == "" {
		return nil, ErrProjectIDRequired
	}

	return &ProjectHandle{client: client, ID: id}, nil
}

// Fetch retrieves the project's current metadata and stores it on the handle.
func (h *ProjectHandle) Fetch(ctx context.Context) (*Project, error) {
	project, err := h.client.Projects().Get(ctx, h.ID)
	if err != nil {
		return nil, err
	}

	h.Metadata = project

	return project, nil
}

// Exists reports whether the project is visible to the caller.
func (h *ProjectHandle) Exists(ctx context.Context) (bool, error) {
	_, err := h.Fetch(ctx)
	if err != nil {
		if IsNotFound(err) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

// Create creates the project this handle refers to.
func (h *ProjectHandle) Create(ctx context.Context, request *ProjectCreateRequest) (*Operation, error) {
	project, operation, err := h.client.Projects().Create(ctx, h.ID, request)
	if err != nil {
		return nil, err
	}

	h.Metadata = project

	return operation, nil
}

// Update replaces the project's mutable attributes and refreshes Metadata.
func (h *ProjectHandle) Update(ctx context.Context, request *ProjectUpdateRequest) (*Project, error) {
	project, err := h.client.Projects().Update(ctx, h.ID, request)
	if err != nil {
		return nil, err
	}

	h.Metadata = project

	return project, nil
}

// Delete marks the project for deletion. Backend-side destruction is not
// mirrored locally; Metadata keeps its last-fetched value.
func (h *ProjectHandle) Delete(ctx context.Context) error {
	return h.client.Projects().Delete(ctx, h.ID)
}

// Undelete restores the project if it is still pending deletion.
func (h *ProjectHandle) Undelete(ctx context.Context) error {
	return h.client.Projects().Undelete(ctx, h.ID)
}

// OperationHandle is a local reference to a long-running operation by name.
type OperationHandle struct {
	client Client

	// Name is the opaque backend-assigned operation identifier.
	Name string

	// Metadata is the last-known operation state, nil until a fetch unless
	// seeded at construction.
	Metadata *Operation
}

// NewOperationHandle binds a handle to a client. An empty name is an error.
func NewOperationHandle(client Client, name string) (*OperationHandle, error) {
	if name == "" {
		return nil, ErrOperationNameRequired
	}

	return &OperationHandle{client: client, Name: name}, nil
}

// Fetch retrieves the operation's current state and stores it on the handle.
func (h *OperationHandle) Fetch(ctx context.Context) (*Operation, error) {
	operation, err := h.client.Operations().Get(ctx, h.Name)
	if err != nil {
		return nil, err
	}

	h.Metadata = operation

	return operation, nil
}

// Wait polls until the operation finishes or the context expires.
func (h *OperationHandle) Wait(ctx context.Context) (*Operation, error) {
	operation, err := h.client.Operations().PollUntilDone(ctx, h.Name)
	if operation != nil {
		h.Metadata = operation
	}

	return operation, err
}
