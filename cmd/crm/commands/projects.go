package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/substrate-io/crm-client/internal/constants"
	"github.com/substrate-io/crm-client/pkg/crm"
)

// NewProjectsCommand creates the projects command group
func NewProjectsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "projects",
		Aliases: []string{"project"},
		Short:   "Manage projects",
		Long:    "Create, list, update, delete, and restore cloud projects",
	}

	cmd.AddCommand(newProjectsListCommand())
	cmd.AddCommand(newProjectsGetCommand())
	cmd.AddCommand(newProjectsCreateCommand())
	cmd.AddCommand(newProjectsUpdateCommand())
	cmd.AddCommand(newProjectsDeleteCommand())
	cmd.AddCommand(newProjectsUndeleteCommand())

	return cmd
}

func newProjectsListCommand() *cobra.Command {
	var (
		filter     string
		pageSize   int
		pageToken  string
		all        bool
		maxResults int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Long:  "List projects visible to the authenticated caller",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Flag("api").Value.String())
			if err != nil {
				return err
			}

			ctx := context.Background()

			opts := crm.NewListProjectsOptions()
			if filter != "" {
				opts.WithFilter(filter)
			}

			if pageSize > 0 {
				if pageSize > constants.MaxPageSize {
					pageSize = constants.MaxPageSize
				}

				opts.WithPageSize(pageSize)
			}

			if pageToken != "" {
				opts.WithPageToken(pageToken)
			}

			var projects []crm.Project

			if all || maxResults > 0 {
				var settings *crm.PageSettings
				if maxResults > 0 {
					settings = &crm.PageSettings{MaxResults: maxResults}
				}

				projects, err = client.Projects().ListAll(ctx, opts, settings)
				if err != nil {
					return fmt.Errorf("failed to list projects: %w", err)
				}
			} else {
				page, err := client.Projects().List(ctx, opts)
				if err != nil {
					return fmt.Errorf("failed to list projects: %w", err)
				}

				projects = page.Projects

				if page.NextPageToken != "" {
					defer fmt.Printf("\nMore results available; pass --all or --page-token %s\n", page.NextPageToken)
				}
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return encodeJSON(projects)
			case OutputFormatYAML:
				return encodeYAML(projects)
			default:
				return renderProjectsTable(projects)
			}
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "filter expression, e.g. labels.env:prod")
	cmd.Flags().IntVar(&pageSize, "page-size", constants.StandardPageSize, "results per page")
	cmd.Flags().StringVar(&pageToken, "page-token", "", "continuation token from a previous list")
	cmd.Flags().BoolVar(&all, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&maxResults, "max-results", 0, "stop after this many results (implies --all)")

	return cmd
}

func newProjectsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get [PROJECT_ID]",
		Short: "Get project details",
		Long:  "Display detailed information about a project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := resolveProjectID(args)
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd.Flag("api").Value.String())
			if err != nil {
				return err
			}

			project, err := client.Projects().Get(context.Background(), projectID)
			if err != nil {
				return fmt.Errorf("failed to get project: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return encodeJSON(project)
			case OutputFormatYAML:
				return encodeYAML(project)
			default:
				return renderProjectTable(project)
			}
		},
	}
}

func newProjectsCreateCommand() *cobra.Command {
	var (
		name         string
		labels       []string
		organization string
		folder       string
		wait         bool
	)

	cmd := &cobra.Command{
		Use:   "create PROJECT_ID",
		Short: "Create a project",
		Long:  "Start asynchronous creation of a project and optionally wait for it to finish",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID := args[0]

			client, err := CreateClient(cmd.Flag("api").Value.String())
			if err != nil {
				return err
			}

			parsedLabels, err := parseLabels(labels)
			if err != nil {
				return err
			}

			if name == "" {
				name = projectID
			}

			request := &crm.ProjectCreateRequest{
				Name:   name,
				Labels: parsedLabels,
			}

			switch {
			case organization != "":
				request.Parent = &crm.ResourceID{Type: crm.ParentTypeOrganization, ID: organization}
			case folder != "":
				request.Parent = &crm.ResourceID{Type: crm.ParentTypeFolder, ID: folder}
			}

			ctx := context.Background()

			project, operation, err := client.Projects().Create(ctx, projectID, request)
			if err != nil {
				return fmt.Errorf("failed to create project: %w", err)
			}

			if wait {
				operation, err = client.Operations().PollUntilDone(ctx, operation.Name)
				if err != nil {
					return fmt.Errorf("waiting for project creation: %w", err)
				}
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return encodeJSON(operation)
			case OutputFormatYAML:
				return encodeYAML(operation)
			default:
				fmt.Printf("Creation of project %s started\n\n", project.ProjectID)

				return renderOperationTable(operation)
			}
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name (defaults to the project ID)")
	cmd.Flags().StringArrayVar(&labels, "label", nil, "label in key=value form (repeatable)")
	cmd.Flags().StringVar(&organization, "organization", "", "parent organization ID")
	cmd.Flags().StringVar(&folder, "folder", "", "parent folder ID")
	cmd.Flags().BoolVar(&wait, "wait", false, "wait for the creation operation to finish")

	return cmd
}

func newProjectsUpdateCommand() *cobra.Command {
	var (
		name   string
		labels []string
	)

	cmd := &cobra.Command{
		Use:   "update PROJECT_ID",
		Short: "Update a project",
		Long:  "Replace the mutable attributes of a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID := args[0]

			client, err := CreateClient(cmd.Flag("api").Value.String())
			if err != nil {
				return err
			}

			parsedLabels, err := parseLabels(labels)
			if err != nil {
				return err
			}

			project, err := client.Projects().Update(context.Background(), projectID, &crm.ProjectUpdateRequest{
				Name:   name,
				Labels: parsedLabels,
			})
			if err != nil {
				return fmt.Errorf("failed to update project: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return encodeJSON(project)
			case OutputFormatYAML:
				return encodeYAML(project)
			default:
				return renderProjectTable(project)
			}
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new display name")
	cmd.Flags().StringArrayVar(&labels, "label", nil, "label in key=value form (repeatable)")

	return cmd
}

func newProjectsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete PROJECT_ID",
		Short: "Delete a project",
		Long:  "Mark a project for deletion; it can be restored with undelete until purged",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID := args[0]

			client, err := CreateClient(cmd.Flag("api").Value.String())
			if err != nil {
				return err
			}

			err = client.Projects().Delete(context.Background(), projectID)
			if err != nil {
				return fmt.Errorf("failed to delete project: %w", err)
			}

			fmt.Printf("Project %s marked for deletion\n", projectID)

			return nil
		},
	}
}

func newProjectsUndeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "undelete PROJECT_ID",
		Short: "Restore a project",
		Long:  "Restore a project that is pending deletion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID := args[0]

			client, err := CreateClient(cmd.Flag("api").Value.String())
			if err != nil {
				return err
			}

			err = client.Projects().Undelete(context.Background(), projectID)
			if err != nil {
				return fmt.Errorf("failed to undelete project: %w", err)
			}

			fmt.Printf("Project %s restored\n", projectID)

			return nil
		},
	}
}
