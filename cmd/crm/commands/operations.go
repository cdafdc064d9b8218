package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewOperationsCommand creates the operations command group
func NewOperationsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "operations",
		Aliases: []string{"operation", "ops"},
		Short:   "Manage long-running operations",
		Long:    "Inspect and await long-running operations started by project changes",
	}

	cmd.AddCommand(newOperationsGetCommand())
	cmd.AddCommand(newOperationsWaitCommand())

	return cmd
}

func newOperationsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get OPERATION_NAME",
		Short: "Get operation details",
		Long:  "Display the current state of a long-running operation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			client, err := CreateClient(cmd.Flag("api").Value.String())
			if err != nil {
				return err
			}

			operation, err := client.Operations().Get(context.Background(), name)
			if err != nil {
				return fmt.Errorf("failed to get operation: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return encodeJSON(operation)
			case OutputFormatYAML:
				return encodeYAML(operation)
			default:
				return renderOperationTable(operation)
			}
		},
	}
}

func newOperationsWaitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "wait OPERATION_NAME",
		Short: "Wait for an operation to finish",
		Long:  "Poll an operation until it finishes, fails, or times out",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			client, err := CreateClient(cmd.Flag("api").Value.String())
			if err != nil {
				return err
			}

			operation, err := client.Operations().PollUntilDone(context.Background(), name)
			if err != nil {
				return fmt.Errorf("failed to wait for operation: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				if err := encodeJSON(operation); err != nil {
					return err
				}
			case OutputFormatYAML:
				if err := encodeYAML(operation); err != nil {
					return err
				}
			default:
				fmt.Printf("Operation finished:\n\n")

				if err := renderOperationTable(operation); err != nil {
					return err
				}
			}

			if operation.Error != nil {
				return ErrOperationHasErrors
			}

			return nil
		},
	}
}
