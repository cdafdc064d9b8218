// Package commands implements the crm CLI commands.
package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/substrate-io/crm-client/pkg/crm"
	"github.com/substrate-io/crm-client/pkg/crmclient"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	NotAvailable = "N/A"
)

// Common static errors used throughout the commands package.
var (
	ErrProjectIDRequired  = errors.New("a project ID is required (pass one or set --project)")
	ErrTokenRequired      = errors.New("a token is required")
	ErrInvalidLabelFormat = errors.New("invalid label format, expected key=value")
	ErrOperationHasErrors = errors.New("operation finished with errors")
)

// CreateClient builds a crm.Client from the resolved CLI configuration. The
// api flag overrides the configured endpoint when non-empty.
func CreateClient(apiFlag string) (crm.Client, error) {
	endpoint := apiFlag
	if endpoint == "" {
		endpoint = viper.GetString("api")
	}

	config := &crm.Config{
		APIEndpoint:  endpoint,
		ProjectID:    viper.GetString("project"),
		AccessToken:  viper.GetString("token"),
		ClientID:     viper.GetString("client-id"),
		ClientSecret: viper.GetString("client-secret"),
		TokenURL:     viper.GetString("token-url"),
	}

	if viper.GetBool("verbose") {
		logger := &stderrLogger{}
		chain := crm.NewInterceptorChain()
		chain.AddRequestInterceptor(crm.LoggingRequestInterceptor(logger))
		chain.AddResponseInterceptor(crm.LoggingResponseInterceptor(logger))

		config.Debug = true
		config.Logger = logger
		config.Interceptors = chain
	}

	client, err := crmclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// stderrLogger writes structured log lines to stderr so verbose output does
// not interfere with the command's stdout rendering.
type stderrLogger struct{}

func (l *stderrLogger) Debug(msg string, fields map[string]interface{}) { l.log("DEBUG", msg, fields) }

func (l *stderrLogger) Info(msg string, fields map[string]interface{}) { l.log("INFO", msg, fields) }

func (l *stderrLogger) Warn(msg string, fields map[string]interface{}) { l.log("WARN", msg, fields) }

func (l *stderrLogger) Error(msg string, fields map[string]interface{}) { l.log("ERROR", msg, fields) }

func (l *stderrLogger) log(level, msg string, fields map[string]interface{}) {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", key, fields[key]))
	}

	fmt.Fprintf(os.Stderr, "[%s] %s %s\n", level, msg, strings.Join(parts, " "))
}

// resolveProjectID picks the project ID from the positional args or the
// configured default.
func resolveProjectID(args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}

	if projectID := viper.GetString("project"); projectID != "" {
		return projectID, nil
	}

	return "", ErrProjectIDRequired
}

// encodeJSON writes v to stdout as indented JSON.
func encodeJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	return encoder.Encode(v)
}

// encodeYAML writes v to stdout as YAML.
func encodeYAML(v interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)

	return encoder.Encode(v)
}

// formatLabels renders a label map as a stable comma-separated key=value list.
func formatLabels(labels map[string]string) string {
	if len(labels) == 0 {
		return NotAvailable
	}

	keys := make([]string, 0, len(labels))
	for key := range labels {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+labels[key])
	}

	return strings.Join(pairs, ",")
}

// parseLabels parses repeated key=value flags into a label map.
func parseLabels(raw []string) (map[string]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	labels := make(map[string]string, len(raw))

	for _, pair := range raw {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidLabelFormat, pair)
		}

		labels[key] = value
	}

	return labels, nil
}

// renderProjectTable prints a single project as a property table.
func renderProjectTable(project *crm.Project) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("Project ID", project.ProjectID)
	_ = table.Append("Name", project.Name)

	if project.ProjectNumber != 0 {
		_ = table.Append("Project Number", fmt.Sprintf("%d", project.ProjectNumber))
	}

	_ = table.Append("Lifecycle State", project.LifecycleState)
	_ = table.Append("Labels", formatLabels(project.Labels))

	if project.Parent != nil {
		_ = table.Append("Parent", project.Parent.Type+"/"+project.Parent.ID)
	}

	if project.CreateTime != "" {
		_ = table.Append("Created", project.CreateTime)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// renderProjectsTable prints a list of projects, one row each.
func renderProjectsTable(projects []crm.Project) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Project ID", "Name", "State", "Labels")

	for _, project := range projects {
		_ = table.Append(project.ProjectID, project.Name, project.LifecycleState, formatLabels(project.Labels))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// renderOperationTable prints an operation as a property table.
func renderOperationTable(operation *crm.Operation) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("Name", operation.Name)
	_ = table.Append("Done", fmt.Sprintf("%t", operation.Done))

	if operation.Error != nil {
		_ = table.Append("Error", fmt.Sprintf("%s (code: %d)", operation.Error.Message, operation.Error.Code))
	}

	if len(operation.Response) > 0 {
		_ = table.Append("Response", string(operation.Response))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
