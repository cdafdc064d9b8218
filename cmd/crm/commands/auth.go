package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/substrate-io/crm-client/internal/constants"
	"github.com/substrate-io/crm-client/pkg/crm"
	"github.com/substrate-io/crm-client/pkg/crmclient"
)

// NewAuthCommand creates the auth command group
func NewAuthCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage authentication",
		Long:  "Store and clear the credentials used to talk to the API",
	}

	cmd.AddCommand(newAuthLoginCommand())
	cmd.AddCommand(newAuthLogoutCommand())

	return cmd
}

func newAuthLoginCommand() *cobra.Command {
	var (
		token        string
		clientID     string
		clientSecret string
		tokenURL     string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and store credentials",
		Long:  "Verify credentials against the API and store them in the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := &crm.Config{
				APIEndpoint: viper.GetString("api"),
			}

			if clientID != "" && clientSecret != "" {
				// Client credentials flow
				config.ClientID = clientID
				config.ClientSecret = clientSecret
				config.TokenURL = tokenURL
			} else {
				if token == "" {
					fmt.Print("Access token: ")

					tokenBytes, err := term.ReadPassword(int(syscall.Stdin))
					if err != nil {
						return fmt.Errorf("failed to read token: %w", err)
					}

					fmt.Println()

					token = strings.TrimSpace(string(tokenBytes))
				}

				if token == "" {
					return ErrTokenRequired
				}

				config.AccessToken = token
			}

			client, err := crmclient.New(config)
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			// Verify the credentials with a cheap, bounded call.
			ctx, cancel := context.WithTimeout(context.Background(), constants.ShortHTTPTimeout)
			defer cancel()

			_, err = client.Projects().List(ctx, crm.NewListProjectsOptions().WithPageSize(1))
			if err != nil {
				return fmt.Errorf("failed to verify credentials: %w", err)
			}

			viper.Set("token", config.AccessToken)
			viper.Set("client-id", config.ClientID)
			viper.Set("client-secret", config.ClientSecret)
			viper.Set("token-url", config.TokenURL)

			err = persistConfig()
			if err != nil {
				return err
			}

			fmt.Println("Credentials stored")

			return nil
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "access token (prompted when omitted)")
	cmd.Flags().StringVar(&clientID, "client-id", "", "OAuth2 client ID")
	cmd.Flags().StringVar(&clientSecret, "client-secret", "", "OAuth2 client secret")
	cmd.Flags().StringVar(&tokenURL, "token-url", "", "OAuth2 token endpoint")

	return cmd
}

func newAuthLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear stored credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			viper.Set("token", "")
			viper.Set("client-id", "")
			viper.Set("client-secret", "")
			viper.Set("token-url", "")

			err := persistConfig()
			if err != nil {
				return err
			}

			fmt.Println("Credentials cleared")

			return nil
		},
	}
}

// persistConfig writes the current viper state to the active config file,
// falling back to ~/.crm/config.yml when none is loaded yet.
func persistConfig() error {
	if viper.ConfigFileUsed() != "" {
		if err := viper.WriteConfig(); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}

		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to locate home directory: %w", err)
	}

	path := filepath.Join(home, ".crm", "config.yml")

	if err := viper.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
