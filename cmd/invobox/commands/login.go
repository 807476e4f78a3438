package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/invobox-io/invobox-client/pkg/invobox"
	"github.com/invobox-io/invobox-client/pkg/invoboxclient"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var (
		account string
		email   string
		apiKey  string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to Invobox",
		Long:  "Store account credentials after verifying them against the API",
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := bufio.NewReader(os.Stdin)

			if account == "" {
				account = viper.GetString("account")
			}

			if account == "" {
				fmt.Print("Account slug: ")
				account, _ = reader.ReadString('\n')
				account = strings.TrimSpace(account)
			}

			if account == "" {
				return invobox.ErrAccountRequired
			}

			if email == "" {
				fmt.Print("Email: ")
				email, _ = reader.ReadString('\n')
				email = strings.TrimSpace(email)
			}

			if apiKey == "" {
				fmt.Print("API key: ")

				byteKey, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read API key: %w", err)
				}

				apiKey = string(byteKey)

				fmt.Println()
			}

			config := &invobox.Config{
				APIEndpoint: viper.GetString("api"),
				Account:     account,
				Email:       email,
				APIKey:      apiKey,
			}

			client, err := invoboxclient.New(config)
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			// Verify the credentials before storing anything
			ctx := context.Background()

			accountDetail, err := client.GetAccount(ctx)
			if err != nil {
				return fmt.Errorf("failed to connect to API: %w", err)
			}

			viper.Set("account", account)
			viper.Set("email", email)
			viper.Set("api_key", apiKey)

			if err := saveConfig(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Printf("Successfully logged in to account %q (%s)\n", account, accountDetail.Name)

			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "account slug")
	cmd.Flags().StringVarP(&email, "email", "u", "", "email for authentication")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "API key for authentication")

	return cmd
}

// NewLogoutCommand creates the logout command
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Logout from Invobox",
		Long:  "Clear stored credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			viper.Set("email", "")
			viper.Set("api_key", "")
			viper.Set("token", "")

			if err := saveConfig(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Println("Successfully logged out")

			return nil
		},
	}
}
