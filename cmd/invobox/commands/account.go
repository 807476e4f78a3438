package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewAccountCommand creates the account command
func NewAccountCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "account",
		Short: "Display account details",
		Long:  "Display details of the current Invobox billing account",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			account, err := client.GetAccount(ctx)
			if err != nil {
				return fmt.Errorf("failed to get account: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case "json":
				return renderJSON(account)
			case "yaml":
				return renderYAML(account)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")

				_ = table.Append("Subdomain", account.Subdomain)
				_ = table.Append("Name", account.Name)
				_ = table.Append("Full Name", account.FullName)
				_ = table.Append("Plan", account.Plan)
				_ = table.Append("Invoice Email", account.InvoiceEmail)
				_ = table.Append("Currency", account.Currency)
				_ = table.Append("Registration No", account.RegistrationNo)
				_ = table.Append("VAT No", account.VATNo)

				return table.Render()
			}
		},
	}
}
