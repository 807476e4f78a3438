package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewBankAccountsCommand creates the bank-accounts command
func NewBankAccountsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "bank-accounts",
		Aliases: []string{"bank-account", "ba"},
		Short:   "List bank accounts",
		Long:    "List the bank accounts configured on the billing account",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			accounts, err := client.BankAccounts().List(context.Background(), nil)
			if err != nil {
				return fmt.Errorf("failed to list bank accounts: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case "json":
				return renderJSON(accounts)
			case "yaml":
				return renderYAML(accounts)
			default:
				if len(accounts) == 0 {
					fmt.Println("No bank accounts found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Currency", "Number", "IBAN", "Default")

				for _, account := range accounts {
					_ = table.Append(
						fmt.Sprintf("%d", account.ID),
						account.Name,
						account.Currency,
						account.Number,
						account.IBAN,
						fmt.Sprintf("%t", account.Default),
					)
				}

				return table.Render()
			}
		},
	}
}
