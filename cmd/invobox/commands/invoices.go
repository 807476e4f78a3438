package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/invobox-io/invobox-client/pkg/invobox"
)

// NewInvoicesCommand creates the invoices command
func NewInvoicesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "invoices",
		Aliases: []string{"invoice", "inv"},
		Short:   "Manage invoices",
		Long:    "List, create, update, and delete invoices",
	}

	cmd.AddCommand(newInvoicesListCommand())
	cmd.AddCommand(newInvoicesGetCommand())
	cmd.AddCommand(newInvoicesCreateCommand())
	cmd.AddCommand(newInvoicesUpdateCommand())
	cmd.AddCommand(newInvoicesDeleteCommand())

	return cmd
}

func newInvoicesListCommand() *cobra.Command {
	var (
		page      int
		allPages  bool
		status    string
		subjectID int64
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List invoices",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			params := invobox.NewQueryParams()

			if status != "" {
				params = params.WithString("status", status)
			}

			if subjectID > 0 {
				params = params.WithInt64("subject_id", subjectID)
			}

			ctx := context.Background()

			var invoices []invobox.Invoice
			if allPages {
				invoices, err = client.Invoices().ListAll(ctx, params)
			} else {
				invoices, err = client.Invoices().List(ctx, page, params)
			}

			if err != nil {
				return fmt.Errorf("failed to list invoices: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case "json":
				return renderJSON(invoices)
			case "yaml":
				return renderYAML(invoices)
			default:
				if len(invoices) == 0 {
					fmt.Println("No invoices found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Number", "Subject", "Status", "Issued", "Due", "Total", "Currency")

				for _, invoice := range invoices {
					_ = table.Append(
						fmt.Sprintf("%d", invoice.ID),
						invoice.Number,
						fmt.Sprintf("%d", invoice.SubjectID),
						invoice.Status,
						invoice.IssuedOn,
						invoice.DueOn,
						invoice.Total,
						invoice.Currency,
					)
				}

				return table.Render()
			}
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page to fetch")
	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().StringVar(&status, "status", "", "filter by status (open, sent, paid, overdue)")
	cmd.Flags().Int64Var(&subjectID, "subject-id", 0, "filter by subject id")

	return cmd
}

func newInvoicesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Get invoice details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEntityID(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			invoice, err := client.Invoices().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get invoice: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case "json":
				return renderJSON(invoice)
			case "yaml":
				return renderYAML(invoice)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")

				_ = table.Append("ID", fmt.Sprintf("%d", invoice.ID))
				_ = table.Append("Number", invoice.Number)
				_ = table.Append("Subject ID", fmt.Sprintf("%d", invoice.SubjectID))
				_ = table.Append("Status", invoice.Status)
				_ = table.Append("Issued On", invoice.IssuedOn)
				_ = table.Append("Due On", invoice.DueOn)
				_ = table.Append("Subtotal", invoice.Subtotal)
				_ = table.Append("Total", invoice.Total)
				_ = table.Append("Currency", invoice.Currency)
				_ = table.Append("Note", invoice.Note)

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				if len(invoice.Lines) > 0 {
					fmt.Println("\nLines:")

					linesTable := tablewriter.NewWriter(os.Stdout)
					linesTable.Header("Name", "Quantity", "Unit", "Unit Price", "VAT %")

					for _, line := range invoice.Lines {
						_ = linesTable.Append(
							line.Name,
							line.Quantity,
							line.UnitName,
							line.UnitPrice,
							fmt.Sprintf("%d", line.VATRate),
						)
					}

					return linesTable.Render()
				}

				return nil
			}
		},
	}
}

// parseInvoiceLine parses a --line value of the form NAME:QUANTITY:UNIT_PRICE.
func parseInvoiceLine(value string) (invobox.InvoiceLine, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 3 || parts[0] == "" || parts[2] == "" {
		return invobox.InvoiceLine{}, fmt.Errorf("invalid --line value %q: expected NAME:QUANTITY:UNIT_PRICE", value)
	}

	return invobox.InvoiceLine{
		Name:      parts[0],
		Quantity:  parts[1],
		UnitPrice: parts[2],
	}, nil
}

func newInvoicesCreateCommand() *cobra.Command {
	var (
		invoice invobox.Invoice
		lines   []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an invoice",
		Long:  "Create an invoice with one or more lines of the form NAME:QUANTITY:UNIT_PRICE",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, raw := range lines {
				line, err := parseInvoiceLine(raw)
				if err != nil {
					return err
				}

				invoice.Lines = append(invoice.Lines, line)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			id, err := client.Invoices().Create(context.Background(), &invoice)
			if err != nil {
				return fmt.Errorf("failed to create invoice: %w", err)
			}

			fmt.Printf("Created invoice %d\n", id)

			return nil
		},
	}

	cmd.Flags().Int64Var(&invoice.SubjectID, "subject-id", 0, "subject the invoice is issued to")
	cmd.Flags().StringVar(&invoice.OrderNumber, "order-number", "", "order number")
	cmd.Flags().IntVar(&invoice.Due, "due", 0, "days until due")
	cmd.Flags().StringVar(&invoice.Currency, "currency", "", "invoice currency")
	cmd.Flags().StringVar(&invoice.Note, "note", "", "note")
	cmd.Flags().StringArrayVar(&lines, "line", nil, "invoice line NAME:QUANTITY:UNIT_PRICE (repeatable)")
	_ = cmd.MarkFlagRequired("subject-id")
	_ = cmd.MarkFlagRequired("line")

	return cmd
}

func newInvoicesUpdateCommand() *cobra.Command {
	var (
		orderNumber string
		due         int
		note        string
	)

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update an invoice",
		Long:  "Update an invoice; flags left unset keep their current values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEntityID(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			invoice, err := client.Invoices().Get(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to get invoice: %w", err)
			}

			if cmd.Flags().Changed("order-number") {
				invoice.OrderNumber = orderNumber
			}

			if cmd.Flags().Changed("due") {
				invoice.Due = due
			}

			if cmd.Flags().Changed("note") {
				invoice.Note = note
			}

			updated, err := client.Invoices().Update(ctx, invoice)
			if err != nil {
				return fmt.Errorf("failed to update invoice: %w", err)
			}

			fmt.Printf("Updated invoice %d (%s)\n", updated.ID, updated.Number)

			return nil
		},
	}

	cmd.Flags().StringVar(&orderNumber, "order-number", "", "order number")
	cmd.Flags().IntVar(&due, "due", 0, "days until due")
	cmd.Flags().StringVar(&note, "note", "", "note")

	return cmd
}

func newInvoicesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete an invoice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEntityID(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			if err := client.Invoices().Delete(context.Background(), id); err != nil {
				return fmt.Errorf("failed to delete invoice: %w", err)
			}

			fmt.Printf("Deleted invoice %d\n", id)

			return nil
		},
	}
}
