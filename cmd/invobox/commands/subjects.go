package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/invobox-io/invobox-client/pkg/invobox"
)

// NewSubjectsCommand creates the subjects command
func NewSubjectsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "subjects",
		Aliases: []string{"subject", "sub"},
		Short:   "Manage subjects",
		Long:    "List, create, update, and delete subjects (customers and suppliers)",
	}

	cmd.AddCommand(newSubjectsListCommand())
	cmd.AddCommand(newSubjectsGetCommand())
	cmd.AddCommand(newSubjectsCreateCommand())
	cmd.AddCommand(newSubjectsUpdateCommand())
	cmd.AddCommand(newSubjectsDeleteCommand())

	return cmd
}

func newSubjectsListCommand() *cobra.Command {
	var (
		page         int
		allPages     bool
		customID     string
		updatedSince string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List subjects",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			params := invobox.NewQueryParams()

			if customID != "" {
				params = params.WithString("custom_id", customID)
			}

			if updatedSince != "" {
				since, err := time.Parse(time.RFC3339, updatedSince)
				if err != nil {
					return fmt.Errorf("invalid --updated-since value: %w", err)
				}

				params = params.WithTime("updated_since", since)
			}

			ctx := context.Background()

			var subjects []invobox.Subject
			if allPages {
				subjects, err = client.Subjects().ListAll(ctx, params)
			} else {
				subjects, err = client.Subjects().List(ctx, page, params)
			}

			if err != nil {
				return fmt.Errorf("failed to list subjects: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case "json":
				return renderJSON(subjects)
			case "yaml":
				return renderYAML(subjects)
			default:
				if len(subjects) == 0 {
					fmt.Println("No subjects found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Email", "City", "Country", "Registration No")

				for _, subject := range subjects {
					_ = table.Append(
						fmt.Sprintf("%d", subject.ID),
						subject.Name,
						subject.Email,
						subject.City,
						subject.Country,
						subject.RegistrationNo,
					)
				}

				return table.Render()
			}
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page to fetch")
	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().StringVar(&customID, "custom-id", "", "filter by custom id")
	cmd.Flags().StringVar(&updatedSince, "updated-since", "", "filter subjects updated after this time (RFC3339 format)")

	return cmd
}

func newSubjectsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Get subject details",
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

			subject, err := client.Subjects().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get subject: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case "json":
				return renderJSON(subject)
			case "yaml":
				return renderYAML(subject)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")

				_ = table.Append("ID", fmt.Sprintf("%d", subject.ID))
				_ = table.Append("Name", subject.Name)
				_ = table.Append("Full Name", subject.FullName)
				_ = table.Append("Email", subject.Email)
				_ = table.Append("Phone", subject.Phone)
				_ = table.Append("Street", subject.Street)
				_ = table.Append("City", subject.City)
				_ = table.Append("Zip", subject.Zip)
				_ = table.Append("Country", subject.Country)
				_ = table.Append("Registration No", subject.RegistrationNo)
				_ = table.Append("VAT No", subject.VATNo)
				_ = table.Append("Custom ID", subject.CustomID)

				return table.Render()
			}
		},
	}
}

func subjectFlags(cmd *cobra.Command, subject *invobox.Subject) {
	cmd.Flags().StringVar(&subject.Name, "name", "", "subject name")
	cmd.Flags().StringVar(&subject.FullName, "full-name", "", "full legal name")
	cmd.Flags().StringVar(&subject.Email, "email", "", "email address")
	cmd.Flags().StringVar(&subject.Phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&subject.Street, "street", "", "street address")
	cmd.Flags().StringVar(&subject.City, "city", "", "city")
	cmd.Flags().StringVar(&subject.Zip, "zip", "", "postal code")
	cmd.Flags().StringVar(&subject.Country, "country", "", "ISO country code")
	cmd.Flags().StringVar(&subject.RegistrationNo, "registration-no", "", "company registration number")
	cmd.Flags().StringVar(&subject.VATNo, "vat-no", "", "VAT number")
	cmd.Flags().StringVar(&subject.CustomID, "custom-id", "", "custom identifier")
	cmd.Flags().StringVar(&subject.Note, "note", "", "note")
}

func newSubjectsCreateCommand() *cobra.Command {
	var subject invobox.Subject

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a subject",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			id, err := client.Subjects().Create(context.Background(), &subject)
			if err != nil {
				return fmt.Errorf("failed to create subject: %w", err)
			}

			fmt.Printf("Created subject %d\n", id)

			return nil
		},
	}

	subjectFlags(cmd, &subject)
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newSubjectsUpdateCommand() *cobra.Command {
	var subject invobox.Subject

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a subject",
		Long:  "Update a subject; flags left unset keep their current values",
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

			current, err := client.Subjects().Get(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to get subject: %w", err)
			}

			applySubjectFlags(cmd, current, &subject)

			updated, err := client.Subjects().Update(ctx, current)
			if err != nil {
				return fmt.Errorf("failed to update subject: %w", err)
			}

			fmt.Printf("Updated subject %d (%s)\n", updated.ID, updated.Name)

			return nil
		},
	}

	subjectFlags(cmd, &subject)

	return cmd
}

// applySubjectFlags copies only the explicitly set flag values onto current.
func applySubjectFlags(cmd *cobra.Command, current, flags *invobox.Subject) {
	set := map[string]*string{
		"name":            &flags.Name,
		"full-name":       &flags.FullName,
		"email":           &flags.Email,
		"phone":           &flags.Phone,
		"street":          &flags.Street,
		"city":            &flags.City,
		"zip":             &flags.Zip,
		"country":         &flags.Country,
		"registration-no": &flags.RegistrationNo,
		"vat-no":          &flags.VATNo,
		"custom-id":       &flags.CustomID,
		"note":            &flags.Note,
	}

	target := map[string]*string{
		"name":            &current.Name,
		"full-name":       &current.FullName,
		"email":           &current.Email,
		"phone":           &current.Phone,
		"street":          &current.Street,
		"city":            &current.City,
		"zip":             &current.Zip,
		"country":         &current.Country,
		"registration-no": &current.RegistrationNo,
		"vat-no":          &current.VATNo,
		"custom-id":       &current.CustomID,
		"note":            &current.Note,
	}

	for name, value := range set {
		if cmd.Flags().Changed(name) {
			*target[name] = *value
		}
	}
}

func newSubjectsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a subject",
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

			if err := client.Subjects().Delete(context.Background(), id); err != nil {
				return fmt.Errorf("failed to delete subject: %w", err)
			}

			fmt.Printf("Deleted subject %d\n", id)

			return nil
		},
	}
}
