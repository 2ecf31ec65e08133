package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// customersCmd represents the customers command.
var customersCmd = &cobra.Command{
	Use:   "customers",
	Short: "Customer management commands",
	Long:  `Commands for viewing the shop's customer roster.`,
}

// customersListCmd represents the customers list command.
var customersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all customers",
	Long:  `List every customer with their ID, phone number, and address.`,
	RunE:  customersListRun,
}

func init() {
	customersCmd.AddCommand(customersListCmd)

	customersListCmd.Flags().StringP("output", "o", tableOutputFormat, "Output format: table or json")
}

func customersListRun(cmd *cobra.Command, _ []string) error {
	outputFormat, err := validateOutputFormat(cmd)
	if err != nil {
		return err
	}

	customers := store.Customers()

	switch outputFormat {
	case jsonOutputFormat:
		return outputJSON(customers)
	case tableOutputFormat:
		t := createStyledTable("ID", "NAME", "PHONE", "ADDRESS")
		for _, c := range customers {
			t.Row(c.ID, c.Name, c.PhoneNumber, c.Address)
		}
		fmt.Println(t)
		return nil
	default:
		return errors.New("unsupported output format")
	}
}
