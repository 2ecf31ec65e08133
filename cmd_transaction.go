package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/adrianhalim/laundrytui/laundry"
)

// transactionOutput is the CLI-facing shape of a transaction row.
type transactionOutput struct {
	ID            string `json:"id"`
	BillID        string `json:"billId"`
	InvoiceID     string `json:"invoiceId"`
	Customer      string `json:"customer"`
	Package       string `json:"package"`
	Qty           int    `json:"qty"`
	Price         int64  `json:"price"`
	PaymentStatus string `json:"paymentStatus"`
	Status        string `json:"status"`
	FinishDate    string `json:"finishDate"`
}

func convertRowToOutput(row laundry.TransactionRow) transactionOutput {
	return transactionOutput{
		ID:            row.ID,
		BillID:        row.BillID,
		InvoiceID:     row.InvoiceID,
		Customer:      row.CustomerName,
		Package:       row.Product.Name,
		Qty:           row.Qty,
		Price:         row.Price,
		PaymentStatus: string(row.PaymentStatus),
		Status:        string(row.Status),
		FinishDate:    row.FinishDate.Format(finishDateLayout),
	}
}

// transactionCmd represents the transaction command.
var transactionCmd = &cobra.Command{
	Use:   "transaction",
	Short: "Transaction management commands",
	Long:  `Commands for managing the shop's transactions.`,
}

// transactionCreateCmd represents the transaction create command.
var transactionCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new transaction",
	Long:  `Create a new bill with a single detail line.`,
	RunE:  transactionCreateRun,
}

// transactionUpdateCmd represents the transaction update command.
var transactionUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update an existing transaction",
	Long:  `Update a bill detail line. Flags that are not set keep their current values.`,
	RunE:  transactionUpdateRun,
}

// transactionListCmd represents the transaction list command.
var transactionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all transactions",
	Long:  `List every bill detail with its customer, package, and totals.`,
	RunE:  transactionListRun,
}

// transactionPayCmd represents the transaction pay command.
var transactionPayCmd = &cobra.Command{
	Use:   "pay",
	Short: "Set the payment status of a transaction",
	RunE:  transactionPayRun,
}

func init() {
	transactionCmd.AddCommand(transactionCreateCmd)
	transactionCmd.AddCommand(transactionUpdateCmd)
	transactionCmd.AddCommand(transactionListCmd)
	transactionCmd.AddCommand(transactionPayCmd)

	// Transaction create flags
	transactionCreateCmd.Flags().String("customer", "", "Customer ID (required)")
	transactionCreateCmd.Flags().String("package", "", "Package ID (required)")
	transactionCreateCmd.Flags().String("invoice", "", "Numeric invoice ID (required)")
	transactionCreateCmd.Flags().String("qty", "", "Quantity, kilos or pieces (required)")
	transactionCreateCmd.Flags().String("finish-date", time.Now().Format(finishDateLayout),
		"Finish date (YYYY-MM-DD, defaults to today)")
	transactionCreateCmd.Flags().String("payment-status", string(laundry.Unpaid), "Payment status (paid, unpaid)")
	transactionCreateCmd.Flags().String("status", string(laundry.StatusNew),
		"Workflow status (new, in-progress, done, picked-up)")

	_ = transactionCreateCmd.MarkFlagRequired("customer")
	_ = transactionCreateCmd.MarkFlagRequired("package")
	_ = transactionCreateCmd.MarkFlagRequired("invoice")
	_ = transactionCreateCmd.MarkFlagRequired("qty")

	// Transaction update flags
	transactionUpdateCmd.Flags().String("id", "", "Detail ID of the line to update (required)")
	transactionUpdateCmd.Flags().String("package", "", "Package ID")
	transactionUpdateCmd.Flags().String("invoice", "", "Numeric invoice ID")
	transactionUpdateCmd.Flags().String("qty", "", "Quantity, kilos or pieces")
	transactionUpdateCmd.Flags().String("finish-date", "", "Finish date (YYYY-MM-DD)")
	transactionUpdateCmd.Flags().String("payment-status", "", "Payment status (paid, unpaid)")
	transactionUpdateCmd.Flags().String("status", "", "Workflow status (new, in-progress, done, picked-up)")

	_ = transactionUpdateCmd.MarkFlagRequired("id")

	// Transaction list flags
	transactionListCmd.Flags().StringP("output", "o", tableOutputFormat, "Output format: table or json")

	// Transaction pay flags
	transactionPayCmd.Flags().String("id", "", "Detail ID of the line (required)")
	transactionPayCmd.Flags().String("payment-status", string(laundry.Paid), "Payment status (paid, unpaid)")

	_ = transactionPayCmd.MarkFlagRequired("id")
}

// parseQty parses a quantity and rounds partial kilos up to the next
// whole unit.
func parseQty(qtyStr string) (int, error) {
	q, err := strconv.ParseFloat(strings.TrimSpace(qtyStr), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid qty: %s", qtyStr)
	}
	if q <= 0 || math.IsInf(q, 0) || math.IsNaN(q) {
		return 0, fmt.Errorf("qty must be greater than zero: %s", qtyStr)
	}

	return int(math.Ceil(q)), nil
}

func parseInvoiceID(invoice string) (string, error) {
	if _, err := strconv.Atoi(invoice); err != nil {
		return "", fmt.Errorf("invalid invoice ID: %s (must be numeric)", invoice)
	}
	return invoice, nil
}

func parseFinishDate(dateStr string) (time.Time, error) {
	date, err := time.ParseInLocation(finishDateLayout, dateStr, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", dateStr)
	}
	return date, nil
}

func parsePaymentStatus(value string) (laundry.PaymentStatus, error) {
	ps := laundry.PaymentStatus(value)
	if !ps.Valid() {
		return "", fmt.Errorf("invalid payment status: %s (must be 'paid' or 'unpaid')", value)
	}
	return ps, nil
}

func parseStatus(value string) (laundry.Status, error) {
	status := laundry.Status(value)
	if !status.Valid() {
		return "", fmt.Errorf("invalid status: %s (must be one of new, in-progress, done, picked-up)", value)
	}
	return status, nil
}

func transactionCreateRun(cmd *cobra.Command, _ []string) error {
	customerID, _ := cmd.Flags().GetString("customer")
	packageID, _ := cmd.Flags().GetString("package")
	invoice, _ := cmd.Flags().GetString("invoice")
	qtyStr, _ := cmd.Flags().GetString("qty")
	dateStr, _ := cmd.Flags().GetString("finish-date")
	paymentStr, _ := cmd.Flags().GetString("payment-status")
	statusStr, _ := cmd.Flags().GetString("status")

	invoiceID, err := parseInvoiceID(invoice)
	if err != nil {
		return err
	}

	qty, err := parseQty(qtyStr)
	if err != nil {
		return err
	}

	finishDate, err := parseFinishDate(dateStr)
	if err != nil {
		return err
	}

	paymentStatus, err := parsePaymentStatus(paymentStr)
	if err != nil {
		return err
	}

	status, err := parseStatus(statusStr)
	if err != nil {
		return err
	}

	request := laundry.CreateTransactionRequest{
		CustomerID: customerID,
		BillDetails: []laundry.BillDetailParams{
			{
				InvoiceID:     invoiceID,
				Product:       laundry.ProductRef{ID: packageID},
				Qty:           qty,
				PaymentStatus: paymentStatus,
				Status:        status,
				FinishDate:    finishDate,
			},
		},
	}

	log.Debug("creating transaction", "request", request)

	row, err := store.AddTransaction(request)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	log.Infof("Transaction created for %s: %s (%s)", row.CustomerName, row.Product.Name, laundry.Rupiah(row.Price))
	return nil
}

func transactionUpdateRun(cmd *cobra.Command, _ []string) error {
	detailID, _ := cmd.Flags().GetString("id")

	existing, err := store.Transaction(detailID)
	if err != nil {
		return err
	}

	params := laundry.BillDetailParams{
		ID:            existing.ID,
		InvoiceID:     existing.InvoiceID,
		Product:       laundry.ProductRef{ID: existing.Product.ID},
		Qty:           existing.Qty,
		PaymentStatus: existing.PaymentStatus,
		Status:        existing.Status,
		FinishDate:    existing.FinishDate,
	}

	if cmd.Flags().Changed("package") {
		packageID, _ := cmd.Flags().GetString("package")
		params.Product = laundry.ProductRef{ID: packageID}
	}
	if cmd.Flags().Changed("invoice") {
		invoice, _ := cmd.Flags().GetString("invoice")
		if params.InvoiceID, err = parseInvoiceID(invoice); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("qty") {
		qtyStr, _ := cmd.Flags().GetString("qty")
		if params.Qty, err = parseQty(qtyStr); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("finish-date") {
		dateStr, _ := cmd.Flags().GetString("finish-date")
		if params.FinishDate, err = parseFinishDate(dateStr); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("payment-status") {
		paymentStr, _ := cmd.Flags().GetString("payment-status")
		if params.PaymentStatus, err = parsePaymentStatus(paymentStr); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("status") {
		statusStr, _ := cmd.Flags().GetString("status")
		if params.Status, err = parseStatus(statusStr); err != nil {
			return err
		}
	}

	request := laundry.UpdateTransactionRequest{
		ID:          existing.BillID,
		CustomerID:  existing.CustomerID,
		BillDetails: []laundry.BillDetailParams{params},
	}

	log.Debug("updating transaction", "request", request)

	row, err := store.UpdateTransaction(request)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	log.Infof("Transaction updated for %s: %s (%s)", row.CustomerName, row.Product.Name, laundry.Rupiah(row.Price))
	return nil
}

func transactionListRun(cmd *cobra.Command, _ []string) error {
	outputFormat, err := validateOutputFormat(cmd)
	if err != nil {
		return err
	}

	rows := store.Transactions()

	outputs := make([]transactionOutput, len(rows))
	for i, row := range rows {
		outputs[i] = convertRowToOutput(row)
	}

	switch outputFormat {
	case jsonOutputFormat:
		return outputJSON(outputs)
	case tableOutputFormat:
		return outputTransactionsTable(outputs)
	default:
		return errors.New("unsupported output format")
	}
}

func transactionPayRun(cmd *cobra.Command, _ []string) error {
	detailID, _ := cmd.Flags().GetString("id")
	paymentStr, _ := cmd.Flags().GetString("payment-status")

	paymentStatus, err := parsePaymentStatus(paymentStr)
	if err != nil {
		return err
	}

	row, err := store.SetPaymentStatus(detailID, paymentStatus)
	if err != nil {
		return fmt.Errorf("failed to set payment status: %w", err)
	}

	log.Infof("Marked %s for %s (%s)", row.PaymentStatus, row.CustomerName, laundry.Rupiah(row.Price))
	return nil
}

func outputTransactionsTable(outputs []transactionOutput) error {
	t := createStyledTable(
		"ID",
		"INVOICE",
		"CUSTOMER",
		"PACKAGE",
		"QTY",
		"PRICE",
		"PAYMENT",
		"STATUS",
		"FINISH DATE",
	)

	for _, out := range outputs {
		t.Row(
			out.ID,
			out.InvoiceID,
			out.Customer,
			out.Package,
			strconv.Itoa(out.Qty),
			laundry.Rupiah(out.Price),
			out.PaymentStatus,
			out.Status,
			out.FinishDate,
		)
	}

	fmt.Println(t)

	return nil
}
