package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/adrianhalim/laundrytui/laundry"
)

const finishDateLayout = "2006-01-02"

// formMode is fixed when the form is built; a form never switches between
// creating and editing.
type formMode int

const (
	createMode formMode = iota
	editMode
)

// transactionForm is the modal for creating or editing one bill detail.
// The customer and package snapshots are handed in at construction and
// treated as read-only for the form's lifetime.
type transactionForm struct {
	form *huh.Form
	mode formMode
	// existing is the row being edited; zero value in create mode.
	existing  laundry.TransactionRow
	customers []laundry.Customer
	packages  []laundry.Package
	// price is the stored derived total as a plain numeric string. It is
	// only ever written by refreshPrice and never edited by the user.
	price string

	onClose func()
	closed  bool
}

// newTransactionForm builds the modal. A nil existing row means create
// mode with empty fields and the finish date defaulted to today; a
// non-nil row means edit mode with fields back-filled from it.
func newTransactionForm(
	customers []laundry.Customer,
	packages []laundry.Package,
	existing *laundry.TransactionRow,
	onClose func(),
) *transactionForm {
	customerOpts := make([]huh.Option[string], len(customers))
	for i, c := range customers {
		customerOpts[i] = huh.NewOption(fmt.Sprintf("%s %s", c.PhoneNumber, c.Name), c.ID)
	}

	packageOpts := make([]huh.Option[string], len(packages))
	for i, p := range packages {
		packageOpts[i] = huh.NewOption(p.Name, p.ID)
	}

	statusOpts := make([]huh.Option[string], 0, len(laundry.Statuses()))
	for _, st := range laundry.Statuses() {
		statusOpts = append(statusOpts, huh.NewOption(statusLabel(st), string(st)))
	}

	paymentOpts := []huh.Option[string]{
		huh.NewOption("Unpaid", string(laundry.Unpaid)),
		huh.NewOption("Paid", string(laundry.Paid)),
	}

	invoiceID := ""
	customerID := ""
	packageID := ""
	qty := ""
	finishDate := time.Now().Format(finishDateLayout)
	paymentStatus := ""
	status := ""
	price := ""

	tf := &transactionForm{
		mode:      createMode,
		customers: customers,
		packages:  packages,
		onClose:   onClose,
	}

	if existing != nil {
		tf.mode = editMode
		tf.existing = *existing

		invoiceID = existing.InvoiceID
		customerID = existing.CustomerID
		packageID = existing.Product.ID
		qty = strconv.Itoa(existing.Qty)
		finishDate = existing.FinishDate.Format(finishDateLayout)
		paymentStatus = string(existing.PaymentStatus)
		status = string(existing.Status)
		price = strconv.FormatInt(existing.Price, 10)
	}
	tf.price = price

	tf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Invoice No.").
				Description("Customer-facing invoice reference").
				Key("invoiceId").
				Value(&invoiceID).
				Placeholder("Enter invoice number...").
				Validate(validateInvoiceID),

			huh.NewSelect[string]().
				Title("Customer").
				Description("Who the laundry belongs to").
				Options(customerOpts...).
				Key("customer").
				Value(&customerID).
				Validate(requireSelection("customer")),

			huh.NewSelect[string]().
				Title("Laundry package").
				Description("Service package from the catalog").
				Options(packageOpts...).
				Key("package").
				Value(&packageID).
				Validate(requireSelection("laundry package")),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Qty").
				Description("Kilograms or pieces, depending on the package").
				Key("qty").
				Value(&qty).
				Placeholder("Enter quantity...").
				Validate(validateQty),

			huh.NewInput().
				Title("Finish date").
				Description("When the order is promised (YYYY-MM-DD)").
				Key("finishDate").
				Value(&finishDate).
				Placeholder(finishDateLayout).
				Validate(validateFinishDate),

			huh.NewSelect[string]().
				Title("Payment").
				Options(paymentOpts...).
				Key("paymentStatus").
				Value(&paymentStatus).
				Validate(requireSelection("payment status")),

			huh.NewSelect[string]().
				Title("Status").
				Options(statusOpts...).
				Key("status").
				Value(&status).
				Validate(requireSelection("status")),
		),
	)

	return tf
}

// editing reports whether the form was mounted on an existing row.
func (f *transactionForm) editing() bool {
	return f.mode == editMode
}

// refreshPrice recomputes the derived total from the currently selected
// package and quantity. On invalid input the previous total is retained,
// so a transient bad keystroke never blanks the displayed amount.
func (f *transactionForm) refreshPrice() {
	pkg := f.selectedPackage()
	total, ok := computePrice(pkg, f.form.GetString("qty"))
	if !ok {
		return
	}
	f.price = strconv.FormatInt(total, 10)
}

// totalDisplay renders the stored total as rupiah for the read-only
// total line under the form.
func (f *transactionForm) totalDisplay() string {
	amount, err := strconv.ParseInt(f.price, 10, 64)
	if err != nil {
		amount = 0
	}
	return laundry.Rupiah(amount)
}

func (f *transactionForm) selectedPackage() *laundry.Package {
	id := f.form.GetString("package")
	for i := range f.packages {
		if f.packages[i].ID == id {
			return &f.packages[i]
		}
	}
	return nil
}

// qtyValue coerces the quantity input to an integer, rounding up
// fractional input.
func (f *transactionForm) qtyValue() int {
	q, err := strconv.ParseFloat(f.form.GetString("qty"), 64)
	if err != nil {
		return 0
	}
	return int(math.Ceil(q))
}

func (f *transactionForm) finishDateValue() time.Time {
	d, err := time.ParseInLocation(finishDateLayout, f.form.GetString("finishDate"), time.Local)
	if err != nil {
		return time.Now()
	}
	return d
}

// createRequest assembles the create payload: resolved customer id and a
// single new bill-detail line with no ids, which the store assigns.
func (f *transactionForm) createRequest() laundry.CreateTransactionRequest {
	return laundry.CreateTransactionRequest{
		CustomerID: f.form.GetString("customer"),
		BillDetails: []laundry.BillDetailParams{
			{
				InvoiceID:     f.form.GetString("invoiceId"),
				Product:       laundry.ProductRef{ID: f.form.GetString("package")},
				Qty:           f.qtyValue(),
				PaymentStatus: laundry.PaymentStatus(f.form.GetString("paymentStatus")),
				Status:        laundry.Status(f.form.GetString("status")),
				FinishDate:    f.finishDateValue(),
			},
		},
	}
}

// updateRequest assembles the update payload keyed by the original bill
// id, with one line keyed by the original detail id and invoice id.
func (f *transactionForm) updateRequest() laundry.UpdateTransactionRequest {
	return laundry.UpdateTransactionRequest{
		ID:         f.existing.BillID,
		CustomerID: f.form.GetString("customer"),
		BillDetails: []laundry.BillDetailParams{
			{
				ID:            f.existing.ID,
				InvoiceID:     f.existing.InvoiceID,
				Product:       laundry.ProductRef{ID: f.form.GetString("package")},
				Qty:           f.qtyValue(),
				PaymentStatus: laundry.PaymentStatus(f.form.GetString("paymentStatus")),
				Status:        laundry.Status(f.form.GetString("status")),
				FinishDate:    f.finishDateValue(),
			},
		},
	}
}

// close invokes the onClose callback exactly once, no matter how many
// times the form is told to close.
func (f *transactionForm) close() {
	if f.closed {
		return
	}
	f.closed = true
	if f.onClose != nil {
		f.onClose()
	}
}

// Validators.

func validateInvoiceID(s string) error {
	if s == "" {
		return errors.New("invoice number is required")
	}
	if _, err := strconv.Atoi(s); err != nil {
		return errors.New("invoice number must be numeric")
	}
	return nil
}

func validateQty(s string) error {
	if s == "" {
		return errors.New("quantity is required")
	}
	q, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return errors.New("quantity must be a number")
	}
	if q <= 0 {
		return errors.New("quantity must be positive")
	}
	return nil
}

func validateFinishDate(s string) error {
	if s == "" {
		return errors.New("finish date is required")
	}
	d, err := time.ParseInLocation(finishDateLayout, s, time.Local)
	if err != nil {
		return fmt.Errorf("finish date must be in %s format", finishDateLayout)
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	if d.Before(today) {
		return errors.New("finish date must not be in the past")
	}
	return nil
}

func requireSelection(what string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", what)
		}
		return nil
	}
}

func statusLabel(s laundry.Status) string {
	switch s {
	case laundry.StatusNew:
		return "New"
	case laundry.StatusInProgress:
		return "In Progress"
	case laundry.StatusDone:
		return "Done"
	case laundry.StatusPickedUp:
		return "Picked Up"
	}
	return string(s)
}
