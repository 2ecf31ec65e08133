// Package laundry holds the domain types and the local store for a laundry
// shop's customers, service packages, and transactions (bills).
package laundry

import (
	"time"

	money "github.com/Rhymond/go-money"
)

func init() {
	// Rupiah amounts are whole numbers in practice; the stock IDR
	// definition renders two decimal places.
	money.AddCurrency("IDR", "Rp", "$1", ",", ".", 0)
}

// PaymentStatus reports whether a bill detail has been paid.
type PaymentStatus string

const (
	Unpaid PaymentStatus = "unpaid"
	Paid   PaymentStatus = "paid"
)

// Valid reports whether ps is one of the known payment statuses.
func (ps PaymentStatus) Valid() bool {
	return ps == Unpaid || ps == Paid
}

// Status is the workflow state of a bill detail.
type Status string

const (
	StatusNew        Status = "new"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
	StatusPickedUp   Status = "picked-up"
)

// Valid reports whether s is one of the known workflow statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusDone, StatusPickedUp:
		return true
	}
	return false
}

// Statuses lists the workflow states in order.
func Statuses() []Status {
	return []Status{StatusNew, StatusInProgress, StatusDone, StatusPickedUp}
}

// Customer is a laundry shop customer.
type Customer struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
}

// Package is a laundry service package from the shop's catalog.
type Package struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// Price is the unit price in whole rupiah.
	Price int64  `json:"price"`
	Type  string `json:"type"`
}

// BillDetail is one package/quantity/status line on a customer's bill.
type BillDetail struct {
	ID        string  `json:"id"`
	BillID    string  `json:"billId"`
	InvoiceID string  `json:"invoiceId"`
	Product   Package `json:"product"`
	Qty       int     `json:"qty"`
	// Price is the line total: Product.Price * Qty. The store recomputes
	// it on every write so it can never drift from its inputs.
	Price         int64         `json:"price"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	Status        Status        `json:"status"`
	FinishDate    time.Time     `json:"finishDate"`
}

// Bill groups the bill details belonging to one customer.
type Bill struct {
	ID          string       `json:"id"`
	CustomerID  string       `json:"customerId"`
	BillDetails []BillDetail `json:"billDetails"`
}

// TransactionRow is a bill detail joined with its bill and customer,
// flattened for list views and the edit form.
type TransactionRow struct {
	ID            string
	BillID        string
	CustomerID    string
	CustomerName  string
	InvoiceID     string
	Product       Package
	Qty           int
	Price         int64
	PaymentStatus PaymentStatus
	Status        Status
	FinishDate    time.Time
}

// Rupiah renders a whole-rupiah amount with grouped thousands and no
// decimal places, e.g. 150000 -> "Rp150.000".
func Rupiah(amount int64) string {
	return money.New(amount, money.IDR).Display()
}
