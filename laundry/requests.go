package laundry

import "time"

// ProductRef references a package by id in a request payload.
type ProductRef struct {
	ID string `json:"id"`
}

// BillDetailParams is one bill-detail line in a create or update request.
// ID is empty on create; the store assigns it.
type BillDetailParams struct {
	ID            string        `json:"id,omitempty"`
	InvoiceID     string        `json:"invoiceId"`
	Product       ProductRef    `json:"product"`
	Qty           int           `json:"qty"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	Status        Status        `json:"status"`
	FinishDate    time.Time     `json:"finishDate"`
}

// CreateTransactionRequest creates a new bill with its detail lines.
type CreateTransactionRequest struct {
	CustomerID  string             `json:"customerId"`
	BillDetails []BillDetailParams `json:"billDetails"`
}

// UpdateTransactionRequest updates detail lines on an existing bill.
// ID is the bill id; each detail line carries its own id.
type UpdateTransactionRequest struct {
	ID          string             `json:"id"`
	CustomerID  string             `json:"customerId"`
	BillDetails []BillDetailParams `json:"billDetails"`
}
