package main

import (
	"testing"
	"time"

	"github.com/carlmjohnson/be"

	"github.com/adrianhalim/laundrytui/laundry"
)

var (
	testCustomers = []laundry.Customer{
		{ID: "c1", Name: "Ratna Dewi", PhoneNumber: "0812-5521-7730", Address: "Jl. Melati 14"},
		{ID: "c2", Name: "Budi Santoso", PhoneNumber: "0813-9904-1182", Address: "Jl. Kenanga 3"},
	}

	testPackages = []laundry.Package{
		{ID: "p1", Name: "Wash & Fold", Price: 7000, Type: "kiloan"},
		{ID: "p3", Name: "Express Wash", Price: 15000, Type: "kiloan"},
	}
)

func testExistingRow() laundry.TransactionRow {
	return laundry.TransactionRow{
		ID:            "t9",
		BillID:        "b1",
		CustomerID:    "c1",
		CustomerName:  "Ratna Dewi",
		InvoiceID:     "7",
		Product:       laundry.Package{ID: "p1", Name: "Wash & Fold", Price: 7000, Type: "kiloan"},
		Qty:           3,
		Price:         21000,
		PaymentStatus: laundry.Unpaid,
		Status:        laundry.StatusNew,
		FinishDate:    time.Now().AddDate(0, 0, 2),
	}
}

func TestNewTransactionFormCreateMode(t *testing.T) {
	tf := newTransactionForm(testCustomers, testPackages, nil, nil)

	be.False(t, tf.editing())
	be.Equal(t, "", tf.price)
	be.Equal(t, "Rp0", tf.totalDisplay())
	be.Nonzero(t, tf.form)
}

func TestNewTransactionFormEditMode(t *testing.T) {
	row := testExistingRow()
	tf := newTransactionForm(testCustomers, testPackages, &row, nil)

	be.True(t, tf.editing())
	be.Equal(t, row.ID, tf.existing.ID)
	be.Equal(t, row.BillID, tf.existing.BillID)
	// price seeds from the stored line total
	be.Equal(t, "21000", tf.price)
	be.Equal(t, "Rp21.000", tf.totalDisplay())
}

func TestCreateRequestHasNoLineIDs(t *testing.T) {
	tf := newTransactionForm(testCustomers, testPackages, nil, nil)

	req := tf.createRequest()
	be.Equal(t, 1, len(req.BillDetails))
	// the store assigns bill and detail ids on create
	be.Equal(t, "", req.BillDetails[0].ID)
}

func TestUpdateRequestKeepsIdentity(t *testing.T) {
	row := testExistingRow()
	tf := newTransactionForm(testCustomers, testPackages, &row, nil)

	req := tf.updateRequest()
	be.Equal(t, "b1", req.ID)
	be.Equal(t, 1, len(req.BillDetails))
	be.Equal(t, "t9", req.BillDetails[0].ID)
	be.Equal(t, "7", req.BillDetails[0].InvoiceID)
}

func TestFormCloseOnlyOnce(t *testing.T) {
	closeCount := 0
	tf := newTransactionForm(testCustomers, testPackages, nil, func() {
		closeCount++
	})

	tf.close()
	tf.close()
	tf.close()

	be.Equal(t, 1, closeCount)
}

func TestFormCloseNilCallback(t *testing.T) {
	tf := newTransactionForm(testCustomers, testPackages, nil, nil)

	// must not panic
	tf.close()
	be.True(t, tf.closed)
}

func TestRefreshPriceRetainsStale(t *testing.T) {
	tf := newTransactionForm(testCustomers, testPackages, nil, nil)
	tf.price = "15000"

	// nothing selected yet, so the recompute fails and the stored
	// total survives
	tf.refreshPrice()

	be.Equal(t, "15000", tf.price)
	be.Equal(t, "Rp15.000", tf.totalDisplay())
}

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		status   laundry.Status
		expected string
	}{
		{status: laundry.StatusNew, expected: "New"},
		{status: laundry.StatusInProgress, expected: "In Progress"},
		{status: laundry.StatusDone, expected: "Done"},
		{status: laundry.StatusPickedUp, expected: "Picked Up"},
		{status: laundry.Status("other"), expected: "other"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			be.Equal(t, tt.expected, statusLabel(tt.status))
		})
	}
}

func TestValidateInvoiceID(t *testing.T) {
	be.NilErr(t, validateInvoiceID("42"))
	be.Nonzero(t, validateInvoiceID(""))
	be.Nonzero(t, validateInvoiceID("INV-42"))
}

func TestValidateQty(t *testing.T) {
	be.NilErr(t, validateQty("3"))
	be.NilErr(t, validateQty("2.5"))
	be.Nonzero(t, validateQty(""))
	be.Nonzero(t, validateQty("abc"))
	be.Nonzero(t, validateQty("0"))
	be.Nonzero(t, validateQty("-1"))
}

func TestValidateFinishDate(t *testing.T) {
	today := time.Now().Format(finishDateLayout)
	tomorrow := time.Now().AddDate(0, 0, 1).Format(finishDateLayout)
	lastWeek := time.Now().AddDate(0, 0, -7).Format(finishDateLayout)

	be.NilErr(t, validateFinishDate(today))
	be.NilErr(t, validateFinishDate(tomorrow))
	be.Nonzero(t, validateFinishDate(lastWeek))
	be.Nonzero(t, validateFinishDate(""))
	be.Nonzero(t, validateFinishDate("01/09/2026"))
}

func TestRequireSelection(t *testing.T) {
	validate := requireSelection("customer")

	be.NilErr(t, validate("c1"))
	be.Nonzero(t, validate(""))
}
