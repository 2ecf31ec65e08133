package laundry

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/carlmjohnson/be"
)

func testFinishDate(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.ParseInLocation("2006-01-02", value, time.Local)
	be.NilErr(t, err)
	return d
}

func TestSeededStoreLookups(t *testing.T) {
	s := NewSeeded()

	customers := s.Customers()
	be.Equal(t, 3, len(customers))

	packages := s.Packages()
	be.Equal(t, 4, len(packages))

	customer, err := s.CustomerByID("c1")
	be.NilErr(t, err)
	be.Equal(t, "Ratna Dewi", customer.Name)

	pkg, err := s.PackageByID("p2")
	be.NilErr(t, err)
	be.Equal(t, int64(10000), pkg.Price)

	_, err = s.CustomerByID("nope")
	be.True(t, errors.Is(err, ErrCustomerNotFound))

	_, err = s.PackageByID("nope")
	be.True(t, errors.Is(err, ErrPackageNotFound))
}

func TestCustomersSortedByName(t *testing.T) {
	s := NewSeeded()

	customers := s.Customers()
	for i := 1; i < len(customers); i++ {
		be.True(t, customers[i-1].Name <= customers[i].Name)
	}
}

func TestAddTransaction(t *testing.T) {
	s := NewSeeded()

	row, err := s.AddTransaction(CreateTransactionRequest{
		CustomerID: "c1",
		BillDetails: []BillDetailParams{
			{
				InvoiceID:     "7",
				Product:       ProductRef{ID: "p1"},
				Qty:           4,
				PaymentStatus: Paid,
				Status:        StatusNew,
				FinishDate:    testFinishDate(t, "2026-09-01"),
			},
		},
	})
	be.NilErr(t, err)

	be.Nonzero(t, row.ID)
	be.Nonzero(t, row.BillID)
	be.Equal(t, "c1", row.CustomerID)
	be.Equal(t, "Ratna Dewi", row.CustomerName)
	be.Equal(t, "7", row.InvoiceID)
	be.Equal(t, "Wash & Fold", row.Product.Name)
	be.Equal(t, 4, row.Qty)
	// price derives from the package unit price, never from the caller
	be.Equal(t, int64(28000), row.Price)
	be.Equal(t, Paid, row.PaymentStatus)
	be.Equal(t, StatusNew, row.Status)
}

func TestAddTransactionValidation(t *testing.T) {
	tests := []struct {
		name    string
		request CreateTransactionRequest
		wantErr error
	}{
		{
			name: "unknown customer",
			request: CreateTransactionRequest{
				CustomerID: "ghost",
				BillDetails: []BillDetailParams{
					{InvoiceID: "1", Product: ProductRef{ID: "p1"}, Qty: 1},
				},
			},
			wantErr: ErrCustomerNotFound,
		},
		{
			name: "unknown package",
			request: CreateTransactionRequest{
				CustomerID: "c1",
				BillDetails: []BillDetailParams{
					{InvoiceID: "1", Product: ProductRef{ID: "ghost"}, Qty: 1},
				},
			},
			wantErr: ErrPackageNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSeeded()
			_, err := s.AddTransaction(tt.request)
			be.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestAddTransactionNoDetails(t *testing.T) {
	s := NewSeeded()

	_, err := s.AddTransaction(CreateTransactionRequest{CustomerID: "c1"})
	be.Nonzero(t, err)
}

func TestUpdateTransaction(t *testing.T) {
	s := NewSeeded()
	s.seedBill(Bill{
		ID:         "b1",
		CustomerID: "c1",
		BillDetails: []BillDetail{
			{
				ID:            "t9",
				BillID:        "b1",
				InvoiceID:     "7",
				Product:       Package{ID: "p1", Name: "Wash & Fold", Price: 7000, Type: "kiloan"},
				Qty:           3,
				Price:         21000,
				PaymentStatus: Unpaid,
				Status:        StatusNew,
				FinishDate:    testFinishDate(t, "2026-09-01"),
			},
		},
	})

	row, err := s.UpdateTransaction(UpdateTransactionRequest{
		ID:         "b1",
		CustomerID: "c1",
		BillDetails: []BillDetailParams{
			{
				ID:            "t9",
				InvoiceID:     "7",
				Product:       ProductRef{ID: "p3"},
				Qty:           2,
				PaymentStatus: Paid,
				Status:        StatusDone,
				FinishDate:    testFinishDate(t, "2026-09-02"),
			},
		},
	})
	be.NilErr(t, err)

	be.Equal(t, "t9", row.ID)
	be.Equal(t, "b1", row.BillID)
	be.Equal(t, "Express Wash", row.Product.Name)
	be.Equal(t, 2, row.Qty)
	// price recomputed from the new package and qty
	be.Equal(t, int64(30000), row.Price)
	be.Equal(t, Paid, row.PaymentStatus)
	be.Equal(t, StatusDone, row.Status)
}

func TestUpdateTransactionUnknown(t *testing.T) {
	s := NewSeeded()

	_, err := s.UpdateTransaction(UpdateTransactionRequest{
		ID: "ghost",
		BillDetails: []BillDetailParams{
			{ID: "t1", Product: ProductRef{ID: "p1"}, Qty: 1},
		},
	})
	be.True(t, errors.Is(err, ErrTransactionNotFound))
}

func TestSetPaymentStatus(t *testing.T) {
	s := NewSeeded()

	row, err := s.AddTransaction(CreateTransactionRequest{
		CustomerID: "c2",
		BillDetails: []BillDetailParams{
			{
				InvoiceID:     "12",
				Product:       ProductRef{ID: "p4"},
				Qty:           1,
				PaymentStatus: Unpaid,
				Status:        StatusNew,
				FinishDate:    testFinishDate(t, "2026-09-03"),
			},
		},
	})
	be.NilErr(t, err)
	be.Equal(t, int64(35000), s.Outstanding())

	updated, err := s.SetPaymentStatus(row.ID, Paid)
	be.NilErr(t, err)
	be.Equal(t, Paid, updated.PaymentStatus)
	be.Equal(t, int64(0), s.Outstanding())
}

func TestTransactionsOrdering(t *testing.T) {
	s := NewSeeded()

	later := testFinishDate(t, "2026-09-05")
	earlier := testFinishDate(t, "2026-09-01")

	_, err := s.AddTransaction(CreateTransactionRequest{
		CustomerID: "c1",
		BillDetails: []BillDetailParams{
			{InvoiceID: "1", Product: ProductRef{ID: "p1"}, Qty: 1, PaymentStatus: Unpaid, Status: StatusNew, FinishDate: earlier},
		},
	})
	be.NilErr(t, err)

	_, err = s.AddTransaction(CreateTransactionRequest{
		CustomerID: "c2",
		BillDetails: []BillDetailParams{
			{InvoiceID: "2", Product: ProductRef{ID: "p2"}, Qty: 1, PaymentStatus: Unpaid, Status: StatusNew, FinishDate: later},
		},
	})
	be.NilErr(t, err)

	rows := s.Transactions()
	be.Equal(t, 2, len(rows))
	// most recent finish date first
	be.Equal(t, "2", rows[0].InvoiceID)
	be.Equal(t, "1", rows[1].InvoiceID)
}

func TestOpenRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "laundry.json")

	s, err := Open(path)
	be.NilErr(t, err)

	row, err := s.AddTransaction(CreateTransactionRequest{
		CustomerID: "c3",
		BillDetails: []BillDetailParams{
			{
				InvoiceID:     "21",
				Product:       ProductRef{ID: "p2"},
				Qty:           5,
				PaymentStatus: Unpaid,
				Status:        StatusInProgress,
				FinishDate:    testFinishDate(t, "2026-09-04"),
			},
		},
	})
	be.NilErr(t, err)

	// the write above must have persisted the snapshot
	_, err = os.Stat(path)
	be.NilErr(t, err)

	reopened, err := Open(path)
	be.NilErr(t, err)

	got, err := reopened.Transaction(row.ID)
	be.NilErr(t, err)
	be.Equal(t, "21", got.InvoiceID)
	be.Equal(t, int64(50000), got.Price)
	be.Equal(t, StatusInProgress, got.Status)
	be.Equal(t, "Sari Wulandari", got.CustomerName)
}
