package overview

import (
	"strings"
	"testing"
	"time"

	"github.com/carlmjohnson/be"

	"github.com/adrianhalim/laundrytui/laundry"
)

func testRows() []laundry.TransactionRow {
	finish := time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)

	return []laundry.TransactionRow{
		{
			ID:            "t1",
			CustomerName:  "Ratna Dewi",
			InvoiceID:     "1",
			Product:       laundry.Package{ID: "p1", Name: "Wash & Fold", Price: 7000, Type: "kiloan"},
			Qty:           3,
			Price:         21000,
			PaymentStatus: laundry.Paid,
			Status:        laundry.StatusDone,
			FinishDate:    finish,
		},
		{
			ID:            "t2",
			CustomerName:  "Budi Santoso",
			InvoiceID:     "2",
			Product:       laundry.Package{ID: "p4", Name: "Bed Cover", Price: 35000, Type: "satuan"},
			Qty:           1,
			Price:         35000,
			PaymentStatus: laundry.Unpaid,
			Status:        laundry.StatusNew,
			FinishDate:    finish,
		},
		{
			ID:            "t3",
			CustomerName:  "Ratna Dewi",
			InvoiceID:     "3",
			Product:       laundry.Package{ID: "p1", Name: "Wash & Fold", Price: 7000, Type: "kiloan"},
			Qty:           2,
			Price:         14000,
			PaymentStatus: laundry.Unpaid,
			Status:        laundry.StatusInProgress,
			FinishDate:    finish,
		},
	}
}

func TestSetTransactionsSummary(t *testing.T) {
	m := New()
	m.SetTransactions(testRows())

	be.Equal(t, "Rp21.000", m.summary.collected.Display())
	be.Equal(t, "Rp49.000", m.summary.outstanding.Display())
	be.Equal(t, "Rp70.000", m.summary.total.Display())
}

func TestSetTransactionsEmpty(t *testing.T) {
	m := New()
	m.SetTransactions(nil)

	be.Equal(t, "Rp0", m.summary.collected.Display())
	be.Equal(t, "Rp0", m.summary.outstanding.Display())
	be.True(t, m.calculatePackageBreakdown() == nil)
}

func TestPackageBreakdownSorted(t *testing.T) {
	m := New()
	m.SetTransactions(testRows())

	rows := m.calculatePackageBreakdown()
	be.Equal(t, 2, len(rows))

	// largest revenue first: Wash & Fold 35.000 and Bed Cover 35.000
	// tie broken by name
	be.Equal(t, "Bed Cover", rows[0][0])
	be.Equal(t, "Rp35.000", rows[0][1])
	be.Equal(t, "Wash & Fold", rows[1][0])
	be.Equal(t, "Rp35.000", rows[1][1])
}

func TestHeaderCountsRows(t *testing.T) {
	m := New()
	m.SetTransactions(testRows())

	be.Equal(t, "Overview - 3 transactions", m.headerView())
}

func TestViewRendersStatusCounts(t *testing.T) {
	m := New()
	m.SetSize(200, 40)
	m.SetTransactions(testRows())

	view := m.View()
	be.True(t, strings.Contains(view, "Collected"))
	be.True(t, strings.Contains(view, "Outstanding"))
}
