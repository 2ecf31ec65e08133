package main

import (
	"testing"
	"time"

	"github.com/carlmjohnson/be"

	"github.com/adrianhalim/laundrytui/laundry"
)

func TestTransactionItemTitle(t *testing.T) {
	tests := []struct {
		name     string
		row      laundry.TransactionRow
		expected string
	}{
		{
			name: "basic row",
			row: laundry.TransactionRow{
				CustomerName: "Ratna Dewi",
				InvoiceID:    "7",
			},
			expected: "Ratna Dewi (inv 7)",
		},
		{
			name: "empty customer",
			row: laundry.TransactionRow{
				InvoiceID: "12",
			},
			expected: " (inv 12)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := transactionItem{row: tt.row}
			be.Equal(t, tt.expected, item.Title())
		})
	}
}

func TestTransactionItemDescription(t *testing.T) {
	finish, err := time.ParseInLocation(finishDateLayout, "2026-09-01", time.Local)
	be.NilErr(t, err)

	item := transactionItem{row: laundry.TransactionRow{
		Product:       laundry.Package{ID: "p3", Name: "Express Wash", Price: 15000, Type: "kiloan"},
		Qty:           2,
		Price:         30000,
		PaymentStatus: laundry.Unpaid,
		Status:        laundry.StatusInProgress,
		FinishDate:    finish,
	}}

	expected := "2026-09-01 | Express Wash | x2 | Rp30.000 | unpaid | in-progress"
	be.Equal(t, expected, item.Description())
}

func TestTransactionItemFilterValue(t *testing.T) {
	item := transactionItem{row: laundry.TransactionRow{
		CustomerName: "Budi Santoso",
		InvoiceID:    "12",
		Status:       laundry.StatusDone,
	}}

	be.Equal(t, "Budi Santoso 12 done", item.FilterValue())
}

func TestNewTransactionListKeyMap(t *testing.T) {
	keyMap := newTransactionListKeyMap()

	// Test that all key bindings are initialized
	be.Nonzero(t, keyMap.insertTransaction)
	be.Nonzero(t, keyMap.editTransaction)
	be.Nonzero(t, keyMap.refreshTransactions)

	// Test key bindings have expected keys
	be.Equal(t, "n", keyMap.insertTransaction.Keys()[0])
	be.Equal(t, "e", keyMap.editTransaction.Keys()[0])
	be.Equal(t, "r", keyMap.refreshTransactions.Keys()[0])
}
