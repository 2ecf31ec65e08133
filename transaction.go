package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/adrianhalim/laundrytui/laundry"
)

type transactionItem struct {
	row laundry.TransactionRow
}

func (t transactionItem) Title() string {
	return fmt.Sprintf("%s (inv %s)", t.row.CustomerName, t.row.InvoiceID)
}

func (t transactionItem) Description() string {
	return fmt.Sprintf("%s | %s | x%d | %s | %s | %s",
		t.row.FinishDate.Format(finishDateLayout),
		t.row.Product.Name,
		t.row.Qty,
		laundry.Rupiah(t.row.Price),
		t.row.PaymentStatus,
		t.row.Status,
	)
}

func (t transactionItem) FilterValue() string {
	return fmt.Sprintf("%s %s %s", t.row.CustomerName, t.row.InvoiceID, t.row.Status)
}

type transactionListKeyMap struct {
	insertTransaction   key.Binding
	editTransaction     key.Binding
	refreshTransactions key.Binding
}

func newTransactionListKeyMap() *transactionListKeyMap {
	return &transactionListKeyMap{
		insertTransaction: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new transaction"),
		),
		editTransaction: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit transaction"),
		),
		refreshTransactions: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
	}
}

func updateTransactions(msg tea.Msg, m model) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		// if the list is filtering, don't process key events
		if m.transactions.FilterState() != list.Filtering {
			switch {
			case key.Matches(msg, m.transactionsListKeys.insertTransaction):
				return openTransactionModal(&m, nil)

			case key.Matches(msg, m.transactionsListKeys.editTransaction):
				item, ok := m.transactions.SelectedItem().(transactionItem)
				if !ok {
					return m, nil
				}
				row := item.row
				return openTransactionModal(&m, &row)

			case key.Matches(msg, m.transactionsListKeys.refreshTransactions):
				return m, m.getTransactions
			}
		}
	}

	var cmd tea.Cmd
	m.transactions, cmd = m.transactions.Update(msg)

	return m, cmd
}

func transactionsView(m model) string {
	return m.transactions.View()
}
