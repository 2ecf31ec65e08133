package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/adrianhalim/laundrytui/laundry"
)

// Message types for store responses.
type (
	getReferenceDataMsg struct {
		customers []laundry.Customer
		packages  []laundry.Package
	}

	getTransactionsMsg struct {
		rows []laundry.TransactionRow
	}

	transactionSavedMsg struct {
		row     laundry.TransactionRow
		created bool
		err     error
	}

	paymentUpdatedMsg struct {
		row laundry.TransactionRow
		err error
	}
)

// Message handlers.
func (m model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	h, v := m.styles.docStyle.GetFrameSize()

	takenHeight := 5
	m.transactions.SetSize(msg.Width-h, msg.Height-v-takenHeight)
	m.customersView.SetSize(msg.Width-h, msg.Height-v-takenHeight)
	m.packagesView.SetSize(msg.Width-h, msg.Height-v-takenHeight)
	m.configView.SetSize(msg.Width-h, msg.Height-v-takenHeight)

	m.overview.SetSize(msg.Width-h, msg.Height-v-takenHeight)
	m.overview.Viewport.Width = msg.Width
	m.overview.Viewport.Height = msg.Height - takenHeight

	m.help.Width = msg.Width

	if m.transactionForm != nil {
		m.transactionForm.form = m.transactionForm.form.
			WithHeight(msg.Height - takenHeight).
			WithWidth(msg.Width)
	}

	return m, nil
}

func (m model) handleSpinnerTick(msg spinner.TickMsg) (tea.Model, tea.Cmd) {
	if m.sessionState != loading {
		return m, nil
	}

	var cmd tea.Cmd
	m.loadingSpinner, cmd = m.loadingSpinner.Update(msg)
	return m, cmd
}

func (m model) handleGetReferenceData(msg getReferenceDataMsg) (tea.Model, tea.Cmd) {
	m.customers = msg.customers
	m.packages = msg.packages

	m.customersView.SetCustomers(msg.customers)
	m.packagesView.SetPackages(msg.packages)

	m.loadingState.set("reference")
	m.sessionState = m.checkIfLoading()

	return m, nil
}

func (m model) handleGetTransactions(msg getTransactionsMsg) (tea.Model, tea.Cmd) {
	items := make([]list.Item, len(msg.rows))
	for i, row := range msg.rows {
		items[i] = transactionItem{row: row}
	}

	cmd := m.transactions.SetItems(items)
	m.overview.SetTransactions(msg.rows)

	m.loadingState.set("transactions")
	m.sessionState = m.checkIfLoading()

	return m, cmd
}

func (m model) handleTransactionSaved(msg transactionSavedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		log.Error("failed to save transaction", "error", msg.err)
		return m, m.transactions.NewStatusMessage(
			fmt.Sprintf("Error saving transaction: %s", msg.err.Error()),
		)
	}

	verb := "updated"
	if msg.created {
		verb = "created"
	}

	return m, tea.Batch(m.getTransactions, m.transactions.NewStatusMessage(
		fmt.Sprintf("Transaction %s for %s", verb, msg.row.CustomerName),
	))
}

// Store read commands.
func (m model) getReferenceData() tea.Msg {
	return getReferenceDataMsg{
		customers: m.store.Customers(),
		packages:  m.store.Packages(),
	}
}

func (m model) getTransactions() tea.Msg {
	return getTransactionsMsg{rows: m.store.Transactions()}
}

// saveTransaction dispatches the create or update request assembled by
// the form. The caller closes the modal without waiting on the result.
func (m model) saveTransaction(tf *transactionForm) tea.Cmd {
	return func() tea.Msg {
		if tf.editing() {
			req := tf.updateRequest()
			log.Debug("updating transaction", "bill_id", req.ID)
			row, err := m.store.UpdateTransaction(req)
			return transactionSavedMsg{row: row, created: false, err: err}
		}

		req := tf.createRequest()
		log.Debug("adding transaction", "customer_id", req.CustomerID)
		row, err := m.store.AddTransaction(req)
		return transactionSavedMsg{row: row, created: true, err: err}
	}
}

// setPaymentStatus flips one bill detail between paid and unpaid.
func (m model) setPaymentStatus(row laundry.TransactionRow, ps laundry.PaymentStatus) tea.Cmd {
	return func() tea.Msg {
		updated, err := m.store.SetPaymentStatus(row.ID, ps)
		return paymentUpdatedMsg{row: updated, err: err}
	}
}
