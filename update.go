package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"

	"github.com/adrianhalim/laundrytui/laundry"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// always check for key presses first
	if msg, ok := msg.(tea.KeyMsg); ok {
		if model, cmd := handleKeyPress(msg, &m); cmd != nil {
			log.Debug("key press handled, cmd returned")
			return model, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case spinner.TickMsg:
		return m.handleSpinnerTick(msg)

	case getReferenceDataMsg:
		return m.handleGetReferenceData(msg)

	case getTransactionsMsg:
		return m.handleGetTransactions(msg)

	case transactionSavedMsg:
		return m.handleTransactionSaved(msg)

	case paymentUpdatedMsg:
		if msg.err != nil {
			return m, m.transactions.NewStatusMessage(
				fmt.Sprintf("Error updating payment: %s", msg.err.Error()),
			)
		}
		return m, tea.Batch(m.getTransactions, m.transactions.NewStatusMessage(
			fmt.Sprintf("Marked %s for %s", msg.row.PaymentStatus, msg.row.CustomerName),
		))
	}

	var cmd tea.Cmd
	switch m.sessionState {
	case transactions:
		return updateTransactions(msg, m)

	case transactionModal:
		return updateTransactionModal(msg, &m)

	case customersState:
		m.customersView, cmd = m.customersView.Update(msg)
		return m, cmd

	case packagesState:
		m.packagesView, cmd = m.packagesView.Update(msg)
		return m, cmd

	case overviewState:
		m.overview, cmd = m.overview.Update(msg)
		return m, cmd

	case configView:
		m.configView, cmd = m.configView.Update(msg)
		return m, cmd

	case loading:
		m.loadingSpinner, cmd = m.loadingSpinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// updateTransactionModal drives the create/edit form. When the form
// completes, the save is dispatched fire-and-forget and the modal closes
// immediately; the store's outcome arrives later as a status message.
func updateTransactionModal(msg tea.Msg, m *model) (tea.Model, tea.Cmd) {
	form, cmd := m.transactionForm.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.transactionForm.form = f
	} else {
		log.Debug("transaction form did not return a form")
		return m, nil
	}

	// keep the derived total in sync with package and qty edits
	m.transactionForm.refreshPrice()

	switch m.transactionForm.form.State {
	case huh.StateCompleted:
		tf := m.transactionForm
		saveCmd := m.saveTransaction(tf)
		tf.close()
		m.transactionForm = nil
		m.sessionState = transactions
		return m, saveCmd

	case huh.StateAborted:
		m.transactionForm.close()
		m.transactionForm = nil
		m.sessionState = transactions
		return m, nil
	}

	return m, cmd
}

// openTransactionModal mounts the form with snapshots of the current
// customer and package lists. A nil row opens it in create mode.
func openTransactionModal(m *model, existing *laundry.TransactionRow) (tea.Model, tea.Cmd) {
	m.transactionForm = newTransactionForm(m.customers, m.packages, existing, func() {
		log.Debug("transaction form closed")
	})

	m.previousSessionState = m.sessionState
	m.sessionState = transactionModal
	return m, tea.Batch(m.transactionForm.form.Init(), tea.WindowSize())
}
