package main

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
)

type keyMap struct {
	transactions key.Binding
	customers    key.Binding
	packages     key.Binding
	overview     key.Binding
	config       key.Binding
	escape       key.Binding
	fullHelp     key.Binding
	quit         key.Binding
}

func (km keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		km.transactions,
		km.customers,
		km.packages,
		km.overview,
		km.quit,
		km.fullHelp,
	}
}

func (km keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{
			km.transactions,
			km.customers,
			km.packages,
			km.overview,
		},
		{
			km.config,
			km.escape,
			km.quit,
			km.fullHelp,
		},
	}
}

func initializeKeyMap() keyMap {
	return keyMap{
		transactions: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "transactions"),
		),
		customers: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "customers"),
		),
		packages: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "packages"),
		),
		overview: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "overview"),
		),
		config: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "configuration"),
		),
		escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "escape"),
		),
		fullHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func handleKeyPress(msg tea.KeyMsg, m *model) (tea.Model, tea.Cmd) {
	log.Debug("key pressed", "key", msg.String())

	// Handle special keys first
	if model, cmd := handleSpecialKeys(msg, m); cmd != nil {
		return model, cmd
	}

	// Check if input is blocked by an active form or filter
	if isInputBlocked(m) {
		return m, nil
	}

	// Handle session state changes
	if model, cmd := handleSessionStateKeys(msg, m); cmd != nil {
		return model, cmd
	}

	return m, nil
}

func handleSpecialKeys(msg tea.KeyMsg, m *model) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.quit) && m.sessionState != transactionModal {
		return m, tea.Quit
	}

	if key.Matches(msg, m.keys.escape) {
		return handleEscape(m)
	}

	return m, nil
}

func isInputBlocked(m *model) bool {
	if m.transactions.FilterState() == list.Filtering {
		return true
	}

	if m.transactionForm != nil && m.transactionForm.form.State == huh.StateNormal {
		return true
	}

	if m.sessionState == loading {
		return true
	}

	return false
}

func handleSessionStateKeys(msg tea.KeyMsg, m *model) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.transactions):
		if m.sessionState != transactions {
			m.previousSessionState = m.sessionState
			m.sessionState = transactions
			return m, m.getTransactions
		}

	case key.Matches(msg, m.keys.customers):
		if m.sessionState != customersState {
			m.previousSessionState = m.sessionState
			m.customersView.SetFocus(true)
			m.sessionState = customersState
			return m, m.getReferenceData
		}

	case key.Matches(msg, m.keys.packages):
		if m.sessionState != packagesState {
			m.previousSessionState = m.sessionState
			m.packagesView.SetFocus(true)
			m.sessionState = packagesState
			return m, m.getReferenceData
		}

	case key.Matches(msg, m.keys.overview):
		if m.sessionState != overviewState {
			m.previousSessionState = m.sessionState
			m.sessionState = overviewState
			return m, m.getTransactions
		}

	case key.Matches(msg, m.keys.config):
		if m.sessionState != configView {
			m.previousSessionState = m.sessionState
			m.configView.SetFocus(true)
			m.sessionState = configView
			return m, tea.WindowSize()
		}

	case key.Matches(msg, m.keys.fullHelp):
		if m.sessionState != transactions {
			m.help.ShowAll = !m.help.ShowAll
			return m, tea.WindowSize()
		}
	}

	return m, nil
}

// handleEscape closes the transaction modal if it is open, otherwise
// falls back to the transactions list.
func handleEscape(m *model) (tea.Model, tea.Cmd) {
	if m.sessionState == transactionModal && m.transactionForm != nil {
		log.Debug("handling escape in transaction form")
		m.transactionForm.form.State = huh.StateAborted
		m.transactionForm.close()
		m.transactionForm = nil
		m.previousSessionState = m.sessionState
		m.sessionState = transactions
		return m, m.getTransactions
	}

	if m.sessionState == transactions && m.transactions.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.transactions, cmd = m.transactions.Update(tea.KeyMsg{Type: tea.KeyEsc})
		return m, cmd
	}

	m.previousSessionState = m.sessionState
	m.sessionState = transactions
	return m, nil
}
