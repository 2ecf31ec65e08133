package main

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/adrianhalim/laundrytui/config"
	"github.com/adrianhalim/laundrytui/laundry"
	"github.com/adrianhalim/laundrytui/overview"
)

type model struct {
	keys   keyMap
	help   help.Model
	theme  Theme
	styles styles

	// loadingSpinner is shown while the initial data sets load
	loadingSpinner spinner.Model
	loadingState   loadingState

	sessionState         sessionState
	previousSessionState sessionState
	errorMsg             string

	// store owns the customer, package, and bill collections
	store *laundry.Store

	// customers and packages are read-only snapshots refreshed from the
	// store; the transaction form receives them by injection
	customers []laundry.Customer
	packages  []laundry.Package

	// transactions is a bubbletea list model of bill details
	transactions         list.Model
	transactionsListKeys *transactionListKeyMap
	// transactionForm is non-nil only while the modal is open
	transactionForm *transactionForm

	customersView customersModel
	packagesView  packagesModel
	overview      overview.Model
	configView    config.Model
}

func newModel(cfg config.Config, store *laundry.Store) model {
	theme := newTheme(cfg.Colors)

	m := model{
		keys:                 initializeKeyMap(),
		help:                 createHelpModel(theme),
		theme:                theme,
		styles:               createStyles(theme),
		loadingSpinner:       spinner.New(spinner.WithSpinner(spinner.Dot)),
		loadingState:         newLoadingState("reference", "transactions"),
		sessionState:         loading,
		previousSessionState: loading,
		store:                store,
		transactionsListKeys: newTransactionListKeyMap(),
		customersView:        newCustomersModel(),
		packagesView:         newPackagesModel(),
		overview:             overview.New(),
		configView:           config.NewView(),
	}

	m.configView.SetConfig(cfg)

	delegate := m.newItemDelegate(newDelegateKeyMap())
	transactionList := list.New([]list.Item{}, delegate, 0, 0)
	transactionList.SetShowTitle(false)
	transactionList.StatusMessageLifetime = 3 * time.Second
	transactionList.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{
			m.transactionsListKeys.insertTransaction,
			m.transactionsListKeys.editTransaction,
			m.transactionsListKeys.refreshTransactions,
		}
	}
	m.transactions = transactionList

	return m
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		m.getReferenceData,
		m.getTransactions,
		m.loadingSpinner.Tick,
	)
}

func (m model) checkIfLoading() sessionState {
	if loaded, missing := m.loadingState.allLoaded(); !loaded {
		log.Debug("still loading", "waiting_on", missing)
		return loading
	}

	if m.previousSessionState != loading {
		return m.previousSessionState
	}

	return transactions
}
