package main

const standardMargin = 2

// Session states
type sessionState int

const (
	transactions sessionState = iota
	transactionModal
	customersState
	packagesState
	overviewState
	configView
	loading
	errorState
)

func (ss sessionState) String() string {
	switch ss {
	case transactions:
		return "transactions"
	case transactionModal:
		return "transaction form"
	case customersState:
		return "customers"
	case packagesState:
		return "packages"
	case overviewState:
		return "overview"
	case configView:
		return "configuration"
	case loading:
		return "loading"
	case errorState:
		return "error"
	}

	return "unknown"
}
