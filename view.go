package main

import (
	"fmt"
	"strings"
)

func (m model) View() string {
	var b strings.Builder

	b.WriteString(m.renderTitle())
	b.WriteString("\n\n")

	switch m.sessionState {
	case overviewState:
		b.WriteString(m.overview.View())
	case transactions:
		b.WriteString(transactionsView(m))
	case transactionModal:
		b.WriteString(transactionModalView(m))
	case customersState:
		b.WriteString(m.customersView.View())
	case packagesState:
		b.WriteString(m.packagesView.View())
	case configView:
		b.WriteString(m.configView.View())
	case loading:
		b.WriteString(fmt.Sprintf("%s Loading data...", m.loadingSpinner.View()))
	case errorState:
		b.WriteString(m.styles.errorStyle.Render(fmt.Sprintf("%s - 'q' to quit", m.errorMsg)))
		return m.styles.docStyle.Render(b.String())
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return m.styles.docStyle.Render(b.String())
}

// transactionModalView renders the form plus the running total so the
// price updates live as the package or quantity changes.
func transactionModalView(m model) string {
	if m.transactionForm == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.transactionForm.form.View())
	b.WriteString("\n")
	b.WriteString(m.styles.titleStyle.Render(
		fmt.Sprintf("Total: %s", m.transactionForm.totalDisplay()),
	))

	return b.String()
}

func (m model) renderTitle() string {
	return m.styles.titleStyle.Render(fmt.Sprintf("laundrytui | %s", m.sessionState.String()))
}
