package main

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/adrianhalim/laundrytui/laundry"
)

// customersModel renders the customer roster as a scrollable table.
type customersModel struct {
	customerTable table.Model
}

func newCustomersModel() customersModel {
	customerTable := table.New(
		table.WithColumns([]table.Column{
			{Title: "Name", Width: 25},
			{Title: "Phone", Width: 18},
			{Title: "Address", Width: 40},
		}),
	)

	tableStyle := table.DefaultStyles()
	tableStyle.Selected = tableStyle.Selected.
		Foreground(lipgloss.Color("#25c9d4"))

	customerTable.SetStyles(tableStyle)

	return customersModel{customerTable: customerTable}
}

func (m *customersModel) SetFocus(focus bool) {
	if focus {
		m.customerTable.Focus()
	} else {
		m.customerTable.Blur()
	}
}

func (m *customersModel) SetSize(width, height int) {
	m.customerTable.SetHeight(height)
	m.customerTable.SetWidth(width)
}

func (m *customersModel) SetCustomers(customers []laundry.Customer) {
	rows := make([]table.Row, len(customers))
	for i, c := range customers {
		rows[i] = table.Row{c.Name, c.PhoneNumber, c.Address}
	}

	m.customerTable.SetRows(rows)
}

func (m customersModel) Update(msg tea.Msg) (customersModel, tea.Cmd) {
	var cmd tea.Cmd
	m.customerTable, cmd = m.customerTable.Update(msg)
	return m, cmd
}

func (m customersModel) View() string {
	return m.customerTable.View()
}
