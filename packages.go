package main

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/adrianhalim/laundrytui/laundry"
)

var packageTypeCaser = cases.Title(language.English)

// packagesModel renders the service package catalog as a table.
type packagesModel struct {
	packageTable table.Model
}

func newPackagesModel() packagesModel {
	packageTable := table.New(
		table.WithColumns([]table.Column{
			{Title: "Package", Width: 25},
			{Title: "Unit Price", Width: 15},
			{Title: "Type", Width: 12},
		}),
	)

	tableStyle := table.DefaultStyles()
	tableStyle.Selected = tableStyle.Selected.
		Foreground(lipgloss.Color("#25c9d4"))

	packageTable.SetStyles(tableStyle)

	return packagesModel{packageTable: packageTable}
}

func (m *packagesModel) SetFocus(focus bool) {
	if focus {
		m.packageTable.Focus()
	} else {
		m.packageTable.Blur()
	}
}

func (m *packagesModel) SetSize(width, height int) {
	m.packageTable.SetHeight(height)
	m.packageTable.SetWidth(width)
}

func (m *packagesModel) SetPackages(packages []laundry.Package) {
	rows := make([]table.Row, len(packages))
	for i, p := range packages {
		rows[i] = table.Row{p.Name, laundry.Rupiah(p.Price), packageTypeCaser.String(p.Type)}
	}

	m.packageTable.SetRows(rows)
}

func (m packagesModel) Update(msg tea.Msg) (packagesModel, tea.Cmd) {
	var cmd tea.Cmd
	m.packageTable, cmd = m.packageTable.Update(msg)
	return m, cmd
}

func (m packagesModel) View() string {
	return m.packageTable.View()
}
