// Package overview renders a summary widget of the shop's transactions:
// money collected, money outstanding, and a per-package revenue breakdown.
package overview

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/adrianhalim/laundrytui/laundry"
)

var titleCaser = cases.Title(language.English)

// Model defines the state for the overview widget.
type Model struct {
	Styles       Styles
	Viewport     viewport.Model
	summary      Summary
	transactions []laundry.TransactionRow
	statusTree   *tree.Tree
}

// Summary aggregates the transaction rows by payment status.
type Summary struct {
	collected   money.Money
	outstanding money.Money
	total       money.Money
}

type Styles struct {
	PaidStyle     lipgloss.Style
	UnpaidStyle   lipgloss.Style
	TreeRootStyle lipgloss.Style
	StatusStyle   lipgloss.Style
	DetailStyle   lipgloss.Style
	SummaryStyle  lipgloss.Style
}

func defaultStyles() Styles {
	return Styles{
		PaidStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff00")),
		UnpaidStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000")),
		TreeRootStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("#828282")),
		StatusStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("#bbbbbb")),
		DetailStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("#d29b1d")),

		SummaryStyle: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
	}
}

type Option func(*Model)

func WithSummary(s Summary) Option {
	return func(m *Model) {
		m.summary = s
	}
}

func New(opts ...Option) Model {
	m := Model{
		Styles:   defaultStyles(),
		Viewport: viewport.New(0, 20),
		summary: Summary{
			// setting them to 0 so that the currency is set,
			// otherwise it's nil and blows up
			collected:   *money.New(0, money.IDR),
			outstanding: *money.New(0, money.IDR),
			total:       *money.New(0, money.IDR),
		},
	}

	for _, opt := range opts {
		opt(&m)
	}

	m.UpdateViewport()

	return m
}

// SetTransactions replaces the rows backing the summary.
func (m *Model) SetTransactions(rows []laundry.TransactionRow) {
	m.transactions = rows
	m.updateSummary()
	m.updateStatusTree()
	m.UpdateViewport()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.Viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.Viewport.Width = width
	m.Viewport.Height = height
}

func (m *Model) UpdateViewport() {
	statusContent := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2).
		Render(m.statusTreeString())

	packageBreakdown := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2).
		Render(
			lipgloss.JoinVertical(lipgloss.Top,
				lipgloss.NewStyle().Bold(true).Render("Revenue by Package"),
				table.New(
					table.WithColumns([]table.Column{
						{Title: "Package", Width: 20},
						{Title: "Revenue", Width: 15},
						{Title: "% of Total", Width: 10},
					}),
					table.WithRows(m.calculatePackageBreakdown()),
				).View(),
			),
		)

	mainContent := lipgloss.JoinHorizontal(lipgloss.Top,
		m.summaryView(),
		statusContent,
		packageBreakdown,
	)

	m.Viewport.SetContent(
		lipgloss.JoinVertical(lipgloss.Top,
			m.headerView(),
			mainContent,
		),
	)
}

func (m *Model) headerView() string {
	return fmt.Sprintf("Overview - %d transactions", len(m.transactions))
}

func (m Model) summaryView() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Collected: %s\n", m.Styles.PaidStyle.Render(m.summary.collected.Display())))
	b.WriteString(fmt.Sprintf("Outstanding: %s\n", m.Styles.UnpaidStyle.Render(m.summary.outstanding.Display())))
	b.WriteString(fmt.Sprintf("Total: %s", m.summary.total.Display()))

	return m.Styles.SummaryStyle.Render(b.String())
}

func (m *Model) updateSummary() {
	var collected, outstanding = money.New(0, money.IDR), money.New(0, money.IDR)

	for _, row := range m.transactions {
		amount := money.New(row.Price, money.IDR)

		if row.PaymentStatus == laundry.Paid {
			collected, _ = collected.Add(amount)
		} else {
			outstanding, _ = outstanding.Add(amount)
		}
	}

	total, _ := collected.Add(outstanding)

	m.summary = Summary{collected: *collected, outstanding: *outstanding, total: *total}
}

// calculatePackageBreakdown sums revenue per package, sorted descending.
func (m *Model) calculatePackageBreakdown() []table.Row {
	if m.summary.total.IsZero() {
		return nil
	}

	packageTotals := make(map[string]*money.Money)

	for _, row := range m.transactions {
		amount := money.New(row.Price, money.IDR)

		if _, exists := packageTotals[row.Product.Name]; !exists {
			packageTotals[row.Product.Name] = money.New(0, money.IDR)
		}

		packageTotals[row.Product.Name], _ = packageTotals[row.Product.Name].Add(amount)
	}

	type packageTotal struct {
		name  string
		total *money.Money
	}

	totals := make([]packageTotal, 0, len(packageTotals))
	for name, total := range packageTotals {
		totals = append(totals, packageTotal{name: name, total: total})
	}

	slices.SortFunc(totals, func(a, b packageTotal) int {
		switch {
		case a.total.Amount() > b.total.Amount():
			return -1
		case a.total.Amount() < b.total.Amount():
			return 1
		}
		return strings.Compare(a.name, b.name)
	})

	var rows []table.Row
	for _, pt := range totals {
		percentage := float64(pt.total.Amount()) / float64(m.summary.total.Amount()) * 100
		rows = append(rows, table.Row{pt.name, pt.total.Display(), fmt.Sprintf("%.2f%%", percentage)})
	}

	return rows
}

func (m *Model) updateStatusTree() {
	statusTree := tree.New().Root(m.Styles.TreeRootStyle.Render("Workflow"))

	counts := make(map[laundry.Status]int)
	for _, row := range m.transactions {
		counts[row.Status]++
	}

	for _, status := range laundry.Statuses() {
		if counts[status] == 0 {
			continue
		}

		label := titleCaser.String(string(status))
		statusTree.Child(fmt.Sprintf("%s (%d)",
			m.Styles.StatusStyle.Render(label),
			counts[status],
		))
	}

	m.statusTree = statusTree
}

func (m *Model) statusTreeString() string {
	if m.statusTree == nil {
		return m.Styles.TreeRootStyle.Render("Workflow")
	}

	return m.statusTree.String()
}
