package main

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/adrianhalim/laundrytui/laundry"
)

func (m model) newItemDelegate(keys *delegateKeyMap) list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.Styles.SelectedTitle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.AdaptiveColor{Light: string(m.theme.Primary), Dark: string(m.theme.Primary)}).
		Foreground(lipgloss.AdaptiveColor{Light: string(m.theme.Primary), Dark: string(m.theme.Primary)}).
		Padding(0, 0, 0, 1)

	d.Styles.SelectedDesc = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: string(m.theme.Primary), Dark: string(m.theme.Primary)})

	d.UpdateFunc = func(msg tea.Msg, listModel *list.Model) tea.Cmd {
		if msg, ok := msg.(tea.KeyMsg); ok {
			if key.Matches(msg, keys.markPaid) || key.Matches(msg, keys.markUnpaid) {
				return updatePaymentStatus(msg, keys, listModel, m)
			}
		}

		return nil
	}

	help := []key.Binding{keys.markPaid, keys.markUnpaid}

	d.ShortHelpFunc = func() []key.Binding {
		return help
	}

	d.FullHelpFunc = func() [][]key.Binding {
		return [][]key.Binding{help}
	}

	return d
}

func updatePaymentStatus(msg tea.KeyMsg, keys *delegateKeyMap, listModel *list.Model, m model) tea.Cmd {
	status := laundry.Paid
	if key.Matches(msg, keys.markUnpaid) {
		status = laundry.Unpaid
	}

	ti, isValidTransactionItem := listModel.SelectedItem().(transactionItem)
	if !isValidTransactionItem {
		return nil
	}

	return m.setPaymentStatus(ti.row, status)
}

type delegateKeyMap struct {
	markPaid   key.Binding
	markUnpaid key.Binding
}

func (d delegateKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		d.markPaid,
		d.markUnpaid,
	}
}

func (d delegateKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{
			d.markPaid,
			d.markUnpaid,
		},
	}
}

func newDelegateKeyMap() *delegateKeyMap {
	return &delegateKeyMap{
		markPaid: key.NewBinding(
			key.WithKeys("P"),
			key.WithHelp("<shift-p>", "mark paid"),
		),
		markUnpaid: key.NewBinding(
			key.WithKeys("U"),
			key.WithHelp("<shift-u>", "mark unpaid"),
		),
	}
}
