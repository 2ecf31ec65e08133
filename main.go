package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/adrianhalim/laundrytui/config"
	"github.com/adrianhalim/laundrytui/laundry"
)

func main() {
	Execute()
}

// rootAction starts the TUI program.
func rootAction(ctx context.Context, cfg config.Config, store *laundry.Store) error {
	m := newModel(cfg, store)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run program: %w", err)
	}

	return nil
}
