package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/feedbackhub/internal/navigator"
)

// Run starts the interactive browser and blocks until the user quits.
// Quitting cancels the context passed to in-flight requests.
func Run(ctx context.Context, nav *navigator.Navigator) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(
		NewAppModel(ctx, cancel, nav),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run browser: %w", err)
	}
	return nil
}
