package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/feedbackhub/internal/gateway"
	"github.com/muurk/feedbackhub/internal/navigator"
)

// Messages delivered when a navigator transition finishes. The navigator
// already holds the resulting state; err is only used to adjust widgets.
type (
	loadedMsg            struct{ err error }
	feedbackLoadedMsg    struct{ err error }
	feedbackSubmittedMsg struct{ err error }
	categoryCreatedMsg   struct {
		category gateway.Category
		err      error
	}
)

func loadCmd(ctx context.Context, nav *navigator.Navigator) tea.Cmd {
	return func() tea.Msg {
		return loadedMsg{err: nav.Load(ctx)}
	}
}

func selectItemCmd(ctx context.Context, nav *navigator.Navigator, item gateway.Item) tea.Cmd {
	return func() tea.Msg {
		return feedbackLoadedMsg{err: nav.SelectItem(ctx, item)}
	}
}

func submitFeedbackCmd(ctx context.Context, nav *navigator.Navigator, rating int, comment string) tea.Cmd {
	return func() tea.Msg {
		return feedbackSubmittedMsg{err: nav.SubmitFeedback(ctx, rating, comment)}
	}
}

func createCategoryCmd(ctx context.Context, nav *navigator.Navigator, name string) tea.Cmd {
	return func() tea.Msg {
		created, err := nav.CreateCategory(ctx, name)
		return categoryCreatedMsg{category: created, err: err}
	}
}
