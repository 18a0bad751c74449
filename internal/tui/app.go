package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/muurk/feedbackhub/internal/gateway"
	"github.com/muurk/feedbackhub/internal/logging"
	"github.com/muurk/feedbackhub/internal/navigator"
	"github.com/muurk/feedbackhub/internal/view"
)

// AppModel is the top-level Bubble Tea model. Browsing state lives in the
// navigator; the model only holds widget state.
type AppModel struct {
	ctx    context.Context
	cancel context.CancelFunc
	nav    *navigator.Navigator

	// Busy is true while a navigator transition runs in a command
	Busy bool

	// List cursors, kept separately so Back returns to the same row
	CategoryCursor int
	ItemCursor     int

	Focus         view.Focus
	CategoryInput textinput.Model
	RatingInput   textinput.Model
	CommentInput  textinput.Model
	FormMessage   string

	// UI state
	Width   int
	Height  int
	Spinner spinner.Model
	Help    help.Model
	Keys    keyMap
}

func newInput(placeholder string, limit, width int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = width
	ti.Prompt = "> "
	ti.Cursor.SetMode(cursor.CursorStatic)
	return ti
}

// NewAppModel creates the model. Init starts the initial load, so the model
// starts busy. cancel is called when the user quits.
func NewAppModel(ctx context.Context, cancel context.CancelFunc, nav *navigator.Navigator) AppModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(view.PrimaryColor)

	rating := newInput("1-10", 2, 6)
	rating.SetValue(strconv.Itoa(gateway.DefaultRating))

	return AppModel{
		ctx:           ctx,
		cancel:        cancel,
		nav:           nav,
		Busy:          true,
		Focus:         view.FocusList,
		CategoryInput: newInput("Electronics", 64, 40),
		RatingInput:   rating,
		CommentInput:  newInput("Write your feedback here...", 500, 60),
		Spinner:       s,
		Help:          help.New(),
		Keys:          newKeyMap(),
	}
}

// Init starts the initial load and the spinner
func (m AppModel) Init() tea.Cmd {
	return tea.Batch(loadCmd(m.ctx, m.nav), m.Spinner.Tick)
}

// Update handles all messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width - 4
		return m, nil

	case spinner.TickMsg:
		if !m.Busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case loadedMsg:
		m.Busy = false
		m.CategoryCursor = view.ClampCursor(m.CategoryCursor, len(m.nav.Snapshot().Categories))
		return m, nil

	case feedbackLoadedMsg:
		m.Busy = false
		return m, nil

	case feedbackSubmittedMsg:
		m.Busy = false
		if msg.err == nil {
			m.resetFeedbackForm()
			m.setFocus(view.FocusList)
		}
		return m, nil

	case categoryCreatedMsg:
		m.Busy = false
		if msg.err == nil {
			m.CategoryInput.Reset()
			m.FormMessage = ""
			m.setFocus(view.FocusList)
			logging.Debug("Category created from browser", zap.Int64("category_id", msg.category.ID))
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
		if m.Busy {
			return m, nil
		}
		if m.Focus != view.FocusList {
			return m.updateForm(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

func (m AppModel) quit() (tea.Model, tea.Cmd) {
	if m.cancel != nil {
		m.cancel()
	}
	return m, tea.Quit
}

// startTransition marks the model busy and runs cmd alongside the spinner
func (m AppModel) startTransition(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	m.Busy = true
	return m, tea.Batch(cmd, m.Spinner.Tick)
}

// updateList handles keys while no form field has focus
func (m AppModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	snap := m.nav.Snapshot()

	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m.quit()

	case key.Matches(msg, m.Keys.Help):
		m.Help.ShowAll = !m.Help.ShowAll
		return m, nil
	}

	switch snap.State() {
	case navigator.Browsing:
		return m.updateBrowsing(msg, snap)
	case navigator.CategorySelected:
		return m.updateCategory(msg, snap)
	case navigator.ItemSelected:
		return m.updateItem(msg)
	}
	return m, nil
}

func (m AppModel) updateBrowsing(msg tea.KeyMsg, snap navigator.Snapshot) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.Keys.Reload) {
		return m.startTransition(loadCmd(m.ctx, m.nav))
	}
	if !snap.Loaded {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.Keys.Up):
		m.CategoryCursor = view.ClampCursor(m.CategoryCursor-1, len(snap.Categories))

	case key.Matches(msg, m.Keys.Down):
		m.CategoryCursor = view.ClampCursor(m.CategoryCursor+1, len(snap.Categories))

	case key.Matches(msg, m.Keys.Select):
		if len(snap.Categories) == 0 {
			return m, nil
		}
		category := snap.Categories[view.ClampCursor(m.CategoryCursor, len(snap.Categories))]
		if err := m.nav.SelectCategory(category); err != nil {
			logging.Debug("Select category rejected", zap.Error(err))
			return m, nil
		}
		m.ItemCursor = 0
		m.FormMessage = ""

	case key.Matches(msg, m.Keys.Form):
		m.setFocus(view.FocusCategoryName)
	}

	return m, nil
}

func (m AppModel) updateCategory(msg tea.KeyMsg, snap navigator.Snapshot) (tea.Model, tea.Cmd) {
	items := snap.ItemsForSelectedCategory()

	switch {
	case key.Matches(msg, m.Keys.Up):
		m.ItemCursor = view.ClampCursor(m.ItemCursor-1, len(items))

	case key.Matches(msg, m.Keys.Down):
		m.ItemCursor = view.ClampCursor(m.ItemCursor+1, len(items))

	case key.Matches(msg, m.Keys.Select):
		if len(items) == 0 {
			return m, nil
		}
		item := items[view.ClampCursor(m.ItemCursor, len(items))]
		m.resetFeedbackForm()
		return m.startTransition(selectItemCmd(m.ctx, m.nav, item))

	case key.Matches(msg, m.Keys.Back):
		if err := m.nav.Back(); err != nil {
			logging.Debug("Back rejected", zap.Error(err))
		}
	}

	return m, nil
}

func (m AppModel) updateItem(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Form):
		m.setFocus(view.FocusRating)

	case key.Matches(msg, m.Keys.Back):
		if err := m.nav.Back(); err != nil {
			logging.Debug("Back rejected", zap.Error(err))
			return m, nil
		}
		m.resetFeedbackForm()
	}

	return m, nil
}

// updateForm handles keys while a form field has focus
func (m AppModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Cancel):
		m.FormMessage = ""
		m.setFocus(view.FocusList)
		return m, nil

	case key.Matches(msg, m.Keys.Submit):
		if m.Focus == view.FocusCategoryName {
			return m.submitCategory()
		}
		return m.submitFeedback()

	case key.Matches(msg, m.Keys.Next), key.Matches(msg, m.Keys.Prev):
		switch m.Focus {
		case view.FocusRating:
			m.setFocus(view.FocusComment)
		case view.FocusComment:
			m.setFocus(view.FocusRating)
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.Focus {
	case view.FocusCategoryName:
		m.CategoryInput, cmd = m.CategoryInput.Update(msg)
	case view.FocusRating:
		m.RatingInput, cmd = m.RatingInput.Update(msg)
	case view.FocusComment:
		m.CommentInput, cmd = m.CommentInput.Update(msg)
	}
	return m, cmd
}

// submitCategory validates locally so a blank name never reaches the
// navigator or the network.
func (m AppModel) submitCategory() (tea.Model, tea.Cmd) {
	name := m.CategoryInput.Value()
	if err := gateway.ValidateCategoryName(name); err != nil {
		m.FormMessage = gateway.ValidationMessage(err)
		return m, nil
	}

	m.FormMessage = ""
	return m.startTransition(createCategoryCmd(m.ctx, m.nav, name))
}

func (m AppModel) submitFeedback() (tea.Model, tea.Cmd) {
	rating, err := strconv.Atoi(strings.TrimSpace(m.RatingInput.Value()))
	if err != nil {
		m.FormMessage = gateway.MsgRatingOutOfRange
		return m, nil
	}

	comment := m.CommentInput.Value()
	if err := gateway.ValidateFeedbackInput(gateway.FeedbackInput{Rating: rating, Comment: comment}); err != nil {
		m.FormMessage = gateway.ValidationMessage(err)
		return m, nil
	}

	m.FormMessage = ""
	return m.startTransition(submitFeedbackCmd(m.ctx, m.nav, rating, comment))
}

func (m *AppModel) setFocus(f view.Focus) {
	m.Focus = f
	m.CategoryInput.Blur()
	m.RatingInput.Blur()
	m.CommentInput.Blur()

	switch f {
	case view.FocusCategoryName:
		m.CategoryInput.Focus()
	case view.FocusRating:
		m.RatingInput.Focus()
	case view.FocusComment:
		m.CommentInput.Focus()
	}
}

func (m *AppModel) resetFeedbackForm() {
	m.RatingInput.SetValue(strconv.Itoa(gateway.DefaultRating))
	m.CommentInput.Reset()
	m.FormMessage = ""
	if m.Focus == view.FocusRating || m.Focus == view.FocusComment {
		m.setFocus(view.FocusList)
	}
}

// Inputs collects widget state for the renderer
func (m AppModel) Inputs(snap navigator.Snapshot) view.Inputs {
	in := view.Inputs{
		Focus:        m.Focus,
		CategoryName: m.CategoryInput.View(),
		Rating:       m.RatingInput.View(),
		Comment:      m.CommentInput.View(),
		FormMessage:  m.FormMessage,
		Help:         m.Help.View(m.helpKeys(snap)),
	}

	if m.Busy {
		in.Spinner = m.Spinner.View()
	}

	switch snap.State() {
	case navigator.Browsing:
		in.Cursor = m.CategoryCursor
	case navigator.CategorySelected:
		in.Cursor = m.ItemCursor
	}
	return in
}

func (m AppModel) helpKeys(snap navigator.Snapshot) help.KeyMap {
	switch {
	case m.Busy:
		return busyKeyMap{m.Keys}
	case m.Focus == view.FocusCategoryName:
		return formKeyMap{k: m.Keys}
	case m.Focus != view.FocusList:
		return formKeyMap{k: m.Keys, multiField: true}
	}

	switch snap.State() {
	case navigator.CategorySelected:
		return listKeyMap{k: m.Keys, canOpen: true}
	case navigator.ItemSelected:
		return listKeyMap{k: m.Keys}
	default:
		return browseKeyMap{m.Keys}
	}
}

// View renders the current navigator snapshot
func (m AppModel) View() string {
	snap := m.nav.Snapshot()
	return view.Render(snap, m.Inputs(snap), m.Width, m.Height)
}
