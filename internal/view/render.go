package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/feedbackhub/internal/gateway"
	"github.com/muurk/feedbackhub/internal/navigator"
)

// Banner texts.
const (
	LoadingText       = "Loading data from the server..."
	NoItemsText       = "No items found in this category."
	NoCategoriesText  = "No categories yet. Add one below."
	NoFeedbackText    = "No feedback yet. Be the first!"
	CategoriesTitle   = "Categories"
	NewCategoryTitle  = "Add New Category"
	FeedbackFormTitle = "We'd love to hear from you!"
)

// Focus names the widget that receives typed text.
type Focus int

const (
	// FocusList means arrow keys move the list cursor
	FocusList Focus = iota
	FocusCategoryName
	FocusRating
	FocusComment
)

// Inputs is widget state owned by the caller. Field values are drawn as
// given, so a caller may pass either raw text or an already rendered
// text input.
type Inputs struct {
	// Cursor indexes the category list while browsing and the item list
	// when a category is selected. Out-of-range values are clamped.
	Cursor int

	Focus Focus

	CategoryName string
	Rating       string
	Comment      string

	// FormMessage is a validation message shown inside the active form
	FormMessage string

	// Spinner is the current spinner frame, shown next to the loading text
	Spinner string

	// Help is the footer text
	Help string
}

// Render draws the whole screen for s. It has no side effects and keeps no
// state: the same arguments always produce the same string.
func Render(s navigator.Snapshot, in Inputs, width, height int) string {
	width, height = clampSize(width, height)
	return RenderApplicationContainer(Content(s, in, width, height), in.Help, width, height)
}

// Content draws the banner and the active view without the surrounding
// container. Until the first load succeeds only the banner is drawn.
func Content(s navigator.Snapshot, in Inputs, width, height int) string {
	var sections []string

	if banner := renderBanner(s, in); banner != "" {
		sections = append(sections, banner)
	}

	if !s.Loaded {
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	// Rows left for a list after header, footer, borders, banner and forms
	rows := height - 18
	if rows < 3 {
		rows = 3
	}

	switch s.State() {
	case navigator.Browsing:
		sections = append(sections, renderBrowsing(s, in, rows))
	case navigator.CategorySelected:
		sections = append(sections, renderCategory(s, in, rows))
	case navigator.ItemSelected:
		sections = append(sections, renderItem(s, in, width))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderBanner(s navigator.Snapshot, in Inputs) string {
	var parts []string

	if s.Loading {
		text := LoadingText
		if in.Spinner != "" {
			text = in.Spinner + " " + text
		}
		parts = append(parts, LoadingStyle.Render(text))
	}
	if s.Error != "" {
		parts = append(parts, ErrorStyle.Render("✗ "+s.Error))
	}
	if s.Notice != "" {
		parts = append(parts, SuccessStyle.Render("✓ "+s.Notice))
	}

	return strings.Join(parts, "\n")
}

func renderBrowsing(s navigator.Snapshot, in Inputs, rows int) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(CategoriesTitle))
	b.WriteString("\n")

	names := make([]string, len(s.Categories))
	for i, c := range s.Categories {
		names[i] = c.Name
	}
	if len(names) == 0 {
		b.WriteString(SubtitleStyle.Render(NoCategoriesText))
		b.WriteString("\n")
	} else {
		b.WriteString(renderList(names, in.Cursor, in.Focus == FocusList, rows))
	}

	form := []string{
		TitleStyle.Render(NewCategoryTitle),
		renderField("Category Name:", in.CategoryName, in.Focus == FocusCategoryName),
	}
	form = appendFormMessage(form, in)
	b.WriteString(FormBoxStyle.Render(strings.Join(form, "\n")))

	return b.String()
}

func renderCategory(s navigator.Snapshot, in Inputs, rows int) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(s.SelectedCategory.Name + " Items"))
	b.WriteString("\n")

	items := s.ItemsForSelectedCategory()
	if len(items) == 0 {
		b.WriteString(SubtitleStyle.Render(NoItemsText))
		return b.String()
	}

	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}
	b.WriteString(renderList(names, in.Cursor, true, rows))

	return b.String()
}

func renderItem(s navigator.Snapshot, in Inputs, width int) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(s.SelectedItem.Name + " Feedback"))
	b.WriteString("\n")

	form := []string{
		SubtitleStyle.Render(FeedbackFormTitle),
		renderField(fmt.Sprintf("Rating (%d-%d)", gateway.MinRating, gateway.MaxRating), in.Rating, in.Focus == FocusRating),
		renderField("Comment", in.Comment, in.Focus == FocusComment),
	}
	form = appendFormMessage(form, in)
	b.WriteString(FormBoxStyle.Render(strings.Join(form, "\n")))
	b.WriteString("\n\n")

	stats := s.Stats()
	b.WriteString(StatsStyle.Render(fmt.Sprintf("%d Reviews", stats.Count)))
	b.WriteString("\n")
	b.WriteString(StatsStyle.Render(fmt.Sprintf("Average Rating: %s %s", stats.FormatAverage(), gateway.RatingScale)))
	b.WriteString("\n\n")

	if len(s.Feedback) == 0 {
		b.WriteString(SubtitleStyle.Render(NoFeedbackText))
		return b.String()
	}

	lineStyle := lipgloss.NewStyle().Width(width - 8)
	for _, f := range s.Feedback {
		line := RatingStyle.Render(fmt.Sprintf("%d/10:", f.Rating)) + " " + f.Comment
		b.WriteString(lineStyle.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

func renderField(label, value string, focused bool) string {
	if focused {
		return FocusedLabelStyle.Render("→ "+label) + "\n  " + value
	}
	return BlurredLabelStyle.Render("  "+label) + "\n  " + value
}

func appendFormMessage(form []string, in Inputs) []string {
	if in.FormMessage == "" || in.Focus == FocusList {
		return form
	}
	return append(form, FormMessageStyle.Render(in.FormMessage))
}

// renderList draws names with a cursor, showing at most rows entries around
// the cursor.
func renderList(names []string, cursor int, active bool, rows int) string {
	cursor = ClampCursor(cursor, len(names))
	start, end := visibleRange(len(names), cursor, rows)

	var b strings.Builder
	if start > 0 {
		b.WriteString(SubtitleStyle.Render(fmt.Sprintf("    ↑ %d more", start)))
		b.WriteString("\n")
	}
	for i := start; i < end; i++ {
		if i == cursor && active {
			b.WriteString(SelectedListItemStyle.Render("→ " + names[i]))
		} else {
			b.WriteString(ListItemStyle.Render(names[i]))
		}
		b.WriteString("\n")
	}
	if end < len(names) {
		b.WriteString(SubtitleStyle.Render(fmt.Sprintf("    ↓ %d more", len(names)-end)))
		b.WriteString("\n")
	}
	return b.String()
}

// ClampCursor keeps cursor within [0, n).
func ClampCursor(cursor, n int) int {
	if n == 0 || cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}

func visibleRange(n, cursor, rows int) (int, int) {
	if n <= rows {
		return 0, n
	}
	start := cursor - rows/2
	if start < 0 {
		start = 0
	}
	end := start + rows
	if end > n {
		end = n
		start = n - rows
	}
	return start, end
}
