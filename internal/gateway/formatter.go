package gateway

import (
	"fmt"
	"strings"
)

// RatingScale is appended to every rendered average.
const RatingScale = "/ 10"

// Summary returns a one-line summary of the item
func (i Item) Summary() string {
	if i.Category == nil {
		return fmt.Sprintf("#%d %s (no category)", i.ID, i.Name)
	}
	return fmt.Sprintf("#%d %s [%s]", i.ID, i.Name, i.Category.Name)
}

// Line renders one feedback entry as "<rating>/10: <comment>".
func (f Feedback) Line() string {
	return fmt.Sprintf("%d/10: %s", f.Rating, f.Comment)
}

// FormatStats returns the two statistics lines shown above a feedback list
func FormatStats(feedback []Feedback) string {
	s := Stats(feedback)
	return fmt.Sprintf("%d Reviews\nAverage Rating: %s %s\n", s.Count, s.FormatAverage(), RatingScale)
}

// FormatCategoriesCompact returns one "id name" line per category
func FormatCategoriesCompact(categories []Category) string {
	var b strings.Builder
	for _, c := range categories {
		b.WriteString(fmt.Sprintf("%d\t%s\n", c.ID, c.Name))
	}
	return b.String()
}

// FormatCategoriesDetailed returns a headed table of categories
func FormatCategoriesDetailed(categories []Category) string {
	var b strings.Builder

	b.WriteString("=== Categories ===\n")
	if len(categories) == 0 {
		b.WriteString("(none)\n")
		return b.String()
	}

	b.WriteString("ID    | Name\n")
	b.WriteString("------+------------------\n")
	for _, c := range categories {
		b.WriteString(fmt.Sprintf("%-5d | %s\n", c.ID, c.Name))
	}
	b.WriteString(fmt.Sprintf("\n%d categories\n", len(categories)))

	return b.String()
}

// FormatItemsCompact returns one "id name category" line per item
func FormatItemsCompact(items []Item) string {
	var b strings.Builder
	for _, i := range items {
		category := "-"
		if i.Category != nil {
			category = i.Category.Name
		}
		b.WriteString(fmt.Sprintf("%d\t%s\t%s\n", i.ID, i.Name, category))
	}
	return b.String()
}

// FormatItemsDetailed returns a headed list of items. title is usually the
// category name, or "All" when unfiltered.
func FormatItemsDetailed(title string, items []Item) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("=== %s Items ===\n", title))
	if len(items) == 0 {
		b.WriteString("No items found in this category.\n")
		return b.String()
	}

	for _, i := range items {
		b.WriteString(i.Summary())
		b.WriteString("\n")
	}

	return b.String()
}

// FormatFeedbackCompact returns statistics on one line followed by one line
// per feedback entry
func FormatFeedbackCompact(feedback []Feedback) string {
	var b strings.Builder

	s := Stats(feedback)
	b.WriteString(fmt.Sprintf("reviews=%d average=%s\n", s.Count, s.FormatAverage()))
	for _, f := range feedback {
		b.WriteString(f.Line())
		b.WriteString("\n")
	}

	return b.String()
}

// FormatFeedbackDetailed returns the statistics block and every feedback
// entry under a heading naming the item
func FormatFeedbackDetailed(itemName string, feedback []Feedback) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("=== %s Feedback ===\n", itemName))
	b.WriteString(FormatStats(feedback))
	b.WriteString("\n")

	if len(feedback) == 0 {
		b.WriteString("No feedback yet. Be the first!\n")
		return b.String()
	}

	for _, f := range feedback {
		b.WriteString(f.Line())
		b.WriteString("\n")
	}

	return b.String()
}
