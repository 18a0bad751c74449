package navigator

import (
	"fmt"

	"github.com/muurk/feedbackhub/internal/gateway"
)

// State identifies which view is active.
type State int

const (
	// Browsing shows the category list
	Browsing State = iota
	// CategorySelected shows the items of one category
	CategorySelected
	// ItemSelected shows the feedback of one item
	ItemSelected
)

// String returns the state name used in logs
func (s State) String() string {
	switch s {
	case Browsing:
		return "browsing"
	case CategorySelected:
		return "category_selected"
	case ItemSelected:
		return "item_selected"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Snapshot is a copy of the navigator state. Slices and pointers are not
// shared with the navigator.
type Snapshot struct {
	Categories []gateway.Category
	Items      []gateway.Item
	Feedback   []gateway.Feedback

	SelectedCategory *gateway.Category
	SelectedItem     *gateway.Item

	Loading bool
	Error   string
	Notice  string

	// Loaded is true once a startup load has succeeded
	Loaded bool
}

// State derives the active view from the selection.
func (s Snapshot) State() State {
	switch {
	case s.SelectedItem != nil:
		return ItemSelected
	case s.SelectedCategory != nil:
		return CategorySelected
	default:
		return Browsing
	}
}

// ItemsForSelectedCategory returns the items of the selected category, in
// snapshot order. It is empty when no category is selected.
func (s Snapshot) ItemsForSelectedCategory() []gateway.Item {
	if s.SelectedCategory == nil {
		return nil
	}
	return FilterItems(s.Items, s.SelectedCategory.ID)
}

// Stats summarizes the current feedback list.
func (s Snapshot) Stats() gateway.FeedbackStats {
	return gateway.Stats(s.Feedback)
}

// FilterItems returns the items whose category id equals categoryID. Items
// without a category never match. The input is not modified.
func FilterItems(items []gateway.Item, categoryID int64) []gateway.Item {
	var out []gateway.Item
	for _, item := range items {
		if id, ok := item.CategoryID(); ok && id == categoryID {
			out = append(out, item)
		}
	}
	return out
}

func (s Snapshot) clone() Snapshot {
	c := s
	c.Categories = cloneSlice(s.Categories)
	c.Items = cloneItems(s.Items)
	c.Feedback = cloneSlice(s.Feedback)
	if s.SelectedCategory != nil {
		sc := *s.SelectedCategory
		c.SelectedCategory = &sc
	}
	if s.SelectedItem != nil {
		si := cloneItem(*s.SelectedItem)
		c.SelectedItem = &si
	}
	return c
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func cloneItems(in []gateway.Item) []gateway.Item {
	if in == nil {
		return nil
	}
	out := make([]gateway.Item, len(in))
	for i, item := range in {
		out[i] = cloneItem(item)
	}
	return out
}

func cloneItem(item gateway.Item) gateway.Item {
	if item.Category != nil {
		c := *item.Category
		item.Category = &c
	}
	return item
}
