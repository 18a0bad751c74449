package view

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/muurk/feedbackhub/internal/gateway"
	"github.com/muurk/feedbackhub/internal/navigator"
)

const (
	testWidth  = 200
	testHeight = 60
)

func sampleSnapshot() navigator.Snapshot {
	food := gateway.Category{ID: 1, Name: "Food"}
	electronics := gateway.Category{ID: 2, Name: "Electronics"}
	return navigator.Snapshot{
		Loaded:     true,
		Categories: []gateway.Category{food, electronics},
		Items: []gateway.Item{
			{ID: 10, Name: "Gourmet Pizza Place", Category: &food},
			{ID: 20, Name: "Laptop Pro X", Category: &electronics},
			{ID: 21, Name: "Wireless Mouse Elite", Category: &electronics},
		},
	}
}

func TestRender_StartupFailureShowsOnlyBanner(t *testing.T) {
	s := navigator.Snapshot{
		Error: "Could not load data. Please make sure the backend server is running on http://localhost:8081.",
	}

	out := Render(s, Inputs{}, testWidth, testHeight)

	assert.Contains(t, out, s.Error)
	assert.NotContains(t, out, CategoriesTitle)
	assert.NotContains(t, out, NewCategoryTitle)
	assert.NotContains(t, out, " Items")
	assert.NotContains(t, out, " Feedback")
}

func TestRender_StartupLoading(t *testing.T) {
	s := navigator.Snapshot{Loading: true}

	out := Render(s, Inputs{Spinner: "*"}, testWidth, testHeight)

	assert.Contains(t, out, "* "+LoadingText)
	assert.NotContains(t, out, CategoriesTitle)
}

func TestRender_Browsing(t *testing.T) {
	s := sampleSnapshot()

	out := Render(s, Inputs{Cursor: 1, CategoryName: "Boo"}, testWidth, testHeight)

	assert.Contains(t, out, CategoriesTitle)
	assert.Contains(t, out, "Food")
	assert.Contains(t, out, "→ Electronics", "cursor marks the second category")
	assert.Contains(t, out, NewCategoryTitle)
	assert.Contains(t, out, "Boo")
	assert.NotContains(t, out, LoadingText)
}

func TestRender_BrowsingWithNoticeAndValidation(t *testing.T) {
	s := sampleSnapshot()
	s.Notice = `Successfully created category: "Books" with ID: 7`

	out := Render(s, Inputs{Focus: FocusCategoryName, FormMessage: gateway.MsgCategoryNameEmpty}, testWidth, testHeight)

	assert.Contains(t, out, s.Notice)
	assert.Contains(t, out, gateway.MsgCategoryNameEmpty)
}

func TestRender_CategorySelected(t *testing.T) {
	s := sampleSnapshot()
	s.SelectedCategory = &s.Categories[1]

	out := Render(s, Inputs{}, testWidth, testHeight)

	assert.Contains(t, out, "Electronics Items")
	assert.Contains(t, out, "Laptop Pro X")
	assert.Contains(t, out, "Wireless Mouse Elite")
	assert.NotContains(t, out, "Gourmet Pizza Place")
	assert.NotContains(t, out, NewCategoryTitle)
}

func TestRender_CategoryWithoutItems(t *testing.T) {
	s := sampleSnapshot()
	s.Categories = append(s.Categories, gateway.Category{ID: 3, Name: "Hotels"})
	s.SelectedCategory = &s.Categories[2]

	out := Render(s, Inputs{}, testWidth, testHeight)

	assert.Contains(t, out, "Hotels Items")
	assert.Contains(t, out, NoItemsText)
}

func TestRender_ItemSelected(t *testing.T) {
	s := sampleSnapshot()
	s.SelectedCategory = &s.Categories[1]
	s.SelectedItem = &s.Items[1]
	s.Feedback = []gateway.Feedback{
		{ID: 1, Rating: 5, Comment: "Absolutely love it", Item: gateway.ItemRef{ID: 20}},
		{ID: 2, Rating: 4, Comment: "Solid laptop", Item: gateway.ItemRef{ID: 20}},
	}

	out := Render(s, Inputs{Focus: FocusComment, Rating: "10", Comment: "Goo", FormMessage: gateway.MsgCommentTooShort}, testWidth, testHeight)

	assert.Contains(t, out, "Laptop Pro X Feedback")
	assert.Contains(t, out, "2 Reviews")
	assert.Contains(t, out, "Average Rating: 4.5 / 10")
	assert.Contains(t, out, "5/10: Absolutely love it")
	assert.Contains(t, out, "4/10: Solid laptop")
	assert.Contains(t, out, gateway.MsgCommentTooShort)
	assert.Contains(t, out, "Rating (1-10)")
}

func TestRender_ItemWithoutFeedback(t *testing.T) {
	s := sampleSnapshot()
	s.SelectedCategory = &s.Categories[0]
	s.SelectedItem = &s.Items[0]

	out := Render(s, Inputs{}, testWidth, testHeight)

	assert.Contains(t, out, "0 Reviews")
	assert.Contains(t, out, "Average Rating: 0 / 10")
	assert.Contains(t, out, NoFeedbackText)
}

func TestRender_IsPure(t *testing.T) {
	s := sampleSnapshot()
	s.SelectedCategory = &s.Categories[1]
	in := Inputs{Cursor: 1, Help: "esc back"}

	first := Render(s, in, testWidth, testHeight)
	second := Render(s, in, testWidth, testHeight)

	assert.Equal(t, first, second)
	assert.Len(t, s.Items, 3, "rendering must not modify the snapshot")
}

func TestRender_UnknownSizeUsesDefaults(t *testing.T) {
	out := Render(sampleSnapshot(), Inputs{}, 0, 0)

	lines := strings.Split(out, "\n")
	assert.GreaterOrEqual(t, len(lines), DefaultHeight)
}

func TestClampCursor(t *testing.T) {
	assert.Equal(t, 0, ClampCursor(5, 0))
	assert.Equal(t, 0, ClampCursor(-1, 3))
	assert.Equal(t, 2, ClampCursor(9, 3))
	assert.Equal(t, 1, ClampCursor(1, 3))
}

func TestVisibleRange(t *testing.T) {
	start, end := visibleRange(3, 0, 10)
	assert.Equal(t, [2]int{0, 3}, [2]int{start, end})

	start, end = visibleRange(20, 19, 5)
	assert.Equal(t, [2]int{15, 20}, [2]int{start, end})

	start, end = visibleRange(20, 10, 4)
	assert.Equal(t, [2]int{8, 12}, [2]int{start, end})
}
