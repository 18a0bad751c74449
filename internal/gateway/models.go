package gateway

// Category is a grouping of reviewable items (e.g. "Electronics").
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Item is a reviewable entity. Category is nil when the backend omitted it.
type Item struct {
	ID       int64     `json:"id"`
	Name     string    `json:"name"`
	Category *Category `json:"category"`
}

// CategoryID returns the id of the item's category, or false when the item
// has none.
func (i Item) CategoryID() (int64, bool) {
	if i.Category == nil {
		return 0, false
	}
	return i.Category.ID, true
}

// ItemRef is the foreign-key form of an item used inside feedback payloads.
type ItemRef struct {
	ID int64 `json:"id"`
}

// Feedback is a rating (1-10) plus a comment attached to one item.
type Feedback struct {
	ID      int64   `json:"id"`
	Rating  int     `json:"rating"`
	Comment string  `json:"comment"`
	Item    ItemRef `json:"item"`
}

// FeedbackInput is what the client sends to create feedback.
type FeedbackInput struct {
	Rating  int
	Comment string
	ItemID  int64
}

// feedbackRequest is the wire body for POST /api/feedback
type feedbackRequest struct {
	Rating  int     `json:"rating"`
	Comment string  `json:"comment"`
	Item    ItemRef `json:"item"`
}

// CategoryInput is what the client sends to create a category.
type CategoryInput struct {
	Name string `json:"name"`
}

// Rating bounds and comment length enforced before submission.
const (
	MinRating        = 1
	MaxRating        = 10
	MinCommentLength = 5
	DefaultRating    = 10
)
