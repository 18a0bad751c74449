package gateway

import (
	"context"
	"fmt"
)

// FeedbackStore is the part of the backend a review submission touches.
// *Client satisfies it.
type FeedbackStore interface {
	CreateFeedback(ctx context.Context, in FeedbackInput) (Feedback, error)
	FetchFeedback(ctx context.Context, itemID int64) ([]Feedback, error)
}

// SubmitFeedback creates a review, then reads the item's feedback back
// exactly once. The returned list is the backend's answer, never a local
// append. Input is not validated here; callers check it first.
//
// If the read fails after the create succeeded, the created review is
// returned together with the error.
func SubmitFeedback(ctx context.Context, store FeedbackStore, in FeedbackInput) (Feedback, []Feedback, error) {
	created, err := store.CreateFeedback(ctx, in)
	if err != nil {
		return Feedback{}, nil, fmt.Errorf("create feedback: %w", err)
	}

	feedback, err := store.FetchFeedback(ctx, in.ItemID)
	if err != nil {
		return created, nil, fmt.Errorf("refresh feedback: %w", err)
	}
	return created, feedback, nil
}
