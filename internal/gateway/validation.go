package gateway

import (
	"strings"
	"unicode/utf8"
)

// User-facing validation messages.
const (
	MsgCategoryNameEmpty = "Category name cannot be empty."
	MsgCommentTooShort   = "Comment must be at least 5 characters long."
	MsgRatingOutOfRange  = "Rating must be between 1 and 10."
)

// ValidateRating checks that a rating is within 1-10.
func ValidateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return NewValidationError(MsgRatingOutOfRange)
	}
	return nil
}

// ValidateComment checks that a comment has at least MinCommentLength
// characters once surrounding whitespace is removed.
func ValidateComment(comment string) error {
	if utf8.RuneCountInString(strings.TrimSpace(comment)) < MinCommentLength {
		return NewValidationError(MsgCommentTooShort)
	}
	return nil
}

// ValidateCategoryName checks that a category name is not blank.
func ValidateCategoryName(name string) error {
	if strings.TrimSpace(name) == "" {
		return NewValidationError(MsgCategoryNameEmpty)
	}
	return nil
}

// ValidateFeedbackInput validates rating then comment, returning the first
// failure.
func ValidateFeedbackInput(in FeedbackInput) error {
	if err := ValidateRating(in.Rating); err != nil {
		return err
	}
	return ValidateComment(in.Comment)
}
