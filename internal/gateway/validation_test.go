package gateway

import "testing"

func TestValidateRating(t *testing.T) {
	tests := []struct {
		rating  int
		wantErr bool
	}{
		{0, true},
		{1, false},
		{5, false},
		{10, false},
		{11, true},
		{-3, true},
	}

	for _, tt := range tests {
		err := ValidateRating(tt.rating)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateRating(%d) error = %v, wantErr %v", tt.rating, err, tt.wantErr)
		}
	}
}

func TestValidateComment(t *testing.T) {
	tests := []struct {
		name    string
		comment string
		wantErr bool
	}{
		{"empty", "", true},
		{"four chars", "Good", true},
		{"five chars", "Great", false},
		{"padded short", "   ok   ", true},
		{"multibyte", "héllo", false},
		{"long", "Absolutely love this place", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateComment(tt.comment)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateComment(%q) error = %v, wantErr %v", tt.comment, err, tt.wantErr)
			}
			if err != nil && ValidationMessage(err) != MsgCommentTooShort {
				t.Errorf("message = %q, want %q", ValidationMessage(err), MsgCommentTooShort)
			}
		})
	}
}

func TestValidateCategoryName(t *testing.T) {
	for _, name := range []string{"", "   ", "\t\n"} {
		err := ValidateCategoryName(name)
		if err == nil {
			t.Errorf("ValidateCategoryName(%q) should fail", name)
			continue
		}
		if ValidationMessage(err) != MsgCategoryNameEmpty {
			t.Errorf("message = %q, want %q", ValidationMessage(err), MsgCategoryNameEmpty)
		}
	}

	if err := ValidateCategoryName("Books"); err != nil {
		t.Errorf("ValidateCategoryName(Books) error = %v, want nil", err)
	}
}

func TestValidateFeedbackInput(t *testing.T) {
	err := ValidateFeedbackInput(FeedbackInput{Rating: 0, Comment: "Bad"})
	if ValidationMessage(err) != MsgRatingOutOfRange {
		t.Errorf("rating should be checked first, got %v", err)
	}

	if err := ValidateFeedbackInput(FeedbackInput{Rating: 7, Comment: "Pretty good", ItemID: 1}); err != nil {
		t.Errorf("valid input error = %v, want nil", err)
	}
}
