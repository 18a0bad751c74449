package gateway

import (
	"math"
	"strconv"
	"strings"
)

// FeedbackStats summarizes a feedback list.
type FeedbackStats struct {
	Count   int
	Average float64
}

// Stats computes the review count and mean rating. The average of an empty
// list is 0.
func Stats(feedback []Feedback) FeedbackStats {
	if len(feedback) == 0 {
		return FeedbackStats{}
	}

	sum := 0
	for _, f := range feedback {
		sum += f.Rating
	}

	return FeedbackStats{
		Count:   len(feedback),
		Average: float64(sum) / float64(len(feedback)),
	}
}

// FormatAverage renders an average with one decimal place, dropping a
// trailing ".0": 4.5 -> "4.5", 8.0 -> "8", 0 -> "0". Halves round up, so
// 8.25 renders as "8.3".
func FormatAverage(avg float64) string {
	rounded := math.Round(avg*10) / 10
	return strings.TrimSuffix(strconv.FormatFloat(rounded, 'f', 1, 64), ".0")
}

// FormatAverage renders the stats' average the same way as the package-level
// FormatAverage.
func (s FeedbackStats) FormatAverage() string {
	return FormatAverage(s.Average)
}
