// Package gateway provides a typed HTTP client for the FeedbackHub REST API.
//
// The backend owns all data. This package only issues the five round-trips
// the client needs and decodes their JSON payloads:
//
//	GET  /api/categories          -> []Category
//	POST /api/categories          -> Category
//	GET  /api/items               -> []Item
//	GET  /api/feedback?itemId=<n> -> []Feedback
//	POST /api/feedback            -> Feedback
//
// # Usage Example
//
//	client := gateway.NewClient("http://localhost:8081")
//
//	categories, err := client.FetchCategories(ctx)
//	if err != nil {
//	    fmt.Println(gateway.ShortMessage(err))
//	    return
//	}
//
//	created, err := client.CreateFeedback(ctx, gateway.FeedbackInput{
//	    Rating:  8,
//	    Comment: "Great!",
//	    ItemID:  3,
//	})
//
// # Request Semantics
//
// Each call is exactly one request. There is no retry, no caching and no
// request deduplication. No timeout is applied unless Timeout is set on the
// client; callers can always bound a call with the context they pass in.
//
// # Error Handling
//
// All failures are returned as *Error. Transport failures and non-2xx
// responses are network errors (IsNetworkError reports true); error response
// bodies are never decoded. Malformed 2xx bodies are parse errors.
// The Validate* helpers produce validation errors before anything reaches
// the network.
package gateway
