// Package navigator holds the client's browsing state and the transitions
// that move between its three views.
//
// # States
//
// The current state is derived from the selection, never stored:
//
//	Browsing          no category selected
//	CategorySelected  a category, no item
//	ItemSelected      a category and one of its items
//
// # Transitions
//
//	Load            Browsing          -> Browsing          (categories + items, in parallel)
//	SelectCategory  Browsing          -> CategorySelected
//	SelectItem      CategorySelected  -> ItemSelected      (feedback fetch)
//	Back            ItemSelected      -> CategorySelected
//	Back            CategorySelected  -> Browsing
//	SubmitFeedback  ItemSelected      -> ItemSelected      (create, then re-fetch)
//	CreateCategory  Browsing          -> Browsing          (create, then re-fetch)
//
// A transition called from any other state returns ErrInvalidTransition and
// changes nothing. Only one transition runs at a time; a call made while
// another is in flight returns ErrBusy.
//
// # Failures
//
// Transitions that talk to the backend set Loading and clear Error and
// Notice before the first request. A failure leaves the previous data in
// place and sets Error to a fixed user-facing message; the underlying gateway
// error is also returned so callers can log or classify it. Validation
// failures set Error to the validation message without any request.
//
// Failures caused by context cancellation are returned but not recorded in
// Error, so quitting the program does not flash an error banner.
//
// # Rendering
//
// Snapshot returns a copy of the state that is safe to read from another
// goroutine while a transition is running:
//
//	nav := navigator.New(client, cfg.APIURL)
//	_ = nav.Load(ctx)
//	fmt.Println(view.Render(nav.Snapshot(), view.Inputs{}, 80, 24))
package navigator
