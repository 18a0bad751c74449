// Package tui implements the interactive FeedbackHub browser using Bubble Tea.
//
// # Architecture
//
// AppModel follows the Elm architecture but keeps no browsing state of its
// own. Categories, items, feedback, the selection and the loading/error
// flags all live in a navigator.Navigator; the model holds only widget state
// (list cursors, text inputs, focus, spinner, help) and renders with
// view.Render on every frame.
//
// Transitions that talk to the backend run inside tea.Cmd functions:
//
//	Update(enter on an item)
//	  -> selectItemCmd        (goroutine: nav.SelectItem)
//	  -> feedbackLoadedMsg    (Busy cleared)
//	View()
//	  -> view.Render(nav.Snapshot(), inputs, w, h)
//
// While a command runs the model is Busy: keys other than ctrl+c are
// ignored and the spinner ticks next to the loading banner.
//
// # Keys
//
//	Browsing          ↑/↓ move, enter open, tab new category, r reload, q quit
//	Category items    ↑/↓ move, enter open, esc back
//	Item feedback     tab edit form, esc back
//	Any form          enter submit, tab next field, esc leave form
//
// Form input is validated before a command starts: a blank category name, a
// rating outside 1-10 or a comment shorter than five characters shows a
// message in the form and sends nothing.
//
// # Usage
//
//	nav := navigator.New(gateway.NewClient(cfg.APIURL), cfg.APIURL)
//	if err := tui.Run(ctx, nav); err != nil {
//	    return err
//	}
package tui
