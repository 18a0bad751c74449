// Package view renders navigator snapshots for the terminal.
//
// Render is a pure function of its arguments. It never talks to the backend
// and keeps no state between calls; widget state such as the list cursor and
// form field contents is passed in through Inputs.
//
// Exactly one view is drawn below a banner:
//
//	Browsing          category list and the new-category form
//	CategorySelected  "<category> Items" and the filtered item list
//	ItemSelected      "<item> Feedback", the feedback form, statistics
//	                  and every feedback entry as "<rating>/10: <comment>"
//
// The banner shows the loading text, the error and the notice. Until the
// first load succeeds, only the banner is drawn.
package view
