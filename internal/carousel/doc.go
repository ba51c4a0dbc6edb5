// Package carousel implements the view-window state for the horizontally
// scrolling timeline sections of the site (career, education).
//
// The package is deliberately free of side effects: a State value describes
// which slice of an ordered item list is visible, and every operation
// returns a new clamped State. Applying the resulting CSS transform and
// toggling the navigation buttons is the caller's job, which keeps the
// window arithmetic testable without a DOM or an HTTP layer.
//
// # Usage
//
//	s := carousel.NewState(7, 1200) // 7 items, desktop viewport
//	s = s.Advance()
//	offset := s.OffsetPercent()     // -33.33…
//	c := s.Controls()               // {PrevEnabled: true, NextEnabled: true}
//
// Resizing across a breakpoint resets the window to the start rather than
// trying to preserve the scroll position. That is intentional: a breakpoint
// change reflows the whole strip and a preserved index would land the user
// on a different set of items anyway.
package carousel
