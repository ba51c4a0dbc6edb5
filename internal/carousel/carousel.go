package carousel

// Responsive breakpoints in CSS pixels. Below BreakpointTablet one item is
// visible, below BreakpointDesktop two, and three otherwise.
const (
	BreakpointTablet  = 768
	BreakpointDesktop = 1024
)

// ItemsPerView returns how many items are visible at once for the given
// viewport width. It is a pure function of the width.
func ItemsPerView(viewportWidth int) int {
	switch {
	case viewportWidth < BreakpointTablet:
		return 1
	case viewportWidth < BreakpointDesktop:
		return 2
	default:
		return 3
	}
}

// State is the view window into an ordered list of items: how many items
// exist, how many are visible at once, and the index of the leftmost
// visible item. The zero value is a valid empty window.
//
// State is a value type; operations return the updated state instead of
// mutating in place.
type State struct {
	ItemCount    int `json:"itemCount"`
	ItemsPerView int `json:"itemsPerView"`
	CurrentIndex int `json:"currentIndex"`
}

// NewState builds a clamped State for itemCount items at the given viewport
// width.
func NewState(itemCount, viewportWidth int) State {
	return State{
		ItemCount:    itemCount,
		ItemsPerView: ItemsPerView(viewportWidth),
	}.clamp()
}

// maxIndex is the largest valid CurrentIndex: the window may never extend
// past the last item.
func (s State) maxIndex() int {
	m := s.ItemCount - s.ItemsPerView
	if m < 0 {
		return 0
	}
	return m
}

// clamp normalizes a State so that every field is inside its valid range.
// Out-of-range inputs are corrected rather than rejected.
func (s State) clamp() State {
	if s.ItemCount < 0 {
		s.ItemCount = 0
	}
	if s.ItemsPerView < 1 {
		s.ItemsPerView = 1
	}
	if s.CurrentIndex < 0 {
		s.CurrentIndex = 0
	}
	if m := s.maxIndex(); s.CurrentIndex > m {
		s.CurrentIndex = m
	}
	return s
}

// Advance moves the window one item forward. At the upper bound it is a
// no-op.
func (s State) Advance() State {
	s = s.clamp()
	if s.CurrentIndex < s.maxIndex() {
		s.CurrentIndex++
	}
	return s
}

// Retreat moves the window one item back. At index zero it is a no-op.
func (s State) Retreat() State {
	s = s.clamp()
	if s.CurrentIndex > 0 {
		s.CurrentIndex--
	}
	return s
}

// OnResize recomputes the items-per-view count for the new viewport width.
// When the breakpoint class changes the window resets to the start; when it
// does not, the state is returned unchanged.
func (s State) OnResize(viewportWidth int) State {
	s = s.clamp()
	perView := ItemsPerView(viewportWidth)
	if perView == s.ItemsPerView {
		return s
	}
	s.ItemsPerView = perView
	s.CurrentIndex = 0
	return s.clamp()
}

// OffsetPercent is the horizontal translation, in percent of one viewport
// width, to apply to the item strip. Always zero or negative.
func (s State) OffsetPercent() float64 {
	s = s.clamp()
	if s.CurrentIndex == 0 {
		return 0
	}
	return -(float64(s.CurrentIndex) * (100.0 / float64(s.ItemsPerView)))
}

// Controls reports whether the prev/next buttons should be enabled for the
// current window position.
type Controls struct {
	PrevEnabled bool `json:"prevEnabled"`
	NextEnabled bool `json:"nextEnabled"`
}

// Controls returns the enabled state of both navigation buttons.
func (s State) Controls() Controls {
	s = s.clamp()
	return Controls{
		PrevEnabled: s.CurrentIndex > 0,
		NextEnabled: s.CurrentIndex < s.maxIndex(),
	}
}
