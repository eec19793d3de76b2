package calendar

// SelectionState names the phase of the two-click range-selection gesture.
type SelectionState int

const (
	SelectionEmpty SelectionState = iota
	SelectionPending
	SelectionComplete
)

// Selection tracks the pick-start, pick-end gesture over day keys. Keys are
// YYYY-MM-DD strings, so lexicographic order is date order. Start never
// exceeds End once both picks are in: a second pick before the anchor swaps
// the two ends.
type Selection struct {
	state SelectionState
	start string
	end   string
}

// Select feeds one picked day into the gesture.
//
//	empty    -> pending:  the day anchors both ends
//	pending  -> complete: the second pick closes the range, swapping if it
//	                      precedes the anchor
//	complete -> pending:  a fresh pick restarts the gesture on the new day
func (s *Selection) Select(dayKey string) {
	switch s.state {
	case SelectionPending:
		if dayKey < s.start {
			s.end = s.start
			s.start = dayKey
		} else {
			s.end = dayKey
		}
		s.state = SelectionComplete
	default:
		s.start = dayKey
		s.end = dayKey
		s.state = SelectionPending
	}
}

// Reset clears both ends, returning to the empty state. Called externally
// after the selected range has been consumed (e.g. a project was created).
func (s *Selection) Reset() {
	*s = Selection{}
}

// State returns the current gesture phase.
func (s *Selection) State() SelectionState {
	return s.state
}

// Range returns the selected start and end keys. ok is false while the
// selection is empty; a pending selection reports its single anchor day as
// both ends.
func (s *Selection) Range() (start, end string, ok bool) {
	if s.state == SelectionEmpty {
		return "", "", false
	}
	return s.start, s.end, true
}

// Contains reports whether the given day falls inside the selected range.
func (s *Selection) Contains(dayKey string) bool {
	if s.state == SelectionEmpty {
		return false
	}
	return dayKey >= s.start && dayKey <= s.end
}

// IsStart reports whether the given day is the selection's start.
func (s *Selection) IsStart(dayKey string) bool {
	return s.state != SelectionEmpty && dayKey == s.start
}
