package picker

import "github.com/runger/emopick/internal/emoji"

// State holds the two observable selection values: the last explicitly
// picked emoji and the category currently in view. Single-threaded;
// every write notifies synchronously on the calling goroutine.
type State struct {
	selected      *Cell[*emoji.Entry]
	activeSection *Cell[int]
	sectionCount  int
}

// NewState creates selection state for an index with sectionCount
// sections. The active section starts at 0; nothing is selected until
// the first pick.
func NewState(sectionCount int) *State {
	return &State{
		selected:      NewCell[*emoji.Entry](nil),
		activeSection: NewCell(0),
		sectionCount:  sectionCount,
	}
}

// Selected returns the last picked entry, or nil before the first pick.
func (s *State) Selected() *emoji.Entry {
	return s.selected.Get()
}

// ActiveSection returns the index of the category currently in view.
func (s *State) ActiveSection() int {
	return s.activeSection.Get()
}

// BindSelected subscribes to pick events.
func (s *State) BindSelected(fn func(*emoji.Entry)) {
	s.selected.Bind(fn)
}

// BindActiveSection subscribes to active-category changes.
func (s *State) BindActiveSection(fn func(int)) {
	s.activeSection.Bind(fn)
}

// selectEntry records a pick. Every pick notifies, even when the same
// emoji is re-picked: distinct user actions are distinct events.
func (s *State) selectEntry(e emoji.Entry) {
	s.selected.Set(&e)
}

// setActiveSection updates the in-view category. Out-of-range values
// are clamped silently since scroll reports can be transiently
// inconsistent during fast gestures. Unchanged values do not notify,
// which keeps header-highlight churn out of continuous scrolls.
func (s *State) setActiveSection(sec int) {
	if s.sectionCount == 0 {
		return
	}
	if sec < 0 {
		sec = 0
	}
	if sec >= s.sectionCount {
		sec = s.sectionCount - 1
	}
	if sec == s.activeSection.Get() {
		return
	}
	s.activeSection.Set(sec)
}
