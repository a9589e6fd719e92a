package showcase

import "github.com/jask/mlshowcase/internal/catalog"

// Advance moves the loading progress forward by step, clamped to 100.
// Non-loading states and non-positive steps are returned unchanged.
func Advance(s State, step int) State {
	st, ok := s.(Loading)
	if !ok || step <= 0 {
		return s
	}
	st.Progress = min(100, st.Progress+step)
	return st
}

// Settle leaves Loading once progress has reached 100.
func Settle(s State) State {
	if st, ok := s.(Loading); ok && st.Progress >= 100 {
		return Landing{}
	}
	return s
}

// SelectProject opens the demo list of p. The selected demo is cleared.
// It has no effect while loading.
func SelectProject(s State, p catalog.Project) State {
	if ScreenOf(s) == ScreenLoading {
		return s
	}
	return DemoList{Project: p}
}

// SelectDemo plays d. It only applies when d belongs to the active
// project; the project is kept as is.
func SelectDemo(s State, d catalog.Demo) State {
	p, ok := ActiveProject(s)
	if !ok || !p.Owns(d) {
		return s
	}
	return Player{Project: p, Demo: d}
}

// Back steps one screen up: Player to DemoList, DemoList to Landing.
// The cursor lands on the entry that was just left.
func Back(s State) State {
	switch st := s.(type) {
	case Player:
		return DemoList{Project: st.Project, Cursor: st.Demo.Index}
	case DemoList:
		return Landing{Cursor: st.Project.Index}
	}
	return s
}

// Reset returns to Landing with no active project. Loading is left
// alone so progress always reaches 100 before Landing first renders.
func Reset(s State) State {
	if ScreenOf(s) == ScreenLoading {
		return s
	}
	return Landing{}
}

// MoveCursor shifts the highlight on list screens by delta, wrapping
// within n entries.
func MoveCursor(s State, delta, n int) State {
	if n <= 0 {
		return s
	}
	wrap := func(c int) int { return ((c+delta)%n + n) % n }
	switch st := s.(type) {
	case Landing:
		st.Cursor = wrap(st.Cursor)
		return st
	case DemoList:
		st.Cursor = wrap(st.Cursor)
		return st
	}
	return s
}
