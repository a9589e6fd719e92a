package showcase

import "github.com/jask/mlshowcase/internal/catalog"

// Screen is the view derived from a State.
type Screen int

const (
	ScreenLoading Screen = iota
	ScreenLanding
	ScreenDemoList
	ScreenPlayer
)

func (s Screen) String() string {
	switch s {
	case ScreenLoading:
		return "loading"
	case ScreenLanding:
		return "landing"
	case ScreenDemoList:
		return "demos"
	case ScreenPlayer:
		return "player"
	default:
		return "unknown"
	}
}

// State is the sealed set of navigation states.
type State interface {
	Screen() Screen
	isState()
}

// Loading is shown until Progress reaches 100 and the settle delay passes.
type Loading struct {
	Progress int
}

// Landing lists every project. Cursor is the highlighted project.
type Landing struct {
	Cursor int
}

// DemoList lists the demos of the active project.
type DemoList struct {
	Project catalog.Project
	Cursor  int
}

// Player shows one demo of the active project.
type Player struct {
	Project catalog.Project
	Demo    catalog.Demo
}

func (Loading) Screen() Screen  { return ScreenLoading }
func (Landing) Screen() Screen  { return ScreenLanding }
func (DemoList) Screen() Screen { return ScreenDemoList }
func (Player) Screen() Screen   { return ScreenPlayer }

func (Loading) isState()  {}
func (Landing) isState()  {}
func (DemoList) isState() {}
func (Player) isState()   {}

// Start is the initial state.
func Start() State { return Loading{} }

// ScreenOf returns the screen for s.
func ScreenOf(s State) Screen {
	if s == nil {
		return ScreenLoading
	}
	return s.Screen()
}

// ActiveProject returns the project in view, if any.
func ActiveProject(s State) (catalog.Project, bool) {
	switch st := s.(type) {
	case DemoList:
		return st.Project, true
	case Player:
		return st.Project, true
	}
	return catalog.Project{}, false
}

// SelectedDemo returns the demo being played, if any.
func SelectedDemo(s State) (catalog.Demo, bool) {
	if st, ok := s.(Player); ok {
		return st.Demo, true
	}
	return catalog.Demo{}, false
}

// Progress returns the loading progress. States past loading report 100.
func Progress(s State) int {
	if st, ok := s.(Loading); ok {
		return st.Progress
	}
	return 100
}

// Cursor returns the highlighted row on list screens and -1 elsewhere.
func Cursor(s State) int {
	switch st := s.(type) {
	case Landing:
		return st.Cursor
	case DemoList:
		return st.Cursor
	}
	return -1
}
