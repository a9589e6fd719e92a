// Package showcase is the navigation state machine behind the showcase
// screens.
//
// A State is one of Loading, Landing, DemoList or Player. Each variant
// carries only what its screen needs, so a selected demo without an
// active project cannot be expressed. Transitions are pure functions
// that return the next state; callers replace their state wholesale.
package showcase
