package tui

import (
	"github.com/rgehrsitz/folha/internal/calculation"
	"github.com/rgehrsitz/folha/internal/compare"
)

// Scene represents different screens in the TUI
type Scene int

const (
	SceneRecords Scene = iota
	SceneDetail
	SceneCompare
	SceneHelp
)

// Message types for the Bubble Tea update cycle

// NavigateMsg switches to a different scene
type NavigateMsg struct {
	Scene Scene
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}

// BatchLoadedMsg signals the input file has been parsed, resolved and computed
type BatchLoadedMsg struct {
	Outcomes []calculation.Outcome
}

// ComparisonCompleteMsg carries the termination comparison for one record
type ComparisonCompleteMsg struct {
	Index int
	Set   *compare.ComparisonSet
	Err   error
}

func (s Scene) String() string {
	switch s {
	case SceneRecords:
		return "Records"
	case SceneDetail:
		return "Statement"
	case SceneCompare:
		return "Termination comparison"
	case SceneHelp:
		return "Help"
	default:
		return "Unknown"
	}
}
