// Package tui implements the interactive counting interface: tabbed
// screens for the counter, the zikhr list, history, and the streak.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/huh"

	tea "github.com/charmbracelet/bubbletea"

	"zikirmatik/internal/streak"
	"zikirmatik/internal/widget"
	"zikirmatik/internal/zikr"
)

type SessionState int

const (
	StateCounter SessionState = iota
	StateZikhrs
	StateHistory
	StateStreak
	StateAddZikhr
	StateConfirmDelete
)

// tabCount is how many states are reachable with tab cycling.
const tabCount = 4

type ZikhrFormModel struct {
	Name        string
	ArabicName  string
	Description string
	Count       string
}

type Model struct {
	store  *zikr.Store
	streak *streak.Tracker
	widget *widget.Bridge

	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model
	progressBar   progress.Model

	cursor       int
	form         *huh.Form
	zikhrForm    *ZikhrFormModel
	deleteTarget string
	celebration  string

	quitting bool
	width    int
	height   int
}

func NewModel(store *zikr.Store, tracker *streak.Tracker, bridge *widget.Bridge) Model {
	return Model{
		store:       store,
		streak:      tracker,
		widget:      bridge,
		state:       StateCounter,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		progressBar: progress.New(progress.WithDefaultGradient()),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}
