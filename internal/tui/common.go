// Package tui provides the interactive terminal grid built on Bubble Tea.
package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewState is the top-level state of an interactive view.
type ViewState int

const (
	// ViewStateLoading shows the spinner while a page is fetched.
	ViewStateLoading ViewState = iota
	// ViewStateList shows the grid.
	ViewStateList
	// ViewStateError shows a fatal error.
	ViewStateError
	// ViewStateQuitting renders nothing while the program exits.
	ViewStateQuitting
)

// Key bindings.
const (
	keyQuit     = "q"
	keyCtrlC    = "ctrl+c"
	keyEnter    = "enter"
	keyEsc      = "esc"
	keyS        = "s"
	keyLeft     = "left"
	keyRight    = "right"
	keyH        = "h"
	keyL        = "l"
	keyNext     = "n"
	keyPrev     = "p"
	keyPgDown   = "pgdown"
	keyPgUp     = "pgup"
	keyFirst    = "home"
	keyLast     = "end"
	keyFirstAlt = "g"
	keyLastAlt  = "G"
)

// Layout defaults used until the first WindowSizeMsg arrives.
const (
	defaultWidth    = 120
	defaultHeight   = 30
	minHeight       = 5
	chromeHeight    = 6
	borderPadding   = 2
	maxColumnWidth  = 32
	minColumnWidth  = 4
	headerAllowance = 4
)

// LoadingState is the spinner shown while data is in flight.
type LoadingState struct {
	spinner spinner.Model
	message string
}

// NewLoadingState creates a loading state with the default message.
func NewLoadingState() *LoadingState {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = InfoStyle
	return &LoadingState{spinner: s, message: "Loading..."}
}

// Init starts the spinner animation.
func (l *LoadingState) Init() tea.Cmd {
	return l.spinner.Tick
}

// Update advances the spinner on tick messages.
func (l *LoadingState) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	l.spinner, cmd = l.spinner.Update(msg)
	return cmd
}

// RenderLoading returns the loading screen. A nil loading state renders
// the plain text "Loading...".
func RenderLoading(loading *LoadingState) string {
	if loading == nil {
		return "Loading..."
	}
	return "\n " + loading.spinner.View() + " " + loading.message + "\n\n"
}
