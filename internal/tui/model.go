// Package tui mounts a slider controller in a terminal with bubbletea. One
// terminal cell is one unit of track length.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/edward-ap/minislider/internal/slider"
)

const (
	marginX  = 2
	trackRow = 2
	minCells = 2
)

// Model is a tea.Model driving one slider.
type Model struct {
	ctrl *slider.Controller

	width, height int
	cells         int // track length in cells, 0 until the first WindowSizeMsg
	pressed       bool
	title         string
	styles        Styles
}

// New builds the controller from opts and mounts the terminal track and
// handle. When opts.Value is set the model owns the value and echoes every
// accepted change back into the controller.
func New(title string, opts slider.Options) (*Model, error) {
	m := &Model{title: title, styles: DefaultStyles()}
	if opts.Value != nil {
		user := opts.OnChange
		opts.OnChange = func(v float64, cc slider.ChangeContext) {
			if user != nil {
				user(v, cc)
			}
			_ = m.ctrl.SetValue(v)
		}
	}
	ctrl, err := slider.New(opts)
	if err != nil {
		return nil, err
	}
	m.ctrl = ctrl
	ctrl.Track().Attach(termTrack{m})
	ctrl.Handle().Attach(termHandle{})
	return m, nil
}

// Controller exposes the engine, mostly for tests and status output.
func (m *Model) Controller() *slider.Controller { return m.ctrl }

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	return m, nil
}

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	if m.ctrl.Orientation() == slider.Vertical {
		m.cells = h - trackRow - 3
	} else {
		m.cells = w - 2*marginX
	}
	if m.cells < minCells {
		m.cells = 0
	}
	m.ctrl.Measure()
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.ctrl.Close()
		return tea.Quit
	case "tab":
		if m.ctrl.Focused() {
			m.ctrl.Blur(&slider.FocusEvent{})
		} else {
			m.ctrl.Focus(&slider.FocusEvent{})
		}
		return nil
	case "d":
		m.ctrl.SetDisabled(!m.ctrl.Disabled())
		return nil
	}
	if !m.ctrl.Focused() {
		return nil
	}
	if k, ok := keyFor(msg.String()); ok {
		m.ctrl.KeyDown(&slider.KeyEvent{Key: k})
	}
	return nil
}

func keyFor(s string) (slider.Key, bool) {
	switch s {
	case "left", "h":
		return slider.KeyArrowLeft, true
	case "right", "l":
		return slider.KeyArrowRight, true
	case "up", "k":
		return slider.KeyArrowUp, true
	case "down", "j":
		return slider.KeyArrowDown, true
	case "pgup":
		return slider.KeyPageUp, true
	case "pgdown":
		return slider.KeyPageDown, true
	case "home":
		return slider.KeyHome, true
	case "end":
		return slider.KeyEnd, true
	}
	return "", false
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	ev := &slider.PointerEvent{
		ID:       slider.PointerID(1),
		Position: slider.Point{X: float64(msg.X), Y: float64(msg.Y)},
	}
	switch {
	case msg.Button == tea.MouseButtonWheelUp && msg.Action == tea.MouseActionPress:
		if !m.ctrl.Disabled() {
			m.ctrl.KeyDown(&slider.KeyEvent{Key: slider.KeyArrowUp})
		}
	case msg.Button == tea.MouseButtonWheelDown && msg.Action == tea.MouseActionPress:
		if !m.ctrl.Disabled() {
			m.ctrl.KeyDown(&slider.KeyEvent{Key: slider.KeyArrowDown})
		}
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if !m.hit(msg.X, msg.Y) {
			return
		}
		m.pressed = true
		m.ctrl.PointerDown(ev)
	case msg.Action == tea.MouseActionMotion && m.pressed:
		m.ctrl.PointerMove(ev)
	case msg.Action == tea.MouseActionRelease && m.pressed:
		m.pressed = false
		m.ctrl.PointerUp(ev)
	}
}

// hit reports whether a cell lies on the track or one cell beside it.
func (m *Model) hit(x, y int) bool {
	if m.cells == 0 {
		return false
	}
	if m.ctrl.Orientation() == slider.Vertical {
		return y >= trackRow && y < trackRow+m.cells && x >= marginX-1 && x <= marginX+1
	}
	return x >= marginX && x < marginX+m.cells && y >= trackRow-1 && y <= trackRow+1
}

// termTrack maps cells onto the track rectangle. The first and last cells
// sit exactly on min and max.
type termTrack struct{ m *Model }

func (t termTrack) Bounds() (slider.Rect, bool) {
	n := t.m.cells
	if n == 0 {
		return slider.Rect{}, false
	}
	length := float64(n - 1)
	return slider.Rect{
		Left:   marginX,
		Width:  length,
		Bottom: float64(trackRow + n - 1),
		Height: length,
	}, true
}

// termHandle is a single cell. Focus is tracked by the controller itself.
type termHandle struct{}

func (termHandle) Size() slider.Size { return slider.Size{Width: 1, Height: 1} }
func (termHandle) Focus()            {}
