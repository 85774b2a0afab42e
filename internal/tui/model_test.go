package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edward-ap/minislider/internal/slider"
)

type nopLogger struct{}

func (nopLogger) Printf(string, ...any) {}

func newSized(t *testing.T, opts slider.Options, w, h int) *Model {
	t.Helper()
	opts.Logger = nopLogger{}
	m, err := New("test", opts)
	require.NoError(t, err)
	m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return m
}

func mouse(x, y int, action tea.MouseAction, button tea.MouseButton) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: button}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "end":
		return tea.KeyMsg{Type: tea.KeyEnd}
	case "home":
		return tea.KeyMsg{Type: tea.KeyHome}
	case "pgup":
		return tea.KeyMsg{Type: tea.KeyPgUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTrackBoundsFollowWindow(t *testing.T) {
	m, err := New("test", slider.Options{Logger: nopLogger{}})
	require.NoError(t, err)

	_, ok := termTrack{m}.Bounds()
	assert.False(t, ok, "no window size yet")

	m.Update(tea.WindowSizeMsg{Width: 44, Height: 10})
	r, ok := termTrack{m}.Bounds()
	require.True(t, ok)
	assert.Equal(t, slider.Rect{Left: 2, Width: 39, Bottom: 41, Height: 39}, r)
}

func TestPressResolvesCells(t *testing.T) {
	m := newSized(t, slider.Options{}, 44, 10)

	m.Update(mouse(2, trackRow, tea.MouseActionPress, tea.MouseButtonLeft))
	assert.Equal(t, 0.0, m.Controller().Value())
	m.Update(mouse(2, trackRow, tea.MouseActionRelease, tea.MouseButtonNone))

	m.Update(mouse(41, trackRow, tea.MouseActionPress, tea.MouseButtonLeft))
	assert.Equal(t, 100.0, m.Controller().Value())
	m.Update(mouse(41, trackRow, tea.MouseActionRelease, tea.MouseButtonNone))

	m.Update(mouse(21, trackRow+1, tea.MouseActionPress, tea.MouseButtonLeft))
	assert.Equal(t, 49.0, m.Controller().Value(), "19/39 of the track snaps to 49")
}

func TestDragAndRelease(t *testing.T) {
	m := newSized(t, slider.Options{}, 44, 10)

	m.Update(mouse(30, trackRow, tea.MouseActionMotion, tea.MouseButtonLeft))
	assert.Equal(t, 0.0, m.Controller().Value(), "motion without press is ignored")

	m.Update(mouse(2, trackRow, tea.MouseActionPress, tea.MouseButtonLeft))
	m.Update(mouse(41, trackRow+4, tea.MouseActionMotion, tea.MouseButtonLeft))
	assert.Equal(t, 100.0, m.Controller().Value(), "drag keeps tracking off the row")
	assert.True(t, m.Controller().Dragging())

	m.Update(mouse(41, trackRow, tea.MouseActionRelease, tea.MouseButtonNone))
	assert.False(t, m.Controller().Dragging())
	assert.True(t, m.Controller().Focused(), "press focuses the handle")
}

func TestPressOutsideTrackIgnored(t *testing.T) {
	m := newSized(t, slider.Options{}, 44, 10)
	m.Update(mouse(20, trackRow+3, tea.MouseActionPress, tea.MouseButtonLeft))
	assert.Equal(t, 0.0, m.Controller().Value())
	assert.False(t, m.Controller().Dragging())
}

func TestKeysNeedFocus(t *testing.T) {
	m := newSized(t, slider.Options{}, 44, 10)

	m.Update(key("right"))
	assert.Equal(t, 0.0, m.Controller().Value())

	m.Update(key("tab"))
	require.True(t, m.Controller().Focused())
	m.Update(key("right"))
	assert.Equal(t, 1.0, m.Controller().Value())
	m.Update(key("end"))
	assert.Equal(t, 100.0, m.Controller().Value())
	m.Update(key("h"))
	assert.Equal(t, 99.0, m.Controller().Value())
	m.Update(key("home"))
	assert.Equal(t, 0.0, m.Controller().Value())
	m.Update(key("pgup"))
	assert.Equal(t, 10.0, m.Controller().Value(), "page keys move a tenth of the range")

	m.Update(key("tab"))
	assert.False(t, m.Controller().Focused())
}

func TestDisableToggle(t *testing.T) {
	m := newSized(t, slider.Options{}, 44, 10)
	m.Update(key("d"))
	require.True(t, m.Controller().Disabled())

	m.Update(mouse(41, trackRow, tea.MouseActionPress, tea.MouseButtonLeft))
	m.Update(mouse(41, trackRow, tea.MouseActionPress, tea.MouseButtonWheelUp))
	assert.Equal(t, 0.0, m.Controller().Value())
	assert.Contains(t, m.View(), "disabled")

	m.Update(key("d"))
	m.Update(mouse(41, trackRow, tea.MouseActionPress, tea.MouseButtonWheelUp))
	assert.Equal(t, 1.0, m.Controller().Value())
}

func TestQuit(t *testing.T) {
	m := newSized(t, slider.Options{}, 44, 10)
	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestControlledOwnerEchoes(t *testing.T) {
	v := 10.0
	var seen []float64
	m := newSized(t, slider.Options{
		Value:    &v,
		OnChange: func(v float64, _ slider.ChangeContext) { seen = append(seen, v) },
	}, 44, 10)
	assert.Equal(t, slider.Controlled, m.Controller().Mode())

	m.Update(mouse(41, trackRow, tea.MouseActionPress, tea.MouseButtonLeft))
	assert.Equal(t, 100.0, m.Controller().Value())
	assert.Equal(t, []float64{100}, seen)
}

func TestVerticalCells(t *testing.T) {
	m := newSized(t, slider.Options{Orientation: slider.Vertical}, 20, 30)
	bottom := trackRow + m.cells - 1

	m.Update(mouse(marginX, bottom, tea.MouseActionPress, tea.MouseButtonLeft))
	assert.Equal(t, 0.0, m.Controller().Value())
	m.Update(mouse(marginX, trackRow, tea.MouseActionMotion, tea.MouseButtonLeft))
	assert.Equal(t, 100.0, m.Controller().Value())
	m.Update(mouse(marginX, trackRow, tea.MouseActionRelease, tea.MouseButtonNone))
}

func TestViewRendersState(t *testing.T) {
	m, err := New("Volume", slider.Options{Logger: nopLogger{}, DefaultValue: 40})
	require.NoError(t, err)
	assert.Contains(t, m.View(), "resize")

	m.Update(tea.WindowSizeMsg{Width: 44, Height: 10})
	out := m.View()
	assert.Contains(t, out, "Volume")
	assert.Contains(t, out, "slider 40")
	assert.Contains(t, out, glyphHandle)
	assert.Contains(t, out, "calc(40% - 1px / 2)")
}

func TestHandleCell(t *testing.T) {
	p := slider.Derive(50, slider.Domain{Min: 0, Max: 100, Step: 1}, slider.Horizontal, slider.AlignCenter, 1, "50")
	assert.Equal(t, 5, handleCell(p, 11))
	p = slider.Derive(100, slider.Domain{Min: 0, Max: 100, Step: 1}, slider.Horizontal, slider.AlignCenter, 1, "100")
	assert.Equal(t, 10, handleCell(p, 11))
}
