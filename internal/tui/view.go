package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/edward-ap/minislider/internal/slider"
)

// Styles groups the lipgloss styles the view draws with.
type Styles struct {
	Title    lipgloss.Style
	Track    lipgloss.Style
	Fill     lipgloss.Style
	Handle   lipgloss.Style
	Focused  lipgloss.Style
	Disabled lipgloss.Style
	Status   lipgloss.Style
	Help     lipgloss.Style
}

// DefaultStyles is a muted palette that works on dark and light terminals.
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true),
		Track:    lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "250", Dark: "238"}),
		Fill:     lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Handle:   lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "0", Dark: "255"}),
		Focused:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Disabled: lipgloss.NewStyle().Faint(true),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	}
}

const (
	glyphTrack      = "─"
	glyphFill       = "━"
	glyphTrackV     = "│"
	glyphFillV      = "┃"
	glyphHandle     = "●"
	glyphHandleIdle = "○"
)

func (m *Model) View() string {
	if m.cells == 0 {
		return "resize the terminal to show the slider\n"
	}
	p := m.ctrl.Presentation()
	rows := []string{m.styles.Title.Render(m.title), ""}
	if p.Orientation == slider.Vertical {
		rows = append(rows, m.verticalTrack(p)...)
	} else {
		rows = append(rows, strings.Repeat(" ", marginX)+m.horizontalTrack(p))
	}
	rows = append(rows, "", m.status(p), m.styles.Help.Render(helpText))
	return lipgloss.JoinVertical(lipgloss.Left, rows...) + "\n"
}

const helpText = "tab focus · ←/→ ↑/↓ pgup/pgdn home/end move · d disable · q quit"

// handleCell is the index of the handle's cell counted from the start edge.
func handleCell(p slider.Presentation, cells int) int {
	return int(math.Round(p.Highlight.Size(float64(cells - 1))))
}

func (m *Model) handleGlyph(p slider.Presentation) string {
	switch {
	case p.Disabled:
		return m.styles.Disabled.Render(glyphHandleIdle)
	case p.Focused || p.Dragging:
		return m.styles.Focused.Render(glyphHandle)
	}
	return m.styles.Handle.Render(glyphHandle)
}

func (m *Model) horizontalTrack(p slider.Presentation) string {
	at := handleCell(p, m.cells)
	fill, track := m.styles.Fill, m.styles.Track
	if p.Disabled {
		fill, track = m.styles.Disabled, m.styles.Disabled
	}
	var b strings.Builder
	b.WriteString(fill.Render(strings.Repeat(glyphFill, at)))
	b.WriteString(m.handleGlyph(p))
	b.WriteString(track.Render(strings.Repeat(glyphTrack, m.cells-at-1)))
	return b.String()
}

func (m *Model) verticalTrack(p slider.Presentation) []string {
	at := handleCell(p, m.cells)
	fill, track := m.styles.Fill, m.styles.Track
	if p.Disabled {
		fill, track = m.styles.Disabled, m.styles.Disabled
	}
	pad := strings.Repeat(" ", marginX)
	rows := make([]string, m.cells)
	for i := range rows {
		fromBottom := m.cells - 1 - i
		switch {
		case fromBottom == at:
			rows[i] = pad + m.handleGlyph(p)
		case fromBottom < at:
			rows[i] = pad + fill.Render(glyphFillV)
		default:
			rows[i] = pad + track.Render(glyphTrackV)
		}
	}
	return rows
}

func (m *Model) status(p slider.Presentation) string {
	a := m.ctrl.Accessibility()
	flags := make([]string, 0, 3)
	if p.Focused {
		flags = append(flags, "focused")
	}
	if p.Dragging {
		flags = append(flags, "dragging")
	}
	if p.Disabled {
		flags = append(flags, "disabled")
	}
	line := fmt.Sprintf("%s %s  [%s..%s]  %s", a.Role, a.ValueText,
		formatNum(a.ValueMin), formatNum(a.ValueMax), p.Handle.Expr())
	if len(flags) > 0 {
		line += "  " + strings.Join(flags, ",")
	}
	return m.styles.Status.Render(line)
}

func formatNum(v float64) string { return fmt.Sprintf("%g", v) }
