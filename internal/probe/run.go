package probe

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/edward-ap/minislider/internal/slider"
)

// ErrExpectation is wrapped by Run when an expect step fails.
var ErrExpectation = errors.New("expectation failed")

const barWidth = 24

var (
	fillStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	restStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
)

// Change is one OnChange notification seen during a run.
type Change struct {
	Value          float64
	HandlePosition string
}

// Report summarizes a run.
type Report struct {
	Changes     []Change
	Diagnostics []error
	Failures    []string
	Final       slider.Presentation
}

// scriptTrack and scriptHandle stand in for rendered elements; steps can
// move or resize them between events.
type scriptTrack struct{ r *slider.Rect }

func (t scriptTrack) Bounds() (slider.Rect, bool) {
	if t.r == nil {
		return slider.Rect{}, false
	}
	return *t.r, true
}

type scriptHandle struct{ sz *slider.Size }

func (h scriptHandle) Size() slider.Size { return *h.sz }
func (scriptHandle) Focus()             {}

// Run replays sc, writing one line per step to w. It returns the report and
// an error wrapping ErrExpectation if any expectation failed.
func Run(sc *Scenario, w io.Writer, logger slider.Logger) (*Report, error) {
	opts, err := sc.Slider.Options()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadScenario, err)
	}
	rep := &Report{}
	var ctrl *slider.Controller
	opts.Logger = logger
	opts.OnChange = func(v float64, cc slider.ChangeContext) {
		rep.Changes = append(rep.Changes, Change{Value: v, HandlePosition: cc.HandlePosition})
		if sc.Slider.Echo && ctrl.Mode() == slider.Controlled {
			_ = ctrl.SetValue(v)
		}
	}
	opts.OnDiagnostic = func(err error) { rep.Diagnostics = append(rep.Diagnostics, err) }

	ctrl, err = slider.New(opts)
	if err != nil {
		return nil, err
	}
	defer ctrl.Close()

	track := slider.Rect(sc.Track)
	handle := slider.Size(sc.Handle)
	ctrl.Track().Attach(scriptTrack{&track})
	ctrl.Handle().Attach(scriptHandle{&handle})
	ctrl.Measure()

	fmt.Fprintf(w, "%s  %s\n", titleOf(sc), line(ctrl.Presentation()))
	for i, st := range sc.Steps {
		label, fail := apply(ctrl, st, &track, &handle, rep)
		if fail != "" {
			msg := fmt.Sprintf("step %d: %s", i+1, fail)
			rep.Failures = append(rep.Failures, msg)
			fmt.Fprintf(w, "%3d %-22s %s\n", i+1, label, failStyle.Render("FAIL "+fail))
			continue
		}
		fmt.Fprintf(w, "%3d %-22s %s\n", i+1, label, line(ctrl.Presentation()))
	}
	rep.Final = ctrl.Presentation()

	if len(rep.Failures) > 0 {
		return rep, fmt.Errorf("%w: %s", ErrExpectation, strings.Join(rep.Failures, "; "))
	}
	return rep, nil
}

func titleOf(sc *Scenario) string {
	if sc.Name != "" {
		return sc.Name
	}
	return "scenario"
}

func apply(c *slider.Controller, st Step, track *slider.Rect, handle *slider.Size, rep *Report) (label, fail string) {
	ptr := func(p *PointSpec) *slider.PointerEvent {
		return &slider.PointerEvent{ID: 1, Position: slider.Point{X: p.X, Y: p.Y}}
	}
	switch st.kind() {
	case "pointer_down":
		c.PointerDown(ptr(st.PointerDown))
		return fmt.Sprintf("down (%g,%g)", st.PointerDown.X, st.PointerDown.Y), ""
	case "pointer_move":
		c.PointerMove(ptr(st.PointerMove))
		return fmt.Sprintf("move (%g,%g)", st.PointerMove.X, st.PointerMove.Y), ""
	case "pointer_up":
		c.PointerUp(ptr(st.PointerUp))
		return "up", ""
	case "key":
		ev := &slider.KeyEvent{Key: slider.Key(st.Key)}
		c.KeyDown(ev)
		if !ev.DefaultPrevented() {
			return "key " + st.Key + " (ignored)", ""
		}
		return "key " + st.Key, ""
	case "focus":
		if *st.Focus {
			c.Focus(&slider.FocusEvent{})
			return "focus", ""
		}
		c.Blur(&slider.FocusEvent{})
		return "blur", ""
	case "set_value":
		label := fmt.Sprintf("set %g", *st.SetValue)
		if err := c.SetValue(*st.SetValue); err != nil {
			label += " (warning)"
		}
		return label, ""
	case "disable":
		c.SetDisabled(*st.Disable)
		return fmt.Sprintf("disabled=%v", *st.Disable), ""
	case "measure":
		*handle = slider.Size(*st.Measure)
		c.Measure()
		return fmt.Sprintf("handle %gx%g", handle.Width, handle.Height), ""
	case "track":
		*track = slider.Rect(*st.Track)
		if _, ok := c.Track().Get(); !ok {
			c.Track().Attach(scriptTrack{track})
		}
		return fmt.Sprintf("track %gx%g", track.Width, track.Height), ""
	case "unmount":
		c.Track().Detach()
		return "unmount track", ""
	case "expect":
		return "expect", check(c, st.Expect, rep)
	}
	return "?", "unknown step"
}

func check(c *slider.Controller, e *Expect, rep *Report) string {
	p := c.Presentation()
	var bad []string
	if e.Value != nil && p.Value != *e.Value {
		bad = append(bad, fmt.Sprintf("value want %v, got %v", *e.Value, p.Value))
	}
	if e.Dragging != nil && p.Dragging != *e.Dragging {
		bad = append(bad, fmt.Sprintf("dragging want %v, got %v", *e.Dragging, p.Dragging))
	}
	if e.Focused != nil && p.Focused != *e.Focused {
		bad = append(bad, fmt.Sprintf("focused want %v, got %v", *e.Focused, p.Focused))
	}
	if e.HandlePosition != "" && p.Handle.Expr() != e.HandlePosition {
		bad = append(bad, fmt.Sprintf("handle want %q, got %q", e.HandlePosition, p.Handle.Expr()))
	}
	if e.ValueText != "" && p.ValueText != e.ValueText {
		bad = append(bad, fmt.Sprintf("value text want %q, got %q", e.ValueText, p.ValueText))
	}
	if e.Changes != nil && len(rep.Changes) != *e.Changes {
		bad = append(bad, fmt.Sprintf("changes want %d, got %d", *e.Changes, len(rep.Changes)))
	}
	return strings.Join(bad, ", ")
}

// line renders a value bar followed by the value and handle expression.
func line(p slider.Presentation) string {
	filled := int(p.Percent / 100 * barWidth)
	bar := fillStyle.Render(strings.Repeat("█", filled)) + restStyle.Render(strings.Repeat("░", barWidth-filled))
	var flags string
	if p.Dragging {
		flags += " drag"
	}
	if p.Focused {
		flags += " focus"
	}
	if p.Disabled {
		flags += " off"
	}
	return fmt.Sprintf("%s %s %s%s", bar, p.ValueText, p.Handle.Expr(), flags)
}
