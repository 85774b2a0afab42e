package slider

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOffsetExpr(t *testing.T) {
	tests := []struct {
		name string
		off  Offset
		want string
	}{
		{name: "center", off: Offset{Percent: 42, Size: 16}, want: "calc(42% - 16px / 2)"},
		{name: "contain", off: Offset{Percent: 25, Size: 20, Alignment: AlignContain}, want: "calc(25% - 20px * 0.25)"},
		{name: "contain at zero", off: Offset{Percent: 0, Size: 20, Alignment: AlignContain}, want: "calc(0% - 20px * 0)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.off.Expr(); got != tt.want {
				t.Fatalf("want %q, got %q", tt.want, got)
			}
		})
	}
}

func TestOffsetResolve(t *testing.T) {
	center := Offset{Percent: 50, Size: 10}
	assert.Equal(t, 95.0, center.Resolve(200))

	contain := Offset{Percent: 100, Size: 10, Alignment: AlignContain}
	assert.Equal(t, 190.0, contain.Resolve(200), "contain keeps the handle inside at the max end")
	contain.Percent = 0
	assert.Equal(t, 0.0, contain.Resolve(200))
}

func TestDeriveHorizontalAndVertical(t *testing.T) {
	d := Domain{Min: 0, Max: 200, Step: 1}
	h := Derive(50, d, Horizontal, AlignCenter, 12, "50")
	assert.Equal(t, 25.0, h.Percent)
	assert.Equal(t, Highlight{Edge: EdgeLeft, Extent: 25, Cross: 100}, h.Highlight)
	assert.Equal(t, 50.0, h.Highlight.Size(200))

	v := Derive(50, d, Vertical, AlignContain, 12, "50")
	assert.Equal(t, EdgeBottom, v.Highlight.Edge)
	assert.Equal(t, AlignContain, v.Handle.Alignment)
}

func TestDeriveDegenerateDomain(t *testing.T) {
	p := Derive(5, Domain{Min: 5, Max: 5, Step: 1}, Horizontal, AlignCenter, 0, "5")
	assert.Equal(t, 0.0, p.Percent)
	assert.Equal(t, "calc(0% - 0px / 2)", p.Handle.Expr())
}

func TestValueTextSources(t *testing.T) {
	c, err := New(Options{Max: 100, DefaultValue: 12.5, Step: 0.5, Logger: &nopLogger{}})
	require.NoError(t, err)
	assert.Equal(t, "12.5", c.Presentation().ValueText)

	c, err = New(Options{Max: 100, AriaValueText: "about half", Logger: &nopLogger{}})
	require.NoError(t, err)
	assert.Equal(t, "about half", c.Presentation().ValueText)

	c, err = New(Options{Max: 100, DefaultValue: 7, ValueText: func(v float64) string { return fmt.Sprintf("%.0f dB", v) }, Logger: &nopLogger{}})
	require.NoError(t, err)
	assert.Equal(t, "7 dB", c.Presentation().ValueText)
}

func TestAccessibility(t *testing.T) {
	c, err := New(Options{Min: 1, Max: 9, DefaultValue: 4, Orientation: Vertical, LabelledBy: "vol-label", Logger: &nopLogger{}})
	require.NoError(t, err)
	a := c.Accessibility()
	assert.Equal(t, "slider", a.Role)
	assert.Equal(t, 4.0, a.ValueNow)
	assert.Equal(t, 1.0, a.ValueMin)
	assert.Equal(t, 9.0, a.ValueMax)
	assert.Equal(t, "4", a.ValueText)
	assert.Equal(t, Vertical, a.Orientation)
	assert.Equal(t, "vol-label", a.LabelledBy)
	assert.True(t, a.Focusable)

	c.SetDisabled(true)
	a = c.Accessibility()
	assert.True(t, a.Disabled)
	assert.False(t, a.Focusable)
}

func TestDataAttributes(t *testing.T) {
	c, err := New(Options{Max: 100, Orientation: Vertical, Disabled: true, Logger: &nopLogger{}})
	require.NoError(t, err)
	attrs := c.DataAttributes(ComponentMarker, true)
	assert.Equal(t, map[string]string{
		"data-minislider-slider-marker":             "",
		"data-minislider-slider-marker-orientation": "vertical",
		"data-minislider-slider-marker-disabled":    "",
		"data-minislider-slider-marker-highlight":   "vertical",
	}, attrs)

	c.SetDisabled(false)
	attrs = c.DataAttributes(ComponentTrack, false)
	assert.Len(t, attrs, 2)
}

func TestMarker(t *testing.T) {
	c, err := New(Options{Max: 200, DefaultValue: 100, Logger: &nopLogger{}})
	require.NoError(t, err)

	m, ok := c.Marker(50)
	require.True(t, ok)
	assert.Equal(t, 25.0, m.Percent)
	assert.True(t, m.Highlight)
	assert.Equal(t, EdgeLeft, m.Edge)

	m, ok = c.Marker(150)
	require.True(t, ok)
	assert.False(t, m.Highlight)

	_, ok = c.Marker(250)
	assert.False(t, ok)
}

func TestFormValue(t *testing.T) {
	c, err := New(Options{Max: 1, Step: 0.05, DefaultValue: 0.35, ID: "gain", Logger: &nopLogger{}})
	require.NoError(t, err)
	_, _, ok := c.FormValue()
	assert.False(t, ok)

	c, err = New(Options{Max: 1, Step: 0.05, DefaultValue: 0.35, ID: "gain", Name: "gain", Logger: &nopLogger{}})
	require.NoError(t, err)
	name, value, ok := c.FormValue()
	require.True(t, ok)
	assert.Equal(t, "gain", name)
	assert.Equal(t, "0.35", value)
	assert.Equal(t, "input:gain", c.FormInputID())
}

func TestGeneratedIDsAreUnique(t *testing.T) {
	a, err := New(Options{Logger: &nopLogger{}})
	require.NoError(t, err)
	b, err := New(Options{Logger: &nopLogger{}})
	require.NoError(t, err)
	assert.NotEqual(t, a.ID(), b.ID())
}
