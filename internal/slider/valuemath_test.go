package slider

import (
	"math"
	"testing"
)

func TestRoundValueToStep(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		step  float64
		want  float64
	}{
		{name: "integer step", value: 52.4, step: 1, want: 52},
		{name: "tie rounds up", value: 2.5, step: 1, want: 3},
		{name: "negative tie rounds toward +inf", value: -2.5, step: 1, want: -2},
		{name: "tenths keep precision", value: 1.19, step: 0.1, want: 1.2},
		{name: "coarse step", value: 53, step: 5, want: 55},
		{name: "quarter step", value: 0.3, step: 0.25, want: 0.25},
		{name: "zero step leaves value", value: 3.3, step: 0, want: 3.3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RoundValueToStep(tt.value, tt.step)
			if got != tt.want {
				t.Fatalf("want %v, got %v", tt.want, got)
			}
		})
	}
}

func TestStepPrecision(t *testing.T) {
	tests := []struct {
		step float64
		want int
	}{
		{1, 0}, {10, 0}, {0.1, 1}, {0.25, 2}, {0.001, 3}, {1e-7, 7},
	}
	for _, tt := range tests {
		if got := StepPrecision(tt.step); got != tt.want {
			t.Fatalf("StepPrecision(%v): want %d, got %d", tt.step, tt.want, got)
		}
	}
}

func TestSnapRelativeToMin(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		origin float64
		step   float64
		want   float64
	}{
		{name: "round negative towards grid", value: -6.2, origin: -10, step: 2.5, want: -5},
		{name: "round positive towards grid", value: 6.1, origin: -10, step: 2.5, want: 5},
		{name: "odd origin", value: 4.4, origin: 1, step: 2, want: 5},
		{name: "fractional origin", value: 0.74, origin: 0.05, step: 0.1, want: 0.75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Snap(tt.value, tt.origin, tt.step)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Fatalf("want %v, got %v", tt.want, got)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-5, 0, 10); got != 0 {
		t.Fatalf("want 0, got %v", got)
	}
	if got := Clamp(25, 0, 10); got != 10 {
		t.Fatalf("want 10, got %v", got)
	}
	if got := Clamp(7, 0, 10); got != 7 {
		t.Fatalf("want 7, got %v", got)
	}
}

func TestPercentRoundTrip(t *testing.T) {
	domains := []Domain{
		{Min: 0, Max: 100},
		{Min: -50, Max: 50},
		{Min: 0.5, Max: 2.75},
		{Min: 1000, Max: 1000000},
	}
	for _, d := range domains {
		for i := 0; i <= 20; i++ {
			v := d.Min + d.Span()*float64(i)/20
			got := PercentToValue(ValueToPercent(v, d.Min, d.Max), d.Min, d.Max)
			if math.Abs(got-v) > 1e-9*math.Max(1, math.Abs(v)) {
				t.Fatalf("domain %+v: round trip of %v gave %v", d, v, got)
			}
		}
	}
}

func TestValueToPercentDegenerate(t *testing.T) {
	if p := ValueToPercent(5, 5, 5); !math.IsNaN(p) {
		t.Fatalf("want NaN for a zero-width domain, got %v", p)
	}
	if p := safePercent(ValueToPercent(5, 5, 5)); p != 0 {
		t.Fatalf("guarded percent: want 0, got %v", p)
	}
	if p := safePercent(math.Inf(1)); p != 100 {
		t.Fatalf("guarded +Inf: want 100, got %v", p)
	}
}

func TestDomainNormalizeKeepsBounds(t *testing.T) {
	d := Domain{Min: 0, Max: 10, Step: 3}
	if got := d.Normalize(10); got != 10 {
		t.Fatalf("max must stay exact, got %v", got)
	}
	if got := d.Normalize(9.9); got != 9 {
		t.Fatalf("want 9, got %v", got)
	}
	if got := d.Normalize(-1); got != 0 {
		t.Fatalf("want 0, got %v", got)
	}
}
