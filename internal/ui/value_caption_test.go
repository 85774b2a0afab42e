package ui

import (
	"fmt"
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"github.com/edward-ap/minislider/internal/slider"
)

func TestValueCaptionFollowsSlider(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	s, err := NewSlider(slider.Options{
		Max:       100,
		ValueText: func(v float64) string { return fmt.Sprintf("%.0f%%", v) },
	})
	if err != nil {
		t.Fatal(err)
	}
	vc := NewValueCaption(widget.NewLabel(""), s)
	defer vc.Close()

	if vc.Text() != "0%" {
		t.Fatalf("initial text %q", vc.Text())
	}

	var seen []string
	vc.OnText(func(s string) { seen = append(seen, s) })
	s.Controller().ProposeValue(40)
	if vc.Text() != "40%" {
		t.Fatalf("want 40%%, got %q", vc.Text())
	}
	if len(seen) != 2 || seen[0] != "0%" || seen[1] != "40%" {
		t.Fatalf("sink saw %v", seen)
	}

	vc.Close()
	s.Controller().ProposeValue(60)
	if vc.Text() != "40%" {
		t.Fatalf("closed caption still updating: %q", vc.Text())
	}
}
