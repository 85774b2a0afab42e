package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edward-ap/minislider/internal/slider"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Map one pointer position on a track to a slider value",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := domainOptions(cmd)
		if err != nil {
			return err
		}
		f := cmd.Flags()
		var r slider.Rect
		var p slider.Point
		r.Left, _ = f.GetFloat64("left")
		r.Width, _ = f.GetFloat64("width")
		r.Bottom, _ = f.GetFloat64("bottom")
		r.Height, _ = f.GetFloat64("height")
		p.X, _ = f.GetFloat64("x")
		p.Y, _ = f.GetFloat64("y")

		d := slider.Domain{Min: opts.Min, Max: opts.Max, Step: opts.Step}
		if d.Step <= 0 {
			d.Step = 1
		}
		if d.Min > d.Max {
			return fmt.Errorf("%w: min %v is greater than max %v", slider.ErrInvalidDomain, d.Min, d.Max)
		}
		pct, ok := slider.PointerPercent(p, r, opts.Orientation)
		if !ok {
			return fmt.Errorf("track has no usable length")
		}
		v, ok := slider.ResolvePointer(p, r, true, opts.Orientation, d)
		if !ok {
			return fmt.Errorf("domain has no width")
		}
		raw := slider.PercentToValue(pct, d.Min, d.Max)
		fmt.Fprintf(cmd.OutOrStdout(), "raw=%g value=%g percent=%g\n", raw, v, slider.ValueToPercent(v, d.Min, d.Max))
		return nil
	},
}

func init() {
	domainFlags(resolveCmd)
	f := resolveCmd.Flags()
	f.Float64("left", 0, "Track left edge (horizontal)")
	f.Float64("width", 0, "Track width (horizontal)")
	f.Float64("bottom", 0, "Track bottom edge (vertical)")
	f.Float64("height", 0, "Track height (vertical)")
	f.Float64("x", 0, "Pointer x")
	f.Float64("y", 0, "Pointer y")
	rootCmd.AddCommand(resolveCmd)
}
