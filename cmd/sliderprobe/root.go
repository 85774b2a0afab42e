package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/edward-ap/minislider/internal/slider"
)

var rootCmd = &cobra.Command{
	Use:           "sliderprobe",
	Short:         "Exercise the headless slider engine from the command line",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		trace, _ := cmd.Flags().GetBool("trace")
		slider.SetTraceLoggingEnabled(trace)
	},
}

// Execute runs the command tree and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("trace", false, "Log every ignored or absorbed slider event")
}

// domainFlags registers the flags shared by commands that build a slider.
func domainFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Float64("min", 0, "Lower bound")
	f.Float64("max", 100, "Upper bound")
	f.Float64("step", 1, "Value granularity")
	f.String("orientation", "horizontal", "horizontal or vertical")
}

func domainOptions(cmd *cobra.Command) (slider.Options, error) {
	f := cmd.Flags()
	lo, _ := f.GetFloat64("min")
	hi, _ := f.GetFloat64("max")
	step, _ := f.GetFloat64("step")
	orient, _ := f.GetString("orientation")
	o, err := slider.ParseOrientation(orient)
	if err != nil {
		return slider.Options{}, err
	}
	return slider.Options{Min: lo, Max: hi, Step: step, Orientation: o}, nil
}
