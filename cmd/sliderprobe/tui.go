package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/edward-ap/minislider/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive slider in the terminal (mouse and keyboard)",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := domainOptions(cmd)
		if err != nil {
			return err
		}
		f := cmd.Flags()
		opts.KeyStep, _ = f.GetFloat64("key-step")
		opts.Label, _ = f.GetString("label")
		if f.Changed("value") {
			v, _ := f.GetFloat64("value")
			opts.Value = &v
		}

		title := opts.Label
		if title == "" {
			title = "slider"
		}
		m, err := tui.New(title, opts)
		if err != nil {
			return err
		}
		p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("terminal ui: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s = %g\n", title, m.Controller().Value())
		return nil
	},
}

func init() {
	domainFlags(tuiCmd)
	f := tuiCmd.Flags()
	f.Float64("key-step", 0, "Arrow key increment (defaults to step)")
	f.Float64("value", 0, "Start controlled at this value")
	f.String("label", "", "Title shown above the track")
	rootCmd.AddCommand(tuiCmd)
}
