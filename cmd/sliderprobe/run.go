package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/edward-ap/minislider/internal/probe"
)

var runCmd = &cobra.Command{
	Use:   "run <scenario.yaml>...",
	Short: "Replay scenario files against the engine",
	Long:  `Each scenario mounts a scripted track and handle, replays its steps and checks its expectations.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		failed := 0
		for _, path := range args {
			sc, err := probe.Load(path)
			if err != nil {
				return err
			}
			rep, err := probe.Run(sc, out, log.Default())
			if err != nil {
				failed++
				fmt.Fprintf(out, "%s: %v\n\n", path, err)
				continue
			}
			fmt.Fprintf(out, "%s: ok, %d change(s), final %s\n\n", path, len(rep.Changes), rep.Final.ValueText)
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d scenario(s) failed", failed, len(args))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
