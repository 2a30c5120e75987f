package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/keypadchain/cost"
	"github.com/katalvlaran/keypadchain/doorcode"
	"github.com/katalvlaran/keypadchain/robot"
	"github.com/katalvlaran/keypadchain/transition"
)

func newSequenceCmd(a *app) *cobra.Command {
	var (
		depth int
		limit int64
	)
	cmd := &cobra.Command{
		Use:   "sequence CODE",
		Short: "Print one optimal press sequence for a door code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkDepth(depth); err != nil {
				return err
			}
			code, err := doorcode.Parse(args[0])
			if err != nil {
				return err
			}
			e, err := cost.New(transition.MustBuild(),
				cost.WithMaxDepth(depth),
				cost.WithLogger(a.logger),
			)
			if err != nil {
				return err
			}
			seq, err := e.Expand(string(code), 0, limit)
			if err != nil {
				return err
			}

			// Replay it to be sure the chain really types the code.
			chain, err := robot.NewChain(depth)
			if err != nil {
				return err
			}
			typed, err := chain.Run(seq)
			if err != nil {
				return fmt.Errorf("replay: %w", err)
			}
			if typed != string(code) {
				return fmt.Errorf("replay typed %q, want %q", typed, code)
			}

			fmt.Fprintln(a.stdout, seq)
			fmt.Fprintf(a.stdout, "presses: %d\n", len(seq))
			return nil
		},
	}
	cmd.Flags().IntVarP(&depth, "depth", "d", cost.DefaultMaxDepth, "robot-operated directional keypads in the chain")
	cmd.Flags().Int64Var(&limit, "limit", cost.DefaultExpandLimit, "refuse sequences longer than this")
	return cmd
}
