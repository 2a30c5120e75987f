package main

import (
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/keypadchain/cost"
	"github.com/katalvlaran/keypadchain/doorcode"
	"github.com/katalvlaran/keypadchain/transition"
)

func newSolveCmd(a *app) *cobra.Command {
	var (
		input string
		depth int
	)
	cmd := &cobra.Command{
		Use:   "solve [code...]",
		Short: "Score door codes for one chain length",
		Example: `  keypadchain solve 029A 980A 179A 456A 379A
  keypadchain solve --input codes.txt --depth 25`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkDepth(depth); err != nil {
				return err
			}
			codes, err := a.loadCodes(args, input)
			if err != nil {
				return err
			}
			table, err := transition.Build()
			if err != nil {
				return err
			}
			rep, err := doorcode.Solve(cmd.Context(), table, codes, depth, a.solveOptions()...)
			if err != nil {
				return err
			}
			return printReport(a.stdout, rep)
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "file with one door code per line")
	cmd.Flags().IntVarP(&depth, "depth", "d", cost.DefaultMaxDepth, "robot-operated directional keypads in the chain")
	return cmd
}

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run [code...]",
		Short: "Score door codes for every configured variant concurrently",
		RunE: func(cmd *cobra.Command, args []string) error {
			codes, err := a.loadCodes(args, "")
			if err != nil {
				return err
			}
			table, err := transition.Build()
			if err != nil {
				return err
			}
			variants := make([]doorcode.Variant, len(a.cfg.Variants))
			for i, v := range a.cfg.Variants {
				variants[i] = doorcode.Variant{Name: v.Name, MaxDepth: v.MaxDepth}
			}
			reps, err := doorcode.RunVariants(cmd.Context(), table, codes, variants, a.solveOptions()...)
			if err != nil {
				return err
			}
			for _, rep := range reps {
				a.logger.Info("variant done",
					slog.String("variant", rep.Variant),
					slog.Int("max_depth", rep.MaxDepth),
					slog.Int64("memo_misses", rep.Stats.Misses),
					slog.Int64("memo_hits", rep.Stats.Hits),
				)
				fmt.Fprintf(a.stdout, "%s (depth %d): %d\n", rep.Variant, rep.MaxDepth, rep.Total)
			}
			return nil
		},
	}
}

// printReport writes one aligned row per code followed by the total.
func printReport(w io.Writer, rep *doorcode.Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "code\tpresses\tvalue\tscore\t")
	for _, r := range rep.Results {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t\n", r.Code, r.Presses, r.Code.Value(), r.Score)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "total: %d\n", rep.Total)
	return err
}
