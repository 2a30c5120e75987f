package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/keypadchain/keypad"
	"github.com/katalvlaran/keypadchain/transition"
)

func newTableCmd(a *app) *cobra.Command {
	var kindName string
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Dump the precomputed move table for one keypad",
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := keypad.ParseKind(kindName)
			if err != nil {
				return err
			}
			table, err := transition.Build()
			if err != nil {
				return err
			}
			l, err := table.Layout(kind)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "%s keypad:\n%s\n\n", kind, l)
			for _, k := range table.Keys() {
				if k.Kind != kind {
					continue
				}
				seqs, err := table.Lookup(k.Kind, k.From, k.To)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.stdout, "%c -> %c: %s\n", k.From, k.To, strings.Join(seqs, " "))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&kindName, "kind", "k", keypad.Numeric.String(), "numeric or directional")
	return cmd
}
