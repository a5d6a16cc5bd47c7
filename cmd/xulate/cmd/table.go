package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/xulate/pkg/pinmap"
)

var showAll bool

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Display the active pin translation table",
	Long: `Display the pin translation table: the built-in XuLA/XuLA2 table, or the
table file given with --table.

Examples:
  xulate table
  xulate table --all
  xulate table --table boards.yaml`,
	Args: cobra.NoArgs,
	RunE: runTable,
}

func init() {
	rootCmd.AddCommand(tableCmd)

	tableCmd.Flags().BoolVarP(&showAll, "all", "a", false,
		"include signals that have no pin on one of the boards")
}

func runTable(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	boardA := table.BoardName(pinmap.BoardA)
	boardB := table.BoardName(pinmap.BoardB)

	pairs := table.Pairs()
	mapped := 0
	for _, p := range pairs {
		if p.A != pinmap.Unmapped && p.B != pinmap.Unmapped {
			mapped++
		}
	}

	fmt.Fprintf(out, "Translation table: %s <-> %s\n", boardA, boardB)
	fmt.Fprintf(out, "  %d signals, %d mapped on both boards\n\n", len(pairs), mapped)

	fmt.Fprintf(out, "  %-8s %-8s %s\n", boardA, boardB, "Signal")
	for _, p := range pairs {
		if !showAll && (p.A == pinmap.Unmapped || p.B == pinmap.Unmapped) {
			continue
		}
		fmt.Fprintf(out, "  %-8s %-8s %s\n", p.A, p.B, p.Signal)
	}
	if !showAll && mapped < len(pairs) {
		fmt.Fprintf(out, "  ... %d unmapped signals hidden (use --all to show)\n", len(pairs)-mapped)
	}
	return nil
}
