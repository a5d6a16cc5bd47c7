package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/xulate/internal/docio"
	"github.com/OpenTraceLab/xulate/pkg/pinmap"
	"github.com/OpenTraceLab/xulate/pkg/ucf"
)

var detectCmd = &cobra.Command{
	Use:   "detect [ucf-file]",
	Short: "Show which board a UCF file targets",
	Long: `List every LOC assignment of a UCF file with the board its pin belongs to,
and the direction that "translate --direction auto" would choose.
Reads stdin when no file is given.

Examples:
  xulate detect XuLA.ucf
  xulate detect -v < board.ucf`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDetect,
}

func init() {
	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, args []string) error {
	path := docio.Stdio
	if len(args) == 1 {
		path = args[0]
	}
	doc, err := docio.Read(path, cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	out := cmd.OutOrStdout()
	boardA := table.BoardName(pinmap.BoardA)
	boardB := table.BoardName(pinmap.BoardB)

	assignments := ucf.Scan(doc, table)
	dir, tally := ucf.Detect(doc, table)

	fmt.Fprintf(out, "╔════════════════════════════════════════════════════════════════╗\n")
	fmt.Fprintf(out, "║ Direction Detection                                            ║\n")
	fmt.Fprintf(out, "╚════════════════════════════════════════════════════════════════╝\n\n")

	fmt.Fprintf(out, "LOC assignments: %d\n", len(assignments))
	if cfg.Verbose || len(assignments) <= 30 {
		for _, a := range assignments {
			fmt.Fprintf(out, "  %4d:%-3d %-8s %s\n", a.Line, a.Column, a.Pin, sideLabel(a.Side, boardA, boardB))
		}
	} else {
		for _, a := range assignments[:30] {
			fmt.Fprintf(out, "  %4d:%-3d %-8s %s\n", a.Line, a.Column, a.Pin, sideLabel(a.Side, boardA, boardB))
		}
		fmt.Fprintf(out, "  ... and %d more (use -v to show all)\n", len(assignments)-30)
	}
	fmt.Fprintln(out)

	fmt.Fprintf(out, "%s-only pins:  %d\n", boardA, tally.AOnly)
	fmt.Fprintf(out, "%s-only pins:  %d\n", boardB, tally.BOnly)
	fmt.Fprintf(out, "Ambiguous/unknown: %d\n", tally.Ambiguous)
	fmt.Fprintf(out, "Direction: %s (%s)", dir, dir.Describe(table))
	if tally.AOnly == tally.BOnly {
		fmt.Fprintf(out, " [tie, default]")
	}
	fmt.Fprintln(out)
	return nil
}

func sideLabel(s pinmap.Side, boardA, boardB string) string {
	switch s {
	case pinmap.SideA:
		return boardA
	case pinmap.SideB:
		return boardB
	default:
		return "ambiguous"
	}
}
