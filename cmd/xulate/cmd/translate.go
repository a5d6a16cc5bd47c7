package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/OpenTraceLab/xulate/internal/docio"
	"github.com/OpenTraceLab/xulate/pkg/ucf"
)

var (
	inFile    string
	outFile   string
	inPlace   string
	direction string
)

var translateCmd = &cobra.Command{
	Use:     "translate",
	Aliases: []string{"xlate"},
	Short:   "Translate the LOC constraints of a UCF file",
	Long: `Rewrite every "LOC = <pin>;" (or "LOC = <pin> |") assignment using the
translation table. Only the pin identifiers change; the rest of the file is
copied unchanged. The case of each pin is preserved.

The direction defaults to auto: pins found only on board A outvote pins found
only on board B, and ties go to reverse (B -> A). Pass --direction to pin it.

A pin without a translation aborts the run and nothing is written.

Examples:
  xulate translate < XuLA.ucf > XuLA2.ucf
  xulate translate --direction forward --infile XuLA.ucf --outfile XuLA2.ucf
  xulate translate --in-place board.ucf`,
	Args: cobra.NoArgs,
	RunE: runTranslate,
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringVarP(&inFile, "infile", "i", "",
		"UCF file to read (default stdin)")
	translateCmd.Flags().StringVarP(&outFile, "outfile", "o", "",
		"UCF file to write (default stdout)")
	translateCmd.Flags().StringVar(&inPlace, "in-place", "",
		"UCF file to translate and overwrite")
	translateCmd.Flags().StringVarP(&direction, "direction", "d", "auto",
		"translation direction: auto, forward (A -> B) or reverse (B -> A)")

	translateCmd.MarkFlagsMutuallyExclusive("in-place", "infile")
	translateCmd.MarkFlagsMutuallyExclusive("in-place", "outfile")
}

func runTranslate(cmd *cobra.Command, args []string) error {
	plan, err := docio.NewPlan(inFile, outFile, inPlace)
	if err != nil {
		return err
	}

	doc, err := docio.Read(plan.Source, cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	res, err := ucf.Translate(doc, table, cfg.ParsedDirection())
	if err != nil {
		return fmt.Errorf("failed to translate %s: %w", plan.SourceName(), err)
	}

	if res.Tally != nil {
		logger.Debug("detected direction",
			zap.String("direction", res.Direction.String()),
			zap.String("boards", res.Direction.Describe(table)),
			zap.Int("aOnly", res.Tally.AOnly),
			zap.Int("bOnly", res.Tally.BOnly),
			zap.Int("ambiguous", res.Tally.Ambiguous))
		if res.Tally.AOnly == res.Tally.BOnly {
			logger.Warn("no majority of board-exclusive pins, defaulting to reverse",
				zap.Int("count", res.Tally.AOnly))
		}
	}

	if err := docio.Write(plan.Dest, cmd.OutOrStdout(), res.Text); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	logger.Debug("translation complete",
		zap.String("source", plan.SourceName()),
		zap.String("dest", plan.DestName()),
		zap.Bool("inPlace", plan.InPlace()),
		zap.Int("replaced", res.Replaced))
	return nil
}
