package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/OpenTraceLab/xulate/internal/config"
	"github.com/OpenTraceLab/xulate/internal/logging"
	"github.com/OpenTraceLab/xulate/pkg/pinmap"
)

var (
	// Global flags
	verbose    bool
	configPath string
	tablePath  string

	// Resolved in setup before any subcommand runs
	cfg    *config.Config
	logger = zap.NewNop()
	table  *pinmap.Table
)

var rootCmd = &cobra.Command{
	Use:   "xulate",
	Short: "Translate UCF pin constraints between board revisions",
	Long: `Translate the LOC constraints of a UCF file between two board revisions.
Pins are looked up in a two-way table; everything else in the file is kept
byte-for-byte. The built-in table maps the XuLA board to the XuLA2.

Examples:
  xulate translate < XuLA.ucf > XuLA2.ucf         # Auto-detect direction
  xulate translate -d reverse -i XuLA2.ucf -o XuLA.ucf
  xulate translate --in-place board.ucf           # Rewrite a file atomically
  xulate detect board.ucf                         # Show which board a file targets
  xulate table --table myboards.pins              # Show a custom table`,
	Version:           "0.9.0",
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "xulate:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"config file (YAML)")
	rootCmd.PersistentFlags().StringVarP(&tablePath, "table", "t", "",
		"pin table file (.pins or .yaml); default is the built-in XuLA/XuLA2 table")
}

// setup loads the configuration, the logger and the translation table. A
// table that fails to build stops the program before any document is read.
func setup(cmd *cobra.Command, args []string) error {
	c, err := config.Load(cmd.Flags(), configPath)
	if err != nil {
		return err
	}
	cfg = c

	logger = logging.New(logging.Options{
		Verbose: cfg.Verbose,
		Output:  zapcore.AddSync(cmd.ErrOrStderr()),
	})

	t, err := loadTable(cfg.Table)
	if err != nil {
		return err
	}
	table = t

	logger.Debug("translation table ready",
		zap.String("source", tableSource(cfg.Table)),
		zap.String("boardA", table.BoardName(pinmap.BoardA)),
		zap.String("boardB", table.BoardName(pinmap.BoardB)),
		zap.Int("pairs", table.Len()))
	return nil
}

func loadTable(path string) (*pinmap.Table, error) {
	if path == "" {
		t, err := pinmap.Default()
		if err != nil {
			return nil, fmt.Errorf("built-in table is invalid: %w", err)
		}
		return t, nil
	}
	t, err := pinmap.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load table: %w", err)
	}
	return t, nil
}

func tableSource(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}
