// Command trackconv converts a vendor GPS recording archive into a GPX
// track file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"trackconv/internal/config"
)

type app struct {
	cfgPath string
	verbose bool

	cfg    config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "trackconv",
		Short: "Convert vendor GPS recordings to GPX",
		Long: `trackconv reads a recorder archive (a zip holding one .gps and one .acc
member), decodes the tagged GPS record stream, reconstructs absolute track
points from its anchor/delta records, and writes a GPX track.

The record format has no framing to resynchronize on, so any malformed line
aborts the run; no partial output is left behind.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			zcfg := zap.NewProductionConfig()
			if a.verbose {
				zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := zcfg.Build()
			if err != nil {
				return fmt.Errorf("initialize logger: %w", err)
			}
			a.logger = logger

			if a.cfgPath == "" {
				a.cfg = config.Default()
				return nil
			}
			cfg, err := config.Load(a.cfgPath)
			if err != nil {
				return fmt.Errorf("load config %s: %w", a.cfgPath, err)
			}
			a.cfg = cfg
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.cfgPath, "config", "", "path to YAML config")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log per-record diagnostics")

	root.AddCommand(newConvertCmd(a))
	root.AddCommand(newInfoCmd(a))
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
