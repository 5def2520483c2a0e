package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/govec/internal/config"
	govlog "github.com/philipparndt/govec/internal/log"
	"github.com/philipparndt/govec/pkg/analysis"
	"github.com/philipparndt/govec/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	tolerance  float64
	precision  int
	logLevel   string

	cfg    = config.Default()
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "govec",
	Short: "Vector and rotation algebra from the command line",
	Long: `govec evaluates 3D vector arithmetic, point/line/plane distance queries and
quaternion rotations. Rotations are written as literals such as axis:0,0,1@90,
euler:10,20,30, quat:0,0,0,1, arc:1,0,0>0,1,0, matrix:... or axes:X|Y|Z|ZXY.`,
	Version:           version.GetFullVersion(),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	flags.Float64Var(&tolerance, "tolerance", cfg.Tolerance, "tolerance for parallel, perpendicular and same-rotation checks")
	flags.IntVar(&precision, "precision", cfg.Precision, "decimals printed")
	flags.StringVar(&logLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
}

// setup loads the config file, applies flag overrides and builds the logger
func setup(cmd *cobra.Command, args []string) error {
	path, explicit := configPath, true
	if path == "" {
		path, explicit = config.DefaultPath(), false
	}

	loaded, err := config.Load(path, explicit)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("tolerance") {
		loaded.Tolerance = tolerance
	}
	if flags.Changed("precision") {
		loaded.Precision = precision
	}
	if flags.Changed("log-level") {
		loaded.LogLevel = logLevel
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	l, err := govlog.New(loaded.LogLevel)
	if err != nil {
		return err
	}

	cfg, logger = loaded, l
	logger.Debug("configuration loaded",
		zap.String("path", path),
		zap.Float64("tolerance", cfg.Tolerance),
		zap.Int("precision", cfg.Precision))
	return nil
}

func formatter() analysis.Formatter {
	return analysis.NewFormatter(cfg.Precision)
}

func main() {
	err := rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
