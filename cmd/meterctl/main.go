// Command meterctl renders meters from the command line.
//
//	meterctl render --value 64 --label % -o meter.png
//	meterctl animate --from 10 --value 90 -o sweep.gif
//	meterctl trace --value 50
//	meterctl geometry --width 270 --height 300
//
// Settings come from flags, METER_* environment variables and an
// optional meter.yaml (see --config).
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/meter"
	"github.com/gogpu/meter/internal/config"
)

// Build-time variables (set via -ldflags).
var version = "dev"

// Global config, loaded before every command.
var cfg *config.Config

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "meterctl",
	Short:         "Render radial meters to images",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configFile, _ := cmd.Flags().GetString("config")
		var err error
		cfg, err = config.Load(configFile, cmd.Flags())
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		level, err := parseLevel(cfg.Logging.Level)
		if err != nil {
			return err
		}
		meter.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./meter.yaml)")
	config.AddFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(animateCmd)
	rootCmd.AddCommand(traceCmd)
	rootCmd.AddCommand(geometryCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "meterctl %s\n", version)
	},
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(strings.TrimSpace(s)))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return l, nil
}
