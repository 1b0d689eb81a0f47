// maze is a tile maze you walk with w/a/s/d, drawn in a window with ebiten or
// in a terminal with tcell.
//
// Usage:
//
//	maze                 - Play in a window
//	maze --terminal      - Play in the terminal
//	maze print           - Print the maze and start position
//	maze version         - Print the version
//
// Global flags:
//
//	--config <path>      - Config YAML (default: ~/.maze/config.yaml, ./configs/maze.yaml, built-in)
//	--assets <dir>       - Directory holding wall.bmp and floor.bmp
//	--log-level <level>  - debug, info, warn, error
//	--log-file <path>    - Log destination in terminal mode
//	--telemetry          - Export traces over OTLP/HTTP
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"ebiten-maze/config"
	"ebiten-maze/telemetry"
	"ebiten-maze/terminal"
)

const version = "0.1.0"

var (
	flagConfig    string
	flagAssets    string
	flagLogLevel  string
	flagLogFile   string
	flagTerminal  bool
	flagTelemetry bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "maze",
	Short: "Walk a tile maze",
	Long: `Walk a small tile maze.

Controls:
  w/a/s/d, arrows  - Move
  Esc              - Quit

The wall and floor tiles are read from wall.bmp and floor.bmp in the
working directory unless --assets or the config says otherwise.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Print the maze and the start position",
	Args:  cobra.NoArgs,
	RunE:  runPrint,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "maze", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.Flags().StringVar(&flagAssets, "assets", "", "Directory containing wall.bmp and floor.bmp")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs here in terminal mode (default: discarded)")
	rootCmd.Flags().BoolVar(&flagTerminal, "terminal", false, "Play in the terminal instead of a window")
	rootCmd.Flags().BoolVar(&flagTelemetry, "telemetry", false, "Export traces using the OTEL_* environment")

	rootCmd.AddCommand(printCmd)
	rootCmd.AddCommand(versionCmd)
}

func newLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "maze",
		Level:           level,
	}), nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	if flagTelemetry {
		shutdown := setupTelemetry(ctx, logger)
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.Warn("telemetry shutdown", "err", err)
			}
		}()
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	cfg.ResolveAssets(flagAssets)

	state, err := cfg.NewGameState()
	if err != nil {
		return fmt.Errorf("build maze: %w", err)
	}

	if flagTerminal {
		// Logs would scribble over the terminal UI
		logger.SetOutput(io.Discard)
		if flagLogFile != "" {
			f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return fmt.Errorf("open log file: %w", err)
			}
			defer f.Close()
			logger.SetOutput(f)
		}
		session := terminal.NewSession(state, terminal.Options{
			Assets: cfg.Assets,
			Logger: logger,
		})
		return session.Run(ctx)
	}

	return runWindow(ctx, cfg, state, logger)
}

func runPrint(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	state, err := cfg.NewGameState()
	if err != nil {
		return fmt.Errorf("build maze: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), terminal.RenderText(state))
	return nil
}

// setupTelemetry loads .env for the OTEL_* variables and installs the
// exporter. Failure leaves tracing disabled.
func setupTelemetry(ctx context.Context, logger *log.Logger) func(context.Context) error {
	if err := godotenv.Load(); err != nil {
		logger.Debug(".env file not loaded", "err", err)
	}

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		logger.Warn("telemetry setup failed, running without traces", "err", err)
		return func(context.Context) error { return nil }
	}
	return shutdown
}
