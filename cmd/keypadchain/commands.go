package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/keypadchain/cost"
	"github.com/katalvlaran/keypadchain/doorcode"
	"github.com/katalvlaran/keypadchain/internal/config"
)

// app carries the state shared by every subcommand.
type app struct {
	stdout, stderr io.Writer

	configPath string
	logLevel   string
	logFormat  string
	metrics    bool

	cfg      config.Config
	logger   *slog.Logger
	registry *prometheus.Registry
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "keypadchain",
		Short: "Minimum button presses through a chain of robot keypads",
		Long: `keypadchain finds how few presses a human needs on a directional keypad
to make a chain of robot arms type door codes on a numeric keypad.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.dumpMetrics()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: text or json")
	pf.BoolVar(&a.metrics, "metrics", false, "print memo metrics in Prometheus text format on exit")

	root.AddCommand(
		newSolveCmd(a),
		newRunCmd(a),
		newSequenceCmd(a),
		newTableCmd(a),
	)
	return root
}

// init loads configuration, applies flag overrides and builds the logger.
func (a *app) init() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = cfg.Log.Logger(a.stderr)
	if a.metrics {
		a.registry = prometheus.NewRegistry()
	}
	return nil
}

// solveOptions forwards the logger and, when enabled, the metrics registry.
func (a *app) solveOptions() []doorcode.Option {
	opts := []doorcode.Option{doorcode.WithLogger(a.logger)}
	if a.registry != nil {
		opts = append(opts, doorcode.WithRegisterer(a.registry))
	}
	return opts
}

// checkDepth rejects --depth values the evaluator cannot count without overflow.
func checkDepth(depth int) error {
	if depth < 0 || depth > cost.MaxChainDepth {
		return fmt.Errorf("%w: --depth %d not in [0, %d]", cost.ErrOptionViolation, depth, cost.MaxChainDepth)
	}
	return nil
}

// loadCodes merges codes from args (or the config when args is empty) with
// those read from the input file.
func (a *app) loadCodes(args []string, input string) ([]doorcode.Code, error) {
	raw := args
	if len(raw) == 0 {
		raw = a.cfg.Codes
	}
	codes, err := doorcode.ParseAll(raw)
	if err != nil {
		return nil, err
	}
	if input == "" {
		input = a.cfg.Input
	}
	if input != "" {
		f, err := os.Open(input)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		more, err := doorcode.ReadCodes(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", input, err)
		}
		codes = append(codes, more...)
	}
	if len(codes) == 0 {
		return nil, doorcode.ErrNoCodes
	}
	return codes, nil
}

func (a *app) dumpMetrics() error {
	if a.registry == nil {
		return nil
	}
	families, err := a.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(a.stdout, mf); err != nil {
			return err
		}
	}
	return nil
}
