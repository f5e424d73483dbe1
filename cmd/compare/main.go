package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"buynow-compare/internal/backtest"
	"buynow-compare/internal/config"
	"buynow-compare/internal/logging"
	"buynow-compare/internal/observability"
	"buynow-compare/internal/pipeline"
)

const usageLine = "Usage: compare <backtest.json>"

// Exit codes
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var errUsage = errors.New("incorrect usage")

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	app := &cli.App{
		Name:            "compare",
		Usage:           "compare backtest trade outcomes between buyNow=true and buyNow=false signals",
		ArgsUsage:       "<backtest.json>",
		Writer:          stdout,
		ErrWriter:       stderr,
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "YAML config file",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "report format: text, markdown or csv",
			},
			&cli.IntFlag{
				Name:  "precision",
				Usage: "decimals printed for float metrics",
			},
			&cli.StringFlag{
				Name:  "metrics-file",
				Usage: "write Prometheus metrics to this textfile after the run",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level for stderr diagnostics",
			},
		},
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return fmt.Errorf("%w: %v", errUsage, err)
		},
		Action: compare,
		// Exit codes are mapped below instead of calling os.Exit inside the app.
		ExitErrHandler: func(*cli.Context, error) {},
	}

	err := app.Run(args)
	if err == nil {
		return exitOK
	}

	if errors.Is(err, errUsage) {
		// Flag errors carry their cause
		if err != errUsage {
			fmt.Fprintln(stderr, err)
		}
		fmt.Fprintln(stderr, usageLine)
		return exitUsage
	}

	var exitErr cli.ExitCoder
	if errors.As(err, &exitErr) {
		if msg := exitErr.Error(); msg != "" {
			fmt.Fprintln(stderr, msg)
		}
		return exitErr.ExitCode()
	}

	fmt.Fprintln(stderr, err)
	return exitError
}

func compare(c *cli.Context) error {
	if c.NArg() != 1 {
		return errUsage
	}
	path := c.Args().First()

	cfg, err := loadConfig(c)
	if err != nil {
		return cli.Exit(err.Error(), exitError)
	}

	logger, err := logging.New(c.App.ErrWriter, cfg.LogLevel)
	if err != nil {
		return cli.Exit(err.Error(), exitError)
	}

	var m *observability.Metrics
	if cfg.Metrics.Textfile != "" {
		m = observability.NewMetrics(cfg.Metrics.Namespace)
	}

	p := pipeline.NewComparePipeline(cfg, logger)
	if m != nil {
		p.WithMetrics(m)
	}

	_, runErr := p.Run(path, c.App.Writer)

	if m != nil {
		if err := m.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			logger.WithField("path", cfg.Metrics.Textfile).Errorf("write metrics textfile: %v", err)
			if runErr == nil {
				return cli.Exit("", exitError)
			}
		} else {
			logger.WithField("path", cfg.Metrics.Textfile).Debug("metrics textfile written")
		}
	}

	if runErr != nil {
		return cli.Exit(diagnostic(path, runErr), exitError)
	}
	return nil
}

// loadConfig reads the optional config file and applies flag overrides.
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return cfg, err
	}

	if c.IsSet("format") {
		cfg.Format = strings.ToLower(strings.TrimSpace(c.String("format")))
	}
	if c.IsSet("precision") {
		cfg.Precision = c.Int("precision")
	}
	if c.IsSet("metrics-file") {
		cfg.Metrics.Textfile = c.String("metrics-file")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// diagnostic returns the one-line stderr message for a failed run.
func diagnostic(path string, err error) string {
	switch {
	case errors.Is(err, backtest.ErrFileNotFound):
		return "File not found: " + path
	case errors.Is(err, backtest.ErrInvalidJSON):
		cause := strings.TrimPrefix(err.Error(), backtest.ErrInvalidJSON.Error()+": ")
		return "Failed to read JSON: " + cause
	case errors.Is(err, backtest.ErrMissingEvents):
		return "No events[] found in JSON."
	default:
		return err.Error()
	}
}
