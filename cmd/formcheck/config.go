package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/reactform/pkg/config"
	"github.com/dmitrymomot/reactform/pkg/logger"
)

var errMissingFile = errors.New("rules and data files are required")

// Config is read from FORMCHECK_* variables and overridden by flags.
type Config struct {
	Check struct {
		RulesFile      string `env:"RULES_FILE"`
		DataFile       string `env:"DATA_FILE"`
		DefaultMessage string `env:"DEFAULT_MESSAGE"`
		LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
		LogFormat      string `env:"LOG_FORMAT" envDefault:"text"`
		Env            string `env:"ENV" envDefault:"development"`
	} `envPrefix:"FORMCHECK_"`
}

// ExitError carries the process exit code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }

func (e *ExitError) Unwrap() error { return e.Err }

func usageError(err error) error {
	return &ExitError{Code: 2, Err: err}
}

// parseConfig loads the environment config and applies flags on top.
// The bool result is true when help was requested.
func parseConfig(args []string, output io.Writer) (Config, bool, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return cfg, false, usageError(err)
	}

	fs := flag.NewFlagSet("formcheck", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `formcheck - validate a data file against a rule file.

Usage:
  formcheck [options] [RULES_FILE DATA_FILE]

Options:
`)
		fs.PrintDefaults()
	}

	c := &cfg.Check
	fs.StringVar(&c.RulesFile, "rules", c.RulesFile, "Path to the YAML rule file.")
	fs.StringVar(&c.DataFile, "data", c.DataFile, "Path to the YAML or JSON data file.")
	fs.StringVar(&c.DefaultMessage, "default-message", c.DefaultMessage, "Message for failing rules that define none.")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level: debug, info, warn or error.")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "Log format: text or json.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return cfg, true, nil
		}
		return cfg, false, usageError(err)
	}

	if rest := fs.Args(); len(rest) > 0 {
		c.RulesFile = rest[0]
		if len(rest) > 1 {
			c.DataFile = rest[1]
		}
	}

	if c.RulesFile == "" || c.DataFile == "" {
		fs.Usage()
		return cfg, false, usageError(errMissingFile)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return cfg, false, usageError(err)
	}
	switch logger.Format(strings.ToLower(c.LogFormat)) {
	case logger.FormatText, logger.FormatJSON:
		c.LogFormat = strings.ToLower(c.LogFormat)
	default:
		return cfg, false, usageError(fmt.Errorf("invalid log format %q", c.LogFormat))
	}

	return cfg, false, nil
}

func newLogger(cfg Config, output io.Writer) *slog.Logger {
	return logger.New(
		logger.WithEnvironment(cfg.Check.Env, "formcheck"),
		logger.WithOutput(output),
		logger.WithFormat(logger.Format(cfg.Check.LogFormat)),
		logger.WithLevelName(cfg.Check.LogLevel),
		logger.WithContextValue("run_id", runIDKey{}),
	)
}
