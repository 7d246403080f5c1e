// Command formcheck validates a data file against a YAML rule file.
//
// Every field of the data file is written into a tracked form one by one, the
// per-field results are logged as they settle, and a summary of a fresh
// whole-form check follows. The exit status is 0 when the data is valid, 1
// when it is not, and 2 for usage, file or rule errors.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/reactform"
	"github.com/dmitrymomot/reactform/pkg/logger"
	"github.com/dmitrymomot/reactform/pkg/observable"
	"github.com/dmitrymomot/reactform/pkg/ruleset"
	"github.com/dmitrymomot/reactform/pkg/validator"
)

type runIDKey struct{}

var errInvalidData = errors.New("data is invalid")

func main() {
	if err := run(context.Background(), os.Stdout, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			if !errors.Is(exitErr, errInvalidData) {
				fmt.Fprintln(os.Stderr, exitErr.Err)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, output io.Writer, args []string) error {
	cfg, help, err := parseConfig(args, output)
	if err != nil || help {
		return err
	}

	start := time.Now()
	ctx = context.WithValue(ctx, runIDKey{}, uuid.NewString())
	log := newLogger(cfg, output).With(logger.Component("formcheck"))

	rulesCfg, err := ruleset.LoadFile(cfg.Check.RulesFile)
	if err != nil {
		return usageError(err)
	}
	source, err := ruleset.LoadDataFile(cfg.Check.DataFile)
	if err != nil {
		return usageError(err)
	}

	keys := fieldKeys(source, rulesCfg)
	entries := make([]observable.Entry, len(keys))
	for i, key := range keys {
		entries[i] = observable.Entry{Key: key}
	}
	data := observable.NewObject(entries...)

	form := reactform.New(data, rulesCfg,
		reactform.WithLogger(log),
		reactform.WithDefaultMessage(cfg.Check.DefaultMessage),
	)
	log.DebugContext(ctx, "form ready",
		logger.FormID(form.ID().String()),
		logger.Fields(form.Fields()...),
	)

	for _, key := range keys {
		if err := form.Set(key, source.Get(key)); err != nil {
			log.ErrorContext(ctx, "rule error", logger.Field(key), logger.Error(err))
			return usageError(err)
		}

		res, _ := form.Verify(key)
		log.InfoContext(ctx, "field checked",
			logger.Field(key),
			logger.Valid(res.Valid),
			logger.Dirty(res.Dirty),
			logger.Message(res.Msg),
			logger.Rule(res.Validator.String()),
		)
	}

	summary, err := form.VerifyAll()
	if err != nil {
		return usageError(err)
	}
	if summary.Valid {
		log.InfoContext(ctx, "form valid", logger.Duration(time.Since(start)))
		return nil
	}

	attrs := []any{
		logger.Field(summary.Name),
		logger.Message(summary.Msg),
		logger.Duration(time.Since(start)),
	}
	if err := form.Validate(); err != nil {
		attrs = append(attrs, logger.Fields(validator.ExtractValidationErrors(err).Fields()...))
	}
	log.WarnContext(ctx, "form invalid", attrs...)
	return &ExitError{Code: 1, Err: errInvalidData}
}

// fieldKeys lists data keys in document order followed by fields that only
// have rules, sorted.
func fieldKeys(source *observable.Object, cfg validator.Config) []string {
	keys := source.Keys()
	var extra []string
	for field := range cfg {
		if !source.Has(field) {
			extra = append(extra, field)
		}
	}
	slices.Sort(extra)
	return append(keys, extra...)
}
