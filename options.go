package reactform

import (
	"log/slog"

	"github.com/dmitrymomot/reactform/pkg/validator"
)

type options struct {
	engine     *validator.Engine
	engineOpts []validator.Option
	logger     *slog.Logger
}

// Option configures a Form.
type Option func(*options)

// WithRegistry resolves rule names against r instead of the default registry.
// Ignored when WithEngine is given.
func WithRegistry(r validator.Registry) Option {
	return func(o *options) {
		o.engineOpts = append(o.engineOpts, validator.WithRegistry(r))
	}
}

// WithDefaultMessage sets the message for failing rules that carry none.
// Ignored when WithEngine is given.
func WithDefaultMessage(msg string) Option {
	return func(o *options) {
		o.engineOpts = append(o.engineOpts, validator.WithDefaultMessage(msg))
	}
}

// WithLogger sets the form logger. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithEngine uses a preconfigured engine.
func WithEngine(e *validator.Engine) Option {
	return func(o *options) {
		if e != nil {
			o.engine = e
		}
	}
}
