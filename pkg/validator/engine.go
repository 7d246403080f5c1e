package validator

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/dmitrymomot/reactform/pkg/logger"
	"github.com/dmitrymomot/reactform/pkg/rules"
)

// DefaultMessage is reported for failing rules without a message.
const DefaultMessage = "validation failed"

// Registry resolves rule names to predicates.
type Registry interface {
	Lookup(name string) (rules.Predicate, bool)
}

// Engine resolves descriptors and validates values. It holds no mutable
// state of its own and is safe for concurrent use when its registry is.
type Engine struct {
	registry       Registry
	defaultMessage string
	logger         *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithRegistry sets the registry used to resolve rule names.
// Nil registries are ignored.
func WithRegistry(r Registry) Option {
	return func(e *Engine) {
		if r != nil {
			e.registry = r
		}
	}
}

// WithDefaultMessage sets the message used when a failing rule has none.
func WithDefaultMessage(msg string) Option {
	return func(e *Engine) {
		if msg != "" {
			e.defaultMessage = msg
		}
	}
}

// WithLogger sets the logger for rule evaluation diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewEngine creates an engine backed by rules.Default unless WithRegistry is given.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		registry:       rules.Default(),
		defaultMessage: DefaultMessage,
		logger:         logger.Discard(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// DefaultMessage returns the fallback failure message.
func (e *Engine) DefaultMessage() string { return e.defaultMessage }

// Resolve turns a descriptor into a predicate. Resolution is pure; nothing is cached.
func (e *Engine) Resolve(v Validator) (rules.Predicate, error) {
	switch v.kind {
	case KindName:
		return e.resolveName(v.name)
	case KindLength:
		return lengthPredicate(v.name)
	case KindPattern:
		return rules.MatchPredicate(v.pattern), nil
	case KindFunc:
		return v.fn, nil
	default:
		return nil, &InvalidValidatorTypeError{}
	}
}

func (e *Engine) resolveName(name string) (rules.Predicate, error) {
	if fn, ok := e.registry.Lookup(name); ok {
		return fn, nil
	}
	if name == RequiredRule {
		return Truthy, nil
	}
	if looksLikeLengthSpec(name) {
		return lengthPredicate(name)
	}
	return nil, &UnknownRuleError{Name: name}
}

// Validate runs rules against value in order and reports the first failure.
//
// An empty string on a field without a required rule is valid and no rule
// is evaluated. Resolution errors are returned wrapped with the field name.
func (e *Engine) Validate(name string, value any, rs ...Rule) (Result, error) {
	required := slices.ContainsFunc(rs, func(r Rule) bool {
		return r.Validator.IsRequired()
	})

	for _, rule := range rs {
		if !required && isEmptyString(value) {
			return Result{Name: name, Valid: true, Validator: rule.Validator}, nil
		}

		check, err := e.Resolve(rule.Validator)
		if err != nil {
			return Result{Name: name}, fmt.Errorf("field %q: %w", name, err)
		}

		if !check(value) {
			msg := rule.Msg
			if msg == "" {
				msg = e.defaultMessage
			}
			e.logger.Debug("rule failed",
				logger.Field(name),
				logger.Rule(rule.Validator.String()),
			)
			return Result{Name: name, Valid: false, Msg: msg, Validator: rule.Validator}, nil
		}
	}

	return Result{Name: name, Valid: true}, nil
}

// ValidateAll validates every field of data with the rules configured for it,
// in key order. Fields without rules are valid.
func (e *Engine) ValidateAll(data Source, cfg Config) (Results, error) {
	keys := data.Keys()
	results := make(Results, 0, len(keys))
	for _, key := range keys {
		res, err := e.Validate(key, data.Get(key), cfg[key]...)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}
