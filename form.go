package reactform

import (
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/reactform/pkg/logger"
	"github.com/dmitrymomot/reactform/pkg/observable"
	"github.com/dmitrymomot/reactform/pkg/validator"
)

// Form keeps a validation result for every field of a data object and
// refreshes it whenever the field is written.
type Form struct {
	id     uuid.UUID
	data   *observable.Object
	keys   []string
	config validator.Config
	engine *validator.Engine
	logger *slog.Logger

	mu      sync.RWMutex
	results map[string]validator.Result
}

// New binds a form to data. Every field present in data at this point is
// tracked; fields defined later are ignored. The config is copied.
func New(data *observable.Object, cfg validator.Config, opts ...Option) *Form {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if data == nil {
		data = observable.NewObject()
	}

	l := o.logger
	if l == nil {
		l = logger.Discard()
	}

	eng := o.engine
	if eng == nil {
		eng = validator.NewEngine(append(o.engineOpts, validator.WithLogger(l))...)
	}

	f := &Form{
		id:      uuid.New(),
		data:    data,
		keys:    data.Keys(),
		config:  cfg.Clone(),
		engine:  eng,
		results: make(map[string]validator.Result),
	}
	f.logger = l.With(logger.FormID(f.id.String()))

	for _, key := range f.keys {
		f.results[key] = validator.Result{Name: key, Valid: true}
		if !observable.Bind(data, key, f.listener(key)) {
			f.logger.Debug("field not observable", logger.Field(key))
		}
	}

	return f
}

func (f *Form) listener(key string) observable.Listener[any] {
	return func(_, next any) error {
		res, err := f.engine.Validate(key, next, f.config[key]...)
		if err != nil {
			f.logger.Error("field validation failed", logger.Field(key), logger.Error(err))
			return err
		}

		f.mu.Lock()
		prev := f.results[key]
		merged := prev
		merged.Name = res.Name
		merged.Valid = res.Valid
		merged.Msg = res.Msg
		if !res.Validator.IsZero() {
			merged.Validator = res.Validator
		}
		merged.Dirty = prev.Dirty || validator.Truthy(next)
		f.results[key] = merged
		f.mu.Unlock()

		f.logger.Debug("field validated",
			logger.Field(key),
			logger.Valid(merged.Valid),
			logger.Dirty(merged.Dirty),
		)
		return nil
	}
}

// ID identifies the form in logs.
func (f *Form) ID() uuid.UUID { return f.id }

// Data returns the bound data object.
func (f *Form) Data() *observable.Object { return f.data }

// Get returns the current value of a field.
func (f *Form) Get(name string) any { return f.data.Get(name) }

// Set writes a field of the bound data object. The field is validated
// synchronously; resolution errors are returned.
func (f *Form) Set(name string, value any) error {
	return f.data.Set(name, value)
}

// Verify returns the stored result for name without re-evaluating it.
// An empty name runs VerifyAll. Unknown names yield nil.
func (f *Form) Verify(name string) (*validator.Result, error) {
	if name == "" {
		res, err := f.VerifyAll()
		if err != nil {
			return nil, err
		}
		return &res, nil
	}

	f.mu.RLock()
	defer f.mu.RUnlock()
	res, ok := f.results[name]
	if !ok {
		return nil, nil
	}
	return &res, nil
}

// IsError reports whether a field is free of a displayable error: it is true
// for unknown and untouched fields, otherwise it reports the stored validity.
// Callers show an error when it returns false.
//
// It goes through Verify, so an empty name runs VerifyAll; whole-form results
// are never dirty and report true. Resolution errors are logged and report true.
func (f *Form) IsError(name string) bool {
	res, err := f.Verify(name)
	if err != nil {
		f.logger.Error("verify failed", logger.Field(name), logger.Error(err))
		return true
	}
	if res == nil || !res.Dirty {
		return true
	}
	return res.Valid
}

// VerifyAll evaluates every tracked field against its current value and
// returns the first failure in key order, or a valid result. Dirty state is
// neither consulted nor changed.
func (f *Form) VerifyAll() (validator.Result, error) {
	results, err := f.evaluate()
	if err != nil {
		return validator.Result{}, err
	}
	if res, found := results.FirstInvalid(); found {
		return res, nil
	}
	return validator.Result{Valid: true}, nil
}

// Validate evaluates every tracked field and returns validator.ValidationErrors
// describing each failure, or nil when the form is valid.
func (f *Form) Validate() error {
	results, err := f.evaluate()
	if err != nil {
		return err
	}
	if errs := results.Errors(); errs != nil {
		f.logger.Debug("form invalid", logger.Fields(errs.Fields()...))
		return errs
	}
	return nil
}

// Results returns a copy of the stored results in key order.
func (f *Form) Results() validator.Results {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make(validator.Results, 0, len(f.keys))
	for _, key := range f.keys {
		out = append(out, f.results[key])
	}
	return out
}

// Fields returns the tracked field names in key order.
func (f *Form) Fields() []string { return slices.Clone(f.keys) }

// Config returns a copy of the rule configuration.
func (f *Form) Config() validator.Config { return f.config.Clone() }

func (f *Form) evaluate() (validator.Results, error) {
	entries := make(validator.Entries, len(f.keys))
	for i, key := range f.keys {
		entries[i] = validator.Entry{Key: key, Value: f.data.Get(key)}
	}
	return f.engine.ValidateAll(entries, f.config)
}
