package validator

import "log/slog"

// Result is the outcome of validating one field.
//
// Dirty is maintained by reactive callers only; the engine always returns
// results with Dirty unset.
type Result struct {
	Name      string    `json:"name"`
	Dirty     bool      `json:"dirty"`
	Valid     bool      `json:"valid"`
	Msg       string    `json:"msg"`
	Validator Validator `json:"validator"`
}

// ValidationError converts an invalid result into a ValidationError.
func (r Result) ValidationError() ValidationError {
	return ValidationError{
		Field:   r.Name,
		Message: r.Msg,
		Rule:    r.Validator.String(),
	}
}

// LogValue implements slog.LogValuer.
func (r Result) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Bool("valid", r.Valid),
		slog.Bool("dirty", r.Dirty),
	}
	if r.Name != "" {
		attrs = append(attrs, slog.String("field", r.Name))
	}
	if r.Msg != "" {
		attrs = append(attrs, slog.String("msg", r.Msg))
	}
	if !r.Validator.IsZero() {
		attrs = append(attrs, slog.String("rule", r.Validator.String()))
	}
	return slog.GroupValue(attrs...)
}

// Results holds per-field results in field order.
type Results []Result

// FirstInvalid returns the first failing result.
func (rs Results) FirstInvalid() (Result, bool) {
	for _, r := range rs {
		if !r.Valid {
			return r, true
		}
	}
	return Result{}, false
}

func (rs Results) Valid() bool {
	_, found := rs.FirstInvalid()
	return !found
}

// Errors collects every failing result; nil when all results are valid.
func (rs Results) Errors() ValidationErrors {
	var errs ValidationErrors
	for _, r := range rs {
		if !r.Valid {
			errs.Add(r.ValidationError())
		}
	}
	return errs
}
