package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// FormID records the form identifier under the key "form_id".
// If id is empty, it returns an empty Attr.
func FormID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("form_id", id)
}

// RunID records a run identifier under the key "run_id".
// If id is nil, it returns an empty Attr.
func RunID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("run_id", id)
}

// Field records the field name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Fields records field names under the key "fields".
// If names is empty, it returns an empty Attr.
func Fields(names ...string) slog.Attr {
	if len(names) == 0 {
		return slog.Attr{}
	}
	return slog.Any("fields", names)
}

// Rule records a rule description under the key "rule".
// If rule is empty, it returns an empty Attr.
func Rule(rule string) slog.Attr {
	if rule == "" {
		return slog.Attr{}
	}
	return slog.String("rule", rule)
}

// Valid records a validity flag under the key "valid".
func Valid(ok bool) slog.Attr {
	return slog.Bool("valid", ok)
}

// Dirty records a dirty flag under the key "dirty".
func Dirty(dirty bool) slog.Attr {
	return slog.Bool("dirty", dirty)
}

// Message records a validation message under the key "message".
// If msg is empty, it returns an empty Attr.
func Message(msg string) slog.Attr {
	if msg == "" {
		return slog.Attr{}
	}
	return slog.String("message", msg)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
