package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/reactform/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("result", logger.Field("name"), logger.Valid(false))
	require.Equal(t, "result", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "field", g[0].Key)
	assert.Equal(t, "valid", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	empty := logger.Errors(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestDomainAttrs(t *testing.T) {
	tests := []struct {
		name string
		attr slog.Attr
		key  string
		want any
	}{
		{"form id", logger.FormID("f-1"), "form_id", "f-1"},
		{"run id", logger.RunID("r-1"), "run_id", "r-1"},
		{"field", logger.Field("email"), "field", "email"},
		{"rule", logger.Rule("min:2"), "rule", "min:2"},
		{"valid", logger.Valid(true), "valid", true},
		{"dirty", logger.Dirty(false), "dirty", false},
		{"message", logger.Message("required!"), "message", "required!"},
		{"component", logger.Component("formcheck"), "component", "formcheck"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.key, tt.attr.Key)
			assert.Equal(t, tt.want, tt.attr.Value.Any())
		})
	}

	t.Run("duration", func(t *testing.T) {
		attr := logger.Duration(1500 * time.Millisecond)
		require.Equal(t, "duration", attr.Key)
		assert.Equal(t, 1500*time.Millisecond, attr.Value.Any())
	})

	t.Run("fields", func(t *testing.T) {
		attr := logger.Fields("a", "b")
		require.Equal(t, "fields", attr.Key)
		assert.Equal(t, []string{"a", "b"}, attr.Value.Any())
	})

	t.Run("empty values produce empty attrs", func(t *testing.T) {
		for _, attr := range []slog.Attr{
			logger.FormID(""),
			logger.RunID(nil),
			logger.Fields(),
			logger.Rule(""),
			logger.Message(""),
		} {
			assert.True(t, attr.Equal(slog.Attr{}))
		}
	})
}
