package handler

import (
	"context"
	"log/slog"

	"github.com/philipp01105/drushlog/core"
)

// SlogHandler is an adapter that implements slog.Handler on top of a
// Logger. Records are forwarded with their attributes as context.
type SlogHandler struct {
	logger Logger
	ignore core.Level
	attrs  []core.Field
	group  string
}

// NewSlogHandler creates a new slog.Handler adapter forwarding to l.
// Records at or below ignore are dropped before reaching l; an empty
// ignore level forwards everything. ignore is normalized like any other
// level name.
func NewSlogHandler(l Logger, ignore core.Level) *SlogHandler {
	return &SlogHandler{
		logger: l,
		ignore: core.ParseLevel(string(ignore)),
	}
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return core.ShouldEmit(slogLevelToCore(level), s.ignore)
}

// Handle converts the record's attributes to a context and logs it.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	fields := make([]core.Field, 0, len(s.attrs)+record.NumAttrs())
	fields = append(fields, s.attrs...)

	record.Attrs(func(a slog.Attr) bool {
		fields = appendAttr(fields, s.group, a)
		return true
	})

	s.logger.Log(slogLevelToCore(record.Level), record.Message, core.Fields(fields...))
	return nil
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]core.Field, len(s.attrs), len(s.attrs)+len(attrs))
	copy(newAttrs, s.attrs)
	for _, a := range attrs {
		newAttrs = appendAttr(newAttrs, s.group, a)
	}
	return &SlogHandler{
		logger: s.logger,
		ignore: s.ignore,
		attrs:  newAttrs,
		group:  s.group,
	}
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	newAttrs := make([]core.Field, len(s.attrs))
	copy(newAttrs, s.attrs)
	return &SlogHandler{
		logger: s.logger,
		ignore: s.ignore,
		attrs:  newAttrs,
		group:  newGroup,
	}
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.LevelError
	case level >= slog.LevelWarn:
		return core.LevelWarning
	case level >= slog.LevelInfo:
		return core.LevelInfo
	default:
		return core.LevelDebug
	}
}

// appendAttr converts a slog.Attr to fields, prepending the group
// prefix. Group attributes are flattened into dotted keys.
func appendAttr(fields []core.Field, group string, a slog.Attr) []core.Field {
	if a.Equal(slog.Attr{}) {
		return fields
	}
	key := a.Key
	if group != "" {
		key = group + "." + a.Key
	}

	a.Value = a.Value.Resolve()

	switch a.Value.Kind() {
	case slog.KindString:
		return append(fields, core.Field{Key: key, Type: core.StringType, Str: a.Value.String()})
	case slog.KindInt64:
		return append(fields, core.Field{Key: key, Type: core.Int64Type, Int64: a.Value.Int64()})
	case slog.KindFloat64:
		return append(fields, core.Field{Key: key, Type: core.Float64Type, Float64: a.Value.Float64()})
	case slog.KindBool:
		val := int64(0)
		if a.Value.Bool() {
			val = 1
		}
		return append(fields, core.Field{Key: key, Type: core.BoolType, Int64: val})
	case slog.KindTime:
		return append(fields, core.Field{Key: key, Type: core.TimeType, Int64: a.Value.Time().UnixNano()})
	case slog.KindDuration:
		return append(fields, core.Field{Key: key, Type: core.DurationType, Int64: int64(a.Value.Duration())})
	case slog.KindGroup:
		// An inline group with an empty key keeps the current prefix.
		prefix := key
		if a.Key == "" {
			prefix = group
		}
		for _, ga := range a.Value.Group() {
			fields = appendAttr(fields, prefix, ga)
		}
		return fields
	default:
		return append(fields, core.Field{Key: key, Type: core.AnyType, Any: a.Value.Any()})
	}
}
