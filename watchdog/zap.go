package watchdog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapPersister forwards records to a zap logger. It is meant for hosts
// that already ship zap output to a central sink instead of a database.
type ZapPersister struct {
	logger *zap.Logger
}

// NewZapPersister wraps logger. A nil logger discards records.
func NewZapPersister(logger *zap.Logger) *ZapPersister {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapPersister{logger: logger}
}

// Persist implements Persister.
func (p *ZapPersister) Persist(rec Record) error {
	fields := []zap.Field{
		zap.String("facility", rec.Facility),
		zap.Int("severity", rec.Severity),
	}
	if rec.Link != "" {
		fields = append(fields, zap.String("link", rec.Link))
	}
	if ce := p.logger.Check(zapLevel(rec.Severity), rec.Text()); ce != nil {
		ce.Write(fields...)
	}
	return nil
}

func zapLevel(severity int) zapcore.Level {
	switch {
	case severity <= SeverityError:
		return zapcore.ErrorLevel
	case severity == SeverityWarning:
		return zapcore.WarnLevel
	case severity >= SeverityDebug:
		return zapcore.DebugLevel
	default:
		return zapcore.InfoLevel
	}
}
