package trace

import (
	"go.uber.org/zap"
)

// LogTracer writes events to a zap logger at debug level.
type LogTracer struct {
	log *zap.Logger
}

// NewLogTracer creates a tracer that logs through l.
func NewLogTracer(l *zap.Logger) *LogTracer {
	return &LogTracer{log: l}
}

// Trace implements Tracer.
func (t *LogTracer) Trace(ev Event) {
	if ce := t.log.Check(zap.DebugLevel, "probe"); ce != nil {
		fields := []zap.Field{
			zap.String("kind", string(ev.Kind)),
			zap.Float64("t", ev.Time),
			zap.Any("start", ev.Start),
			zap.Any("end", ev.End),
			zap.Bool("hit", ev.Hit),
		}
		if ev.Hit {
			fields = append(fields, zap.Any("point", ev.Point), zap.Any("normal", ev.Normal))
		}
		ce.Write(fields...)
	}
}
