package observe

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// callerSkip walks past getRuntimeParams, write and the level method.
const callerSkip = 3

// TimestampLayout is shared by the encoder and the Sentry hook that parses its output.
const TimestampLayout = "2006-01-02T15-04-05.000"

// Log formats accepted by SetFormat.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

type Logger struct {
	appEnv  string
	appName string
	level   zap.AtomicLevel
	l       *zap.Logger

	format     string
	encoderCfg zapcore.EncoderConfig
	sink       zapcore.WriteSyncer
	hooks      []zapcore.WriteSyncer
}

func NewZapLogger(appName string, writers ...io.Writer) *Logger {

	var multiWriters []zapcore.WriteSyncer

	cfg := zap.NewProductionEncoderConfig()

	cfg.EncodeTime = timeEncoder(TimestampLayout, time.UTC)
	cfg.TimeKey = "timestamp"

	if len(writers) == 0 {
		multiWriters = append(multiWriters, os.Stdout)
	} else {
		for _, writer := range writers {
			multiWriters = append(multiWriters, zapcore.AddSync(writer))
		}
	}

	l := &Logger{
		appName:    appName,
		level:      zap.NewAtomicLevelAt(zapcore.DebugLevel),
		format:     FormatJSON,
		encoderCfg: cfg,
		sink:       zapcore.NewMultiWriteSyncer(multiWriters...),
	}
	l.build()

	return l
}

// SetFormat picks the encoder for the writers given to NewZapLogger.
// Hooks always get JSON. Call it during startup, before the logger is shared.
func (l *Logger) SetFormat(format string) error {
	switch format {
	case FormatJSON, FormatConsole:
	default:
		return fmt.Errorf("unknown log format %q", format)
	}

	l.format = format
	l.build()
	return nil
}

// AddHook attaches a writer that receives every entry as one JSON line,
// whatever the format. Call it during startup, before the logger is shared.
func (l *Logger) AddHook(w io.Writer) {
	l.hooks = append(l.hooks, zapcore.AddSync(w))
	l.build()
}

func (l *Logger) build() {
	var enc zapcore.Encoder
	if l.format == FormatConsole {
		enc = zapcore.NewConsoleEncoder(l.encoderCfg)
	} else {
		enc = zapcore.NewJSONEncoder(l.encoderCfg)
	}

	core := zapcore.NewCore(enc, l.sink, l.level)
	if len(l.hooks) > 0 {
		core = zapcore.NewTee(core, zapcore.NewCore(
			zapcore.NewJSONEncoder(l.encoderCfg),
			zapcore.NewMultiWriteSyncer(l.hooks...),
			l.level,
		))
	}

	l.l = zap.New(core)
}

// WithEnv tags every entry with the deployment zone (app_zone field).
func (l *Logger) WithEnv(appEnv string) *Logger {
	l.appEnv = appEnv
	return l
}

// SetLevel accepts zap level names: debug, info, warn, error.
func (l *Logger) SetLevel(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}
	l.level.SetLevel(lvl)
	return nil
}

func (l *Logger) Stop() (err error) {
	if err = l.l.Sync(); err != nil {
		return
	}
	return
}

func (l *Logger) Error(err error, fields ...map[string]any) {
	l.write(zapcore.ErrorLevel, err.Error(), fields,
		zap.String("error", err.Error()),
		zap.Stack("stack"),
	)
}

func (l *Logger) Info(msg string, fields ...map[string]any) {
	l.write(zapcore.InfoLevel, msg, fields)
}

func (l *Logger) Warning(msg string, fields ...map[string]any) {
	l.write(zapcore.WarnLevel, msg, fields)
}

func (l *Logger) Debug(msg string, fields ...map[string]any) {
	l.write(zapcore.DebugLevel, msg, fields)
}

func (l *Logger) Fatal(msg string, fields ...map[string]any) {
	l.write(zapcore.FatalLevel, msg, fields)
}

// write must be called directly from one of the level methods so that
// the caller_* fields point at the code that logged.
func (l *Logger) write(level zapcore.Level, msg string, fields []map[string]any, extra ...zap.Field) {
	ce := l.l.Check(level, msg)
	if ce == nil {
		return
	}

	file, line, funcName := getRuntimeParams()

	zapFields := make([]zap.Field, 0, 5+len(extra))
	zapFields = append(zapFields,
		zap.String("app_zone", l.appEnv),
		zap.String("app_name", l.appName),
		zap.String("caller_file", file),
		zap.Int("caller_line", line),
		zap.String("caller_func", funcName),
	)
	zapFields = append(zapFields, extra...)
	if len(fields) > 0 {
		zapFields = append(zapFields, mapToZapFields(fields[0])...)
	}

	ce.Write(zapFields...)
}

// Printf lets the logger stand in for cron.Logger style printf sinks.
func (l *Logger) Printf(format string, args ...any) {
	l.l.Sugar().Infof(format, args...)
}

func mapToZapFields(data map[string]any) []zap.Field {
	zapFields := make([]zap.Field, 0, len(data))

	for k, v := range data {
		zapFields = append(zapFields, zap.Any(k, v))
	}

	return zapFields
}

func getRuntimeParams() (file string, line int, funcName string) {
	var ok bool
	var pc uintptr
	pc, file, line, ok = runtime.Caller(callerSkip)
	if !ok {
		file = "not_defined"
		line = 0
		funcName = "not_defined"
	} else {
		funcName = runtime.FuncForPC(pc).Name()
	}
	return

}

func timeEncoder(layout string, location *time.Location) func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	return func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		t = t.In(location)
		type appendTimeEncoder interface {
			AppendTimeLayout(time.Time, string)
		}
		if enc, ok := enc.(appendTimeEncoder); ok {
			enc.AppendTimeLayout(t, layout)
			return
		}
		enc.AppendString(t.Format(layout))
	}
}
