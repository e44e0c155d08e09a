package logger

import (
	"context"
	"os"
	"sync"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type ServiceEnv struct {
	Platform string
	Service  string
	Env      string
}

type LogConfig struct {
	Path     string
	LogLevel string
	ServiceEnv
}

var (
	lg          *otelzap.Logger
	sugar       *otelzap.SugaredLogger
	defaultOnce sync.Once
)

// Init builds the process logger: JSON records rotated on disk plus a
// console stream, both annotated with trace context via otelzap.
func Init(conf *LogConfig) {
	level := zapcore.InfoLevel
	if parsed, err := zapcore.ParseLevel(conf.LogLevel); err == nil {
		level = parsed
	}

	encoderConf := zap.NewProductionEncoderConfig()
	encoderConf.TimeKey = "ts"
	encoderConf.EncodeTime = zapcore.ISO8601TimeEncoder

	fileSink := zapcore.AddSync(&lumberjack.Logger{
		Filename:   conf.Path,
		MaxSize:    100,
		MaxBackups: 10,
		MaxAge:     30,
		Compress:   true,
	})

	consoleConf := zap.NewDevelopmentEncoderConfig()
	consoleConf.EncodeLevel = zapcore.CapitalColorLevelEncoder

	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewJSONEncoder(encoderConf), fileSink, level),
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleConf), zapcore.AddSync(os.Stdout), level),
	)

	base := zap.New(core,
		zap.AddCaller(),
		zap.AddCallerSkip(1),
		zap.Fields(
			zap.String("platform", conf.Platform),
			zap.String("service", conf.Service),
			zap.String("env", conf.Env),
		),
	)

	lg = otelzap.New(base, otelzap.WithMinLevel(level))
	sugar = lg.Sugar()
}

// Close flushes buffered records; errors here are not actionable.
func Close() {
	if lg != nil {
		_ = lg.Sync()
	}
}

// l returns the configured sugar, falling back to a console logger so
// packages can log before Init (tests, tooling).
func l() *otelzap.SugaredLogger {
	if sugar == nil {
		defaultOnce.Do(func() {
			if sugar != nil {
				return
			}
			base, _ := zap.NewDevelopment(zap.AddCallerSkip(1))
			lg = otelzap.New(base)
			sugar = lg.Sugar()
		})
	}
	return sugar
}

func Debugf(ctx context.Context, format string, args ...any) {
	l().DebugfContext(ctx, format, args...)
}

func Infof(ctx context.Context, format string, args ...any) {
	l().InfofContext(ctx, format, args...)
}

func Warnf(ctx context.Context, format string, args ...any) {
	l().WarnfContext(ctx, format, args...)
}

func Errorf(ctx context.Context, format string, args ...any) {
	l().ErrorfContext(ctx, format, args...)
}

func Fatalf(ctx context.Context, format string, args ...any) {
	l().FatalfContext(ctx, format, args...)
}
