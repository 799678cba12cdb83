package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the process-wide structured logger. It is a no-op until Init runs.
var Logger = zap.NewNop().Sugar()

// Init builds the global logger. Debug mode switches to a colored console
// encoder at debug level, otherwise zap's production JSON config is used.
func Init(debug bool) error {
	var (
		z   *zap.Logger
		err error
	)

	if debug {
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		z, err = cfg.Build()
	} else {
		z, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}

	Logger = z.Sugar()
	return nil
}

// Sync flushes buffered entries.
func Sync() {
	_ = Logger.Sync()
}

func Info(msg string, args ...any) {
	Logger.Infow(msg, args...)
}

func Error(msg string, args ...any) {
	Logger.Errorw(msg, args...)
}

func Debug(msg string, args ...any) {
	Logger.Debugw(msg, args...)
}

func Warn(msg string, args ...any) {
	Logger.Warnw(msg, args...)
}
