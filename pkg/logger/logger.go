// Package logger builds the zap loggers shared by the binaries.
package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options tunes the logger returned by NewWithOptions.
type Options struct {
	// Debug switches to the human readable development encoder at debug level.
	Debug bool

	// Level is the minimum enabled level ("debug", "info", "warn", "error").
	// Ignored when Debug is set. Defaults to info.
	Level string

	// Encoding is "json" or "console". Defaults to json.
	Encoding string

	// Output receives the log entries. Defaults to os.Stderr.
	Output io.Writer
}

// NewWithOptions constructs a logger for service according to opts. Stdout is
// left untouched so that program output stays machine readable.
func NewWithOptions(service string, opts Options) *zap.SugaredLogger {
	var config zap.Config
	if opts.Debug {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
		if opts.Level != "" {
			level, err := zapcore.ParseLevel(opts.Level)
			if err == nil {
				config.Level = zap.NewAtomicLevelAt(level)
			}
		}
		if opts.Encoding != "" {
			config.Encoding = opts.Encoding
		}
	}

	config.EncoderConfig.TimeKey = "ts"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	var encoder zapcore.Encoder
	if config.Encoding == "console" {
		encoder = zapcore.NewConsoleEncoder(config.EncoderConfig)
	} else {
		encoder = zapcore.NewJSONEncoder(config.EncoderConfig)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(out)), config.Level)
	return zap.New(core, zap.AddCaller(), zap.ErrorOutput(zapcore.Lock(zapcore.AddSync(out)))).
		With(zap.String("service", service)).
		Sugar()
}

// NewNop returns a logger that discards everything. Services fall back to it
// when no logger is configured.
func NewNop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
