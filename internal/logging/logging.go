// Package logging builds the process logger.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger at debug level in debug mode, and a JSON logger at info
// level otherwise. Both write to stderr.
func New(debug bool) *zap.Logger {
	var enc zapcore.Encoder
	var opts []zap.Option
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if debug {
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		level.SetLevel(zapcore.DebugLevel)
		opts = append(opts, zap.AddCaller())
	} else {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}
	core := zapcore.NewCore(enc, zapcore.Lock(os.Stderr), level)
	return zap.New(core, opts...).With(zap.Bool("debug", debug))
}
