package utils

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewApplicationLogger constructs a zap logger that writes bare console
// messages to stderr, keeping stdout reserved for rendered output.
func NewApplicationLogger() (*zap.Logger, error) {
	return NewConsoleLogger(zapcore.Lock(os.Stderr)), nil
}

// NewConsoleLogger builds the application logger on top of sink.
func NewConsoleLogger(sink zapcore.WriteSyncer) *zap.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderConfig.TimeKey = ""
	encoderConfig.LevelKey = ""
	encoderConfig.NameKey = ""
	encoderConfig.CallerKey = ""
	encoderConfig.MessageKey = "message"
	encoderConfig.StacktraceKey = ""

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), sink, zap.InfoLevel)
	return zap.New(core)
}
